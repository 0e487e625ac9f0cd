package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Game is one record of a top-100 feed, in the feed's own schema.
type Game struct {
	PublisherID string `json:"publisher_id"`
	Name        string `json:"name"`
	OS          string `json:"os"`
	BundleID    string `json:"bundle_id"`
	Version     string `json:"version"`
}

type Client struct {
	httpClient *http.Client
}

func NewClient(timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchTopGames downloads one feed document. The request is bounded by the
// client timeout; a failed or non-200 fetch is returned as an error and is
// never retried.
func (c *Client) FetchTopGames(ctx context.Context, url string) ([]Game, error) {
	const op = "client.feed.FetchTopGames"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

		return nil, fmt.Errorf("%s: unexpected status %d: %s",
			op, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var games []Game

	if err = json.NewDecoder(resp.Body).Decode(&games); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return games, nil
}

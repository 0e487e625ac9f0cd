package populate

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"github.com/Encorpluptit/wizz-technical-test/internal/client/feed"
	"github.com/Encorpluptit/wizz-technical-test/internal/config"
	"github.com/Encorpluptit/wizz-technical-test/internal/http-server/model"
	resp "github.com/Encorpluptit/wizz-technical-test/internal/lib/api/response"
	"github.com/Encorpluptit/wizz-technical-test/internal/lib/logger/sl"
)

type Response struct {
	resp.Response
	Message string `json:"message"`
}

type GameImporter interface {
	SaveAll(games []model.Game) error
}

type FeedFetcher interface {
	FetchTopGames(ctx context.Context, url string) ([]feed.Game, error)
}

type Populate struct {
	log          *slog.Logger
	gameImporter GameImporter
	fetcher      FeedFetcher
	feeds        config.Feeds
}

func NewPopulate(
	log *slog.Logger,
	gameImporter GameImporter,
	fetcher FeedFetcher,
	feeds config.Feeds) *Populate {
	return &Populate{
		log:          log,
		gameImporter: gameImporter,
		fetcher:      fetcher,
		feeds:        feeds,
	}
}

func (p *Populate) New() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.game.populate.New"

		log := p.log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.String("run_id", uuid.New().String()),
		)

		// Both feeds must be fetched before anything is written, so a
		// single failed feed never leaves a half-populated table.
		iosGames, err := p.fetcher.FetchTopGames(r.Context(), p.feeds.IOSURL)
		if err != nil {
			log.Error("failed to fetch ios top games", sl.Err(err))

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, resp.Error(resp.KindUpstream, "failed to fetch ios top games", http.StatusInternalServerError))

			return
		}

		log.Info("ios feed fetched", sl.Count("count", len(iosGames)))

		androidGames, err := p.fetcher.FetchTopGames(r.Context(), p.feeds.AndroidURL)
		if err != nil {
			log.Error("failed to fetch android top games", sl.Err(err))

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, resp.Error(resp.KindUpstream, "failed to fetch android top games", http.StatusInternalServerError))

			return
		}

		log.Info("android feed fetched", sl.Count("count", len(androidGames)))

		games := make([]model.Game, 0, len(iosGames)+len(androidGames))

		for _, g := range iosGames {
			games = append(games, mapGame(g))
		}
		for _, g := range androidGames {
			games = append(games, mapGame(g))
		}

		if err = p.gameImporter.SaveAll(games); err != nil {
			log.Error("failed to save games", sl.Err(err))

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, resp.Error(resp.KindStore, "failed to save games", http.StatusInternalServerError))

			return
		}

		log.Info("games populated", sl.Count("count", len(games)))

		render.JSON(w, r, Response{
			Response: resp.OK(),
			Message:  "games populated successfully",
		})
	}
}

// mapGame normalizes a feed record to the game entity. The feeds carry no
// store id, so the bundle id stands in for it; every ingested game is
// marked published.
func mapGame(g feed.Game) model.Game {
	return model.Game{
		PublisherID: g.PublisherID,
		Name:        g.Name,
		Platform:    g.OS,
		StoreID:     g.BundleID,
		BundleID:    g.BundleID,
		AppVersion:  g.Version,
		IsPublished: true,
	}
}

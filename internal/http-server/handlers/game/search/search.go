package search

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"golang.org/x/exp/slog"

	"github.com/Encorpluptit/wizz-technical-test/internal/http-server/model"
	resp "github.com/Encorpluptit/wizz-technical-test/internal/lib/api/response"
	"github.com/Encorpluptit/wizz-technical-test/internal/lib/logger/sl"
)

// Request filters are both optional; an empty field skips that filter.
type Request struct {
	Name     string `json:"name"`
	Platform string `json:"platform"`
}

type GameSearcher interface {
	FindByFilter(name string, platform string) ([]model.Game, error)
}

type Search struct {
	log          *slog.Logger
	gameSearcher GameSearcher
}

func NewSearch(log *slog.Logger, gameSearcher GameSearcher) *Search {
	return &Search{
		log:          log,
		gameSearcher: gameSearcher,
	}
}

func (s *Search) New() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.game.search.New"

		log := s.log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req Request

		err := render.DecodeJSON(r.Body, &req)
		if errors.Is(err, io.EOF) {
			// an empty body means no filters, same as {}
			err = nil
		}
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))

			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, resp.Error(resp.KindBadRequest, "failed to decode request body", http.StatusBadRequest))

			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		// stored platforms are lowercase, incoming filters may not be
		games, err := s.gameSearcher.FindByFilter(req.Name, strings.ToLower(req.Platform))
		if err != nil {
			log.Error("failed to search games", sl.Err(err))

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, resp.Error(resp.KindStore, "failed to search games", http.StatusInternalServerError))

			return
		}

		log.Info("games searched", sl.Count("count", len(games)))

		render.JSON(w, r, games)
	}
}

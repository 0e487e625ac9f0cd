package list

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"golang.org/x/exp/slog"

	"github.com/Encorpluptit/wizz-technical-test/internal/http-server/model"
	resp "github.com/Encorpluptit/wizz-technical-test/internal/lib/api/response"
	"github.com/Encorpluptit/wizz-technical-test/internal/lib/logger/sl"
)

type GameLister interface {
	FindAll() ([]model.Game, error)
}

type List struct {
	log        *slog.Logger
	gameLister GameLister
}

func NewList(log *slog.Logger, gameLister GameLister) *List {
	return &List{
		log:        log,
		gameLister: gameLister,
	}
}

func (l *List) New() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.game.list.New"

		log := l.log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		games, err := l.gameLister.FindAll()
		if err != nil {
			log.Error("failed to query games", sl.Err(err))

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, resp.Error(resp.KindStore, "failed to query games", http.StatusInternalServerError))

			return
		}

		log.Info("games listed", sl.Count("count", len(games)))

		render.JSON(w, r, games)
	}
}

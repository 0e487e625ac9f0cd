package remove

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"golang.org/x/exp/slog"

	"github.com/Encorpluptit/wizz-technical-test/internal/http-server/model"
	resp "github.com/Encorpluptit/wizz-technical-test/internal/lib/api/response"
	"github.com/Encorpluptit/wizz-technical-test/internal/lib/logger/sl"
)

type Response struct {
	ID int64 `json:"id"`
}

type GameRemover interface {
	FindByID(id int64) (*model.Game, error)
	Delete(id int64) error
}

type Remove struct {
	log         *slog.Logger
	gameRemover GameRemover
}

func NewRemove(log *slog.Logger, gameRemover GameRemover) *Remove {
	return &Remove{
		log:         log,
		gameRemover: gameRemover,
	}
}

func (rm *Remove) New() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.game.remove.New"

		log := rm.log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			log.Error("invalid game id", sl.Err(err))

			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, resp.Error(resp.KindBadRequest, "invalid game id", http.StatusBadRequest))

			return
		}

		game, err := rm.gameRemover.FindByID(id)
		if err != nil {
			log.Error("failed to find game", sl.Err(err))

			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, resp.Error(resp.KindStore, "failed to find game", http.StatusBadRequest))

			return
		}

		if game == nil {
			log.Info("game not found", slog.Int64("id", id))

			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, resp.NotFound("game not found"))

			return
		}

		// Hard delete, not recoverable through this API.
		if err = rm.gameRemover.Delete(id); err != nil {
			log.Error("failed to delete game", sl.Err(err))

			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, resp.Error(resp.KindStore, "failed to delete game", http.StatusBadRequest))

			return
		}

		log.Info("game deleted", slog.Int64("id", id))

		render.JSON(w, r, Response{ID: id})
	}
}

package update

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

// Request is the full replacement set: every field overwrites the stored
// value, including fields the caller left at their zero value.
type Request struct {
	PublisherID string `json:"publisherId"`
	Name        string `json:"name"`
	Platform    string `json:"platform"`
	StoreID     string `json:"storeId"`
	BundleID    string `json:"bundleId"`
	AppVersion  string `json:"appVersion"`
	IsPublished bool   `json:"isPublished"`
}

type GameUpdater interface {
	FindByID(id int64) (*model.Game, error)
	Update(id int64, game model.Game) error
}

type Update struct {
	log         *slog.Logger
	gameUpdater GameUpdater
}

func NewUpdate(log *slog.Logger, gameUpdater GameUpdater) *Update {
	return &Update{
		log:         log,
		gameUpdater: gameUpdater,
	}
}

func (u *Update) New() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.game.update.New"

		log := u.log.With(
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

		var req Request

		if err = render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("failed to decode request body", sl.Err(err))

			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, resp.Error(resp.KindBadRequest, "failed to decode request body", http.StatusBadRequest))

			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		game, err := u.gameUpdater.FindByID(id)
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

		updated := model.Game{
			ID:          id,
			PublisherID: req.PublisherID,
			Name:        req.Name,
			Platform:    req.Platform,
			StoreID:     req.StoreID,
			BundleID:    req.BundleID,
			AppVersion:  req.AppVersion,
			IsPublished: req.IsPublished,
		}

		if err = u.gameUpdater.Update(id, updated); err != nil {
			log.Error("failed to update game", sl.Err(err))

			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, resp.Error(resp.KindStore, "failed to update game", http.StatusBadRequest))

			return
		}

		log.Info("game updated", slog.Int64("id", id))

		render.JSON(w, r, updated)
	}
}

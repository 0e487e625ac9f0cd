package save

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"golang.org/x/exp/slog"

	"github.com/Encorpluptit/wizz-technical-test/internal/http-server/model"
	resp "github.com/Encorpluptit/wizz-technical-test/internal/lib/api/response"
	"github.com/Encorpluptit/wizz-technical-test/internal/lib/logger/sl"
)

// Request carries the seven game fields. They are passed to the store
// verbatim; any constraint checking happens there.
type Request struct {
	PublisherID string `json:"publisherId"`
	Name        string `json:"name"`
	Platform    string `json:"platform"`
	StoreID     string `json:"storeId"`
	BundleID    string `json:"bundleId"`
	AppVersion  string `json:"appVersion"`
	IsPublished bool   `json:"isPublished"`
}

type GameSaver interface {
	Save(game model.Game) (int64, error)
	FindByID(id int64) (*model.Game, error)
}

type Save struct {
	log       *slog.Logger
	gameSaver GameSaver
}

func NewSave(log *slog.Logger, gameSaver GameSaver) *Save {
	return &Save{
		log:       log,
		gameSaver: gameSaver,
	}
}

func (s *Save) New() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.game.save.New"

		log := s.log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req Request

		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("failed to decode request body", sl.Err(err))

			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, resp.Error(resp.KindBadRequest, "failed to decode request body", http.StatusBadRequest))

			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		id, err := s.gameSaver.Save(model.Game{
			PublisherID: req.PublisherID,
			Name:        req.Name,
			Platform:    req.Platform,
			StoreID:     req.StoreID,
			BundleID:    req.BundleID,
			AppVersion:  req.AppVersion,
			IsPublished: req.IsPublished,
		})
		if err != nil {
			log.Error("failed to save game", sl.Err(err))

			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, resp.Error(resp.KindStore, "failed to save game", http.StatusBadRequest))

			return
		}

		game, err := s.gameSaver.FindByID(id)
		if err != nil {
			log.Error("failed to read back saved game", sl.Err(err))

			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, resp.Error(resp.KindStore, "failed to read back saved game", http.StatusBadRequest))

			return
		}

		if game == nil {
			log.Error("saved game not found on read back", slog.Int64("id", id))

			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, resp.Error(resp.KindStore, "failed to read back saved game", http.StatusBadRequest))

			return
		}

		log.Info("game saved", slog.Int64("id", id))

		render.JSON(w, r, game)
	}
}

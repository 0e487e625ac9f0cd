package remove_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	"github.com/Encorpluptit/wizz-technical-test/internal/http-server/handlers/game/remove"
	"github.com/Encorpluptit/wizz-technical-test/internal/http-server/model"
	resp "github.com/Encorpluptit/wizz-technical-test/internal/lib/api/response"
)

type fakeRemover struct {
	existing  *model.Game
	findErr   error
	deleteErr error
	deletedID int64
}

func (f *fakeRemover) FindByID(id int64) (*model.Game, error) {
	return f.existing, f.findErr
}

func (f *fakeRemover) Delete(id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}

	f.deletedID = id

	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRemove(t *testing.T) {
	existing := &model.Game{ID: 1, Name: "Test App", Platform: "ios"}

	cases := []struct {
		name       string
		target     string
		existing   *model.Game
		findErr    error
		deleteErr  error
		wantStatus int
		wantKind   string
		wantID     int64
	}{
		{
			name:       "Success",
			target:     "/api/games/1",
			existing:   existing,
			wantStatus: http.StatusOK,
			wantID:     1,
		},
		{
			name:       "NotFound",
			target:     "/api/games/7",
			existing:   nil,
			wantStatus: http.StatusNotFound,
			wantKind:   resp.KindNotFound,
		},
		{
			name:       "InvalidID",
			target:     "/api/games/abc",
			wantStatus: http.StatusBadRequest,
			wantKind:   resp.KindBadRequest,
		},
		{
			name:       "FindError",
			target:     "/api/games/1",
			findErr:    errors.New("connection refused"),
			wantStatus: http.StatusBadRequest,
			wantKind:   resp.KindStore,
		},
		{
			name:       "DeleteError",
			target:     "/api/games/1",
			existing:   existing,
			deleteErr:  errors.New("connection refused"),
			wantStatus: http.StatusBadRequest,
			wantKind:   resp.KindStore,
		},
	}

	for _, tc := range cases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			remover := &fakeRemover{existing: tc.existing, findErr: tc.findErr, deleteErr: tc.deleteErr}

			router := chi.NewRouter()
			router.Delete("/api/games/{id}", remove.NewRemove(discardLogger(), remover).New())

			req := httptest.NewRequest(http.MethodDelete, tc.target, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("unexpected status, want: %d, got: %d", tc.wantStatus, rec.Code)
			}

			if tc.wantKind != "" {
				var body resp.Response

				if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
					t.Fatalf("failed to decode error body: %v", err)
				}

				if body.Kind != tc.wantKind {
					t.Errorf("unexpected error kind, want: %q, got: %q", tc.wantKind, body.Kind)
				}

				return
			}

			var body remove.Response

			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}

			if body.ID != tc.wantID {
				t.Errorf("unexpected echoed id, want: %d, got: %d", tc.wantID, body.ID)
			}

			if remover.deletedID != tc.wantID {
				t.Errorf("unexpected deleted id, want: %d, got: %d", tc.wantID, remover.deletedID)
			}
		})
	}
}

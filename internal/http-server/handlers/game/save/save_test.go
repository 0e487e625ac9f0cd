package save_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/exp/slog"

	"github.com/Encorpluptit/wizz-technical-test/internal/http-server/handlers/game/save"
	"github.com/Encorpluptit/wizz-technical-test/internal/http-server/model"
	resp "github.com/Encorpluptit/wizz-technical-test/internal/lib/api/response"
)

type fakeSaver struct {
	saved   *model.Game
	nextID  int64
	saveErr error
	findErr error
}

func (f *fakeSaver) Save(game model.Game) (int64, error) {
	if f.saveErr != nil {
		return 0, f.saveErr
	}

	f.saved = &game

	return f.nextID, nil
}

func (f *fakeSaver) FindByID(id int64) (*model.Game, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}

	if f.saved == nil {
		return nil, nil
	}

	game := *f.saved
	game.ID = id

	return &game, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSave(t *testing.T) {
	cases := []struct {
		name       string
		body       string
		saveErr    error
		wantStatus int
		wantKind   string
	}{
		{
			name:       "Success",
			body:       `{"publisherId":"1234567890","name":"Test App","platform":"ios","storeId":"1234","bundleId":"test.bundle.id","appVersion":"1.0.0","isPublished":true}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "EmptyFieldsPassThrough",
			body:       `{"name":"Nameless Publisher"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "MalformedBody",
			body:       `{"name":`,
			wantStatus: http.StatusBadRequest,
			wantKind:   resp.KindBadRequest,
		},
		{
			name:       "StoreError",
			body:       `{"name":"Test App"}`,
			saveErr:    errors.New("constraint violation"),
			wantStatus: http.StatusBadRequest,
			wantKind:   resp.KindStore,
		},
	}

	for _, tc := range cases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			saver := &fakeSaver{nextID: 42, saveErr: tc.saveErr}
			handler := save.NewSave(discardLogger(), saver)

			req := httptest.NewRequest(http.MethodPost, "/api/games", bytes.NewBufferString(tc.body))
			rec := httptest.NewRecorder()

			handler.New().ServeHTTP(rec, req)

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

			var got model.Game

			if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}

			if got.ID != 42 {
				t.Errorf("expected assigned id 42, got: %d", got.ID)
			}
		})
	}
}

func TestSaveFieldsVerbatim(t *testing.T) {
	t.Parallel()

	saver := &fakeSaver{nextID: 1}
	handler := save.NewSave(discardLogger(), saver)

	body := `{"publisherId":" 1234567890 ","name":"Test App","platform":"IOS","storeId":"","bundleId":"test.bundle.id","appVersion":"1.0.0","isPublished":true}`

	req := httptest.NewRequest(http.MethodPost, "/api/games", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()

	handler.New().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}

	// no trimming or case folding on the way to the store
	want := model.Game{
		PublisherID: " 1234567890 ",
		Name:        "Test App",
		Platform:    "IOS",
		StoreID:     "",
		BundleID:    "test.bundle.id",
		AppVersion:  "1.0.0",
		IsPublished: true,
	}

	if saver.saved == nil {
		t.Fatal("nothing was saved")
	}

	if *saver.saved != want {
		t.Errorf("unexpected saved game, want: %+v, got: %+v", want, *saver.saved)
	}
}

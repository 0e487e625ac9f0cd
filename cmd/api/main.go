package main

import (
	"database/sql"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/exp/slog"

	"github.com/Encorpluptit/wizz-technical-test/internal/client/feed"
	"github.com/Encorpluptit/wizz-technical-test/internal/config"
	"github.com/Encorpluptit/wizz-technical-test/internal/http-server/handlers/game/list"
	"github.com/Encorpluptit/wizz-technical-test/internal/http-server/handlers/game/populate"
	"github.com/Encorpluptit/wizz-technical-test/internal/http-server/handlers/game/remove"
	"github.com/Encorpluptit/wizz-technical-test/internal/http-server/handlers/game/save"
	"github.com/Encorpluptit/wizz-technical-test/internal/http-server/handlers/game/search"
	"github.com/Encorpluptit/wizz-technical-test/internal/http-server/handlers/game/update"
	"github.com/Encorpluptit/wizz-technical-test/internal/http-server/handlers/mysql"
	mwlogger "github.com/Encorpluptit/wizz-technical-test/internal/http-server/middleware/logger"
	"github.com/Encorpluptit/wizz-technical-test/internal/lib/logger/handler/slogpretty"
	"github.com/Encorpluptit/wizz-technical-test/internal/lib/logger/sl"
	"github.com/Encorpluptit/wizz-technical-test/internal/repository"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting server...", slog.String("env", cfg.Env))
	log.Debug("debug messages are enabled")

	db, err := sql.Open("mysql", cfg.Database.DSN())
	if err != nil {
		log.Error("Failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	// Verify the connection
	if err = db.Ping(); err != nil {
		log.Error("Failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	handler := mysql.New(db)

	gameRepo := repository.NewGameRepository(*handler)
	feedClient := feed.NewClient(cfg.Feeds.Timeout)

	gameList := list.NewList(log, gameRepo)
	gameSave := save.NewSave(log, gameRepo)
	gameUpdate := update.NewUpdate(log, gameRepo)
	gameRemove := remove.NewRemove(log, gameRepo)
	gameSearch := search.NewSearch(log, gameRepo)
	gamePopulate := populate.NewPopulate(log, gameRepo, feedClient, cfg.Feeds)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Get("/api/games", gameList.New())
	router.Post("/api/games", gameSave.New())
	router.Put("/api/games/{id}", gameUpdate.New())
	router.Delete("/api/games/{id}", gameRemove.New())
	router.Post("/api/games/search", gameSearch.New())
	router.Post("/api/games/populate", gamePopulate.New())

	router.Handle("/*", http.FileServer(http.Dir(cfg.HTTPServer.StaticDir)))

	log.Info("Server started", slog.String("address", cfg.Address))

	srv := &http.Server{
		Addr:         cfg.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.WriteTimeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	if err = srv.ListenAndServe(); err != nil {
		log.Error("Server failed", sl.Err(err))
	}

	log.Error("Server stopped")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlogLogger()
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlogLogger() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	handler := opts.NewPrettyHandler(os.Stdout)

	return slog.New(handler)
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"truyen/backend/internal/config"
	"truyen/backend/internal/db"
	"truyen/backend/internal/handler"
	truyenhttp "truyen/backend/internal/http"
	"truyen/backend/internal/limiter"
	"truyen/backend/internal/repository"
	"truyen/backend/internal/scheduler"
	"truyen/backend/internal/service"
	"truyen/backend/pkg/logger"
	"truyen/backend/pkg/wordfilter"
)

const (
	viewLimit       = 3
	viewWindow      = time.Hour
	viewMaxEntries  = 5000
	commentLimit    = 5
	commentWindow   = time.Minute
	commentEntries  = 1000
	sweepInterval   = 10 * time.Minute
	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg := config.Load()
	logger.Init(logger.ParseLevel(cfg.LogLevel))

	if cfg.JWTSecret == "" {
		logger.Error("TRUYEN_JWT_SECRET is required")
		os.Exit(1)
	}

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		logger.Error("open database", "path", cfg.DBPath, "error", err)
		os.Exit(1)
	}
	defer database.Close()

	mangaRepo := repository.NewMangaRepository(database)
	chapterRepo := repository.NewChapterRepository(database)
	tagRepo := repository.NewTagRepository(database)
	commentRepo := repository.NewCommentRepository(database)
	userRepo := repository.NewUserRepository(database)

	viewLimiter := limiter.New(viewLimit, viewWindow, viewMaxEntries)
	commentLimiter := limiter.New(commentLimit, commentWindow, commentEntries)

	viewService := service.NewViewService(mangaRepo, viewLimiter)
	commentService := service.NewCommentService(commentRepo, wordfilter.Default(), commentLimiter)
	mangaService := service.NewMangaService(mangaRepo, chapterRepo, tagRepo)
	chapterService := service.NewChapterService(chapterRepo, mangaRepo)
	tagService := service.NewTagService(tagRepo)
	authService := service.NewAuthService(userRepo, cfg.JWTSecret)

	if cfg.AdminPassword != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := authService.EnsureAdmin(ctx, cfg.AdminUsername, cfg.AdminPassword); err != nil {
			cancel()
			logger.Error("admin bootstrap", "error", err)
			os.Exit(1)
		}
		cancel()
	} else {
		logger.Warn("TRUYEN_ADMIN_PASSWORD not set, admin endpoints unusable until a user is provisioned")
	}

	e := truyenhttp.NewRouter(
		handler.NewViewHandler(viewService),
		handler.NewCommentHandler(commentService),
		handler.NewMangaHandler(mangaService),
		handler.NewChapterHandler(chapterService),
		handler.NewTagHandler(tagService),
		handler.NewAuthHandler(authService),
		authService,
		cfg.AllowOrigins,
		cfg.StaticDir,
	)

	maintenance := scheduler.New(sweepInterval, viewLimiter, commentLimiter)
	maintenance.Start()
	defer maintenance.Stop()

	go func() {
		logger.Info("server listening", "addr", cfg.Addr)
		if err := e.Start(cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("shutdown", "error", err)
	}
}

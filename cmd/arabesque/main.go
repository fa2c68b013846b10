package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/arabesque-studio/arabesque/internal/admin"
	"github.com/arabesque-studio/arabesque/internal/app"
	"github.com/arabesque-studio/arabesque/internal/auth"
	"github.com/arabesque-studio/arabesque/internal/changereq"
	"github.com/arabesque-studio/arabesque/internal/lessons"
	"github.com/arabesque-studio/arabesque/internal/members"
	"github.com/arabesque-studio/arabesque/internal/observability"
	"github.com/arabesque-studio/arabesque/internal/pages"
	"github.com/arabesque-studio/arabesque/internal/platform/cache"
	"github.com/arabesque-studio/arabesque/internal/push"
	"github.com/arabesque-studio/arabesque/internal/sheet"
	"github.com/arabesque-studio/arabesque/internal/view"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	redisClient := cache.New(ctx, cfg.RedisAddr, logger)
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()

	templates, err := view.NewEngine()
	if err != nil {
		logger.Error("parse templates", slog.Any("error", err))
		os.Exit(1)
	}

	httpc := &http.Client{Timeout: 20 * time.Second}
	sheetClient := sheet.NewClient(httpc, redisClient, cfg.SheetCacheTTL, logger)
	relay := sheet.NewRelay(cfg.RelayURL, cfg.RelaySecret, httpc, logger)

	membersRepo := members.NewRepository(sheetClient, relay, cfg.MembersCSVURL, cfg.CredentialsCSVURL)
	membersService := members.NewService(membersRepo)
	membersHandler := members.NewHandler(logger, membersService)

	lessonsRepo := lessons.NewRepository(sheetClient, cfg.LessonsCSVURL)
	lessonsService := lessons.NewService(lessonsRepo, membersService)
	lessonsHandler := lessons.NewHandler(logger, lessonsService)

	requestsRepo := changereq.NewRepository(sheetClient, relay, cfg.RequestsCSVURL)
	requestsService := changereq.NewService(requestsRepo)
	requestsHandler := changereq.NewHandler(logger, requestsService)

	codec := auth.NewTokenCodec(cfg.SessionSecret, cfg.SessionTTL)
	cookies := auth.NewCookieStore(cfg.CookieName, cfg.CookieSecure)
	authService := auth.NewService(logger, codec, cookies, membersRepo, auth.RolePasswords{
		Owner:   cfg.OwnerPassword,
		Teacher: cfg.TeacherPassword,
	})
	authHandler := auth.NewHandler(logger, authService, cfg.LoginRatePerMinute)

	pushHandler := push.NewHandler(logger, relay)
	adminHandler := admin.NewHandler(logger)
	pagesHandler := pages.NewHandler(logger, templates)

	metrics := observability.NewMetrics()

	router := app.NewRouter(app.RouterParams{
		Logger:          logger,
		Config:          cfg,
		AuthService:     authService,
		AuthHandler:     authHandler,
		MembersHandler:  membersHandler,
		LessonsHandler:  lessonsHandler,
		RequestsHandler: requestsHandler,
		PushHandler:     pushHandler,
		AdminHandler:    adminHandler,
		PagesHandler:    pagesHandler,
		Metrics:         metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}

package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/unrolled/render"

	"github.com/vladislavprovich/telegram-integration/internal/fakeapi"
	pkglogger "github.com/vladislavprovich/telegram-integration/pkg/logger"
)

func main() {
	ctx := context.Background()
	cfg := initConfig(ctx)
	logger, err := pkglogger.New(ctx, cfg.Logger)
	if err != nil {
		log.Fatal(err)
	}

	store := fakeapi.NewStore()
	rend := render.New()
	serviceHandler := initServiceHandler(ctx, store, logger.Logger, cfg, rend)
	router := fakeapi.NewRouter(serviceHandler, logger.Logger, &cfg.Server)

	httpServer := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		logger.InfoContext(ctx, "Server start. Listening on port", slog.Any("port", cfg.Server.Port))
		if err = httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("could not listen on port %s: %s", cfg.Server.Port, err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Second)
	defer shutdownCancel()

	if err = httpServer.Shutdown(shutdownCtx); err != nil {
		logger.InfoContext(ctx, "Server shutdown error", slog.Any("error", err))
	}

	logger.InfoContext(ctx, "Server gracefully shutdown")
}

func initConfig(ctx context.Context) *Config {
	cfg, err := LoadConfig(ctx)
	if err != nil {
		log.Fatalf("config load error %s", err)
	}

	return cfg
}

func initServiceHandler(
	ctx context.Context,
	store *fakeapi.Store,
	logger *slog.Logger,
	cfg *Config,
	render *render.Render,
) *fakeapi.ServiceHandler {
	logger.InfoContext(ctx, "initializing service handler")
	serviceHandler := fakeapi.NewServiceHandler(store, logger, &cfg.Server, render)

	return serviceHandler
}

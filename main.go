package main

import (
	"context"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"launchdash/internal"
	"launchdash/internal/config"
	"launchdash/internal/container"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Load application configuration
	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	internal.DefaultLogger = internal.NewLogger(internal.ParseLogLevel(appConfig.LogLevel))
	logger := internal.DefaultLogger.WithComponent("Main")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Create dependency injection container
	appContainer, err := container.New(appConfig)
	if err != nil {
		log.Fatalf("Failed to create application container: %v", err)
	}
	defer appContainer.Shutdown(context.Background())

	// Load launches and build the dashboard
	if err := appContainer.Init(ctx); err != nil {
		log.Fatalf("Failed to initialize dashboard: %v", err)
	}

	g, gctx := errgroup.WithContext(ctx)

	// Start pprof server for performance profiling
	if appConfig.Profiling.Enabled {
		g.Go(func() error {
			return servePprof(gctx, appConfig.Profiling.Port, appConfig.Server.ShutdownTimeout, logger)
		})
	}

	g.Go(func() error {
		return appContainer.Server.Start(gctx, ":"+appConfig.Server.Port, appConfig.Server.ShutdownTimeout)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server stopped: %v", err)
		os.Exit(1)
	}
	logger.Info("Shutdown complete")
}

// servePprof exposes net/http/pprof on its own port until ctx ends.
func servePprof(ctx context.Context, port string, timeout time.Duration, logger *internal.Logger) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           http.DefaultServeMux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("pprof listening on http://localhost:%s/debug/pprof/", port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

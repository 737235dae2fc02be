package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"launchdash/adapters/excel"
	"launchdash/domain/launch"
	"launchdash/internal/config"
	"launchdash/internal/dashboard"
	"launchdash/internal/testkit"
	"launchdash/ports"
	"launchdash/ui"

	"github.com/joho/godotenv"
)

// Serves only the JSON API, for clients that draw their own charts.
func main() {
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8081"
	}

	var src ports.LaunchSource = testkit.NewDemoSource()
	if file := os.Getenv("DATA_FILE"); file != "" {
		src = excel.NewLaunchLoader(file, excel.DefaultColumnMapping())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	records, err := src.Load(ctx)
	if err != nil {
		log.Fatalf("Failed to load launches: %v", err)
	}
	ds, err := launch.NewDataset(src.Describe(), records)
	if err != nil {
		log.Fatalf("Failed to build dataset: %v", err)
	}
	reg, err := dashboard.NewRegistry(ds, dashboard.RegistryOptions{})
	if err != nil {
		log.Fatalf("Failed to register callbacks: %v", err)
	}
	app, err := ui.NewApp(ui.AppConfig{
		Dataset:        ds,
		Registry:       reg,
		Dashboard:      config.DefaultDashboardConfig(),
		RequestLogging: true,
	})
	if err != nil {
		log.Fatalf("Failed to create API: %v", err)
	}

	srv := &http.Server{Addr: ":" + port, Handler: app, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Printf("Starting launch API on http://localhost:%s/api", port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal("Server failed:", err)
	}
}

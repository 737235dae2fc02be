package main

import (
	"context"
	"log"
	"os"

	"launchdash/adapters/excel"
	"launchdash/adapters/postgres"
	"launchdash/internal/migration"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

func main() {
	if len(os.Args) < 3 {
		log.Fatal("Usage: migrate <database_url> <launch_file>")
	}

	databaseURL := os.Args[1]
	launchFile := os.Args[2]

	log.Printf("Importing %s into launch_records", launchFile)

	// Connect to database
	db, err := sqlx.Connect("postgres", databaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	runner := migration.NewRunner()
	if err := runner.Run(ctx, db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	loader := excel.NewLaunchLoader(launchFile, excel.DefaultColumnMapping())
	records, err := loader.Load(ctx)
	if err != nil {
		log.Fatalf("Failed to read launch file: %v", err)
	}

	repo := postgres.NewLaunchRepository(db)
	if err := repo.ReplaceAllFrom(ctx, loader.Describe(), records); err != nil {
		log.Fatalf("Failed to store launches: %v", err)
	}

	n, err := repo.Count(ctx)
	if err != nil {
		log.Fatalf("Failed to count stored launches: %v", err)
	}
	log.Printf("Import complete: %d launches stored (schema %s)", n, runner.Version())
}

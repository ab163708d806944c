package main

import (
	"context"
	"log"
	"os"

	"freshbasket/internal/config"
	"freshbasket/internal/db"
	"freshbasket/internal/seed"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags|log.LUTC)

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer pool.Close()

	if err := seed.Apply(ctx, pool, logger); err != nil {
		logger.Fatalf("apply seed: %v", err)
	}
	logger.Printf("seeded demo session %s", seed.DemoSessionID)
}

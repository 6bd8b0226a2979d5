package main

import (
	"errors"
	"log"
	"os"

	"wardrobe/internal/cli"
	"wardrobe/internal/config"
	"wardrobe/internal/database"
	"wardrobe/internal/logger"
)

func main() {
	cfg := config.Load()
	logger.Initialize(logger.ParseLevel(cfg.LogLevel))

	db, err := database.Initialize(cfg.DatabasePath)
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	lock, err := database.AcquireLock(cfg.LockPath)
	if err != nil {
		if errors.Is(err, database.ErrLocked) {
			log.Fatal("Another session is already running. Close it or remove ", cfg.LockPath)
		}
		log.Fatal("Failed to acquire lock:", err)
	}
	defer lock.Release()

	shell := cli.NewShell(db, os.Stdin, os.Stdout)
	if err := shell.Run(); err != nil {
		log.Fatal("Session error:", err)
	}
}

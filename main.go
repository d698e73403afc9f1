package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kamil5b/sewa-alat-berat/config"
	"github.com/kamil5b/sewa-alat-berat/database"
	"github.com/kamil5b/sewa-alat-berat/logger"
	"github.com/kamil5b/sewa-alat-berat/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	config.App = cfg

	log, err := logger.New(cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()
	logger.Log = log

	if err := database.Connect(cfg); err != nil {
		log.Fatal("could not connect to the database", "error", err)
	}

	app := routes.New(cfg)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Info("Shutting down...")
		_ = app.ShutdownWithTimeout(10 * time.Second)
	}()

	log.Info("Listening", "port", cfg.Port, "env", cfg.Env)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal("server stopped", "error", err)
	}
}

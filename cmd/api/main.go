package main

import (
	"context"
	"log"

	"mindwell/adapters/postgres"
	"mindwell/internal/config"
	"mindwell/internal/container"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	gin.SetMode(cfg.Server.GinMode)

	db, err := postgres.Connect(cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	c, err := container.New(cfg)
	if err != nil {
		log.Fatalf("Failed to create container: %v", err)
	}
	if err := c.InitWithDatabase(db); err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}
	defer c.Shutdown(context.Background())

	if err := c.EnsureDemoAccount(context.Background()); err != nil {
		log.Fatalf("Failed to prepare demo account: %v", err)
	}

	addr := ":" + cfg.Server.Port
	log.Printf("Starting mindwell API on %s", addr)
	if err := c.Server.Run(addr); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

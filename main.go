package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"postboard/auth"
	"postboard/cache"
	"postboard/config"
	"postboard/database"
	"postboard/handlers"
	"postboard/routes"
)

func main() {
	log.Println("Starting Postboard server...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	// ===== CONNECT TO DATABASE WITH RETRY =====
	var dbErr error
	for i := 1; i <= 3; i++ {
		if err := database.Connect(cfg.DatabaseURL); err != nil {
			dbErr = err
			log.Printf("Database connection attempt %d failed: %v", i, err)
			time.Sleep(2 * time.Second)
			continue
		}
		dbErr = nil
		break
	}
	if dbErr != nil {
		log.Fatal("Failed to connect to database: ", dbErr)
	}
	defer database.Disconnect()

	// ===== GIN MODE =====
	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// ===== WIRING =====
	tokens, err := auth.NewTokenService(cfg.JWTSecret, cfg.JWTAlgorithm, cfg.TokenTTL)
	if err != nil {
		log.Fatal("Token service setup failed: ", err)
	}
	handlers.SetTokenService(tokens)
	handlers.SetPostCache(cache.NewPostCache(cfg.CacheSize, cfg.CacheTTL))

	router := routes.SetupRouter(tokens, cfg.CORSAllowedOrigins)

	// ===== SERVER CONFIG =====
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server running on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error: ", err)
		}
	}()

	// ===== GRACEFUL SHUTDOWN =====
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Println("Forced shutdown: ", err)
	}

	log.Println("Server stopped gracefully")
}

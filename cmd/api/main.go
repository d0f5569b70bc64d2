package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/logger"

	"starwarsapi/internal/config"
	"starwarsapi/internal/database"
	"starwarsapi/internal/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg.DatabaseURL, logger.Warn)
	if err != nil {
		log.Fatal(err)
	}

	if cfg.AutoMigrate {
		log.Println("Running AutoMigrate...")
		if err := database.Migrate(db); err != nil {
			log.Fatal("AutoMigrate failed:", err)
		}
	}

	r := router.New(db, router.Options{
		CurrentUserID:  cfg.CurrentUserID,
		AllowedOrigins: cfg.AllowedOrigins,
		AccessLog:      true,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router.StripTrailingSlash(r),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server stopped: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownGrace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

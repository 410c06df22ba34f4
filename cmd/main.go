package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Jakeb65/WelnessTracker/config"
	"github.com/Jakeb65/WelnessTracker/routes"
	"github.com/Jakeb65/WelnessTracker/services"

	"github.com/gin-gonic/gin"
)

func main() {
	conf, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := config.InitLogger(conf.LogDir); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer config.Logger.Sync()

	db, err := config.InitDB(conf)
	if err != nil {
		config.Logger.Fatalf("failed to init database: %v", err)
	}
	defer config.CloseDB(db)

	if conf.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	entrySvc := services.NewEntryService(db)
	r := routes.SetupRouter(entrySvc)

	srv := &http.Server{
		Addr:    ":" + conf.ServerPort,
		Handler: r,
	}

	go func() {
		config.Logger.Infof("server listening on port %s", conf.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			config.Logger.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	config.Logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		config.Logger.Fatalf("server shutdown failed: %v", err)
	}
	config.Logger.Info("server stopped")
}

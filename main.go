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

	"github.com/sarthak-bhuptani/MindCare/config"
	"github.com/sarthak-bhuptani/MindCare/middleware"
	"github.com/sarthak-bhuptani/MindCare/routes"
	"github.com/sarthak-bhuptani/MindCare/services"
)

func main() {
	if err := config.InitLogger(); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer config.Logger.Sync()

	conf, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := config.InitDB(conf); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	if err := config.InitRedis(conf); err != nil {
		log.Fatalf("failed to initialize redis: %v", err)
	}

	groqClient, err := services.NewGroqClient(conf.GroqAPIKey, conf.GroqAPIEndpoint, conf.GroqModel)
	if err != nil {
		log.Fatalf("failed to initialize Groq client: %v", err)
	}

	if conf.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	middleware.SetupMiddleware(r)
	r.Use(middleware.RequestLogger())

	routes.RegisterRoutes(r, groqClient)

	srv := &http.Server{
		Addr:    ":" + conf.ServerPort,
		Handler: r,
	}

	go func() {
		config.Logger.Infow("server starting", "port", conf.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	config.Logger.Infow("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server shutdown failed: %v", err)
	}

	config.Logger.Infow("server stopped")
}

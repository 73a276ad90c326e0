package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"descentcheck/internal/cache"
	"descentcheck/internal/catalog"
	"descentcheck/internal/config"
	"descentcheck/internal/repository"
	"descentcheck/internal/service"
	"descentcheck/internal/transport/rest"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := config.Load()

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	// Ping MongoDB
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDB)

	// Redis connection
	redisAddr := strings.TrimPrefix(cfg.RedisAddr, "redis://")

	rdb := redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})
	defer rdb.Close()

	// Ping Redis
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// The question catalog is static and shared by every session.
	cat := catalog.New()
	log.Printf("Question catalog loaded: %d questions", cat.Len())

	// Initialize repositories
	resultRepo := repository.NewResultRepository(db)
	leadRepo := repository.NewLeadRepository(db)

	// Initialize caches
	sessionCache := cache.NewSessionCache(rdb)

	// Initialize services
	authSvc := service.NewAuthService()
	resultSvc := service.NewResultService(cat, sessionCache, resultRepo)
	sessionSvc := service.NewSessionService(cat, sessionCache, authSvc, resultSvc)
	leadSvc := service.NewLeadService(leadRepo)

	// Create router with container
	container := &rest.Container{
		Catalog:        cat,
		AuthService:    authSvc,
		SessionService: sessionSvc,
		ResultService:  resultSvc,
		LeadService:    leadSvc,
	}

	router := rest.NewRouter(container)

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.Port)
		log.Println("Endpoints:")
		log.Println("  POST /v1/sessions")
		log.Println("  GET  /v1/questions")
		log.Println("  GET  /v1/sessions/current/question")
		log.Println("  POST /v1/sessions/current/answers")
		log.Println("  POST /v1/sessions/current/back")
		log.Println("  POST /v1/sessions/current/restart")
		log.Println("  GET  /v1/sessions/current/result")
		log.Println("  POST /v1/leads")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

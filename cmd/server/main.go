package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/huntlabs/treasurehunt/internal/auth"
	"github.com/huntlabs/treasurehunt/internal/common/clock"
	"github.com/huntlabs/treasurehunt/internal/common/uuid"
	"github.com/huntlabs/treasurehunt/internal/eventbus"
	"github.com/huntlabs/treasurehunt/internal/handlers/httpapi"
	clickRepo "github.com/huntlabs/treasurehunt/internal/repositories/clicklog"
	participantRepo "github.com/huntlabs/treasurehunt/internal/repositories/participant"
	roundRepo "github.com/huntlabs/treasurehunt/internal/repositories/round"
	"github.com/huntlabs/treasurehunt/internal/services/admission"
	"github.com/huntlabs/treasurehunt/internal/services/messaging"
	"github.com/huntlabs/treasurehunt/internal/services/rounds"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Load environment variables from .env file if it exists
	_ = godotenv.Load()

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	systemClock := &clock.DefaultClock{}

	// Initialize repositories
	pRepo, err := participantRepo.NewRedis(&participantRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create participant repository: %v", err)
	}

	rRepo, err := roundRepo.NewRedis(&roundRepo.Config{
		RedisClient: redisClient,
		Clock:       systemClock,
	})
	if err != nil {
		log.Fatalf("Failed to create round repository: %v", err)
	}

	cRepo, err := clickRepo.NewRedis(&clickRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create click log repository: %v", err)
	}

	bus := eventbus.New(&eventbus.Config{})

	// Initialize services
	admissionSvc, err := admission.New(&admission.Config{
		ParticipantRepo: pRepo,
		RoundRepo:       rRepo,
		ClickLogRepo:    cRepo,
		Clock:           systemClock,
		UUIDGenerator:   uuid.New(),
		EventBus:        bus,
	})
	if err != nil {
		log.Fatalf("Failed to create admission service: %v", err)
	}

	roundsSvc, err := rounds.New(&rounds.Config{
		RoundRepo: rRepo,
		Clock:     systemClock,
		EventBus:  bus,
	})
	if err != nil {
		log.Fatalf("Failed to create rounds service: %v", err)
	}

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{})
	if err != nil {
		log.Fatalf("Failed to create messaging service: %v", err)
	}

	// Initialize admin auth
	adminPassword := getEnv("ADMIN_PASSWORD", "")
	if adminPassword == "" {
		log.Fatal("ADMIN_PASSWORD environment variable is required")
	}

	jwtSecret := getEnv("JWT_SECRET", "")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable is required")
	}

	authenticator, err := auth.New(&auth.Config{
		Secret:        jwtSecret,
		AdminPassword: adminPassword,
		Clock:         systemClock,
	})
	if err != nil {
		log.Fatalf("Failed to create authenticator: %v", err)
	}

	// Initialize HTTP handler
	handler, err := httpapi.New(&httpapi.Config{
		AdmissionService: admissionSvc,
		RoundsService:    roundsSvc,
		MessagingService: messagingSvc,
		Authenticator:    authenticator,
		EventBus:         bus,
	})
	if err != nil {
		log.Fatalf("Failed to create HTTP handler: %v", err)
	}

	addr := ":" + getEnv("HTTP_PORT", "8080")
	server := &http.Server{
		Addr:    addr,
		Handler: handler.Router(),
	}

	go func() {
		log.Printf("Treasure hunt server listening on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error shutting down server: %v", err)
	}

	log.Println("Server has been shut down")
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

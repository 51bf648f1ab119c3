package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/arakitakashi/homework-coach-robo-sub000/internal/coach"
	"github.com/arakitakashi/homework-coach-robo-sub000/internal/config"
	"github.com/arakitakashi/homework-coach-robo-sub000/internal/repository"
	"github.com/arakitakashi/homework-coach-robo-sub000/internal/service"
	"github.com/arakitakashi/homework-coach-robo-sub000/internal/store"
	"github.com/arakitakashi/homework-coach-robo-sub000/internal/transport/rest"
	"github.com/arakitakashi/homework-coach-robo-sub000/internal/transport/ws"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg := config.Load()

	aiConfig := config.DefaultAIConfig()
	log.Printf("AI Config:")
	log.Printf("  Analysis: %s", aiConfig.Models.Analysis)
	log.Printf("  Coach:    %s", aiConfig.Models.Coach)
	log.Printf("  Detect:   %s", aiConfig.Models.Detect)
	if aiConfig.IsEnabled() {
		log.Println("  API Key:  configured")
	} else {
		log.Println("  API Key:  NOT SET (template fallbacks only)")
	}

	// MongoDB connection (transcript archive)
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDB)
	transcriptRepo := repository.NewTranscriptRepo(db)

	// Session store
	var sessionStore store.SessionStore
	switch cfg.StoreDriver {
	case "redis":
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer rdb.Close()
		if _, err := rdb.Ping(ctx).Result(); err != nil {
			log.Fatal("Failed to ping Redis:", err)
		}
		log.Println("Connected to Redis")
		sessionStore = store.NewRedisStore(rdb)
	default:
		log.Println("Using in-memory session store")
		sessionStore = store.NewMemoryStore()
	}

	// Generators
	var coachGen, analysisGen, detectGen service.TextGenerator
	if aiConfig.IsEnabled() {
		coachGen = service.NewGeminiGenerator(aiConfig, aiConfig.Models.Coach)
		analysisGen = service.NewGeminiGenerator(aiConfig, aiConfig.Models.Analysis)
		detectGen = service.NewGeminiGenerator(aiConfig, aiConfig.Models.Detect)
	}

	// WebSocket hub
	wsHub := ws.NewHub()
	log.Println("WebSocket hub started")

	// Services
	authSvc := service.NewAuthService(cfg.JWTSecret)
	dialogueSvc := service.NewDialogueService(coachGen, coach.NewPolicy(nil))
	if analysisGen != nil {
		dialogueSvc.SetAnalyzer(service.NewAnalyzerService(analysisGen))
	}
	if detectGen != nil {
		dialogueSvc.SetDetectGenerator(detectGen)
	}
	sessionSvc := service.NewSessionService(sessionStore, transcriptRepo, authSvc)
	exchangeSvc := service.NewExchangeService(sessionStore, dialogueSvc)

	// Inject notifier (wsHub implements service.Notifier)
	sessionSvc.SetNotifier(wsHub)
	exchangeSvc.SetNotifier(wsHub)

	container := &rest.Container{
		AuthService:     authSvc,
		SessionService:  sessionSvc,
		ExchangeService: exchangeSvc,
		TranscriptRepo:  transcriptRepo,
		WSHub:           wsHub,
	}

	router := rest.NewRouter(container)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.Port)
		log.Println("Endpoints:")
		log.Println("  POST   /v1/sessions")
		log.Println("  GET    /v1/sessions/{id}")
		log.Println("  DELETE /v1/sessions/{id}")
		log.Println("  POST   /v1/sessions/{id}/messages")
		log.Println("  GET    /v1/transcripts/{sessionId}")
		log.Println("  WS     /v1/ws/sessions/{id}")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

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

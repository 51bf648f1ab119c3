package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"github.com/arakitakashi/homework-coach-robo-sub000/internal/repository"
	"github.com/arakitakashi/homework-coach-robo-sub000/internal/service"
	"github.com/arakitakashi/homework-coach-robo-sub000/internal/transport/rest/handler"
	"github.com/arakitakashi/homework-coach-robo-sub000/internal/transport/rest/middleware"
	"github.com/arakitakashi/homework-coach-robo-sub000/internal/transport/ws"
)

// Container holds all dependencies for the router.
type Container struct {
	AuthService     *service.AuthService
	SessionService  *service.SessionService
	ExchangeService *service.ExchangeService
	TranscriptRepo  repository.TranscriptRepo
	WSHub           *ws.Hub
}

// NewRouter creates the API router with all endpoints.
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	sessionHandler := handler.NewSessionHandler(c.SessionService)
	messageHandler := handler.NewMessageHandler(c.ExchangeService)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService, c.ExchangeService)

	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/sessions", sessionHandler.Create).Methods("POST", "OPTIONS")

	// WebSocket route (token in query param)
	v1.HandleFunc("/ws/sessions/{id}", wsHandler.SessionWS).Methods("GET")

	// Session-scoped routes (require session token)
	sessionRoutes := v1.NewRoute().Subrouter()
	sessionRoutes.Use(authMW.RequireSession)

	sessionRoutes.HandleFunc("/sessions/{id}", sessionHandler.Get).Methods("GET", "OPTIONS")
	sessionRoutes.HandleFunc("/sessions/{id}", sessionHandler.Delete).Methods("DELETE", "OPTIONS")
	sessionRoutes.HandleFunc("/sessions/{id}/messages", messageHandler.Post).Methods("POST", "OPTIONS")

	// Transcript routes (archived sessions; available while the session
	// token is still valid)
	if c.TranscriptRepo != nil {
		transcriptHandler := handler.NewTranscriptHandler(c.TranscriptRepo)
		v1.HandleFunc("/transcripts", transcriptHandler.List).Methods("GET", "OPTIONS")
		v1.HandleFunc("/transcripts/{sessionId}", transcriptHandler.Get).Methods("GET", "OPTIONS")
	}

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

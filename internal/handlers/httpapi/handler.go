// Package httpapi exposes the game over REST and WebSocket. It is a thin
// transport: every decision lives in the services, and every response mirrors
// the JSON shapes the web clients already consume.
package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/huntlabs/treasurehunt/internal/auth"
	"github.com/huntlabs/treasurehunt/internal/eventbus"
	"github.com/huntlabs/treasurehunt/internal/services/admission"
	"github.com/huntlabs/treasurehunt/internal/services/messaging"
	"github.com/huntlabs/treasurehunt/internal/services/rounds"
)

// Config holds the configuration for the HTTP handler
type Config struct {
	// AdmissionService handles registration, qualification and admin actions
	AdmissionService admission.Service

	// RoundsService owns the round state machine
	RoundsService rounds.Service

	// MessagingService supplies participant-facing outcome text
	MessagingService messaging.Service

	// Authenticator guards the admin surface
	Authenticator *auth.Authenticator

	// EventBus feeds the WebSocket subscribers
	EventBus eventbus.Bus
}

// Handler serves the game's HTTP and WebSocket surface
type Handler struct {
	admissionService admission.Service
	roundsService    rounds.Service
	messagingService messaging.Service
	authenticator    *auth.Authenticator
	eventBus         eventbus.Bus
	upgrader         websocket.Upgrader
}

// New creates a new HTTP handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.AdmissionService == nil {
		return nil, errors.New("admission service cannot be nil")
	}
	if cfg.RoundsService == nil {
		return nil, errors.New("rounds service cannot be nil")
	}
	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}
	if cfg.Authenticator == nil {
		return nil, errors.New("authenticator cannot be nil")
	}
	if cfg.EventBus == nil {
		return nil, errors.New("event bus cannot be nil")
	}

	return &Handler{
		admissionService: cfg.AdmissionService,
		roundsService:    cfg.RoundsService,
		messagingService: cfg.MessagingService,
		authenticator:    cfg.Authenticator,
		eventBus:         cfg.EventBus,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Players connect from arbitrary event-site origins
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}, nil
}

// Router builds the full route table
func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(corsMiddleware)

	r.HandleFunc("/health", h.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/ws", h.handleWS)

	players := r.PathPrefix("/api/players").Subrouter()
	players.HandleFunc("/register", h.handleRegister).Methods(http.MethodPost, http.MethodOptions)
	players.HandleFunc("/submit-link", h.handleSubmitLink).Methods(http.MethodPost, http.MethodOptions)
	players.HandleFunc("/game-state", h.handleGameState).Methods(http.MethodGet)
	players.HandleFunc("/assignments/{playerId}/{page}", h.handleAssignments).Methods(http.MethodGet)
	players.HandleFunc("/track-link-click", h.handleTrackLinkClick).Methods(http.MethodPost, http.MethodOptions)
	players.HandleFunc("/link-clicks/{playerId}", h.handleLinkClicks).Methods(http.MethodGet)
	players.HandleFunc("/update-status", h.handleUpdateStatus).Methods(http.MethodPost, http.MethodOptions)
	players.HandleFunc("/admin/login", h.handleAdminLogin).Methods(http.MethodPost, http.MethodOptions)

	r.HandleFunc("/api/validate-link", h.handleValidateLink).Methods(http.MethodPost, http.MethodOptions)

	admin := r.PathPrefix("/api/players/admin").Subrouter()
	admin.Use(h.authenticator.Middleware)
	admin.HandleFunc("/players", h.handleAdminPlayers).Methods(http.MethodGet)
	admin.HandleFunc("/set-round", h.handleSetRound).Methods(http.MethodPost, http.MethodOptions)
	admin.HandleFunc("/reset", h.handleReset).Methods(http.MethodPost, http.MethodOptions)
	admin.HandleFunc("/disqualify", h.handleDisqualify).Methods(http.MethodPost, http.MethodOptions)

	return r
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// corsMiddleware opens the API to the separately-hosted web frontends
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// writeJSON writes v as the response body with the given status
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

// writeError writes the standard failure envelope
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]interface{}{
		"success": false,
		"message": message,
	})
}

// outcomeMessage fetches participant-facing text, falling back to a fixed
// string if the messaging service misbehaves
func (h *Handler) outcomeMessage(r *http.Request, outcome messaging.Outcome) string {
	output, err := h.messagingService.GetOutcomeMessage(r.Context(), &messaging.GetOutcomeMessageInput{
		Outcome: outcome,
	})
	if err != nil {
		return "Request processed."
	}
	return output.Message
}

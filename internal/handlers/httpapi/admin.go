package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/huntlabs/treasurehunt/internal/auth"
	"github.com/huntlabs/treasurehunt/internal/models"
	"github.com/huntlabs/treasurehunt/internal/services/admission"
	"github.com/huntlabs/treasurehunt/internal/services/rounds"
)

type adminLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) handleAdminLogin(w http.ResponseWriter, r *http.Request) {
	var req adminLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, err := h.authenticator.IssueToken(req.Password)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Login successful",
		"token":   token,
	})
}

func (h *Handler) handleAdminPlayers(w http.ResponseWriter, r *http.Request) {
	output, err := h.admissionService.ListParticipants(r.Context(), &admission.ListParticipantsInput{})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":      true,
		"players":      output.Participants,
		"stats":        output.Stats,
		"gameSettings": output.Settings,
	})
}

type setRoundRequest struct {
	RoundNumber int `json:"roundNumber"`
}

func (h *Handler) handleSetRound(w http.ResponseWriter, r *http.Request) {
	var req setRoundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	output, err := h.roundsService.SetActiveRound(r.Context(), &rounds.SetActiveRoundInput{
		Round: models.Round(req.RoundNumber),
	})
	if err != nil {
		if errors.Is(err, rounds.ErrInvalidRound) {
			writeError(w, http.StatusBadRequest, "Round number must be between 0 and 3")
			return
		}
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	message := fmt.Sprintf("Round %d is now active", req.RoundNumber)
	if req.RoundNumber == 0 {
		message = "Round disabled is now active"
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":      true,
		"message":      message,
		"gameSettings": output.Settings,
	})
}

func (h *Handler) handleReset(w http.ResponseWriter, r *http.Request) {
	_, err := h.admissionService.ResetGame(r.Context(), &admission.ResetGameInput{})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Game reset successfully. All players removed.",
	})
}

type disqualifyRequest struct {
	PlayerID string `json:"playerId"`
}

func (h *Handler) handleDisqualify(w http.ResponseWriter, r *http.Request) {
	var req disqualifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.PlayerID == "" {
		writeError(w, http.StatusBadRequest, "Player ID is required")
		return
	}

	output, err := h.admissionService.Disqualify(r.Context(), &admission.DisqualifyInput{
		ParticipantID: req.PlayerID,
	})
	if err != nil {
		if errors.Is(err, admission.ErrParticipantNotFound) {
			writeError(w, http.StatusNotFound, "Player not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Player disqualified",
		"player":  output.Participant,
	})
}

// adminTokenValid reports whether the request carries a valid admin token.
// Used by the WebSocket endpoint, which cannot go through the middleware.
func (h *Handler) adminTokenValid(r *http.Request) bool {
	token := auth.TokenFromRequest(r)
	if token == "" {
		return false
	}
	return h.authenticator.VerifyToken(token) == nil
}

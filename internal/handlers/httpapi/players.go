package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/huntlabs/treasurehunt/internal/assignment"
	"github.com/huntlabs/treasurehunt/internal/models"
	"github.com/huntlabs/treasurehunt/internal/services/admission"
	"github.com/huntlabs/treasurehunt/internal/services/messaging"
	"github.com/huntlabs/treasurehunt/internal/services/rounds"
)

type registerRequest struct {
	PlayerID string `json:"playerId"`
	Username string `json:"username"`
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.PlayerID == "" || req.Username == "" {
		writeError(w, http.StatusBadRequest, "Player ID and username are required")
		return
	}

	output, err := h.admissionService.Register(r.Context(), &admission.RegisterInput{
		ParticipantID: req.PlayerID,
		DisplayName:   req.Username,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	status := http.StatusCreated
	message := "Player registered successfully"
	if output.AlreadyRegistered {
		status = http.StatusOK
		message = "Player already registered"
	}

	writeJSON(w, status, map[string]interface{}{
		"success": true,
		"message": message,
		"player":  output.Participant,
	})
}

type submitLinkRequest struct {
	PlayerID    string `json:"playerId"`
	Username    string `json:"username"`
	ClickedLink string `json:"clickedLink"`
	TimeTaken   int64  `json:"timeTaken"`
}

func (h *Handler) handleSubmitLink(w http.ResponseWriter, r *http.Request) {
	var req submitLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.PlayerID == "" || req.ClickedLink == "" {
		writeError(w, http.StatusBadRequest, "Player ID and link are required")
		return
	}

	output, err := h.admissionService.AttemptQualify(r.Context(), &admission.AttemptQualifyInput{
		ParticipantID:      req.PlayerID,
		DisplayName:        req.Username,
		ClaimedDestination: req.ClickedLink,
		ElapsedMs:          req.TimeTaken,
	})
	if err != nil {
		switch {
		case errors.Is(err, admission.ErrRoundNotActive):
			writeError(w, http.StatusForbidden, h.outcomeMessage(r, messaging.OutcomeRoundInactive))
		case errors.Is(err, admission.ErrParticipantNotFound):
			writeError(w, http.StatusNotFound, "Player not found. Please register first.")
		case errors.Is(err, admission.ErrParticipantDisqualified):
			writeError(w, http.StatusForbidden, "You have been disqualified from the game.")
		case errors.Is(err, admission.ErrInvalidDestination):
			writeJSON(w, http.StatusBadRequest, map[string]interface{}{
				"success":      false,
				"message":      h.outcomeMessage(r, messaging.OutcomeInvalidLink),
				"receivedLink": assignment.NormalizeDestination(req.ClickedLink),
			})
		default:
			writeError(w, http.StatusInternalServerError, "Server error. Please try again later.")
		}
		return
	}

	outcome := messaging.OutcomeQualified
	if output.AlreadyQualified {
		outcome = messaging.OutcomeAlreadyQualified
	}
	if !output.Qualified {
		outcome = messaging.OutcomeQuotaFull
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"message":   h.outcomeMessage(r, outcome),
		"qualified": output.Qualified,
		"player":    output.Participant,
	})
}

func (h *Handler) handleGameState(w http.ResponseWriter, r *http.Request) {
	output, err := h.roundsService.GetRoundState(r.Context(), &rounds.GetRoundStateInput{})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":      true,
		"gameSettings": output.Settings,
	})
}

func (h *Handler) handleAssignments(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	output, err := h.admissionService.GetAssignmentsForPage(r.Context(), &admission.GetAssignmentsForPageInput{
		ParticipantID: vars["playerId"],
		Page:          vars["page"],
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, "Player ID is required")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"links":   output.Assignments,
	})
}

type trackLinkClickRequest struct {
	PlayerID  string `json:"playerId"`
	LinkID    string `json:"linkId"`
	IsCorrect bool   `json:"isCorrect"`
}

func (h *Handler) handleTrackLinkClick(w http.ResponseWriter, r *http.Request) {
	var req trackLinkClickRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.LinkID == "" || req.PlayerID == "" {
		writeError(w, http.StatusBadRequest, "Link ID and player ID are required")
		return
	}

	_, err := h.admissionService.RecordClick(r.Context(), &admission.RecordClickInput{
		ParticipantID: req.PlayerID,
		LinkID:        req.LinkID,
		WasGenuine:    req.IsCorrect,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "Link click tracked successfully",
	})
}

func (h *Handler) handleLinkClicks(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	output, err := h.admissionService.GetClicksForParticipant(r.Context(), &admission.GetClicksForParticipantInput{
		ParticipantID: vars["playerId"],
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"clicks":  output.Records,
	})
}

type updateStatusRequest struct {
	PlayerID string `json:"playerId"`
	Username string `json:"username"`
	Status   string `json:"status"`
}

func (h *Handler) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.PlayerID == "" {
		writeError(w, http.StatusBadRequest, "Player ID is required")
		return
	}

	output, err := h.admissionService.SetParticipantStatus(r.Context(), &admission.SetParticipantStatusInput{
		ParticipantID: req.PlayerID,
		DisplayName:   req.Username,
		Status:        models.ParticipantStatus(req.Status),
	})
	if err != nil {
		switch {
		case errors.Is(err, admission.ErrInvalidStatus):
			writeError(w, http.StatusBadRequest, "Invalid status value")
		case errors.Is(err, admission.ErrParticipantNotFound):
			writeError(w, http.StatusNotFound, "Player not found")
		default:
			writeError(w, http.StatusInternalServerError, "Server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Player status updated",
		"player":  output.Participant,
	})
}

type validateLinkRequest struct {
	Link string `json:"link"`
}

// handleValidateLink checks a link against the round-two token list without
// touching participant state. The returned token is the part after the dash,
// which the round-two page uses as its access key.
func (h *Handler) handleValidateLink(w http.ResponseWriter, r *http.Request) {
	var req validateLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	for _, candidate := range assignment.RoundTwoTokens() {
		if candidate == req.Link {
			_, token, _ := strings.Cut(req.Link, "-")
			writeJSON(w, http.StatusOK, map[string]interface{}{
				"success": true,
				"token":   token,
			})
			return
		}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": false,
	})
}

// backend/src/handlers/session_handler.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/username/finsight/backend/src/logger"
	"github.com/username/finsight/backend/src/models"
	"github.com/username/finsight/backend/src/security/validation"
	"github.com/username/finsight/backend/src/services"
	"github.com/username/finsight/backend/src/utils"
)

type SessionHandler struct {
	analysisService services.AnalysisService
}

func NewSessionHandler(service services.AnalysisService) *SessionHandler {
	return &SessionHandler{
		analysisService: service,
	}
}

// HandleCreateSession starts an analysis session with the submitted profile.
func (h *SessionHandler) HandleCreateSession(w http.ResponseWriter, r *http.Request) {
	ctxLogger := logger.FromContext(r.Context())

	profile, err := decodeProfile(r)
	if err != nil {
		ctxLogger.Warn("Invalid profile payload on session create", "error", err)
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	sessionID := h.analysisService.CreateSession(profile)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{"sessionId": sessionID})
}

// HandleUpdateProfile replaces the session profile and invalidates cached
// analytics.
func (h *SessionHandler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctxLogger := logger.FromContext(r.Context())
	sessionID := chi.URLParam(r, "id")

	profile, err := decodeProfile(r)
	if err != nil {
		ctxLogger.Warn("Invalid profile payload on update", "sessionID", sessionID, "error", err)
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.analysisService.UpdateProfile(sessionID, profile); err != nil {
		if errors.Is(err, services.ErrSessionNotFound) {
			utils.SendJSONError(w, "session not found", http.StatusNotFound)
			return
		}
		ctxLogger.Error("Profile update failed", "sessionID", sessionID, "error", err)
		utils.SendJSONError(w, "failed to update profile", http.StatusInternalServerError)
		return
	}

	utils.SendJSON(w, map[string]string{"status": "updated"})
}

func decodeProfile(r *http.Request) (models.UserProfile, error) {
	var profile models.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		return models.UserProfile{}, errors.New("invalid JSON body")
	}
	profile.Name = validation.SanitizeText(profile.Name)
	if profile.MonthlyIncome < 0 || profile.MonthlyDebt < 0 || profile.CurrentSavings < 0 {
		return models.UserProfile{}, errors.New("income, debt and savings must not be negative")
	}
	if profile.Age < 0 || profile.Age > 130 {
		return models.UserProfile{}, errors.New("age out of range")
	}
	return profile, nil
}

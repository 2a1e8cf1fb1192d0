// backend/src/handlers/analytics_handler.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/username/finsight/backend/src/logger"
	"github.com/username/finsight/backend/src/services"
	"github.com/username/finsight/backend/src/utils"
)

type AnalyticsHandler struct {
	analysisService services.AnalysisService
}

func NewAnalyticsHandler(service services.AnalysisService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analysisService: service,
	}
}

// HandleGetAnalytics serves the full snapshot for the session, scoped by the
// optional ?period= query parameter (a month label or "all").
func (h *AnalyticsHandler) HandleGetAnalytics(w http.ResponseWriter, r *http.Request) {
	ctxLogger := logger.FromContext(r.Context())
	sessionID := chi.URLParam(r, "id")
	period := r.URL.Query().Get("period")

	snapshot, err := h.analysisService.Snapshot(sessionID, period)
	if err != nil {
		if errors.Is(err, services.ErrSessionNotFound) {
			utils.SendJSONError(w, "session not found", http.StatusNotFound)
			return
		}
		ctxLogger.Error("Snapshot computation failed", "sessionID", sessionID, "period", period, "error", err)
		utils.SendJSONError(w, "failed to compute analytics", http.StatusInternalServerError)
		return
	}

	utils.SendJSON(w, snapshot)
}

// HandleGetMonths serves the distinct month labels of the session's history,
// in chronological order, for the period picker.
func (h *AnalyticsHandler) HandleGetMonths(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")

	months, err := h.analysisService.Months(sessionID)
	if err != nil {
		if errors.Is(err, services.ErrSessionNotFound) {
			utils.SendJSONError(w, "session not found", http.StatusNotFound)
			return
		}
		utils.SendJSONError(w, "failed to list months", http.StatusInternalServerError)
		return
	}
	if months == nil {
		months = []string{}
	}

	utils.SendJSON(w, map[string][]string{"months": months})
}

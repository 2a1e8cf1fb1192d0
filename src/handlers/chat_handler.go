// backend/src/handlers/chat_handler.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/username/finsight/backend/src/logger"
	"github.com/username/finsight/backend/src/security/validation"
	"github.com/username/finsight/backend/src/services"
	"github.com/username/finsight/backend/src/utils"
)

// maxChatHistoryTurns bounds how much prior conversation is replayed to the
// model on each turn.
const maxChatHistoryTurns = 20

type ChatHandler struct {
	assistantService services.AssistantService
}

func NewChatHandler(service services.AssistantService) *ChatHandler {
	return &ChatHandler{
		assistantService: service,
	}
}

type chatRequest struct {
	Message string                 `json:"message"`
	History []services.ChatMessage `json:"history"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

// HandleChat answers one assistant turn grounded in the session's analytics.
func (h *ChatHandler) HandleChat(w http.ResponseWriter, r *http.Request) {
	ctxLogger := logger.FromContext(r.Context())
	sessionID := chi.URLParam(r, "id")

	if h.assistantService == nil {
		utils.SendJSONError(w, "assistant is not configured", http.StatusServiceUnavailable)
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.SendJSONError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	message := strings.TrimSpace(validation.SanitizeText(req.Message))
	if message == "" {
		utils.SendJSONError(w, "message is required", http.StatusBadRequest)
		return
	}
	history := req.History
	if len(history) > maxChatHistoryTurns {
		history = history[len(history)-maxChatHistoryTurns:]
	}

	reply, err := h.assistantService.Chat(r.Context(), sessionID, history, message)
	if err != nil {
		if errors.Is(err, services.ErrSessionNotFound) {
			utils.SendJSONError(w, "session not found", http.StatusNotFound)
			return
		}
		ctxLogger.Error("Assistant request failed", "sessionID", sessionID, "error", err)
		utils.SendJSONError(w, "assistant request failed", http.StatusBadGateway)
		return
	}

	utils.SendJSON(w, chatResponse{Reply: reply})
}

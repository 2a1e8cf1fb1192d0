// backend/src/services/interfaces.go
package services

import (
	"context"
	"errors"
	"io"

	"github.com/username/finsight/backend/src/models"
)

// Define common service errors
var (
	ErrExtractionFailed = errors.New("statement extraction failed")
	ErrSessionNotFound  = errors.New("session not found")
	ErrAssistantFailed  = errors.New("assistant request failed")
)

// StatementFile is one uploaded statement handed to the pipeline.
type StatementFile struct {
	Filename string
	Kind     string // "pdf" or "csv"
	Reader   io.ReaderAt
	Size     int64
}

// Extractor turns raw statement text into transaction records via the model
// call. Fallible by contract; the analysis pipeline falls back to sample data.
type Extractor interface {
	ExtractTransactions(ctx context.Context, statementText string, profile models.UserProfile) ([]models.RawRecord, error)
}

// AnalysisService owns sessions and orchestrates the
// extract -> normalize -> snapshot pipeline.
type AnalysisService interface {
	CreateSession(profile models.UserProfile) string
	UpdateProfile(sessionID string, profile models.UserProfile) error
	Profile(sessionID string) (models.UserProfile, error)
	ProcessStatements(ctx context.Context, sessionID string, files []StatementFile) (*models.AnalysisResult, error)
	Snapshot(sessionID string, period string) (*models.AnalyticsSnapshot, error)
	Months(sessionID string) ([]string, error)
}

// AssistantService answers conversational questions grounded in the current
// analytics snapshot.
type AssistantService interface {
	Chat(ctx context.Context, sessionID string, history []ChatMessage, message string) (string, error)
}

// ChatMessage is one prior turn of the assistant conversation.
type ChatMessage struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

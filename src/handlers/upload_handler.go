// backend/src/handlers/upload_handler.go
package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/username/finsight/backend/src/config"
	"github.com/username/finsight/backend/src/logger"
	"github.com/username/finsight/backend/src/models"
	"github.com/username/finsight/backend/src/security/validation"
	"github.com/username/finsight/backend/src/services"
	"github.com/username/finsight/backend/src/utils"
)

type UploadHandler struct {
	analysisService services.AnalysisService
}

func NewUploadHandler(service services.AnalysisService) *UploadHandler {
	return &UploadHandler{
		analysisService: service,
	}
}

// uploadResponse summarizes an import without echoing every transaction back.
type uploadResponse struct {
	TransactionCount int               `json:"transactionCount"`
	DataSource       models.DataSource `json:"dataSource"`
	Months           []string          `json:"months"`
}

// HandleUploadStatements accepts one or more statement files under the
// multipart field "statements", validates each by content, and runs the
// extraction pipeline for the session.
func (h *UploadHandler) HandleUploadStatements(w http.ResponseWriter, r *http.Request) {
	ctxLogger := logger.FromContext(r.Context())
	sessionID := chi.URLParam(r, "id")

	if err := r.ParseMultipartForm(config.Cfg.MaxUploadSizeBytes); err != nil {
		ctxLogger.Warn("Failed to parse multipart form or request too large", "sessionID", sessionID, "error", err, "limit", config.Cfg.MaxUploadSizeBytes)
		utils.SendJSONError(w, fmt.Sprintf("failed to parse upload or files too large (max %d MB total)", config.Cfg.MaxUploadSizeBytes/(1024*1024)), http.StatusBadRequest)
		return
	}

	fileHeaders := r.MultipartForm.File["statements"]
	if len(fileHeaders) == 0 {
		utils.SendJSONError(w, "no statement files provided; use the 'statements' field", http.StatusBadRequest)
		return
	}
	if len(fileHeaders) > config.Cfg.MaxFilesPerUpload {
		utils.SendJSONError(w, fmt.Sprintf("too many files, max %d per upload", config.Cfg.MaxFilesPerUpload), http.StatusBadRequest)
		return
	}

	var files []services.StatementFile
	for _, fh := range fileHeaders {
		if fh.Size > config.Cfg.MaxUploadSizeBytes {
			utils.SendJSONError(w, fmt.Sprintf("file %s too large, max %d MB", fh.Filename, config.Cfg.MaxUploadSizeBytes/(1024*1024)), http.StatusBadRequest)
			return
		}
		if err := validation.ValidateClientContentType(fh.Header.Get("Content-Type")); err != nil {
			ctxLogger.Warn("Invalid client-declared file type", "sessionID", sessionID, "filename", fh.Filename, "error", err)
			utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}

		file, err := fh.Open()
		if err != nil {
			ctxLogger.Error("Failed to open uploaded file", "sessionID", sessionID, "filename", fh.Filename, "error", err)
			utils.SendJSONError(w, "failed to read uploaded file", http.StatusInternalServerError)
			return
		}

		kind, err := validation.DetectStatementKind(file)
		if err != nil {
			file.Close()
			ctxLogger.Warn("File content validation failed", "sessionID", sessionID, "filename", fh.Filename, "error", err)
			utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}

		// Buffer the file so the pipeline gets random access after the
		// multipart form is cleaned up.
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			ctxLogger.Error("Failed to buffer uploaded file", "sessionID", sessionID, "filename", fh.Filename, "error", err)
			utils.SendJSONError(w, "failed to read uploaded file", http.StatusInternalServerError)
			return
		}

		ctxLogger.Info("Statement file validated", "sessionID", sessionID, "filename", fh.Filename, "kind", kind, "size", fh.Size)
		files = append(files, services.StatementFile{
			Filename: fh.Filename,
			Kind:     string(kind),
			Reader:   bytes.NewReader(data),
			Size:     int64(len(data)),
		})
	}

	ctx, cancel := context.WithTimeout(r.Context(), config.Cfg.ExtractionTimeout)
	defer cancel()

	result, err := h.analysisService.ProcessStatements(ctx, sessionID, files)
	if err != nil {
		if errors.Is(err, services.ErrSessionNotFound) {
			utils.SendJSONError(w, "session not found", http.StatusNotFound)
			return
		}
		ctxLogger.Error("Statement processing failed", "sessionID", sessionID, "error", err)
		utils.SendJSONError(w, "statement processing failed", http.StatusInternalServerError)
		return
	}

	months, _ := h.analysisService.Months(sessionID)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(uploadResponse{
		TransactionCount: len(result.Transactions),
		DataSource:       result.DataSource,
		Months:           months,
	}); err != nil {
		ctxLogger.Error("Error encoding upload response", "sessionID", sessionID, "error", err)
	}
}

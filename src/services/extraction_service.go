// backend/src/services/extraction_service.go
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/username/finsight/backend/src/config"
	"github.com/username/finsight/backend/src/logger"
	"github.com/username/finsight/backend/src/models"
)

type extractionServiceImpl struct {
	client anthropic.Client
	model  string
}

// NewExtractionService builds the model-backed statement extractor.
func NewExtractionService(apiKey, model string) Extractor {
	return &extractionServiceImpl{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
	}
}

// extractionResponse is the JSON envelope the model is instructed to return.
type extractionResponse struct {
	Transactions []models.RawRecord `json:"transactions"`
}

func (s *extractionServiceImpl) ExtractTransactions(ctx context.Context, statementText string, profile models.UserProfile) ([]models.RawRecord, error) {
	if max := config.Cfg.ExtractionMaxChars; len(statementText) > max {
		statementText = statementText[:max]
	}

	resp, err := s.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(s.model),
		MaxTokens: 4096,
		System: []anthropic.TextBlockParam{
			{Text: buildExtractionPrompt(profile)},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(statementText)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}

	var text strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}

	payload := stripCodeFences(text.String())
	var parsed extractionResponse
	if err := json.Unmarshal([]byte(payload), &parsed); err != nil {
		logger.L.Warn("extraction response was not valid JSON", "error", err, "responseLength", len(payload))
		return nil, fmt.Errorf("%w: unparseable model response", ErrExtractionFailed)
	}
	if len(parsed.Transactions) == 0 {
		return nil, fmt.Errorf("%w: no transactions found", ErrExtractionFailed)
	}
	return parsed.Transactions, nil
}

func buildExtractionPrompt(profile models.UserProfile) string {
	var b strings.Builder
	b.WriteString("You are a bank statement parser. Extract every transaction from the statement text the user provides.\n\n")
	b.WriteString("Respond with ONLY a JSON object of the form {\"transactions\": [...]}, no prose, no markdown fences.\n")
	b.WriteString("Each transaction object has these fields:\n")
	b.WriteString("  date: \"YYYY-MM-DD\" (or \"Unknown\" if the statement does not say)\n")
	b.WriteString("  description: the raw description line\n")
	b.WriteString("  amount: positive number for money spent, negative for money received\n")
	b.WriteString("  merchant: the merchant name if identifiable\n")
	b.WriteString("  time: \"HH:MM\" if the statement includes one\n")
	b.WriteString("  category: exactly one of: ")
	labels := make([]string, len(models.AllCategories))
	for i, c := range models.AllCategories {
		labels[i] = string(c)
	}
	b.WriteString(strings.Join(labels, ", "))
	b.WriteString("\n")
	for _, info := range models.Countries {
		if info.Code == profile.Country {
			fmt.Fprintf(&b, "\nThe statement is from %s; amounts are in %s.\n", info.Name, info.Currency)
			break
		}
	}
	return b.String()
}

// stripCodeFences removes a ```json ... ``` wrapper when the model insists on
// adding one despite instructions.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// backend/src/services/assistant_service.go
package services

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/username/finsight/backend/src/models"
)

// contextMaxChars bounds the analytics context block injected into the system
// prompt so a pathological session cannot blow up the request.
const contextMaxChars = 4000

type assistantServiceImpl struct {
	client    anthropic.Client
	model     string
	maxTokens int64
	analysis  AnalysisService
}

// NewAssistantService builds the conversational advisor backed by the
// session's current analytics snapshot.
func NewAssistantService(apiKey, model string, maxTokens int64, analysis AnalysisService) AssistantService {
	return &assistantServiceImpl{
		client:    anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:     model,
		maxTokens: maxTokens,
		analysis:  analysis,
	}
}

func (s *assistantServiceImpl) Chat(ctx context.Context, sessionID string, history []ChatMessage, message string) (string, error) {
	snap, err := s.analysis.Snapshot(sessionID, "")
	if err != nil {
		return "", err
	}
	profile, err := s.analysis.Profile(sessionID)
	if err != nil {
		return "", err
	}

	system := "You are a friendly personal finance advisor. Answer briefly and concretely, " +
		"grounded only in the user's data below. Use the user's currency symbol in amounts.\n\n" +
		BuildContext(snap, profile)

	messages := make([]anthropic.MessageParam, 0, len(history)+1)
	for _, turn := range history {
		block := anthropic.NewTextBlock(turn.Content)
		if turn.Role == "assistant" {
			messages = append(messages, anthropic.NewAssistantMessage(block))
		} else {
			messages = append(messages, anthropic.NewUserMessage(block))
		}
	}
	messages = append(messages, anthropic.NewUserMessage(anthropic.NewTextBlock(message)))

	resp, err := s.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(s.model),
		MaxTokens: s.maxTokens,
		System:    []anthropic.TextBlockParam{{Text: system}},
		Messages:  messages,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAssistantFailed, err)
	}

	var text strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	if text.Len() == 0 {
		return "", fmt.Errorf("%w: empty model response", ErrAssistantFailed)
	}
	return text.String(), nil
}

// BuildContext renders the snapshot and profile as the bounded text block the
// assistant is grounded in: profile facts, top-line metrics, the top three
// savings opportunities, and every active alert.
func BuildContext(snap *models.AnalyticsSnapshot, profile models.UserProfile) string {
	sym := profile.CurrencySymbol()
	var b strings.Builder

	b.WriteString("USER PROFILE\n")
	if profile.Name != "" {
		fmt.Fprintf(&b, "- Name: %s\n", profile.Name)
	}
	if profile.Age > 0 {
		fmt.Fprintf(&b, "- Age: %d\n", profile.Age)
	}
	fmt.Fprintf(&b, "- Monthly income: %s%.2f\n", sym, profile.MonthlyIncome)
	fmt.Fprintf(&b, "- Monthly debt payments: %s%.2f\n", sym, profile.MonthlyDebt)
	fmt.Fprintf(&b, "- Current savings: %s%.2f\n", sym, profile.CurrentSavings)
	if profile.SavingsGoal > 0 {
		fmt.Fprintf(&b, "- Savings goal: %s%.2f\n", sym, profile.SavingsGoal)
	}

	b.WriteString("\nCURRENT ANALYTICS\n")
	fmt.Fprintf(&b, "- Total spent (%s): %s%.2f over %d month(s)\n", snap.Period, sym, snap.TotalSpent, snap.MonthCount)
	fmt.Fprintf(&b, "- Average monthly spend: %s%.2f\n", sym, snap.AverageMonthlySpend)
	fmt.Fprintf(&b, "- Savings rate: %.0f%% (%s)\n", snap.SavingsRate.Rate, snap.SavingsRate.Status)
	fmt.Fprintf(&b, "- Emergency fund: %.1f months (%s)\n", snap.EmergencyFund.Months, snap.EmergencyFund.Status)
	fmt.Fprintf(&b, "- Financial health score: %d/100 (%s)\n", snap.Health.Score, snap.Health.Band)
	fmt.Fprintf(&b, "- Predicted next month: %s%.2f (%s, %s confidence)\n",
		sym, snap.Prediction.Predicted, snap.Prediction.TrendLabel, snap.Prediction.Confidence)

	if len(snap.Opportunities) > 0 {
		b.WriteString("\nTOP SAVINGS OPPORTUNITIES\n")
		for i, op := range snap.Opportunities {
			if i == 3 {
				break
			}
			fmt.Fprintf(&b, "- %s: spending %s%.2f/month, could save %s%.2f (%s)\n",
				op.Label, sym, op.MonthlySpend, sym, op.Savings, op.Suggestion)
		}
	}

	if len(snap.Alerts) > 0 {
		b.WriteString("\nACTIVE ALERTS\n")
		for _, alert := range snap.Alerts {
			fmt.Fprintf(&b, "- [%s] %s\n", alert.Severity, alert.Message)
		}
	}

	out := b.String()
	if len(out) > contextMaxChars {
		// Back up to a rune boundary so a currency symbol is never cut in half.
		cut := contextMaxChars
		for cut > 0 && !utf8.RuneStart(out[cut]) {
			cut--
		}
		out = out[:cut]
	}
	return out
}

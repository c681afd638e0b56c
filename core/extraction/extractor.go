// Package extraction turns conversation text into structured quote data.
//
// The Extractor is stateless: it re-derives QuoteInformation from the full
// transcript on every call. Combining the result with earlier state is the
// caller's job, through Merge.
package extraction

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"paint-quote/core/completion"
	"paint-quote/core/confidence"
	"paint-quote/core/types"
	"paint-quote/internal/logging"
)

// Result is a sanitized extraction plus its completeness score
type Result struct {
	Info       types.QuoteInformation `json:"info"`
	Confidence int                    `json:"confidence"`
	IsComplete bool                   `json:"isComplete"`
	Missing    []string               `json:"missing,omitempty"`
}

// Extractor drives oracle-backed extraction
type Extractor struct {
	oracle    completion.Completer
	maxTokens int
	log       *zap.Logger
}

// New creates an Extractor
func New(oracle completion.Completer) *Extractor {
	return &Extractor{
		oracle:    oracle,
		maxTokens: 800,
		log:       logging.Named("extraction"),
	}
}

// Extract asks the oracle for JSON describing the conversation. Malformed
// output yields an all-empty record rather than an error.
func (e *Extractor) Extract(ctx context.Context, conversationText string) Result {
	if strings.TrimSpace(conversationText) == "" {
		return scored(types.NewQuoteInformation())
	}

	messages := []completion.Message{
		{Role: completion.RoleSystem, Content: instructionPrompt},
		{Role: completion.RoleUser, Content: "Conversation:\n" + conversationText},
	}
	text := e.oracle.Complete(ctx, messages, completion.Options{JSON: true, MaxTokens: e.maxTokens})

	raw, err := decode(text)
	if err != nil {
		e.log.Warn("discarding malformed extraction", zap.Error(err), zap.Int("length", len(text)))
		return scored(types.NewQuoteInformation())
	}
	return scored(sanitize(raw))
}

// ParseQuoteInformation sanitizes raw oracle text without calling the oracle
func ParseQuoteInformation(text string) Result {
	raw, err := decode(text)
	if err != nil {
		return scored(types.NewQuoteInformation())
	}
	return scored(sanitize(raw))
}

func scored(info types.QuoteInformation) Result {
	s := confidence.Score(info)
	return Result{
		Info:       info,
		Confidence: s.Confidence,
		IsComplete: s.IsComplete,
		Missing:    s.Missing(),
	}
}

// TranscriptText renders turns as the "Role: content" block the extractor reads
func TranscriptText(turns []types.ConversationTurn) string {
	var sb strings.Builder
	for _, t := range turns {
		content := strings.TrimSpace(t.Content)
		if content == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		switch t.Role {
		case types.RoleAssistant:
			sb.WriteString("Assistant: ")
		default:
			sb.WriteString("User: ")
		}
		sb.WriteString(content)
	}
	return sb.String()
}

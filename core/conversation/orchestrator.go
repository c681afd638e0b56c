// Package conversation runs one quote conversation turn end to end:
// assistant reply, extraction, merge and stage classification.
package conversation

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"paint-quote/core/completion"
	"paint-quote/core/confidence"
	"paint-quote/core/extraction"
	"paint-quote/core/stage"
	"paint-quote/core/types"
	"paint-quote/internal/errors"
	"paint-quote/internal/logging"
)

// Context is the caller-owned state of one conversation
type Context struct {
	CompanyID       string
	CompanyName     string
	RateCard        *types.RateCard
	ProjectType     types.ProjectType
	PreferredPaints []string

	// Info is the quote data merged so far
	Info types.QuoteInformation

	// Stage is the stage reached after the previous turn
	Stage types.Stage
}

// TurnResult is the outcome of one ProcessTurn call
type TurnResult struct {
	Reply      string                   `json:"reply"`
	Stage      types.Stage              `json:"stage"`
	MergedInfo types.QuoteInformation   `json:"mergedInfo"`
	Confidence int                      `json:"confidence"`
	IsComplete bool                     `json:"isComplete"`
	Missing    []string                 `json:"missing,omitempty"`
	Transcript []types.ConversationTurn `json:"transcript"`
}

// Orchestrator holds no per-conversation state and is safe for
// concurrent use across conversations
type Orchestrator struct {
	oracle    completion.Completer
	extractor *extraction.Extractor
	maxTokens int
	log       *zap.Logger
}

// New creates an Orchestrator that uses oracle for both replies and extraction
func New(oracle completion.Completer) *Orchestrator {
	return &Orchestrator{
		oracle:    oracle,
		extractor: extraction.New(oracle),
		maxTokens: 500,
		log:       logging.Named("conversation"),
	}
}

// ProcessTurn handles one inbound user message. history is the transcript
// before this message and is not modified. Oracle failures degrade to the
// mock reply; the only error is an empty message with no history.
func (o *Orchestrator) ProcessTurn(ctx context.Context, userMessage string, c Context, history []types.ConversationTurn) (*TurnResult, error) {
	userMessage = strings.TrimSpace(userMessage)
	if userMessage == "" && len(history) == 0 {
		return nil, errors.CallerContract("user message is empty and there is no history")
	}

	messages := make([]completion.Message, 0, len(history)+2)
	messages = append(messages, completion.Message{Role: completion.RoleSystem, Content: systemPrompt(c)})
	for _, t := range history {
		messages = append(messages, completion.Message{Role: roleOf(t.Role), Content: t.Content})
	}
	if userMessage != "" {
		messages = append(messages, completion.Message{Role: completion.RoleUser, Content: userMessage})
	}
	reply := strings.TrimSpace(o.oracle.Complete(ctx, messages, completion.Options{MaxTokens: o.maxTokens}))

	transcript := make([]types.ConversationTurn, 0, len(history)+2)
	transcript = append(transcript, history...)
	if userMessage != "" {
		transcript = append(transcript, types.ConversationTurn{Role: types.RoleUser, Content: userMessage})
	}
	transcript = append(transcript, types.ConversationTurn{Role: types.RoleAssistant, Content: reply})

	extracted := o.extractor.Extract(ctx, extraction.TranscriptText(transcript))
	merged := extraction.Merge(c.Info, extracted.Info)
	// The caller's project type stands in until the customer states one.
	if !merged.ProjectType.IsValid() && c.ProjectType.IsValid() {
		merged.ProjectType = c.ProjectType
	}

	next := stage.Detect(transcript, stage.Context{Info: merged, Previous: c.Stage})
	if next != c.Stage {
		o.log.Debug("stage transition",
			zap.String("company_id", c.CompanyID),
			zap.String("from", string(c.Stage)),
			zap.String("to", string(next)))
	}

	score := confidence.Score(merged)
	return &TurnResult{
		Reply:      reply,
		Stage:      next,
		MergedInfo: merged,
		Confidence: score.Confidence,
		IsComplete: score.IsComplete,
		Missing:    score.Missing(),
		Transcript: transcript,
	}, nil
}

func roleOf(r types.Role) completion.Role {
	if r == types.RoleAssistant {
		return completion.RoleAssistant
	}
	return completion.RoleUser
}

// Package stage derives the conversation stage from what is already known.
//
// Stages are walked in order and a stage is only left once its fields are
// filled. The previous stage acts as a floor, so a conversation never moves
// backwards even when a later extraction pass is weaker.
package stage

import (
	"regexp"
	"strings"

	"paint-quote/core/types"
)

// Context is the known state a stage is derived from
type Context struct {
	// Info is the merged quote information
	Info types.QuoteInformation

	// Previous is the stage reported on the previous turn, if any
	Previous types.Stage
}

// requirement reports whether the conversation may leave a stage
type requirement func(transcript []types.ConversationTurn, ctx Context) bool

var exits = map[types.Stage]requirement{
	types.StageGreeting: func(transcript []types.ConversationTurn, ctx Context) bool {
		return lastUserMessage(transcript) != "" || !ctx.Info.IsEmpty()
	},
	types.StageGatheringCustomerInfo: func(_ []types.ConversationTurn, ctx Context) bool {
		return ctx.Info.CustomerName != "" && ctx.Info.HasContact()
	},
	types.StageGatheringMeasurements: func(_ []types.ConversationTurn, ctx Context) bool {
		info := ctx.Info
		return (len(info.Surfaces) > 0 || len(info.Rooms) > 0) && !info.Measurements.IsZero()
	},
	types.StageGatheringPreferences: func(_ []types.ConversationTurn, ctx Context) bool {
		return ctx.Info.PaintQuality != "" && ctx.Info.Timeline != ""
	},
	// a confirmation only counts once the summary has been presented
	types.StageReviewing: func(transcript []types.ConversationTurn, ctx Context) bool {
		return ctx.Previous.Rank() >= types.StageReviewing.Rank() && IsConfirmation(lastUserMessage(transcript))
	},
}

// Detect returns the current stage. It is a pure function of the transcript
// and the context.
func Detect(transcript []types.ConversationTurn, ctx Context) types.Stage {
	derived := derive(transcript, ctx)
	if ctx.Previous.IsValid() {
		return types.MaxStage(derived, ctx.Previous)
	}
	return derived
}

func derive(transcript []types.ConversationTurn, ctx Context) types.Stage {
	for _, st := range types.Stages {
		exit, ok := exits[st]
		if !ok || !exit(transcript, ctx) {
			return st
		}
	}
	return types.StageComplete
}

var confirmation = regexp.MustCompile(`(?i)\b(yes|yep|yeah|confirm(ed)?|approve[d]?|looks good|sounds good|go ahead|correct|that's right|perfect)\b`)

// approvingNegatives are phrases that read as approval despite a negative word
var approvingNegatives = regexp.MustCompile(`(?i)\b(no (problem|worries|issues?)|not a problem|no (changes?|edits?)( (are )?(needed|required))?|nothing (else )?(to|needs to) (be )?change[d]?|no need to change( anything)?)\b`)

var negation = regexp.MustCompile(`(?i)\b(no|nope|not|don't|do not|change|changes|wrong|wait|hold on)\b`)

// IsConfirmation reports whether a user message approves the summarized quote
func IsConfirmation(msg string) bool {
	msg = strings.TrimSpace(msg)
	if msg == "" {
		return false
	}
	if negation.MatchString(approvingNegatives.ReplaceAllString(msg, " ")) {
		return false
	}
	return confirmation.MatchString(msg)
}

func lastUserMessage(transcript []types.ConversationTurn) string {
	for i := len(transcript) - 1; i >= 0; i-- {
		if transcript[i].Role == types.RoleUser {
			return strings.TrimSpace(transcript[i].Content)
		}
	}
	return ""
}

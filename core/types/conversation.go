package types

// Role identifies the author of a conversation turn
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ConversationTurn is a single message in a transcript.
// Turns are immutable once appended; the caller owns the transcript.
type ConversationTurn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Stage is a point in the quote conversation state machine
type Stage string

const (
	StageGreeting              Stage = "greeting"
	StageGatheringCustomerInfo Stage = "gathering_customer_info"
	StageGatheringMeasurements Stage = "gathering_measurements"
	StageGatheringPreferences  Stage = "gathering_preferences"
	StageReviewing             Stage = "reviewing"
	StageComplete              Stage = "complete"
)

// Stages lists every stage in progression order
var Stages = []Stage{
	StageGreeting,
	StageGatheringCustomerInfo,
	StageGatheringMeasurements,
	StageGatheringPreferences,
	StageReviewing,
	StageComplete,
}

// Rank returns the position of the stage in the progression, or -1 if unknown
func (s Stage) Rank() int {
	for i, st := range Stages {
		if st == s {
			return i
		}
	}
	return -1
}

// IsValid checks if the stage is a known value
func (s Stage) IsValid() bool {
	return s.Rank() >= 0
}

// MaxStage returns the later of two stages
func MaxStage(a, b Stage) Stage {
	if b.Rank() > a.Rank() {
		return b
	}
	return a
}

// Package confidence - Deterministic completeness scoring for extracted quotes.
// The weighting and the 70% threshold gate downstream quote creation,
// so they must not change without coordinating with every consumer.
package confidence

import (
	"fmt"
	"strings"

	"paint-quote/core/types"
)

// CompleteThreshold is the minimum confidence at which a quote is complete
const CompleteThreshold = 70

// Factor is one scored criterion
type Factor struct {
	Name      string `json:"name"`
	Points    int    `json:"points"`
	MaxPoints int    `json:"maxPoints"`
	Satisfied bool   `json:"satisfied"`
}

// Result is the outcome of scoring a QuoteInformation
type Result struct {
	Score      int      `json:"score"`
	MaxScore   int      `json:"maxScore"`
	Confidence int      `json:"confidence"`
	IsComplete bool     `json:"isComplete"`
	Factors    []Factor `json:"factors"`
}

// Missing returns the names of unsatisfied factors in scoring order
func (r Result) Missing() []string {
	var out []string
	for _, f := range r.Factors {
		if !f.Satisfied {
			out = append(out, f.Name)
		}
	}
	return out
}

type criterion struct {
	name   string
	points int
	check  func(types.QuoteInformation) bool
}

var criteria = []criterion{
	{name: "customerName", points: 2, check: func(q types.QuoteInformation) bool { return q.CustomerName != "" }},
	{name: "address", points: 2, check: func(q types.QuoteInformation) bool { return q.Address != "" }},
	{name: "projectType", points: 2, check: func(q types.QuoteInformation) bool { return q.ProjectType.IsValid() }},
	{name: "surfaces", points: 1, check: func(q types.QuoteInformation) bool { return len(q.Surfaces) > 0 }},
	{name: "wallSqft", points: 1, check: func(q types.QuoteInformation) bool { return q.Measurements.WallSqft > 0 }},
}

// Score computes confidence = round(100 * score / maxScore). Pure function.
func Score(info types.QuoteInformation) Result {
	res := Result{Factors: make([]Factor, 0, len(criteria))}
	for _, c := range criteria {
		f := Factor{Name: c.name, MaxPoints: c.points}
		if c.check(info) {
			f.Points = c.points
			f.Satisfied = true
		}
		res.Score += f.Points
		res.MaxScore += c.points
		res.Factors = append(res.Factors, f)
	}

	// half rounds up, in integer arithmetic
	res.Confidence = (200*res.Score + res.MaxScore) / (2 * res.MaxScore)
	res.IsComplete = res.Confidence >= CompleteThreshold
	return res
}

// Level returns a human-readable completeness level
func (r Result) Level() string {
	switch {
	case r.Confidence >= 90:
		return "high"
	case r.Confidence >= CompleteThreshold:
		return "complete"
	case r.Confidence >= 40:
		return "partial"
	default:
		return "minimal"
	}
}

// Explain returns a human-readable breakdown of the score
func (r Result) Explain() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Confidence: %d%% (%s), %d of %d points\n", r.Confidence, r.Level(), r.Score, r.MaxScore))
	for i, f := range r.Factors {
		mark := "missing"
		if f.Satisfied {
			mark = "ok"
		}
		sb.WriteString(fmt.Sprintf("  %d. %s: %d/%d (%s)\n", i+1, f.Name, f.Points, f.MaxPoints, mark))
	}
	return sb.String()
}

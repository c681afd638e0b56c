package conversation

import (
	"fmt"
	"strings"

	"paint-quote/core/ratecard"
	"paint-quote/core/types"
)

const assistantInstructions = `You are a friendly estimator for a painting company, collecting what is needed to prepare a painting quote.
Ask for one or two missing details at a time, in this order: customer name and contact details (address, email or phone), project type (interior, exterior or both), surfaces and rooms with measurements in square feet, trim in linear feet, door and window counts, then paint quality and timeline.
When everything is collected, summarise the job and ask the customer to confirm it.
Never invent prices that are not in the rate card. Keep replies short and conversational.`

// systemPrompt builds the per-turn system message from the conversation context
func systemPrompt(c Context) string {
	var b strings.Builder
	b.WriteString(assistantInstructions)

	if c.CompanyName != "" {
		fmt.Fprintf(&b, "\n\nYou work for %s.", c.CompanyName)
	}

	projectType := c.Info.ProjectType
	if !projectType.IsValid() {
		projectType = c.ProjectType
	}
	if projectType.IsValid() {
		fmt.Fprintf(&b, "\nProject type: %s.", projectType)
	} else {
		b.WriteString("\nProject type: not yet known (assume interior until told otherwise).")
	}

	fmt.Fprintf(&b, "\nConversation stage: %s.", stageOrGreeting(c.Stage))

	b.WriteString("\n\nRate card:\n")
	b.WriteString(ratecard.Summary(c.RateCard))

	if len(c.PreferredPaints) > 0 {
		b.WriteString("\n\nPreferred paints:")
		for _, p := range c.PreferredPaints {
			fmt.Fprintf(&b, "\n- %s", p)
		}
	}

	if known := knownFields(c.Info); len(known) > 0 {
		b.WriteString("\n\nAlready known (do not ask again):")
		for _, k := range known {
			fmt.Fprintf(&b, "\n- %s", k)
		}
	}
	return b.String()
}

func knownFields(q types.QuoteInformation) []string {
	var out []string
	add := func(label, value string) {
		if value != "" {
			out = append(out, label+": "+value)
		}
	}
	add("customer name", q.CustomerName)
	add("email", q.CustomerEmail)
	add("phone", q.CustomerPhone)
	add("address", q.Address)
	add("project type", string(q.ProjectType))
	add("surfaces", strings.Join(q.Surfaces, ", "))
	add("rooms", strings.Join(q.Rooms, ", "))
	m := q.Measurements
	for _, f := range []struct {
		label string
		value float64
	}{
		{"wall sqft", m.WallSqft},
		{"ceiling sqft", m.CeilingSqft},
		{"trim linear ft", m.TrimLinearFt},
		{"doors", m.Doors},
		{"windows", m.Windows},
	} {
		if f.value > 0 {
			add(f.label, fmt.Sprintf("%g", f.value))
		}
	}
	add("paint quality", q.PaintQuality)
	add("prep work", q.PrepWork)
	add("timeline", q.Timeline)
	add("special requests", q.SpecialRequests)
	return out
}

func stageOrGreeting(s types.Stage) types.Stage {
	if s.IsValid() {
		return s
	}
	return types.StageGreeting
}

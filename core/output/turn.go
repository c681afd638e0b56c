package output

import (
	"encoding/json"
	"io"
	"strings"

	"paint-quote/core/conversation"
	"paint-quote/internal/errors"
)

// RenderTurn writes the assistant reply of a chat turn. The CLI format
// adds a status line when showConfidence is set; JSON emits the whole result.
func RenderTurn(w io.Writer, format Format, res *conversation.TurnResult, showConfidence bool) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case FormatCLI, FormatMarkdown:
		p := &printer{w: w}
		p.printf("\nassistant> %s\n", res.Reply)
		if showConfidence {
			status := "incomplete"
			if res.IsComplete {
				status = "complete"
			}
			p.printf("  [stage: %s | confidence: %d%% (%s)", res.Stage, res.Confidence, status)
			if len(res.Missing) > 0 {
				p.printf(" | missing: %s", strings.Join(res.Missing, ", "))
			}
			p.printf("]\n")
		}
		return p.err
	default:
		return errors.Newf(errors.TypeValidation, "unknown output format %q", format)
	}
}

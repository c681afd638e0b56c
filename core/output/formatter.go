// Package output provides output formatting for priced quotes and
// conversation turns. It produces human and machine-readable outputs.
package output

import (
	"io"
	"strings"

	"paint-quote/core/types"
	"paint-quote/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable CLI table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"

	// FormatMarkdown is a markdown report
	FormatMarkdown Format = "markdown"
)

// ParseFormat normalises a --format flag value
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatCLI, "table":
		return FormatCLI, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatMarkdown, "md":
		return FormatMarkdown, nil
	default:
		return "", errors.Newf(errors.TypeValidation, "unknown output format %q (use cli, json or markdown)", s)
	}
}

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given result
	Render(w io.Writer, result *QuoteResult) error
}

// QuoteResult contains the complete pricing output for one quote
type QuoteResult struct {
	// ID identifies this quote
	ID string `json:"id"`

	// Source is the input the quote was built from (file path, "chat")
	Source string `json:"source,omitempty"`

	// Info is the structured quote data that was priced
	Info *types.QuoteInformation `json:"info,omitempty"`

	// Quote is the priced quote
	Quote *types.PricedQuote `json:"quote"`

	// Confidence is the extraction confidence (0-100), if known
	Confidence int `json:"confidence,omitempty"`

	// Assumptions documents pricing assumptions
	Assumptions []string `json:"assumptions,omitempty"`

	// Metadata contains execution context
	Metadata QuoteMetadata `json:"metadata"`
}

// QuoteMetadata contains execution context
type QuoteMetadata struct {
	// Timestamp is when the quote was priced
	Timestamp string `json:"timestamp"`

	// CompanyID is the rate card owner
	CompanyID string `json:"companyId,omitempty"`

	// InputHash fingerprints the priced surfaces and rate card
	InputHash string `json:"inputHash,omitempty"`

	// Version is the tool version
	Version string `json:"version"`
}

// Options controls rendering detail
type Options struct {
	// ShowDetails includes line items
	ShowDetails bool
}

var formatters = map[Format]func(Options) Formatter{
	FormatCLI:      func(o Options) Formatter { return &cliFormatter{opts: o} },
	FormatJSON:     func(o Options) Formatter { return &jsonFormatter{} },
	FormatMarkdown: func(o Options) Formatter { return &markdownFormatter{opts: o} },
}

// GetFormatter returns a formatter for a format type
func GetFormatter(format Format, opts Options) (Formatter, bool) {
	newFn, ok := formatters[format]
	if !ok {
		return nil, false
	}
	return newFn(opts), true
}

// Render writes result to w in the given format
func Render(w io.Writer, format Format, result *QuoteResult, opts Options) error {
	f, ok := GetFormatter(format, opts)
	if !ok {
		return errors.Newf(errors.TypeValidation, "unknown output format %q", format)
	}
	return f.Render(w, result)
}

func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}

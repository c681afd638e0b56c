package extraction

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"paint-quote/core/types"
	"paint-quote/internal/errors"
)

// extractJSONObject returns the first balanced object in text that parses
// as JSON, skipping code fences, prose and brace-delimited prose the oracle
// wrapped around it.
func extractJSONObject(text string) (string, bool) {
	for start := strings.IndexByte(text, '{'); start >= 0; start = nextBrace(text, start) {
		end, ok := matchBrace(text, start)
		if !ok {
			continue
		}
		if candidate := text[start : end+1]; json.Valid([]byte(candidate)) {
			return candidate, true
		}
	}
	return "", false
}

// nextBrace returns the index of the next '{' after from, or -1
func nextBrace(text string, from int) int {
	next := strings.IndexByte(text[from+1:], '{')
	if next < 0 {
		return -1
	}
	return from + 1 + next
}

// matchBrace finds the '}' closing the '{' at start, ignoring braces in strings
func matchBrace(text string, start int) (int, bool) {
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

// decode parses raw oracle text into a generic object
func decode(text string) (map[string]any, error) {
	obj, ok := extractJSONObject(text)
	if !ok {
		return nil, errors.Parsing("no JSON object in oracle output", nil)
	}
	var raw map[string]any
	if err := json.Unmarshal([]byte(obj), &raw); err != nil {
		return nil, errors.Parsing("oracle output is not valid JSON", err)
	}
	return raw, nil
}

// sanitize coerces every field of raw to its expected type
func sanitize(raw map[string]any) types.QuoteInformation {
	info := types.NewQuoteInformation()
	if raw == nil {
		return info
	}

	info.CustomerName = asString(raw["customerName"])
	info.CustomerEmail = asString(raw["customerEmail"])
	info.CustomerPhone = asString(raw["customerPhone"])
	info.Address = asString(raw["address"])
	info.ProjectType = types.ParseProjectType(asString(raw["projectType"]))
	info.Surfaces = asStringList(raw["surfaces"])
	info.Rooms = asStringList(raw["rooms"])
	info.PaintQuality = asString(raw["paintQuality"])
	info.PrepWork = asString(raw["prepWork"])
	info.Timeline = asString(raw["timeline"])
	info.SpecialRequests = asString(raw["specialRequests"])

	if m, ok := raw["measurements"].(map[string]any); ok {
		info.Measurements = types.Measurements{
			WallSqft:     asNumber(m["wallSqft"]),
			CeilingSqft:  asNumber(m["ceilingSqft"]),
			TrimLinearFt: asNumber(m["trimLinearFt"]),
			Doors:        asNumber(m["doors"]),
			Windows:      asNumber(m["windows"]),
		}
	}
	return info
}

var nullish = map[string]bool{
	"null": true, "none": true, "n/a": true, "na": true, "unknown": true, "not provided": true, "-": true,
}

func asString(v any) string {
	var s string
	switch x := v.(type) {
	case string:
		s = x
	case float64:
		// phone numbers sometimes arrive as bare numbers
		s = strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return ""
	}
	s = strings.TrimSpace(s)
	if nullish[strings.ToLower(s)] {
		return ""
	}
	return s
}

func asStringList(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			continue
		}
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func asNumber(v any) float64 {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case string:
		parsed, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(x), ",", ""), 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	return f
}

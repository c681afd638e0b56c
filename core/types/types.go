// Package types defines core domain types shared across all layers.
// This package contains NO business logic beyond small value helpers.
package types

import "strings"

// ProjectType is the kind of painting job
type ProjectType string

const (
	ProjectInterior ProjectType = "interior"
	ProjectExterior ProjectType = "exterior"
	ProjectBoth     ProjectType = "both"
)

// String returns the string representation
func (p ProjectType) String() string {
	return string(p)
}

// IsValid checks if the project type is a known value
func (p ProjectType) IsValid() bool {
	switch p {
	case ProjectInterior, ProjectExterior, ProjectBoth:
		return true
	default:
		return false
	}
}

// OrDefault returns the project type, falling back to interior when unset
func (p ProjectType) OrDefault() ProjectType {
	if p.IsValid() {
		return p
	}
	return ProjectInterior
}

// ParseProjectType normalises free text into a ProjectType.
// It returns "" when the text names no project type.
func ParseProjectType(s string) ProjectType {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}
	switch s {
	case "interior", "inside", "indoor", "internal":
		return ProjectInterior
	case "exterior", "outside", "outdoor", "external":
		return ProjectExterior
	case "both", "interior/exterior", "interior and exterior", "exterior and interior", "interior & exterior", "mixed":
		return ProjectBoth
	}
	hasIn := strings.Contains(s, "interior")
	hasOut := strings.Contains(s, "exterior")
	switch {
	case hasIn && hasOut:
		return ProjectBoth
	case hasIn:
		return ProjectInterior
	case hasOut:
		return ProjectExterior
	}
	return ""
}

// Currency represents a currency code
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyCAD Currency = "CAD"
)

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

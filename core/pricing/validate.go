package pricing

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"paint-quote/core/types"
	"paint-quote/internal/errors"
)

// MaxCoats is the largest coat count accepted on an area surface
const MaxCoats = 5

var hundred = decimal.NewFromInt(100)

// ValidateRateCard rejects rate cards that would produce negative money
func ValidateRateCard(rc *types.RateCard) error {
	if rc == nil {
		return errors.Validation("rate card is required")
	}
	checks := []struct {
		name  string
		value interface{ IsNegative() bool }
	}{
		{"overheadPercent", rc.OverheadPercent},
		{"profitMarginPercent", rc.ProfitMarginPercent},
		{"taxRatePercent", rc.TaxRatePercent},
		{"hourlyLaborRate", rc.HourlyLaborRate},
		{"laborPercent", rc.LaborPercent},
	}
	for _, c := range checks {
		if c.value.IsNegative() {
			return errors.Newf(errors.TypeValidation, "rate card %s must not be negative", c.name)
		}
	}
	if rc.LaborPercent.GreaterThan(hundred) {
		return errors.Validation("rate card laborPercent must not exceed 100")
	}
	for t, rate := range rc.Rates {
		if rate.IsNegative() {
			return errors.Newf(errors.TypeValidation, "rate card price for %s must not be negative", t)
		}
	}
	return nil
}

// ValidateSurface checks that s carries exactly the measurement its unit
// class needs and that rc can price it.
func ValidateSurface(index int, s types.Surface, rc *types.RateCard) error {
	class := s.Type.Class()
	if class == types.UnitUnknown {
		return errors.InvalidSurface(index, string(s.Type), "unknown surface type")
	}

	set := 0
	if s.Area != nil {
		set++
	}
	if s.LinearFeet != nil {
		set++
	}
	if s.Count != nil {
		set++
	}
	if set > 1 {
		return errors.InvalidSurface(index, string(s.Type), "exactly one of area, linearFeet and count may be set")
	}

	switch class {
	case types.UnitArea:
		if s.Area == nil || !positive(*s.Area) {
			return errors.InvalidSurface(index, string(s.Type), "area (sqft) must be positive")
		}
		if s.Coats < 0 || s.Coats > MaxCoats {
			return errors.InvalidSurface(index, string(s.Type), fmt.Sprintf("coats must be between 1 and %d", MaxCoats))
		}
	case types.UnitLinear:
		if s.LinearFeet == nil || !positive(*s.LinearFeet) {
			return errors.InvalidSurface(index, string(s.Type), "linearFeet must be positive")
		}
	case types.UnitCount:
		if s.Count == nil || *s.Count <= 0 {
			return errors.InvalidSurface(index, string(s.Type), "count must be positive")
		}
	}

	if s.Condition != "" && !s.Condition.IsValid() {
		return errors.InvalidSurface(index, string(s.Type), fmt.Sprintf("unknown condition %q", s.Condition))
	}
	for _, p := range s.PrepWork {
		if !p.IsValid() {
			return errors.InvalidSurface(index, string(s.Type), fmt.Sprintf("unknown prep task %q", p))
		}
	}

	if _, ok := rc.Rate(s.Type); !ok {
		return errors.InvalidSurface(index, string(s.Type), "rate card has no price for this surface type")
	}
	return nil
}

func positive(f float64) bool {
	return f > 0 && !math.IsInf(f, 0) && !math.IsNaN(f)
}

package extraction

import "paint-quote/core/types"

// Merge combines a fresh extraction into existing state. A field is only
// replaced when the new value is non-empty, so known data never degrades.
func Merge(old, fresh types.QuoteInformation) types.QuoteInformation {
	out := old.Clone()

	out.CustomerName = pickString(old.CustomerName, fresh.CustomerName)
	out.CustomerEmail = pickString(old.CustomerEmail, fresh.CustomerEmail)
	out.CustomerPhone = pickString(old.CustomerPhone, fresh.CustomerPhone)
	out.Address = pickString(old.Address, fresh.Address)
	if fresh.ProjectType.IsValid() {
		out.ProjectType = fresh.ProjectType
	}
	out.Surfaces = pickList(out.Surfaces, fresh.Surfaces)
	out.Rooms = pickList(out.Rooms, fresh.Rooms)
	out.Measurements = types.Measurements{
		WallSqft:     pickNumber(old.Measurements.WallSqft, fresh.Measurements.WallSqft),
		CeilingSqft:  pickNumber(old.Measurements.CeilingSqft, fresh.Measurements.CeilingSqft),
		TrimLinearFt: pickNumber(old.Measurements.TrimLinearFt, fresh.Measurements.TrimLinearFt),
		Doors:        pickNumber(old.Measurements.Doors, fresh.Measurements.Doors),
		Windows:      pickNumber(old.Measurements.Windows, fresh.Measurements.Windows),
	}
	out.PaintQuality = pickString(old.PaintQuality, fresh.PaintQuality)
	out.PrepWork = pickString(old.PrepWork, fresh.PrepWork)
	out.Timeline = pickString(old.Timeline, fresh.Timeline)
	out.SpecialRequests = pickString(old.SpecialRequests, fresh.SpecialRequests)
	return out
}

func pickString(old, fresh string) string {
	if fresh != "" {
		return fresh
	}
	return old
}

func pickList(old, fresh []string) []string {
	if len(fresh) > 0 {
		return append([]string{}, fresh...)
	}
	if old == nil {
		return []string{}
	}
	return old
}

func pickNumber(old, fresh float64) float64 {
	if fresh > 0 {
		return fresh
	}
	return old
}

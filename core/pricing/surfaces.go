package pricing

import (
	"math"

	"paint-quote/core/types"
)

// SurfacesFromInfo maps gathered job measurements onto priceable surfaces.
// Measurements that are zero produce no surface. Door and window counts are
// rounded to the nearest whole unit and capped at MaxUnitCount.
func SurfacesFromInfo(info types.QuoteInformation) []types.Surface {
	m := info.Measurements
	surfaces := make([]types.Surface, 0, 5)

	wall, trim, door, window := types.SurfaceWall, types.SurfaceBaseboard, types.SurfaceDoor, types.SurfaceWindow
	if info.ProjectType.OrDefault() == types.ProjectExterior {
		wall, trim, door, window = types.SurfaceExteriorWall, types.SurfaceFascia, types.SurfaceExteriorDoor, types.SurfaceExteriorWindow
	}

	if m.WallSqft > 0 {
		surfaces = append(surfaces, types.AreaSurface(wall, m.WallSqft, 0))
	}
	// Exterior jobs have no ceiling surface; the soffit is priced only when
	// listed explicitly.
	if m.CeilingSqft > 0 && wall == types.SurfaceWall {
		surfaces = append(surfaces, types.AreaSurface(types.SurfaceCeiling, m.CeilingSqft, 0))
	}
	if m.TrimLinearFt > 0 {
		surfaces = append(surfaces, types.LinearSurface(trim, m.TrimLinearFt))
	}
	if n, _ := WholeUnits(m.Doors); n > 0 {
		surfaces = append(surfaces, types.CountSurface(door, n))
	}
	if n, _ := WholeUnits(m.Windows); n > 0 {
		surfaces = append(surfaces, types.CountSurface(window, n))
	}
	return surfaces
}

// MaxUnitCount caps a door or window count taken from measurements
const MaxUnitCount = 10000

// WholeUnits rounds a measured count to a whole number of units.
// adjusted reports a positive count that was dropped because it rounds to
// zero, or clamped to MaxUnitCount.
func WholeUnits(f float64) (n int, adjusted bool) {
	switch {
	case math.IsNaN(f):
		return 0, true
	case f <= 0:
		return 0, false
	case f > MaxUnitCount:
		return MaxUnitCount, true
	}
	n = int(math.Round(f))
	return n, n == 0
}

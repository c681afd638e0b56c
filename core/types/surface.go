package types

// SurfaceType is a priceable element of a painting job
type SurfaceType string

const (
	SurfaceWall           SurfaceType = "wall"
	SurfaceCeiling        SurfaceType = "ceiling"
	SurfaceBaseboard      SurfaceType = "baseboard"
	SurfaceCrownMolding   SurfaceType = "crown_molding"
	SurfaceDoor           SurfaceType = "door"
	SurfaceWindow         SurfaceType = "window"
	SurfaceExteriorWall   SurfaceType = "exterior_wall"
	SurfaceFascia         SurfaceType = "fascia"
	SurfaceSoffit         SurfaceType = "soffit"
	SurfaceExteriorDoor   SurfaceType = "exterior_door"
	SurfaceExteriorWindow SurfaceType = "exterior_window"
)

// SurfaceTypes lists every known surface type in display order
var SurfaceTypes = []SurfaceType{
	SurfaceWall,
	SurfaceCeiling,
	SurfaceBaseboard,
	SurfaceCrownMolding,
	SurfaceDoor,
	SurfaceWindow,
	SurfaceExteriorWall,
	SurfaceFascia,
	SurfaceSoffit,
	SurfaceExteriorDoor,
	SurfaceExteriorWindow,
}

// UnitClass determines which measurement a surface uses
type UnitClass string

const (
	UnitArea    UnitClass = "area"
	UnitLinear  UnitClass = "linear"
	UnitCount   UnitClass = "count"
	UnitUnknown UnitClass = ""
)

// Class returns the unit class of the surface type
func (t SurfaceType) Class() UnitClass {
	switch t {
	case SurfaceWall, SurfaceCeiling, SurfaceExteriorWall, SurfaceSoffit:
		return UnitArea
	case SurfaceBaseboard, SurfaceCrownMolding, SurfaceFascia:
		return UnitLinear
	case SurfaceDoor, SurfaceWindow, SurfaceExteriorDoor, SurfaceExteriorWindow:
		return UnitCount
	default:
		return UnitUnknown
	}
}

// IsValid checks if the surface type is known
func (t SurfaceType) IsValid() bool {
	return t.Class() != UnitUnknown
}

// Measure returns the billing unit label
func (c UnitClass) Measure() string {
	switch c {
	case UnitArea:
		return "sqft"
	case UnitLinear:
		return "linear ft"
	case UnitCount:
		return "each"
	default:
		return ""
	}
}

// Condition describes the state of a surface before painting
type Condition string

const (
	ConditionExcellent Condition = "excellent"
	ConditionGood      Condition = "good"
	ConditionFair      Condition = "fair"
	ConditionPoor      Condition = "poor"
)

// IsValid checks if the condition is known
func (c Condition) IsValid() bool {
	switch c {
	case ConditionExcellent, ConditionGood, ConditionFair, ConditionPoor:
		return true
	default:
		return false
	}
}

// PrepTask is a preparation step required before painting
type PrepTask string

const (
	PrepSanding          PrepTask = "sanding"
	PrepScraping         PrepTask = "scraping"
	PrepPriming          PrepTask = "priming"
	PrepCaulking         PrepTask = "caulking"
	PrepPatching         PrepTask = "patching"
	PrepPowerWashing     PrepTask = "power_washing"
	PrepMasking          PrepTask = "masking"
	PrepWallpaperRemoval PrepTask = "wallpaper_removal"
)

// IsValid checks if the prep task is known
func (p PrepTask) IsValid() bool {
	switch p {
	case PrepSanding, PrepScraping, PrepPriming, PrepCaulking, PrepPatching,
		PrepPowerWashing, PrepMasking, PrepWallpaperRemoval:
		return true
	default:
		return false
	}
}

// DefaultCoats is applied when a surface does not specify coats
const DefaultCoats = 2

// Surface is a single priceable unit. Exactly one of Area, LinearFeet
// and Count is set, matching the unit class of Type.
type Surface struct {
	Type       SurfaceType `json:"type"`
	Label      string      `json:"label,omitempty"`
	Area       *float64    `json:"area,omitempty"`
	LinearFeet *float64    `json:"linearFeet,omitempty"`
	Count      *int        `json:"count,omitempty"`
	Coats      int         `json:"coats,omitempty"`
	Condition  Condition   `json:"condition,omitempty"`
	PrepWork   []PrepTask  `json:"prepWork,omitempty"`
}

// AreaSurface builds an area-class surface
func AreaSurface(t SurfaceType, sqft float64, coats int) Surface {
	return Surface{Type: t, Area: &sqft, Coats: coats}
}

// LinearSurface builds a linear-class surface
func LinearSurface(t SurfaceType, feet float64) Surface {
	return Surface{Type: t, LinearFeet: &feet}
}

// CountSurface builds a count-class surface
func CountSurface(t SurfaceType, n int) Surface {
	return Surface{Type: t, Count: &n}
}

// EffectiveCoats returns the coat count with the default applied
func (s Surface) EffectiveCoats() int {
	if s.Coats == 0 {
		return DefaultCoats
	}
	return s.Coats
}

package dock

import (
	"errors"
	"fmt"

	"dockyard/internal/geom"
)

// Zone identifies where a panel lives: one of the four viewport edges, the
// center region, or the floating bag.
type Zone int

const (
	Floating Zone = iota
	Left
	Right
	Top
	Bottom
	Center

	zoneCount
)

// dockedZones is the fixed processing order for z-assignment and iteration.
var dockedZones = [...]Zone{Left, Right, Top, Bottom, Center}

// ErrInvalidZone is returned when an operation receives a zone value outside
// the static enumeration. Unknown zones are a programmer error, not a
// runtime condition.
var ErrInvalidZone = errors.New("invalid zone")

func (z Zone) String() string {
	switch z {
	case Floating:
		return "floating"
	case Left:
		return "left"
	case Right:
		return "right"
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case Center:
		return "center"
	}
	return fmt.Sprintf("zone(%d)", int(z))
}

// ParseZone converts a configuration string into a Zone.
func ParseZone(s string) (Zone, error) {
	switch s {
	case "floating", "":
		return Floating, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	case "top":
		return Top, nil
	case "bottom":
		return Bottom, nil
	case "center":
		return Center, nil
	}
	return Floating, fmt.Errorf("%w: %q", ErrInvalidZone, s)
}

// Valid reports whether z is inside the static enumeration.
func (z Zone) Valid() bool { return z >= Floating && z < zoneCount }

// IsDocked reports whether z is a real dock zone rather than the floating bag.
func (z Zone) IsDocked() bool { return z > Floating && z < zoneCount }

// StackAxis returns the axis panels stack along inside z. Left, right and
// center stack vertically; top and bottom stack horizontally.
func (z Zone) StackAxis() geom.Axis {
	if z == Top || z == Bottom {
		return geom.Horizontal
	}
	return geom.Vertical
}

// collapsible reports whether auto-collapse applies in z. Collapse is a
// left/right/center concept; top and bottom stacks never collapse.
func (z Zone) collapsible() bool {
	return z == Left || z == Right || z == Center
}

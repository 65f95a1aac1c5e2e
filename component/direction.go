package component

// Direction is a cardinal travel direction on the board
// Up decreases Y, matching terminal row order
type Direction uint8

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

var directionNames = [...]string{"up", "right", "down", "left"}

// Opposite returns the reverse direction
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Perpendicular reports whether d and other lie on different axes
func (d Direction) Perpendicular(other Direction) bool {
	return d.Vertical() != other.Vertical()
}

// Vertical reports whether d moves along the Y axis
func (d Direction) Vertical() bool {
	return d == DirUp || d == DirDown
}

// Valid reports whether d is one of the four cardinal directions
func (d Direction) Valid() bool {
	return d <= DirLeft
}

func (d Direction) String() string {
	if !d.Valid() {
		return "invalid"
	}
	return directionNames[d]
}

// ParseDirection resolves a direction name as used in key bindings
func ParseDirection(s string) (Direction, bool) {
	for i, name := range directionNames {
		if name == s {
			return Direction(i), true
		}
	}
	return 0, false
}

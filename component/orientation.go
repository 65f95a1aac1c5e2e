package component

// Orientation describes how a body segment joins its two neighbors
// Straight orientations keep the travel direction; corners are named by the glyph
// quadrant and the side the chain enters from (the tail side)
type Orientation uint8

const (
	StraightUp Orientation = iota
	StraightRight
	StraightDown
	StraightLeft

	TopLeftFromRight    // ┏ entered moving left, leaves down
	TopLeftFromDown     // ┏ entered moving up, leaves right
	TopRightFromLeft    // ┓ entered moving right, leaves down
	TopRightFromDown    // ┓ entered moving up, leaves left
	BottomLeftFromRight // ┗ entered moving left, leaves up
	BottomLeftFromUp    // ┗ entered moving down, leaves right
	BottomRightFromLeft // ┛ entered moving right, leaves up
	BottomRightFromUp   // ┛ entered moving down, leaves left
	orientationCount
)

// Corner groups the four glyph quadrants
type Corner uint8

const (
	CornerNone Corner = iota
	CornerTopLeft
	CornerTopRight
	CornerBottomLeft
	CornerBottomRight
)

type orientationDef struct {
	in, out Direction
	corner  Corner
	name    string
}

var orientationDefs = [orientationCount]orientationDef{
	StraightUp:          {DirUp, DirUp, CornerNone, "straight-up"},
	StraightRight:       {DirRight, DirRight, CornerNone, "straight-right"},
	StraightDown:        {DirDown, DirDown, CornerNone, "straight-down"},
	StraightLeft:        {DirLeft, DirLeft, CornerNone, "straight-left"},
	TopLeftFromRight:    {DirLeft, DirDown, CornerTopLeft, "top-left-from-right"},
	TopLeftFromDown:     {DirUp, DirRight, CornerTopLeft, "top-left-from-down"},
	TopRightFromLeft:    {DirRight, DirDown, CornerTopRight, "top-right-from-left"},
	TopRightFromDown:    {DirUp, DirLeft, CornerTopRight, "top-right-from-down"},
	BottomLeftFromRight: {DirLeft, DirUp, CornerBottomLeft, "bottom-left-from-right"},
	BottomLeftFromUp:    {DirDown, DirRight, CornerBottomLeft, "bottom-left-from-up"},
	BottomRightFromLeft: {DirRight, DirUp, CornerBottomRight, "bottom-right-from-left"},
	BottomRightFromUp:   {DirDown, DirLeft, CornerBottomRight, "bottom-right-from-up"},
}

// bendTable[in][out] is the transition table used by the step engine
// Reversals have no entry
var bendTable [4][4]struct {
	o  Orientation
	ok bool
}

func init() {
	for o := Orientation(0); o < orientationCount; o++ {
		def := orientationDefs[o]
		bendTable[def.in][def.out].o = o
		bendTable[def.in][def.out].ok = true
	}
}

// Bend returns the orientation for a segment entered moving in and left moving out
// Returns false for a reversal or an invalid direction
func Bend(in, out Direction) (Orientation, bool) {
	if !in.Valid() || !out.Valid() {
		return 0, false
	}
	e := bendTable[in][out]
	return e.o, e.ok
}

// In returns the travel direction with which the chain enters the segment
func (o Orientation) In() Direction { return orientationDefs[o].in }

// Out returns the travel direction toward the segment ahead
func (o Orientation) Out() Direction { return orientationDefs[o].out }

// Corner returns the glyph quadrant, CornerNone for straight runs
func (o Orientation) Corner() Corner { return orientationDefs[o].corner }

// IsStraight reports whether the segment passes straight through
func (o Orientation) IsStraight() bool { return o <= StraightLeft }

// IsHorizontal reports a straight left/right run
func (o Orientation) IsHorizontal() bool { return o == StraightLeft || o == StraightRight }

// IsVertical reports a straight up/down run
func (o Orientation) IsVertical() bool { return o == StraightUp || o == StraightDown }

// Valid reports whether o is a defined orientation
func (o Orientation) Valid() bool { return o < orientationCount }

func (o Orientation) String() string {
	if !o.Valid() {
		return "invalid"
	}
	return orientationDefs[o].name
}

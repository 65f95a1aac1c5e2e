package component

import (
	"fmt"

	"github.com/lixenwraith/vi-snake/vmath"
)

// ShapeKind discriminates the segment role in the chain
type ShapeKind uint8

const (
	KindHead ShapeKind = iota
	KindBody
	KindTail
)

func (k ShapeKind) String() string {
	switch k {
	case KindHead:
		return "head"
	case KindBody:
		return "body"
	case KindTail:
		return "tail"
	}
	return "invalid"
}

// Shape is the tagged segment variant
// Head and Tail carry a Direction, Body carries an Orientation
// Immutable: build a new Shape instead of patching the payload
type Shape struct {
	kind   ShapeKind
	dir    Direction
	orient Orientation
}

// HeadShape returns a head facing dir
func HeadShape(dir Direction) Shape { return Shape{kind: KindHead, dir: dir} }

// TailShape returns a tail trailing toward dir (the direction of the segment ahead)
func TailShape(dir Direction) Shape { return Shape{kind: KindTail, dir: dir} }

// BodyShape returns a body segment with orientation o
func BodyShape(o Orientation) Shape { return Shape{kind: KindBody, orient: o} }

// Kind returns the variant tag
func (s Shape) Kind() ShapeKind { return s.kind }

// Dir returns the head/tail direction; zero for body shapes
func (s Shape) Dir() Direction { return s.dir }

// Orientation returns the body orientation; zero for head/tail shapes
func (s Shape) Orientation() Orientation { return s.orient }

// Out returns the travel direction from this segment toward the one ahead
// For a head it is the facing direction
func (s Shape) Out() Direction {
	if s.kind == KindBody {
		return s.orient.Out()
	}
	return s.dir
}

// In returns the travel direction with which the chain enters this segment
// Head and tail are single-sided, so In equals Out
func (s Shape) In() Direction {
	if s.kind == KindBody {
		return s.orient.In()
	}
	return s.dir
}

func (s Shape) String() string {
	if s.kind == KindBody {
		return fmt.Sprintf("body(%s)", s.orient)
	}
	return fmt.Sprintf("%s(%s)", s.kind, s.dir)
}

// Segment is one cell-occupying unit of the snake
// Eating marks that food was consumed at this cell and is travelling toward the tail
type Segment struct {
	X, Y   vmath.Wrap
	Shape  Shape
	Eating bool
}

func (s Segment) String() string {
	return fmt.Sprintf("(%d,%d)%s", s.X.Index(), s.Y.Index(), s.Shape)
}

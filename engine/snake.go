package engine

import (
	"fmt"

	"github.com/lixenwraith/vi-snake/component"
	"github.com/lixenwraith/vi-snake/vmath"
)

// Snake is the ordered segment chain: index 0 is the head, the last index the tail
// Instances are replaced wholesale by Step; only the turn controller patches the head
type Snake struct {
	segments []component.Segment
}

// NewSnake validates and copies segs into a chain
func NewSnake(segs []component.Segment) (*Snake, error) {
	s := &Snake{segments: append([]component.Segment(nil), segs...)}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// DefaultSnake builds the starting chain: a head facing left, one straight body cell,
// a corner and a tail below it
func DefaultSnake(b *Board) *Snake {
	hx, hy := b.Width/5, b.Height/2
	at := func(x, y int) (vmath.Wrap, vmath.Wrap) { return b.Coord(x, y) }

	segs := make([]component.Segment, 0, 16)
	x, y := at(hx, hy)
	segs = append(segs, component.Segment{X: x, Y: y, Shape: component.HeadShape(component.DirLeft)})
	x, y = at(hx+1, hy)
	segs = append(segs, component.Segment{X: x, Y: y, Shape: component.BodyShape(component.StraightLeft)})
	x, y = at(hx+2, hy)
	segs = append(segs, component.Segment{X: x, Y: y, Shape: component.BodyShape(component.TopRightFromDown)})
	x, y = at(hx+2, hy+1)
	segs = append(segs, component.Segment{X: x, Y: y, Shape: component.TailShape(component.DirUp)})
	return &Snake{segments: segs}
}

// Len returns the segment count
func (s *Snake) Len() int { return len(s.segments) }

// Head returns segment 0
func (s *Snake) Head() component.Segment { return s.segments[0] }

// Tail returns the last segment
func (s *Snake) Tail() component.Segment { return s.segments[len(s.segments)-1] }

// At returns segment i
func (s *Snake) At(i int) component.Segment { return s.segments[i] }

// Segments returns a copy of the chain
func (s *Snake) Segments() []component.Segment {
	return append([]component.Segment(nil), s.segments...)
}

// Facing returns the head direction
func (s *Snake) Facing() component.Direction { return s.segments[0].Shape.Dir() }

// neck returns the direction the head last moved in, as recorded by segment 1
func (s *Snake) neck() component.Direction { return s.segments[1].Shape.Out() }

// Validate checks the chain invariants: at least two segments, head first, tail last,
// bodies between, and every segment's Out step landing on the segment ahead
func (s *Snake) Validate() error {
	n := len(s.segments)
	if n < 2 {
		return fmt.Errorf("%w: chain length %d", ErrInternalConsistency, n)
	}

	head := s.segments[0]
	mx, my := head.X.Modulus(), head.Y.Modulus()
	for i, seg := range s.segments {
		if seg.X.Modulus() != mx || seg.Y.Modulus() != my {
			return fmt.Errorf("%w: segment %d bound to %dx%d, head to %dx%d",
				ErrInternalConsistency, i, seg.X.Modulus(), seg.Y.Modulus(), mx, my)
		}

		want := component.KindBody
		switch i {
		case 0:
			want = component.KindHead
		case n - 1:
			want = component.KindTail
		}
		if seg.Shape.Kind() != want {
			return fmt.Errorf("%w: segment %d is %s, expected %s", ErrInternalConsistency, i, seg.Shape.Kind(), want)
		}
		if seg.Shape.Kind() == component.KindBody && !seg.Shape.Orientation().Valid() {
			return fmt.Errorf("%w: segment %d has invalid orientation", ErrInternalConsistency, i)
		}
		if seg.Shape.Kind() != component.KindBody && !seg.Shape.Dir().Valid() {
			return fmt.Errorf("%w: segment %d has invalid direction", ErrInternalConsistency, i)
		}
		if i == 0 {
			continue
		}

		ahead := s.segments[i-1]
		x, y := Advance(seg.X, seg.Y, seg.Shape.Out())
		if x != ahead.X || y != ahead.Y {
			return fmt.Errorf("%w: segment %d %s does not lead to segment %d %s",
				ErrInternalConsistency, i, seg, i-1, ahead)
		}
		if ahead.Shape.Kind() == component.KindBody && seg.Shape.Out() != ahead.Shape.In() {
			return fmt.Errorf("%w: segment %d leaves %s but segment %d is entered %s",
				ErrInternalConsistency, i, seg.Shape.Out(), i-1, ahead.Shape.In())
		}
	}

	if s.Facing() == s.neck().Opposite() {
		return fmt.Errorf("%w: head faces %s into its neck", ErrInternalConsistency, s.Facing())
	}
	return nil
}

// Advance moves a coordinate pair one cell in d using only unit wrapping steps
func Advance(x, y vmath.Wrap, d component.Direction) (vmath.Wrap, vmath.Wrap) {
	switch d {
	case component.DirUp:
		y = y.Dec()
	case component.DirDown:
		y = y.Inc()
	case component.DirLeft:
		x = x.Dec()
	case component.DirRight:
		x = x.Inc()
	}
	return x, y
}

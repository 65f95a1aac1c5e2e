package engine

import (
	"testing"

	"github.com/lixenwraith/vi-snake/component"
	"github.com/lixenwraith/vi-snake/vmath"
)

const (
	testWidth  = 50
	testHeight = 20
)

// scriptSource replays fixed values, each reduced modulo n
type scriptSource struct {
	vals []int
	pos  int
}

func (s *scriptSource) Intn(n int) int {
	v := s.vals[s.pos%len(s.vals)]
	s.pos++
	return v % n
}

func seg(x, y int, shape component.Shape) component.Segment {
	return component.Segment{
		X:     vmath.MustWrap(x, testWidth),
		Y:     vmath.MustWrap(y, testHeight),
		Shape: shape,
	}
}

func head(d component.Direction) component.Shape   { return component.HeadShape(d) }
func tail(d component.Direction) component.Shape   { return component.TailShape(d) }
func body(o component.Orientation) component.Shape { return component.BodyShape(o) }

// straightLeftSnake is the length-3 chain at (10,10) moving left
func straightLeftSnake(t *testing.T) *Snake {
	t.Helper()
	s, err := NewSnake([]component.Segment{
		seg(10, 10, head(component.DirLeft)),
		seg(11, 10, body(component.StraightLeft)),
		seg(12, 10, tail(component.DirLeft)),
	})
	if err != nil {
		t.Fatalf("NewSnake failed: %v", err)
	}
	return s
}

func newTestBoard(t *testing.T) *Board {
	t.Helper()
	b, err := NewBoard(testWidth, testHeight)
	if err != nil {
		t.Fatalf("NewBoard failed: %v", err)
	}
	return b
}

func assertPos(t *testing.T, label string, got component.Segment, x, y int) {
	t.Helper()
	if got.X.Index() != x || got.Y.Index() != y {
		t.Errorf("%s: Expected (%d,%d), got (%d,%d)", label, x, y, got.X.Index(), got.Y.Index())
	}
}

func assertShape(t *testing.T, label string, got component.Segment, want component.Shape) {
	t.Helper()
	if got.Shape != want {
		t.Errorf("%s: Expected %s, got %s", label, want, got.Shape)
	}
}

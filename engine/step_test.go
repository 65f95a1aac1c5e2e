package engine

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/lixenwraith/vi-snake/component"
)

func TestStepStraight(t *testing.T) {
	b := newTestBoard(t)
	s := straightLeftSnake(t)

	next, res, err := Step(s, b, GrowthImmediate)
	if err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	if res.Ate || res.Grew {
		t.Errorf("Expected plain move, got %+v", res)
	}
	if next.Len() != 3 {
		t.Fatalf("Expected length 3, got %d", next.Len())
	}

	assertPos(t, "head", next.At(0), 9, 10)
	assertShape(t, "head", next.At(0), head(component.DirLeft))
	assertPos(t, "body", next.At(1), 10, 10)
	assertShape(t, "body", next.At(1), body(component.StraightLeft))
	assertPos(t, "tail", next.At(2), 11, 10)
	assertShape(t, "tail", next.At(2), tail(component.DirLeft))

	// Original chain untouched
	assertPos(t, "old head", s.Head(), 10, 10)
}

func TestStepEatGrows(t *testing.T) {
	b := newTestBoard(t)
	s := straightLeftSnake(t)
	x, y := b.Coord(9, 10)
	b.Set(x, y, FoodTile)

	next, res, err := Step(s, b, GrowthImmediate)
	if err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	if !res.Ate || !res.Grew {
		t.Fatalf("Expected eat and grow, got %+v", res)
	}
	if next.Len() != 4 {
		t.Fatalf("Expected length 4, got %d", next.Len())
	}
	if !next.Head().Eating {
		t.Error("Expected head eating flag")
	}

	assertPos(t, "head", next.At(0), 9, 10)
	assertPos(t, "body 1", next.At(1), 10, 10)
	assertPos(t, "body 2", next.At(2), 11, 10)
	assertShape(t, "body 2", next.At(2), body(component.StraightLeft))
	assertPos(t, "tail", next.At(3), 12, 10)
	assertShape(t, "tail", next.At(3), tail(component.DirLeft))
	if err := next.Validate(); err != nil {
		t.Errorf("Grown chain invalid: %v", err)
	}

	// Following tick: food gone, head flag cleared, marker moved to segment 1
	b.Set(x, y, EmptyTile)
	after, res, err := Step(next, b, GrowthImmediate)
	if err != nil {
		t.Fatalf("Second step failed: %v", err)
	}
	if res.Grew || after.Len() != 4 {
		t.Errorf("Expected no growth on second tick, len=%d res=%+v", after.Len(), res)
	}
	if after.Head().Eating {
		t.Error("Expected head eating flag cleared")
	}
	if !after.At(1).Eating {
		t.Error("Expected eating marker on segment 1")
	}
}

func TestStepEatingMarkerReachesTail(t *testing.T) {
	b := newTestBoard(t)
	s := straightLeftSnake(t)
	x, y := b.Coord(9, 10)
	b.Set(x, y, FoodTile)

	s, _, err := Step(s, b, GrowthImmediate)
	if err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	b.Set(x, y, EmptyTile)

	// len 4: marker at 0 → 1 → 2 → 3 (tail) → gone
	wantAt := []int{1, 2, 3, -1}
	for tick, idx := range wantAt {
		s, _, err = Step(s, b, GrowthImmediate)
		if err != nil {
			t.Fatalf("tick %d: %v", tick, err)
		}
		for i := 0; i < s.Len(); i++ {
			if s.At(i).Eating != (i == idx) {
				t.Errorf("tick %d: segment %d eating=%v", tick, i, s.At(i).Eating)
			}
		}
		if s.Len() != 4 {
			t.Errorf("tick %d: Expected length 4, got %d", tick, s.Len())
		}
	}
}

func TestStepDigestGrowth(t *testing.T) {
	b := newTestBoard(t)
	s := straightLeftSnake(t)
	x, y := b.Coord(9, 10)
	b.Set(x, y, FoodTile)

	wantLen := []int{3, 3, 4, 4, 4}
	for tick, want := range wantLen {
		var err error
		s, _, err = Step(s, b, GrowthDigest)
		if err != nil {
			t.Fatalf("tick %d: %v", tick, err)
		}
		b.Set(x, y, EmptyTile)
		if s.Len() != want {
			t.Errorf("tick %d: Expected length %d, got %d", tick, want, s.Len())
		}
		if err := s.Validate(); err != nil {
			t.Errorf("tick %d: %v", tick, err)
		}
	}
	for i := 0; i < s.Len(); i++ {
		if s.At(i).Eating {
			t.Errorf("Expected flag consumed by growth, segment %d still eating", i)
		}
	}
}

func TestStepWrapsLeftEdge(t *testing.T) {
	b := newTestBoard(t)
	s, err := NewSnake([]component.Segment{
		seg(0, 5, head(component.DirLeft)),
		seg(1, 5, body(component.StraightLeft)),
		seg(2, 5, tail(component.DirLeft)),
	})
	if err != nil {
		t.Fatalf("NewSnake failed: %v", err)
	}

	next, _, err := Step(s, b, GrowthImmediate)
	if err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	assertPos(t, "head", next.Head(), 49, 5)
	if err := next.Validate(); err != nil {
		t.Errorf("Wrapped chain invalid: %v", err)
	}
}

func TestStepWrapsAllEdges(t *testing.T) {
	tests := []struct {
		name   string
		dir    component.Direction
		x, y   int
		wx, wy int
	}{
		{"Right edge", component.DirRight, 49, 3, 0, 3},
		{"Top edge", component.DirUp, 7, 0, 7, 19},
		{"Bottom edge", component.DirDown, 7, 19, 7, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBoard(t)
			back := tt.dir.Opposite()
			x1, y1 := Advance(seg(tt.x, tt.y, head(tt.dir)).X, seg(tt.x, tt.y, head(tt.dir)).Y, back)
			x2, y2 := Advance(x1, y1, back)
			straight, _ := component.Bend(tt.dir, tt.dir)
			s, err := NewSnake([]component.Segment{
				seg(tt.x, tt.y, head(tt.dir)),
				{X: x1, Y: y1, Shape: body(straight)},
				{X: x2, Y: y2, Shape: tail(tt.dir)},
			})
			if err != nil {
				t.Fatalf("NewSnake failed: %v", err)
			}
			next, _, err := Step(s, b, GrowthImmediate)
			if err != nil {
				t.Fatalf("Step failed: %v", err)
			}
			assertPos(t, "head", next.Head(), tt.wx, tt.wy)
		})
	}
}

func TestStepCornerPropagation(t *testing.T) {
	b := newTestBoard(t)
	s, err := NewSnake([]component.Segment{
		seg(10, 10, head(component.DirLeft)),
		seg(11, 10, body(component.StraightLeft)),
		seg(12, 10, body(component.StraightLeft)),
		seg(13, 10, tail(component.DirLeft)),
	})
	if err != nil {
		t.Fatalf("NewSnake failed: %v", err)
	}

	if !Turn(s, component.DirUp) {
		t.Fatal("Expected turn up to apply")
	}

	// Tick 1: corner forms behind the head
	s, _, err = Step(s, b, GrowthImmediate)
	if err != nil {
		t.Fatalf("tick 1: %v", err)
	}
	assertPos(t, "t1 head", s.At(0), 10, 9)
	assertShape(t, "t1 head", s.At(0), head(component.DirUp))
	assertPos(t, "t1 corner", s.At(1), 10, 10)
	assertShape(t, "t1 corner", s.At(1), body(component.BottomLeftFromRight))
	assertShape(t, "t1 body", s.At(2), body(component.StraightLeft))
	assertShape(t, "t1 tail", s.At(3), tail(component.DirLeft))

	// Tick 2: corner travels one slot back, new straight run behind the head
	s, _, err = Step(s, b, GrowthImmediate)
	if err != nil {
		t.Fatalf("tick 2: %v", err)
	}
	assertShape(t, "t2 body 1", s.At(1), body(component.StraightUp))
	assertPos(t, "t2 corner", s.At(2), 10, 10)
	assertShape(t, "t2 corner", s.At(2), body(component.BottomLeftFromRight))
	assertShape(t, "t2 tail", s.At(3), tail(component.DirLeft))

	// Tick 3: tail reaches the corner cell and turns up
	s, _, err = Step(s, b, GrowthImmediate)
	if err != nil {
		t.Fatalf("tick 3: %v", err)
	}
	assertPos(t, "t3 tail", s.At(3), 10, 10)
	assertShape(t, "t3 tail", s.At(3), tail(component.DirUp))
	for i := 1; i < 3; i++ {
		assertShape(t, "t3 body", s.At(i), body(component.StraightUp))
	}
	if err := s.Validate(); err != nil {
		t.Errorf("Chain invalid after corner passed: %v", err)
	}
}

func TestStepTwoSegmentChain(t *testing.T) {
	b := newTestBoard(t)
	s, err := NewSnake([]component.Segment{
		seg(5, 5, head(component.DirRight)),
		seg(4, 5, tail(component.DirRight)),
	})
	if err != nil {
		t.Fatalf("NewSnake failed: %v", err)
	}
	Turn(s, component.DirDown)

	next, _, err := Step(s, b, GrowthImmediate)
	if err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	assertPos(t, "head", next.At(0), 5, 6)
	assertPos(t, "tail", next.At(1), 5, 5)
	assertShape(t, "tail", next.At(1), tail(component.DirDown))

	x, y := b.Coord(5, 7)
	b.Set(x, y, FoodTile)
	grown, res, err := Step(next, b, GrowthImmediate)
	if err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	if !res.Grew || grown.Len() != 3 {
		t.Fatalf("Expected growth to 3, got len %d res %+v", grown.Len(), res)
	}
	assertShape(t, "body", grown.At(1), body(component.StraightDown))
	assertPos(t, "tail", grown.At(2), 5, 5)
	if err := grown.Validate(); err != nil {
		t.Errorf("Grown chain invalid: %v", err)
	}
}

func TestStepGrowAtCorner(t *testing.T) {
	b := newTestBoard(t)
	s, err := NewSnake([]component.Segment{
		seg(10, 10, head(component.DirLeft)),
		seg(11, 10, body(component.TopRightFromDown)),
		seg(11, 11, tail(component.DirUp)),
	})
	if err != nil {
		t.Fatalf("NewSnake failed: %v", err)
	}
	x, y := b.Coord(9, 10)
	b.Set(x, y, FoodTile)

	next, _, err := Step(s, b, GrowthImmediate)
	if err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	if next.Len() != 4 {
		t.Fatalf("Expected length 4, got %d", next.Len())
	}
	assertShape(t, "body 1", next.At(1), body(component.StraightLeft))
	assertPos(t, "corner", next.At(2), 11, 10)
	assertShape(t, "corner", next.At(2), body(component.TopRightFromDown))
	assertPos(t, "tail", next.At(3), 11, 11)
	assertShape(t, "tail", next.At(3), tail(component.DirUp))
}

func TestStepRejectsCorruptChain(t *testing.T) {
	b := newTestBoard(t)

	tests := []struct {
		name string
		segs []component.Segment
	}{
		{
			name: "Neck reversal",
			segs: []component.Segment{
				seg(10, 10, head(component.DirRight)),
				seg(11, 10, body(component.StraightLeft)),
				seg(12, 10, tail(component.DirLeft)),
			},
		},
		{
			name: "Body disagrees with predecessor",
			segs: []component.Segment{
				seg(10, 10, head(component.DirLeft)),
				seg(11, 10, body(component.StraightLeft)),
				seg(12, 10, body(component.StraightUp)),
				seg(12, 11, tail(component.DirUp)),
			},
		},
		{
			name: "Single segment",
			segs: []component.Segment{
				seg(10, 10, head(component.DirLeft)),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Bypass NewSnake validation to model out-of-band mutation
			s := &Snake{segments: tt.segs}
			_, _, err := Step(s, b, GrowthImmediate)
			if !errors.Is(err, ErrInternalConsistency) {
				t.Errorf("Expected ErrInternalConsistency, got %v", err)
			}
		})
	}
}

func TestStepUnknownPolicy(t *testing.T) {
	b := newTestBoard(t)
	_, _, err := Step(straightLeftSnake(t), b, GrowthPolicy(7))
	if !errors.Is(err, ErrInternalConsistency) {
		t.Errorf("Expected ErrInternalConsistency, got %v", err)
	}
}

// TestStepInvariantsRandomWalk drives random turns over a food-dense board and checks the
// length and chain invariants every tick
func TestStepInvariantsRandomWalk(t *testing.T) {
	for _, policy := range []GrowthPolicy{GrowthImmediate, GrowthDigest} {
		t.Run(policy.String(), func(t *testing.T) {
			rng := rand.New(rand.NewSource(42))
			b := newTestBoard(t)
			s := DefaultSnake(b)
			spawner := NewSpawner(rng, 20, 32)

			for tick := 0; tick < 2000; tick++ {
				b.RemoveSnake(s)
				oldFacing := s.Facing()
				Turn(s, component.Direction(rng.Intn(4)))
				if s.Facing() == oldFacing.Opposite() {
					t.Fatalf("tick %d: head reversed from %s to %s", tick, oldFacing, s.Facing())
				}

				before := s.Len()
				next, res, err := Step(s, b, policy)
				if err != nil {
					t.Fatalf("tick %d: %v", tick, err)
				}
				if policy == GrowthImmediate {
					want := before
					if next.Head().Eating {
						want++
					}
					if next.Len() != want {
						t.Fatalf("tick %d: Expected length %d, got %d", tick, want, next.Len())
					}
				} else if res.Grew && next.Len() != before+1 {
					t.Fatalf("tick %d: growth without length change", tick)
				}
				if err := next.Validate(); err != nil {
					t.Fatalf("tick %d: %v", tick, err)
				}

				if res.Ate {
					h := next.Head()
					b.Set(h.X, h.Y, EmptyTile)
				}
				s = next
				b.AddSnake(s)
				spawner.Replenish(b, 5)
				if b.CountFood() > 20 {
					t.Fatalf("tick %d: food over cap: %d", tick, b.CountFood())
				}
			}
		})
	}
}

package engine

import (
	"fmt"

	"github.com/lixenwraith/vi-snake/component"
)

// GrowthPolicy selects when a consumed food item lengthens the chain
type GrowthPolicy uint8

const (
	// GrowthImmediate grows in the tick the head eats; the eating flag then travels to
	// the tail as a digestion marker and is absorbed there
	GrowthImmediate GrowthPolicy = iota
	// GrowthDigest grows when the eating flag reaches the tail; growth consumes the flag
	GrowthDigest
)

func (p GrowthPolicy) String() string {
	switch p {
	case GrowthImmediate:
		return "immediate"
	case GrowthDigest:
		return "digest"
	}
	return "invalid"
}

// ParseGrowthPolicy resolves a policy name from configuration
func ParseGrowthPolicy(s string) (GrowthPolicy, bool) {
	switch s {
	case "immediate", "":
		return GrowthImmediate, true
	case "digest":
		return GrowthDigest, true
	}
	return 0, false
}

// StepResult reports what happened during one advance
type StepResult struct {
	Ate  bool // head moved onto food
	Grew bool // chain length increased by one
}

// Step advances the chain one cell and returns the new chain
// The board is only read (food detection); s is left untouched so callers always hold a
// complete chain, either the old one or the new one
//
// Ripple rule: every segment behind the head moves to where its predecessor was and
// takes its predecessor's pre-tick eating flag. Segment 1 derives its orientation from
// its old exit direction and the head's facing; deeper segments inherit the
// predecessor's orientation unchanged, so corners travel backward one slot per tick
func Step(s *Snake, b *Board, policy GrowthPolicy) (*Snake, StepResult, error) {
	old := s.segments
	n := len(old)
	if n < 2 {
		return nil, StepResult{}, fmt.Errorf("%w: chain length %d", ErrInternalConsistency, n)
	}

	var res StepResult
	head := old[0]
	facing := head.Shape.Dir()
	hx, hy := Advance(head.X, head.Y, facing)
	res.Ate = b.At(hx, hy).IsFood()

	switch policy {
	case GrowthImmediate:
		res.Grew = res.Ate
	case GrowthDigest:
		res.Grew = old[n-2].Eating
	default:
		return nil, StepResult{}, fmt.Errorf("%w: unknown growth policy %d", ErrInternalConsistency, policy)
	}

	size := n
	if res.Grew {
		size++
	}
	next := make([]component.Segment, size, size+1)
	next[0] = component.Segment{X: hx, Y: hy, Shape: component.HeadShape(facing), Eating: res.Ate}

	// Body slots: 1..n-2 on a plain move, 1..n-1 when growing (the old tail cell is
	// kept by a new tail appended behind the shifted chain)
	last := size - 2
	for i := 1; i <= last; i++ {
		pred := old[i-1]
		o, err := rippleOrientation(old, i, facing)
		if err != nil {
			return nil, StepResult{}, err
		}
		eating := pred.Eating
		if res.Grew && policy == GrowthDigest && i == last {
			eating = false
		}
		next[i] = component.Segment{X: pred.X, Y: pred.Y, Shape: component.BodyShape(o), Eating: eating}
	}

	if res.Grew {
		tail := old[n-1]
		next[size-1] = component.Segment{X: tail.X, Y: tail.Y, Shape: component.TailShape(tail.Shape.Dir())}
	} else {
		pred := old[n-2]
		ahead := next[n-2]
		dir, err := tailDirection(old[n-1], ahead)
		if err != nil {
			return nil, StepResult{}, err
		}
		next[n-1] = component.Segment{X: pred.X, Y: pred.Y, Shape: component.TailShape(dir), Eating: pred.Eating}
	}

	return &Snake{segments: next}, res, nil
}

// rippleOrientation derives the new orientation of the segment landing in slot i
// The segment formerly at i moves into the cell of old[i-1]
func rippleOrientation(old []component.Segment, i int, facing component.Direction) (component.Orientation, error) {
	mover := old[i]
	if i == 1 {
		// Entered along the old neck link, leaves in the head's (possibly new) facing
		o, ok := component.Bend(mover.Shape.Out(), facing)
		if !ok {
			return 0, fmt.Errorf("%w: segment 1 cannot bend from %s to head facing %s",
				ErrInternalConsistency, mover.Shape.Out(), facing)
		}
		return o, nil
	}

	pred := old[i-1]
	if pred.Shape.Kind() != component.KindBody {
		return 0, fmt.Errorf("%w: segment %d expected body predecessor, got %s",
			ErrInternalConsistency, i, pred.Shape)
	}
	if mover.Shape.Out() != pred.Shape.In() {
		return 0, fmt.Errorf("%w: segment %d leaves %s but predecessor %s is entered %s",
			ErrInternalConsistency, i, mover.Shape.Out(), pred.Shape, pred.Shape.In())
	}
	return pred.Shape.Orientation(), nil
}

// tailDirection recomputes the tail direction toward its new predecessor
// A body predecessor is entered along its In direction; a head predecessor (two-segment
// chain) is entered along its facing
func tailDirection(tail, ahead component.Segment) (component.Direction, error) {
	switch ahead.Shape.Kind() {
	case component.KindBody, component.KindHead:
		dir := ahead.Shape.In()
		if !dir.Valid() {
			return 0, fmt.Errorf("%w: tail predecessor %s has no entry direction", ErrInternalConsistency, ahead.Shape)
		}
		if dir == tail.Shape.Dir().Opposite() {
			return 0, fmt.Errorf("%w: tail %s cannot reverse into %s", ErrInternalConsistency, tail.Shape, ahead.Shape)
		}
		return dir, nil
	}
	return 0, fmt.Errorf("%w: tail predecessor is %s", ErrInternalConsistency, ahead.Shape)
}

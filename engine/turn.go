package engine

import "github.com/lixenwraith/vi-snake/component"

// Turn points the head toward dir
// Reversals into the neck are dropped silently; the same direction is a no-op
// Returns true only when the facing changed
func Turn(s *Snake, dir component.Direction) bool {
	if !dir.Valid() {
		return false
	}
	facing := s.Facing()
	if dir == facing || dir == facing.Opposite() || dir == s.neck().Opposite() {
		return false
	}

	s.segments[0].Shape = component.HeadShape(dir)
	return true
}

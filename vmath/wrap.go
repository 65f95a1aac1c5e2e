package vmath

import (
	"errors"
	"fmt"
)

// ErrInvalidModulus is returned when a wrapping coordinate is built with a non-positive extent
var ErrInvalidModulus = errors.New("invalid modulus")

// Wrap is an integer confined to [0, modulus) that only moves in unit steps
// Zero value is not usable; construct with NewWrap
type Wrap struct {
	value   int
	modulus int
}

// NewWrap creates a coordinate bound to modulus, reducing value into range
func NewWrap(value, modulus int) (Wrap, error) {
	if modulus <= 0 {
		return Wrap{}, fmt.Errorf("%w: %d", ErrInvalidModulus, modulus)
	}
	v := value % modulus
	if v < 0 {
		v += modulus
	}
	return Wrap{value: v, modulus: modulus}, nil
}

// MustWrap is NewWrap for fixed extents known to be valid
func MustWrap(value, modulus int) Wrap {
	w, err := NewWrap(value, modulus)
	if err != nil {
		panic(err)
	}
	return w
}

// Inc returns the coordinate one step forward, wrapping modulus-1 to 0
func (w Wrap) Inc() Wrap {
	if w.value == w.modulus-1 {
		w.value = 0
	} else {
		w.value++
	}
	return w
}

// Dec returns the coordinate one step back, wrapping 0 to modulus-1
func (w Wrap) Dec() Wrap {
	if w.value == 0 {
		w.value = w.modulus - 1
	} else {
		w.value--
	}
	return w
}

// Index returns the value for board indexing
func (w Wrap) Index() int { return w.value }

// Modulus returns the extent the coordinate wraps at
func (w Wrap) Modulus() int { return w.modulus }

func (w Wrap) String() string {
	return fmt.Sprintf("%d/%d", w.value, w.modulus)
}

package engine

import (
	"fmt"

	"github.com/lixenwraith/vi-snake/vmath"
)

// Board is a dense width×height grid of tiles with wrapping edges
// It is a derived view: the snake is asserted into it before render and removed before
// the next move; food is the only state it owns
type Board struct {
	Width  int
	Height int
	tiles  []Tile // 1D array: index = y*Width + x
}

// NewBoard creates an empty board
func NewBoard(width, height int) (*Board, error) {
	if _, err := vmath.NewWrap(0, width); err != nil {
		return nil, fmt.Errorf("board width: %w", err)
	}
	if _, err := vmath.NewWrap(0, height); err != nil {
		return nil, fmt.Errorf("board height: %w", err)
	}
	return &Board{
		Width:  width,
		Height: height,
		tiles:  make([]Tile, width*height),
	}, nil
}

// Coord binds raw integers to the board extents, wrapping out-of-range values
func (b *Board) Coord(x, y int) (vmath.Wrap, vmath.Wrap) {
	return vmath.MustWrap(x, b.Width), vmath.MustWrap(y, b.Height)
}

// At returns the tile at (x, y)
func (b *Board) At(x, y vmath.Wrap) Tile {
	return b.tiles[y.Index()*b.Width+x.Index()]
}

// Set replaces the tile at (x, y)
func (b *Board) Set(x, y vmath.Wrap, t Tile) {
	b.tiles[y.Index()*b.Width+x.Index()] = t
}

// TileAt reads by raw index; used by renderers walking rows
func (b *Board) TileAt(x, y int) Tile {
	return b.tiles[y*b.Width+x]
}

// ClearAll resets every tile to empty
func (b *Board) ClearAll() {
	clear(b.tiles)
}

// CountFood scans for food tiles, O(width×height)
func (b *Board) CountFood() int {
	n := 0
	for _, t := range b.tiles {
		if t.Kind == TileFood {
			n++
		}
	}
	return n
}

// IsFull reports whether no empty tile remains
func (b *Board) IsFull() bool {
	for _, t := range b.tiles {
		if t.Kind == TileEmpty {
			return false
		}
	}
	return true
}

// emptyCells appends the indices of all empty tiles to dst
func (b *Board) emptyCells(dst []int) []int {
	for i, t := range b.tiles {
		if t.Kind == TileEmpty {
			dst = append(dst, i)
		}
	}
	return dst
}

// AddSnake asserts every segment into the board, head last so it stays visible when the
// chain overlaps itself under wraparound
func (b *Board) AddSnake(s *Snake) {
	for i := len(s.segments) - 1; i >= 0; i-- {
		seg := s.segments[i]
		b.Set(seg.X, seg.Y, SnakeTile(seg))
	}
}

// RemoveSnake clears the cells the snake occupies
// Only snake tiles are cleared; food elsewhere is untouched
func (b *Board) RemoveSnake(s *Snake) {
	for _, seg := range s.segments {
		if b.At(seg.X, seg.Y).Kind == TileSnake {
			b.Set(seg.X, seg.Y, EmptyTile)
		}
	}
}

// Equal compares dimensions and every tile
func (b *Board) Equal(other *Board) bool {
	if b.Width != other.Width || b.Height != other.Height {
		return false
	}
	for i := range b.tiles {
		if b.tiles[i] != other.tiles[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy
func (b *Board) Clone() *Board {
	c := &Board{Width: b.Width, Height: b.Height, tiles: make([]Tile, len(b.tiles))}
	copy(c.tiles, b.tiles)
	return c
}

package render

import (
	"fmt"

	"github.com/lixenwraith/vi-snake/component"
	"github.com/lixenwraith/vi-snake/engine"
)

// GlyphSet maps tile contents to runes
// Direction-indexed arrays use component.Direction order: up, right, down, left
type GlyphSet struct {
	Empty rune
	Food  rune

	Head       [4]rune
	HeadEating [4]rune
	Tail       [4]rune
	TailEating rune

	Horizontal       rune
	Vertical         rune
	Corners          [5]rune // indexed by component.Corner; CornerNone unused
	HorizontalEating rune
	VerticalEating   rune
	CornersEating    [5]rune

	// Frame
	FrameH, FrameV                     rune
	FrameTL, FrameTR, FrameBL, FrameBR rune
}

// BoxGlyphs draws the body with heavy box-drawing lines and switches to double lines
// where food is being digested
var BoxGlyphs = GlyphSet{
	Empty: ' ',
	Food:  '◆',

	Head:       [4]rune{'▲', '▶', '▼', '◀'},
	HeadEating: [4]rune{'△', '▷', '▽', '◁'},
	Tail:       [4]rune{'╹', '╺', '╻', '╸'},
	TailEating: '●',

	Horizontal:       '━',
	Vertical:         '┃',
	Corners:          [5]rune{' ', '┏', '┓', '┗', '┛'},
	HorizontalEating: '═',
	VerticalEating:   '║',
	CornersEating:    [5]rune{' ', '╔', '╗', '╚', '╝'},

	FrameH: '─', FrameV: '│',
	FrameTL: '┌', FrameTR: '┐', FrameBL: '└', FrameBR: '┘',
}

// ASCIIGlyphs is the fallback for terminals without box-drawing fonts
var ASCIIGlyphs = GlyphSet{
	Empty: ' ',
	Food:  '*',

	Head:       [4]rune{'^', '>', 'v', '<'},
	HeadEating: [4]rune{'A', '}', 'V', '{'},
	Tail:       [4]rune{'\'', '-', '.', '-'},
	TailEating: 'o',

	Horizontal:       '-',
	Vertical:         '|',
	Corners:          [5]rune{' ', '+', '+', '+', '+'},
	HorizontalEating: '=',
	VerticalEating:   'H',
	CornersEating:    [5]rune{' ', '#', '#', '#', '#'},

	FrameH: '-', FrameV: '|',
	FrameTL: '+', FrameTR: '+', FrameBL: '+', FrameBR: '+',
}

// GlyphSetByName resolves a configured glyph set
func GlyphSetByName(name string) (*GlyphSet, error) {
	switch name {
	case "box", "":
		return &BoxGlyphs, nil
	case "ascii":
		return &ASCIIGlyphs, nil
	}
	return nil, fmt.Errorf("unknown glyph set: %q", name)
}

// Glyph returns the rune for a tile
func (g *GlyphSet) Glyph(t engine.Tile) rune {
	switch t.Kind {
	case engine.TileFood:
		return g.Food
	case engine.TileSnake:
		return g.segment(t.Shape, t.Eating)
	}
	return g.Empty
}

func (g *GlyphSet) segment(s component.Shape, eating bool) rune {
	switch s.Kind() {
	case component.KindHead:
		if eating {
			return g.HeadEating[s.Dir()]
		}
		return g.Head[s.Dir()]
	case component.KindTail:
		if eating {
			return g.TailEating
		}
		return g.Tail[s.Dir()]
	}

	o := s.Orientation()
	switch {
	case o.IsHorizontal():
		if eating {
			return g.HorizontalEating
		}
		return g.Horizontal
	case o.IsVertical():
		if eating {
			return g.VerticalEating
		}
		return g.Vertical
	}
	if eating {
		return g.CornersEating[o.Corner()]
	}
	return g.Corners[o.Corner()]
}

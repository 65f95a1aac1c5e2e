package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-snake/component"
	"github.com/lixenwraith/vi-snake/engine"
)

const tooSmallMessage = "terminal too small"

// TerminalRenderer draws the board inside a frame with the status line below it
// One board tile maps to one terminal cell at offset (1,1)
type TerminalRenderer struct {
	screen tcell.Screen
	glyphs *GlyphSet
	styles Styles
}

// NewTerminalRenderer creates a renderer for screen
func NewTerminalRenderer(screen tcell.Screen, glyphs *GlyphSet, styles Styles) *TerminalRenderer {
	return &TerminalRenderer{
		screen: screen,
		glyphs: glyphs,
		styles: styles,
	}
}

// Render draws the entire frame and flushes it
func (r *TerminalRenderer) Render(b *engine.Board, status string) {
	r.screen.Clear()

	width, height := r.screen.Size()
	if width < b.Width+2 || height < b.Height+3 {
		r.drawText(0, 0, tooSmallMessage, r.styles.Status)
		r.screen.Show()
		return
	}

	r.drawFrame(b.Width, b.Height)

	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			tile := b.TileAt(x, y)
			r.screen.SetContent(x+1, y+1, r.glyphs.Glyph(tile), nil, r.style(tile))
		}
	}

	r.drawText(0, b.Height+2, status, r.styles.Status)
	r.screen.Show()
}

func (r *TerminalRenderer) style(t engine.Tile) tcell.Style {
	switch t.Kind {
	case engine.TileFood:
		return r.styles.Food
	case engine.TileSnake:
		if t.Eating {
			return r.styles.Eating
		}
		if t.Shape.Kind() == component.KindHead {
			return r.styles.Head
		}
		return r.styles.Body
	}
	return r.styles.Empty
}

func (r *TerminalRenderer) drawFrame(w, h int) {
	g, st := r.glyphs, r.styles.Border
	right, bottom := w+1, h+1

	r.screen.SetContent(0, 0, g.FrameTL, nil, st)
	r.screen.SetContent(right, 0, g.FrameTR, nil, st)
	r.screen.SetContent(0, bottom, g.FrameBL, nil, st)
	r.screen.SetContent(right, bottom, g.FrameBR, nil, st)
	for x := 1; x <= w; x++ {
		r.screen.SetContent(x, 0, g.FrameH, nil, st)
		r.screen.SetContent(x, bottom, g.FrameH, nil, st)
	}
	for y := 1; y <= h; y++ {
		r.screen.SetContent(0, y, g.FrameV, nil, st)
		r.screen.SetContent(right, y, g.FrameV, nil, st)
	}
}

func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) {
	for _, ch := range text {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

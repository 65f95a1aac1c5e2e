package render

import "github.com/lixenwraith/vi-snake/engine"

// Renderer draws one frame from a complete board view and a status line
type Renderer interface {
	Render(b *engine.Board, status string)
}

package render

import "github.com/gdamore/tcell/v2"

// RGB color definitions
var (
	RgbSnakeBody   = tcell.NewRGBColor(0, 200, 0)     // Normal Green
	RgbSnakeHead   = tcell.NewRGBColor(50, 255, 50)   // Bright Green
	RgbSnakeEating = tcell.NewRGBColor(255, 255, 0)   // Bright Yellow while digesting
	RgbFood        = tcell.NewRGBColor(255, 80, 80)   // Normal Red
	RgbBorder      = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbStatusBar   = tcell.NewRGBColor(255, 255, 255) // White
	RgbBackground  = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
)

// Styles groups the per-tile-kind styles
type Styles struct {
	Empty  tcell.Style
	Food   tcell.Style
	Head   tcell.Style
	Body   tcell.Style
	Eating tcell.Style
	Border tcell.Style
	Status tcell.Style
}

// DefaultStyles returns the truecolor palette
func DefaultStyles() Styles {
	base := tcell.StyleDefault.Background(RgbBackground)
	return Styles{
		Empty:  base,
		Food:   base.Foreground(RgbFood),
		Head:   base.Foreground(RgbSnakeHead).Bold(true),
		Body:   base.Foreground(RgbSnakeBody),
		Eating: base.Foreground(RgbSnakeEating),
		Border: base.Foreground(RgbBorder),
		Status: tcell.StyleDefault.Foreground(RgbStatusBar),
	}
}

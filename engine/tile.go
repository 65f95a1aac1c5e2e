package engine

import "github.com/lixenwraith/vi-snake/component"

// TileKind discriminates board cell contents
type TileKind uint8

const (
	TileEmpty TileKind = iota
	TileFood
	TileSnake
)

// Tile is a single board cell
// Shape and Eating are meaningful only for TileSnake
type Tile struct {
	Kind   TileKind
	Shape  component.Shape
	Eating bool
}

// EmptyTile is the zero tile
var EmptyTile = Tile{}

// FoodTile is a cell holding food
var FoodTile = Tile{Kind: TileFood}

// SnakeTile builds the tile asserted by a segment
func SnakeTile(seg component.Segment) Tile {
	return Tile{Kind: TileSnake, Shape: seg.Shape, Eating: seg.Eating}
}

// IsEmpty reports whether nothing occupies the tile
func (t Tile) IsEmpty() bool { return t.Kind == TileEmpty }

// IsFood reports whether the tile holds food
func (t Tile) IsFood() bool { return t.Kind == TileFood }

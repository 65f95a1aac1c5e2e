package engine

import (
	"fmt"

	"github.com/lixenwraith/vi-snake/component"
)

// Config holds the simulation parameters
type Config struct {
	Width        int
	Height       int
	MaxFood      int
	FoodPerTick  int
	SpawnRetries int
	Growth       GrowthPolicy
}

// TickResult summarizes one tick for the session and renderer
type TickResult struct {
	Tick         uint64
	Turned       bool // pending turn applied to the head
	TurnRejected bool // pending turn dropped as a reversal
	Ate          bool
	Grew         bool
	Spawned      int
	Length       int
	Food         int
}

// Game owns the board, the chain and the spawner; it is driven by a single loop
// and is not safe for concurrent use
type Game struct {
	cfg     Config
	board   *Board
	snake   *Snake
	spawner *Spawner

	pending    component.Direction
	hasPending bool

	tick  uint64
	eaten int
}

// NewGame builds the board, places the starting chain and the first batch of food
func NewGame(cfg Config, src Source) (*Game, error) {
	board, err := NewBoard(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	snake := DefaultSnake(board)
	if err := snake.Validate(); err != nil {
		return nil, fmt.Errorf("start shape: %w", err)
	}
	return newGame(cfg, board, snake, src), nil
}

// NewGameWithSnake starts from a caller-supplied chain bound to a board of cfg size
func NewGameWithSnake(cfg Config, segs []component.Segment, src Source) (*Game, error) {
	board, err := NewBoard(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	snake, err := NewSnake(segs)
	if err != nil {
		return nil, err
	}
	head := snake.Head()
	if head.X.Modulus() != board.Width || head.Y.Modulus() != board.Height {
		return nil, fmt.Errorf("%w: chain bound to %dx%d, board is %dx%d", ErrInternalConsistency,
			head.X.Modulus(), head.Y.Modulus(), board.Width, board.Height)
	}
	return newGame(cfg, board, snake, src), nil
}

func newGame(cfg Config, board *Board, snake *Snake, src Source) *Game {
	g := &Game{
		cfg:     cfg,
		board:   board,
		snake:   snake,
		spawner: NewSpawner(src, cfg.MaxFood, cfg.SpawnRetries),
	}
	board.AddSnake(snake)
	g.spawner.Replenish(board, cfg.FoodPerTick)
	return g
}

// Turn queues a direction for the next tick; the latest request wins
func (g *Game) Turn(dir component.Direction) {
	g.pending = dir
	g.hasPending = true
}

// Tick runs one logical step: turn, advance, refresh the board, replenish food
// An error means the chain broke its invariants; the game must not continue
func (g *Game) Tick() (TickResult, error) {
	var res TickResult

	g.board.RemoveSnake(g.snake)

	if g.hasPending {
		if Turn(g.snake, g.pending) {
			res.Turned = true
		} else if g.pending != g.snake.Facing() {
			res.TurnRejected = true
		}
		g.hasPending = false
	}

	next, step, err := Step(g.snake, g.board, g.cfg.Growth)
	if err != nil {
		g.board.AddSnake(g.snake)
		return res, err
	}

	head := next.Head()
	if step.Ate {
		g.board.Set(head.X, head.Y, EmptyTile)
		g.eaten++
	}
	g.snake = next
	g.board.AddSnake(next)

	res.Spawned = g.spawner.Replenish(g.board, g.cfg.FoodPerTick)

	g.tick++
	res.Tick = g.tick
	res.Ate = step.Ate
	res.Grew = step.Grew
	res.Length = next.Len()
	res.Food = g.board.CountFood()
	return res, nil
}

// Board returns the live board view
func (g *Game) Board() *Board { return g.board }

// Snake returns the current chain
func (g *Game) Snake() *Snake { return g.snake }

// Eaten returns the number of food items consumed so far
func (g *Game) Eaten() int { return g.eaten }

// Ticks returns the number of completed ticks
func (g *Game) Ticks() uint64 { return g.tick }

// Config returns the parameters the game was built with
func (g *Game) Config() Config { return g.cfg }

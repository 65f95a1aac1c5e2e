package engine

// Source supplies uniform integers in [0, n); *rand.Rand satisfies it
type Source interface {
	Intn(n int) int
}

// Spawner places food on random empty tiles up to a concurrent cap
type Spawner struct {
	src     Source
	max     int
	retries int
	free    []int // scratch for the free-cell fallback
}

// NewSpawner creates a spawner capped at max food tiles
// retries bounds rejection sampling before falling back to a scan of empty cells
func NewSpawner(src Source, max, retries int) *Spawner {
	if retries < 1 {
		retries = 1
	}
	return &Spawner{src: src, max: max, retries: retries}
}

// Max returns the food cap
func (s *Spawner) Max() int { return s.max }

// SpawnOne places one food item
// No-op when the board already holds max food or has no empty tile
func (s *Spawner) SpawnOne(b *Board) bool {
	if b.CountFood() >= s.max || b.IsFull() {
		return false
	}

	// Rejection sampling; cheap while the board is mostly empty
	for range s.retries {
		x := s.src.Intn(b.Width)
		y := s.src.Intn(b.Height)
		idx := y*b.Width + x
		if b.tiles[idx].Kind == TileEmpty {
			b.tiles[idx] = FoodTile
			return true
		}
	}

	// Dense board: pick uniformly among the cells known to be empty
	s.free = b.emptyCells(s.free[:0])
	idx := s.free[s.src.Intn(len(s.free))]
	b.tiles[idx] = FoodTile
	return true
}

// Replenish calls SpawnOne up to n times and returns how many items were placed
func (s *Spawner) Replenish(b *Board, n int) int {
	placed := 0
	for range n {
		if !s.SpawnOne(b) {
			break
		}
		placed++
	}
	return placed
}

package snake

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/snake-arcade/internal/core"
)

// ErrSpawnExhausted is returned when every grid cell is occupied.
var ErrSpawnExhausted = errors.New("snake: no free cell to spawn into")

// samplingFactor bounds rejection sampling to samplingFactor*area attempts
// before falling back to a scan of the free cells.
const samplingFactor = 4

// Spawner picks random free cells on a grid.
type Spawner struct {
	grid core.Grid
	rng  *rand.Rand
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(grid core.Grid, rng *rand.Rand) *Spawner {
	return &Spawner{grid: grid, rng: rng}
}

// Spawn returns a uniformly random cell not in occupied.
// It rejection-samples first, then scans for the remaining free cells,
// so it always terminates.
func (s *Spawner) Spawn(occupied map[core.Cell]struct{}) (core.Cell, error) {
	area := s.grid.Area()
	if area == 0 {
		return core.Cell{}, ErrSpawnExhausted
	}

	for range samplingFactor * area {
		c := core.Cell{X: s.rng.Intn(s.grid.Width), Y: s.rng.Intn(s.grid.Height)}
		if _, taken := occupied[c]; !taken {
			return c, nil
		}
	}

	free := make([]core.Cell, 0, max(area-len(occupied), 0))
	for y := 0; y < s.grid.Height; y++ {
		for x := 0; x < s.grid.Width; x++ {
			c := core.Cell{X: x, Y: y}
			if _, taken := occupied[c]; !taken {
				free = append(free, c)
			}
		}
	}
	if len(free) == 0 {
		return core.Cell{}, ErrSpawnExhausted
	}
	return free[s.rng.Intn(len(free))], nil
}

package dice

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/jeopardy/internal/dice Roller

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Roller picks random numbers, used to hide daily doubles on the board
type Roller interface {
	// Roll returns a value between 1 and sides inclusive
	Roll(sides int) int
}

type roller struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// Config for dice roller
type Config struct {
	// Seed makes the roll sequence repeatable; zero seeds from the clock
	Seed uint64
}

// New creates a new dice roller. The roller is safe for concurrent use.
func New(cfg *Config) *roller {
	seed := uint64(time.Now().UnixNano())
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	}

	return &roller{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Roll returns a value between 1 and sides inclusive, or 0 for a die
// without sides
func (r *roller) Roll(sides int) int {
	if sides < 1 {
		return 0
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.IntN(sides) + 1
}

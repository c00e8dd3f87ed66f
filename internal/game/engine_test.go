package game

import (
	"math/rand"
	"testing"

	"github.com/avoigt/kapellmeister/internal/config"
)

// scriptRand replays a fixed script of draws so tests can steer every
// probabilistic branch. Exhausted scripts return "nothing happens"
// values: Float64 of 0.999 fails every chance check, Intn returns 0.
type scriptRand struct {
	floats []float64
	ints   []int
}

func (r *scriptRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.999
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	if v >= n {
		v = n - 1
	}
	return v
}

func seededEngine(seed int64) *Engine {
	return NewEngine(config.DefaultBalance(), rand.New(rand.NewSource(seed)))
}

func scriptedEngine(r *scriptRand) *Engine {
	return NewEngine(config.DefaultBalance(), r)
}

func TestIntBetweenBounds(t *testing.T) {
	e := seededEngine(7)
	for i := 0; i < 1000; i++ {
		v := e.intBetween(-10, 8)
		if v < -10 || v > 8 {
			t.Fatalf("intBetween(-10, 8) = %d, out of range", v)
		}
	}
	if got := e.intBetween(5, 5); got != 5 {
		t.Errorf("intBetween(5, 5) = %d, want 5", got)
	}
}

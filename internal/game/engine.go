package game

import (
	"errors"
	"math/rand"
	"time"

	"github.com/avoigt/kapellmeister/internal/config"
)

// Rand is the random source the engine draws from. *rand.Rand satisfies
// it; tests substitute a scripted source to make every branch
// deterministic.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Player actions the engine rejects. The shell checks affordances before
// offering an action, so hitting one of these mid-game is a shell bug,
// but the engine still refuses rather than producing an invalid state.
var (
	ErrAlreadyComposing  = errors.New("a composition is already in progress")
	ErrNoWorkInProgress  = errors.New("no composition in progress")
	ErrWorkNotReady      = errors.New("the work needs more weeks before it can be finished")
	ErrNoPendingPremiere = errors.New("no finished work awaits a premiere")
	ErrPremierePending   = errors.New("a finished work already awaits its premiere")
	ErrNoPendingRevival  = errors.New("no revival opportunity is pending")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrReputationTooLow  = errors.New("reputation too low")
	ErrLowInspiration    = errors.New("insufficient inspiration")
	ErrAlreadyPurchased  = errors.New("upgrade already purchased")
	ErrUnknownUpgrade    = errors.New("unknown upgrade")
	ErrGameOver          = errors.New("the game is over")
)

// Engine evaluates all state transitions. It owns no game state itself,
// only tuning values and the random source.
type Engine struct {
	bal config.Balance
	rng Rand
}

// NewEngine creates an engine with the given balance and random source.
func NewEngine(bal config.Balance, rng Rand) *Engine {
	return &Engine{bal: bal, rng: rng}
}

// NewDefaultEngine creates an engine with shipped balance values and a
// time-seeded random source. seed 0 means seed from the clock.
func NewDefaultEngine(seed int64) *Engine {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return NewEngine(config.DefaultBalance(), rand.New(rand.NewSource(seed)))
}

// chance returns true with probability p.
func (e *Engine) chance(p float64) bool {
	return e.rng.Float64() < p
}

// intBetween returns a uniform integer in [lo, hi] inclusive.
func (e *Engine) intBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + e.rng.Intn(hi-lo+1)
}

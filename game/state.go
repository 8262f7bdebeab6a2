package game

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Game is one playthrough of the dice game. Every turn the player either
// rerolls the die or banks its current value.
type Game struct {
	Seed      uint64 // Seed of the game's own generator
	NumSides  int    // Faces on the die
	NumTurns  int    // Turns in a full game
	Rolls     int    // Turns remaining
	Bankroll  int    // Sum of all banked die values
	DieResult int    // Last rolled value, starts at 1 so it is always a valid face
	values    *ExpectedValues
	rng       *rand.Rand
}

// NewGame builds a game with its own expected value table and a generator seeded with seed.
func NewGame(numTurns, numSides int, seed uint64) *Game {
	values := NewExpectedValues(numTurns, numSides)
	values.Calculate()
	return &Game{
		Seed:      seed,
		NumSides:  numSides,
		NumTurns:  numTurns,
		Rolls:     numTurns,
		Bankroll:  0,
		DieResult: 1,
		values:    values,
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// Play runs the game to completion under strategy and returns the final bankroll.
func (g *Game) Play(strategy Strategy) int {
	for !g.IsOver() {
		if strategy.ShouldRoll(g) {
			g.Roll()
		} else {
			g.Take()
		}
		log.Trace().
			Str("strategy", strategy.Name()).
			Uint64("seed", g.Seed).
			Int("rolls", g.Rolls).
			Int("bankroll", g.Bankroll).
			Int("die_result", g.DieResult).
			Float64("ev", g.ExpectedValue()).
			Bool("should_roll", g.ShouldRoll()).
			Msg("turn played")
	}
	return g.Bankroll
}

func (g *Game) Roll() {
	g.Rolls--
	g.DieResult = g.rng.Intn(g.NumSides) + 1
}

func (g *Game) Take() {
	g.Bankroll += g.DieResult
	g.Rolls--
}

// TakeRest banks the current die for every remaining turn.
func (g *Game) TakeRest() {
	for !g.IsOver() {
		g.Take()
	}
}

func (g *Game) IsOver() bool {
	return g.Rolls == 0
}

// ExpectedValue is the table entry for the current state.
func (g *Game) ExpectedValue() float64 {
	return g.values.Get(g.Rolls, g.DieResult)
}

// ShouldRoll reports whether rerolling is worth more than the current die.
func (g *Game) ShouldRoll() bool {
	return g.ExpectedValue() > float64(g.DieResult)
}

func (g *Game) String() string {
	return fmt.Sprintf("seed: %d, rolls: %d, bankroll: %d, die_result: %d, ev: %v, should_roll: %t",
		g.Seed, g.Rolls, g.Bankroll, g.DieResult, g.ExpectedValue(), g.ShouldRoll())
}

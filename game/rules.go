package game

// Strategy decides, for the current state of a game, whether to reroll the die
// or bank its current value.
type Strategy interface {
	Name() string
	ShouldRoll(g *Game) bool
}

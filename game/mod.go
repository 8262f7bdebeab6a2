// Package game implements the dice game: a die is rolled over a fixed number
// of turns and each turn the player either rerolls or banks the current face.
package game

// Strategies returns the two strategies compared by a simulation, in order.
func Strategies() (Strategy, Strategy) {
	return NewExpectedValueStrategy(), NewMaxFaceStrategy()
}

// meta/meta.go
package meta

// NUM_SIDES defines the number of faces on the die.
const NUM_SIDES = 20

// NUM_TURNS defines the number of turns in a single game.
const NUM_TURNS = 100

// OUTPUT_DIR is where result logs go when no explicit path is given.
const OUTPUT_DIR = "output"

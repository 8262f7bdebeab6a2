package game

// ExpectedValueStrategy rerolls whenever the expected value table beats the current die.
type ExpectedValueStrategy struct{}

func NewExpectedValueStrategy() *ExpectedValueStrategy {
	return &ExpectedValueStrategy{}
}

func (s *ExpectedValueStrategy) Name() string {
	return "strat1"
}

func (s *ExpectedValueStrategy) ShouldRoll(g *Game) bool {
	return g.ShouldRoll()
}

// MaxFaceStrategy only ever banks the highest face of the die.
type MaxFaceStrategy struct{}

func NewMaxFaceStrategy() *MaxFaceStrategy {
	return &MaxFaceStrategy{}
}

func (s *MaxFaceStrategy) Name() string {
	return "strat2"
}

func (s *MaxFaceStrategy) ShouldRoll(g *Game) bool {
	return g.DieResult != g.NumSides
}

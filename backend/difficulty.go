package main

type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
	DifficultyImpossible
)

// MaxDepth bounds the minimax search. Easy and Medium rarely reach a
// decisive terminal within their bound; they lean on the win/block and
// positional shortcuts instead.
func (d Difficulty) MaxDepth() int {
	switch d {
	case DifficultyEasy:
		return 1
	case DifficultyMedium:
		return 3
	case DifficultyHard:
		return 6
	default:
		return 9
	}
}

// MistakeProbability is the chance a turn is replaced by a uniformly random
// legal move, independent of the tier's normal strategy.
func (d Difficulty) MistakeProbability() float64 {
	switch d {
	case DifficultyEasy:
		return 0.4
	case DifficultyMedium:
		return 0.15
	case DifficultyHard:
		return 0.05
	default:
		return 0.0
	}
}

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyMedium:
		return "medium"
	case DifficultyHard:
		return "hard"
	default:
		return "impossible"
	}
}

func ParseDifficulty(raw string) (Difficulty, bool) {
	switch raw {
	case "easy":
		return DifficultyEasy, true
	case "medium":
		return DifficultyMedium, true
	case "hard":
		return DifficultyHard, true
	case "impossible":
		return DifficultyImpossible, true
	default:
		return DifficultyImpossible, false
	}
}

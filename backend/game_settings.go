package main

type PlayerType int

const (
	PlayerHuman PlayerType = iota
	PlayerAI
)

type GameSettings struct {
	Difficulty Difficulty `json:"-"`
	XType      PlayerType `json:"-"`
	OType      PlayerType `json:"-"`
	OStarts    bool       `json:"o_starts"`
}

func DefaultGameSettings() GameSettings {
	return GameSettings{
		Difficulty: DifficultyHard,
		XType:      PlayerHuman,
		OType:      PlayerAI,
		OStarts:    false,
	}
}

package main

import "github.com/google/uuid"

type PlayerSymbol int

type GameStatus int

const (
	PlayerX PlayerSymbol = iota
	PlayerO
)

const (
	StatusNotStarted GameStatus = iota
	StatusRunning
	StatusXWon
	StatusOWon
	StatusDraw
)

type GameState struct {
	ID          string
	Board       Board
	ToMove      PlayerSymbol
	Status      GameStatus
	HasLastMove bool
	LastMove    Move
	LastMessage string
	WinningLine []Move
	XTimeMs     float64
	OTimeMs     float64
}

func DefaultGameState(settings GameSettings) GameState {
	state := GameState{}
	state.Reset(settings)
	return state
}

func (s *GameState) Reset(settings GameSettings) {
	s.ID = uuid.NewString()
	s.Board.Reset()
	if settings.OStarts {
		s.ToMove = PlayerO
	} else {
		s.ToMove = PlayerX
	}
	s.Status = StatusNotStarted
	s.HasLastMove = false
	s.LastMove = Move{Row: -1, Col: -1}
	s.LastMessage = ""
	s.WinningLine = nil
	s.XTimeMs = 0
	s.OTimeMs = 0
}

func (s GameState) Clone() GameState {
	clone := s
	clone.WinningLine = append([]Move(nil), s.WinningLine...)
	return clone
}

func otherPlayer(player PlayerSymbol) PlayerSymbol {
	if player == PlayerX {
		return PlayerO
	}
	return PlayerX
}

func (p PlayerSymbol) String() string {
	if p == PlayerX {
		return "X"
	}
	return "O"
}

package main

import (
	"log"
	"time"

	"github.com/logrusorgru/aurora"
)

type Game struct {
	settings   GameSettings
	rules      Rules
	state      GameState
	history    MoveHistory
	stats      Statistics
	xPlayer    IPlayer
	oPlayer    IPlayer
	turnStart  time.Time
	roundStart time.Time
}

func NewGame(settings GameSettings) Game {
	g := Game{}
	g.Reset(settings)
	return g
}

// Reset starts a fresh round. Statistics survive resets; they track the
// whole session.
func (g *Game) Reset(settings GameSettings) {
	g.settings = settings
	g.rules = NewRules()
	g.state.Reset(settings)
	g.history.Clear()
	g.createPlayers()
	g.turnStart = time.Now()
	g.roundStart = time.Now()
	g.logMatchup()
}

func (g *Game) Start() {
	if g.state.Status == StatusNotStarted {
		g.state.Status = StatusRunning
		g.turnStart = time.Now()
		g.roundStart = time.Now()
	}
}

func (g *Game) State() GameState {
	return g.state.Clone()
}

func (g *Game) Settings() GameSettings {
	return g.settings
}

func (g *Game) History() MoveHistory {
	return g.history
}

func (g *Game) Stats() Statistics {
	return g.stats
}

func (g *Game) ResetStats() {
	g.stats.Reset()
}

func (g *Game) TurnStartedAtMs() int64 {
	if g.turnStart.IsZero() {
		return 0
	}
	return g.turnStart.UnixMilli()
}

func (g *Game) TryApplyMove(move Move) (bool, string) {
	if g.state.Status != StatusRunning {
		return false, "game not running"
	}
	ok, reason := g.rules.IsLegal(g.state, move)
	if !ok {
		g.state.LastMessage = "Illegal move: " + reason
		return false, g.state.LastMessage
	}
	g.state.LastMessage = ""

	player := g.currentPlayer()
	isAiMove := player != nil && !player.IsHuman()
	elapsedMs := float64(time.Since(g.turnStart).Milliseconds())
	if g.state.ToMove == PlayerX {
		g.state.XTimeMs += elapsedMs
	} else {
		g.state.OTimeMs += elapsedMs
	}

	cell := CellFromPlayer(g.state.ToMove)
	g.state.Board.Set(move.Row, move.Col, cell)
	g.state.LastMove = move
	g.state.HasLastMove = true
	g.history.Push(HistoryEntry{Move: move, Player: g.state.ToMove, ElapsedMs: elapsedMs, IsAi: isAiMove})
	g.logMovePlayed(move, g.state.ToMove, elapsedMs, isAiMove)

	if winner, won := g.rules.Winner(g.state.Board); won {
		if line, found := g.rules.WinningLine(g.state.Board); found {
			g.state.WinningLine = line
		}
		if winner == CellX {
			g.state.Status = StatusXWon
		} else {
			g.state.Status = StatusOWon
		}
		g.finishRound()
		return true, ""
	}
	if g.state.Board.IsFull() {
		g.state.Status = StatusDraw
		g.finishRound()
		return true, ""
	}

	g.state.ToMove = otherPlayer(g.state.ToMove)
	g.turnStart = time.Now()
	return true, ""
}

// Tick advances the game one step: applies a pending human move, collects a
// finished AI move, or kicks off AI thinking. Returns true when a move was
// applied.
func (g *Game) Tick() bool {
	if g.state.Status != StatusRunning {
		return false
	}
	player := g.currentPlayer()
	if player == nil {
		return false
	}
	if player.IsHuman() {
		human, ok := player.(*HumanPlayer)
		if ok && human.HasPendingMove() {
			move := human.TakePendingMove()
			applied, _ := g.TryApplyMove(move)
			return applied
		}
		return false
	}
	ai, ok := player.(*AIPlayer)
	if ok {
		if ai.HasMoveReady() {
			move, hasMove := ai.TakeMove()
			if !hasMove {
				return false
			}
			applied, _ := g.TryApplyMove(move)
			return applied
		}
		if !ai.IsThinking() {
			ai.StartThinking(g.state.Clone(), g.rules)
		}
		return false
	}
	move, hasMove := player.ChooseMove(g.state.Clone(), g.rules)
	if !hasMove {
		return false
	}
	applied, _ := g.TryApplyMove(move)
	return applied
}

func (g *Game) SubmitHumanMove(move Move) bool {
	player := g.currentPlayer()
	if player == nil || !player.IsHuman() {
		return false
	}
	human, ok := player.(*HumanPlayer)
	if !ok {
		return false
	}
	human.SetPendingMove(move)
	return true
}

func (g *Game) CurrentPlayerIsHuman() bool {
	player := g.currentPlayer()
	return player != nil && player.IsHuman()
}

func (g *Game) AiThinking() bool {
	ai, ok := g.currentPlayer().(*AIPlayer)
	if ok {
		return ai.IsThinking()
	}
	return false
}

func (g *Game) currentPlayer() IPlayer {
	return g.playerForSymbol(g.state.ToMove)
}

func (g *Game) playerForSymbol(symbol PlayerSymbol) IPlayer {
	if symbol == PlayerX {
		return g.xPlayer
	}
	return g.oPlayer
}

func (g *Game) createPlayers() {
	if g.settings.XType == PlayerHuman {
		g.xPlayer = NewHumanPlayer()
	} else {
		g.xPlayer = NewAIPlayer(g.settings.Difficulty, CellX)
	}
	if g.settings.OType == PlayerHuman {
		g.oPlayer = NewHumanPlayer()
	} else {
		g.oPlayer = NewAIPlayer(g.settings.Difficulty, CellO)
	}
}

func (g *Game) finishRound() {
	g.stats.RecordResult(g.state.Status, float64(time.Since(g.roundStart).Milliseconds()))
	g.logResult(g.state.Status)
}

func (g *Game) logMatchup() {
	if !GetConfig().LogMoves {
		return
	}
	label := func(t PlayerType) string {
		if t == PlayerAI {
			return "AI"
		}
		return "Human"
	}
	log.Printf("[game %s] X (%s) vs O (%s), difficulty %s",
		g.state.ID, label(g.settings.XType), label(g.settings.OType), g.settings.Difficulty)
}

func (g *Game) logMovePlayed(move Move, player PlayerSymbol, elapsedMs float64, isAiMove bool) {
	config := GetConfig()
	if !config.LogMoves {
		return
	}
	actor := "human"
	if isAiMove {
		actor = "ai"
	}
	mark := player.String()
	if config.ColorLog {
		if player == PlayerX {
			mark = aurora.Red(player.String()).String()
		} else {
			mark = aurora.Blue(player.String()).String()
		}
	}
	log.Printf("[game %s] %s (%s) played (%d,%d) after %.0fms", g.state.ID, mark, actor, move.Row, move.Col, elapsedMs)
}

func (g *Game) logResult(status GameStatus) {
	config := GetConfig()
	if !config.LogMoves {
		return
	}
	result := ""
	switch status {
	case StatusXWon:
		result = "X wins"
	case StatusOWon:
		result = "O wins"
	case StatusDraw:
		result = "draw"
	}
	if config.ColorLog {
		result = aurora.Green(result).String()
	}
	log.Printf("[game %s] %s after %d moves", g.state.ID, result, g.history.Size())
}

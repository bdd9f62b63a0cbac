package main

import (
	"math"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"
)

const winScore = 10

// AIPlayer selects moves for one mark at a fixed difficulty. SelectMove is
// pure and synchronous; the StartThinking/TakeMove pair runs it on a worker
// goroutine and adds the per-tier pacing delay so the engine itself stays
// latency-free.
type AIPlayer struct {
	difficulty         Difficulty
	mark               Cell
	maxDepth           int
	mistakeProbability float64
	rules              Rules
	rng                *rand.Rand

	moveMutex  sync.Mutex
	workerDone chan struct{}
	thinking   atomic.Bool
	moveReady  atomic.Bool
	readyMove  Move
	readyOk    bool
}

func NewAIPlayer(difficulty Difficulty, mark Cell) *AIPlayer {
	seed := GetConfig().AiSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return NewAIPlayerSeeded(difficulty, mark, seed)
}

// NewAIPlayerSeeded fixes the RNG so move selection is reproducible.
func NewAIPlayerSeeded(difficulty Difficulty, mark Cell, seed int64) *AIPlayer {
	return &AIPlayer{
		difficulty:         difficulty,
		mark:               mark,
		maxDepth:           difficulty.MaxDepth(),
		mistakeProbability: difficulty.MistakeProbability(),
		rules:              NewRules(),
		rng:                rand.New(rand.NewSource(seed)),
	}
}

func (a *AIPlayer) IsHuman() bool {
	return false
}

func (a *AIPlayer) ChooseMove(state GameState, rules Rules) (Move, bool) {
	return a.SelectMove(state.Board)
}

// SelectMove picks a move for the player's mark. The board is taken by
// value, so the caller's snapshot is never mutated. A false result means no
// empty cell remains, which is a normal terminal condition.
func (a *AIPlayer) SelectMove(board Board) (Move, bool) {
	if a.rng.Float64() < a.mistakeProbability {
		return a.randomMove(board)
	}

	switch a.difficulty {
	case DifficultyEasy:
		if move, ok := a.rules.FindWinningMove(board, a.mark); ok {
			return move, true
		}
		if a.rng.Float64() < 0.5 {
			return a.randomMove(board)
		}
		return a.positionalHeuristic(board)
	case DifficultyMedium:
		if move, ok := a.rules.FindWinningMove(board, a.mark); ok {
			return move, true
		}
		if move, ok := a.rules.FindWinningMove(board, cellOpponent(a.mark)); ok {
			return move, true
		}
		return a.positionalHeuristic(board)
	default:
		// Minimax subsumes the win/block shortcuts.
		return a.bestMoveMinimax(board)
	}
}

func (a *AIPlayer) randomMove(board Board) (Move, bool) {
	cells := board.EmptyCells()
	if len(cells) == 0 {
		return Move{}, false
	}
	return cells[a.rng.Intn(len(cells))], true
}

// positionalHeuristic prefers the center, then a random empty corner, then
// any random empty cell.
func (a *AIPlayer) positionalHeuristic(board Board) (Move, bool) {
	if board.IsEmpty(1, 1) {
		return Move{Row: 1, Col: 1}, true
	}
	corners := [4]Move{{Row: 0, Col: 0}, {Row: 0, Col: 2}, {Row: 2, Col: 0}, {Row: 2, Col: 2}}
	empty := make([]Move, 0, len(corners))
	for _, corner := range corners {
		if board.IsEmpty(corner.Row, corner.Col) {
			empty = append(empty, corner)
		}
	}
	if len(empty) > 0 {
		return empty[a.rng.Intn(len(empty))], true
	}
	return a.randomMove(board)
}

// bestMoveMinimax scores every empty cell in row-major order and keeps the
// strict maximum, so ties go to the first-seen move.
func (a *AIPlayer) bestMoveMinimax(board Board) (Move, bool) {
	bestScore := 0
	bestMove := Move{}
	found := false
	for _, move := range board.EmptyCells() {
		next := board
		next.Set(move.Row, move.Col, a.mark)
		score := a.minimax(next, 0, false, math.MinInt, math.MaxInt)
		if !found || score > bestScore {
			bestScore = score
			bestMove = move
			found = true
		}
	}
	return bestMove, found
}

// minimax is a depth-bounded adversarial search with alpha-beta pruning.
// Terminal scores are depth-adjusted so faster wins and slower losses rank
// higher. Depth-exhausted positions score neutral rather than running a
// static evaluation; the shallow tiers are meant to play imperfectly.
func (a *AIPlayer) minimax(board Board, depth int, maximizing bool, alpha, beta int) int {
	if winner, won := a.rules.Winner(board); won {
		if winner == a.mark {
			return winScore - depth
		}
		return depth - winScore
	}
	if board.IsFull() {
		return 0
	}
	if depth >= a.maxDepth {
		return 0
	}

	if maximizing {
		maxScore := math.MinInt
		for _, move := range board.EmptyCells() {
			next := board
			next.Set(move.Row, move.Col, a.mark)
			score := a.minimax(next, depth+1, false, alpha, beta)
			if score > maxScore {
				maxScore = score
			}
			if score > alpha {
				alpha = score
			}
			if beta <= alpha {
				break
			}
		}
		return maxScore
	}
	minScore := math.MaxInt
	for _, move := range board.EmptyCells() {
		next := board
		next.Set(move.Row, move.Col, cellOpponent(a.mark))
		score := a.minimax(next, depth+1, true, alpha, beta)
		if score < minScore {
			minScore = score
		}
		if score < beta {
			beta = score
		}
		if beta <= alpha {
			break
		}
	}
	return minScore
}

func (a *AIPlayer) StartThinking(state GameState, rules Rules) {
	if a.thinking.Load() {
		return
	}
	if a.workerDone != nil {
		<-a.workerDone
	}
	a.thinking.Store(true)
	a.moveReady.Store(false)

	board := state.Board
	done := make(chan struct{})
	a.workerDone = done
	config := GetConfig()
	go func() {
		defer close(done)
		move, ok := a.SelectMove(board)
		if config.AiThinkDelayEnabled {
			time.Sleep(a.thinkingDelay())
		}
		a.moveMutex.Lock()
		a.readyMove = move
		a.readyOk = ok
		a.moveMutex.Unlock()
		a.moveReady.Store(true)
		a.thinking.Store(false)
	}()
}

func (a *AIPlayer) IsThinking() bool {
	return a.thinking.Load()
}

func (a *AIPlayer) HasMoveReady() bool {
	return a.moveReady.Load()
}

func (a *AIPlayer) TakeMove() (Move, bool) {
	a.moveMutex.Lock()
	defer a.moveMutex.Unlock()
	a.moveReady.Store(false)
	return a.readyMove, a.readyOk
}

// thinkingDelay paces the worker so turns feel deliberate, scaled roughly
// with how long the tier "should" take.
func (a *AIPlayer) thinkingDelay() time.Duration {
	var lo, hi time.Duration
	switch a.difficulty {
	case DifficultyEasy:
		lo, hi = 200*time.Millisecond, 400*time.Millisecond
	case DifficultyMedium:
		lo, hi = 300*time.Millisecond, 500*time.Millisecond
	default:
		lo, hi = 300*time.Millisecond, 600*time.Millisecond
	}
	return lo + time.Duration(a.rng.Int63n(int64(hi-lo)))
}

package main

import (
	"math"
	"testing"
)

func newTestEngine(t *testing.T, difficulty Difficulty) *AIPlayer {
	t.Helper()
	ai := NewAIPlayerSeeded(difficulty, CellO, 1)
	// Tier strategy under test, not the mistake roll.
	ai.mistakeProbability = 0
	return ai
}

func TestSelectMoveNeverMutatesInputBoard(t *testing.T) {
	board := boardFromRows(t, "X..", ".O.", "..X")
	for _, difficulty := range []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyImpossible} {
		ai := newTestEngine(t, difficulty)
		before := board
		ai.SelectMove(board)
		if board != before {
			t.Fatalf("difficulty %v mutated the caller's board", difficulty)
		}
	}
}

func TestSelectMoveTakesImmediateWin(t *testing.T) {
	// O completes the middle row at (1,2).
	board := boardFromRows(t, "XX.", "OO.", "X..")
	want := Move{Row: 1, Col: 2}
	for _, difficulty := range []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyImpossible} {
		ai := newTestEngine(t, difficulty)
		move, ok := ai.SelectMove(board)
		if !ok {
			t.Fatalf("difficulty %v: expected a move", difficulty)
		}
		if !move.Equals(want) {
			t.Fatalf("difficulty %v: expected winning move %v, got %v", difficulty, want, move)
		}
	}
}

func TestSelectMoveBlocksImmediateLoss(t *testing.T) {
	// X threatens the top row at (0,2); O has no win of its own.
	board := boardFromRows(t, "XX.", ".O.", "...")
	want := Move{Row: 0, Col: 2}
	for _, difficulty := range []Difficulty{DifficultyMedium, DifficultyHard, DifficultyImpossible} {
		ai := newTestEngine(t, difficulty)
		move, ok := ai.SelectMove(board)
		if !ok {
			t.Fatalf("difficulty %v: expected a move", difficulty)
		}
		if !move.Equals(want) {
			t.Fatalf("difficulty %v: expected blocking move %v, got %v", difficulty, want, move)
		}
	}
}

func TestSelectMoveReturnsNoMoveOnFullBoard(t *testing.T) {
	board := boardFromRows(t, "XOX", "OOX", "XXO")
	for _, difficulty := range []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyImpossible} {
		ai := newTestEngine(t, difficulty)
		if _, ok := ai.SelectMove(board); ok {
			t.Fatalf("difficulty %v: expected no move on a full board", difficulty)
		}
	}
}

func TestMistakeOverrideReturnsRandomLegalMove(t *testing.T) {
	ai := NewAIPlayerSeeded(DifficultyHard, CellO, 3)
	ai.mistakeProbability = 1.0
	board := boardFromRows(t, "XX.", "OO.", "X..")
	for i := 0; i < 20; i++ {
		move, ok := ai.SelectMove(board)
		if !ok {
			t.Fatalf("expected a legal move")
		}
		if !board.IsEmpty(move.Row, move.Col) {
			t.Fatalf("mistake produced occupied cell %v", move)
		}
	}

	full := boardFromRows(t, "XOX", "OOX", "XXO")
	if _, ok := ai.SelectMove(full); ok {
		t.Fatalf("mistake on a full board must produce no move")
	}
}

func TestPositionalHeuristicPrefersCenterThenCorners(t *testing.T) {
	ai := newTestEngine(t, DifficultyMedium)

	move, ok := ai.positionalHeuristic(Board{})
	if !ok || !move.Equals(Move{Row: 1, Col: 1}) {
		t.Fatalf("expected center on empty board, got %v", move)
	}

	centerTaken := boardFromRows(t, "...", ".X.", "...")
	corners := map[Move]struct{}{
		{Row: 0, Col: 0}: {}, {Row: 0, Col: 2}: {},
		{Row: 2, Col: 0}: {}, {Row: 2, Col: 2}: {},
	}
	for i := 0; i < 20; i++ {
		move, ok := ai.positionalHeuristic(centerTaken)
		if !ok {
			t.Fatalf("expected a heuristic move")
		}
		if _, isCorner := corners[move]; !isCorner {
			t.Fatalf("expected a corner with center taken, got %v", move)
		}
	}

	edgesOnly := boardFromRows(t, "XOX", "OXO", "X.X")
	move, ok = ai.positionalHeuristic(edgesOnly)
	if !ok || !move.Equals(Move{Row: 2, Col: 1}) {
		t.Fatalf("expected the last free cell, got %v ok=%v", move, ok)
	}
}

func TestEasyTierFallsBackToRandomOrHeuristic(t *testing.T) {
	ai := newTestEngine(t, DifficultyEasy)
	board := boardFromRows(t, "X..", ".O.", "..X")
	for i := 0; i < 20; i++ {
		move, ok := ai.SelectMove(board)
		if !ok {
			t.Fatalf("expected a move")
		}
		if !board.IsEmpty(move.Row, move.Col) {
			t.Fatalf("easy tier produced occupied cell %v", move)
		}
	}
}

func TestMinimaxPrefersFasterWin(t *testing.T) {
	// O can win immediately at (1,2) or steer toward slower wins; the
	// depth-adjusted score must pick the immediate one.
	board := boardFromRows(t, "XX.", "OO.", ".X.")
	for _, difficulty := range []Difficulty{DifficultyHard, DifficultyImpossible} {
		ai := newTestEngine(t, difficulty)
		move, ok := ai.bestMoveMinimax(board)
		if !ok {
			t.Fatalf("expected a move")
		}
		if !move.Equals(Move{Row: 1, Col: 2}) {
			t.Fatalf("difficulty %v: expected immediate win (1,2), got %v", difficulty, move)
		}
	}
}

// A perfectly played opening scores 0 for every cell, so the first-seen
// row-major move wins the tie. This pins the committed tie-break.
func TestImpossibleOpeningUsesRowMajorTieBreak(t *testing.T) {
	ai := newTestEngine(t, DifficultyImpossible)
	for _, move := range (Board{}).EmptyCells() {
		next := Board{}
		next.Set(move.Row, move.Col, CellO)
		if score := ai.minimax(next, 0, false, math.MinInt, math.MaxInt); score != 0 {
			t.Fatalf("opening %v scored %d, expected 0", move, score)
		}
	}
	move, ok := ai.SelectMove(Board{})
	if !ok {
		t.Fatalf("expected an opening move")
	}
	if !move.Equals(Move{Row: 0, Col: 0}) {
		t.Fatalf("expected first-seen opening (0,0), got %v", move)
	}
}

// minimaxNoPrune mirrors the engine's search without alpha-beta cutoffs.
func minimaxNoPrune(rules Rules, board Board, mark Cell, depth, maxDepth int, maximizing bool) int {
	if winner, won := rules.Winner(board); won {
		if winner == mark {
			return winScore - depth
		}
		return depth - winScore
	}
	if board.IsFull() {
		return 0
	}
	if depth >= maxDepth {
		return 0
	}
	if maximizing {
		best := math.MinInt
		for _, move := range board.EmptyCells() {
			next := board
			next.Set(move.Row, move.Col, mark)
			if score := minimaxNoPrune(rules, next, mark, depth+1, maxDepth, false); score > best {
				best = score
			}
		}
		return best
	}
	best := math.MaxInt
	for _, move := range board.EmptyCells() {
		next := board
		next.Set(move.Row, move.Col, cellOpponent(mark))
		if score := minimaxNoPrune(rules, next, mark, depth+1, maxDepth, true); score < best {
			best = score
		}
	}
	return best
}

// Pruning must never change a root move's score, only the node count.
func TestAlphaBetaMatchesUnprunedSearch(t *testing.T) {
	if testing.Short() {
		t.Skip("exhaustive search comparison")
	}
	rules := NewRules()
	ai := newTestEngine(t, DifficultyImpossible)
	for _, state := range reachableStates() {
		if state.toMove != CellO {
			continue
		}
		if _, won := rules.Winner(state.board); won {
			continue
		}
		for _, move := range state.board.EmptyCells() {
			next := state.board
			next.Set(move.Row, move.Col, CellO)
			pruned := ai.minimax(next, 0, false, math.MinInt, math.MaxInt)
			reference := minimaxNoPrune(rules, next, CellO, 0, ai.maxDepth, false)
			if pruned != reference {
				t.Fatalf("board %v move %v: pruned=%d unpruned=%d", state.board, move, pruned, reference)
			}
		}
	}
}

// Impossible must never lose: exhaust every line of play where the engine
// answers each of the opponent's options.
func TestImpossibleNeverLoses(t *testing.T) {
	if testing.Short() {
		t.Skip("exhaustive self-play")
	}
	rules := NewRules()
	ai := newTestEngine(t, DifficultyImpossible)

	var walk func(board Board, toMove Cell)
	walk = func(board Board, toMove Cell) {
		if winner, won := rules.Winner(board); won {
			if winner == CellX {
				t.Fatalf("engine lost position %v", board)
			}
			return
		}
		if board.IsFull() {
			return
		}
		if toMove == CellO {
			move, ok := ai.SelectMove(board)
			if !ok {
				t.Fatalf("engine returned no move on a playable board")
			}
			next := board
			next.Set(move.Row, move.Col, CellO)
			walk(next, CellX)
			return
		}
		for _, move := range board.EmptyCells() {
			next := board
			next.Set(move.Row, move.Col, CellX)
			walk(next, CellO)
		}
	}

	walk(Board{}, CellX)
	walk(Board{}, CellO)
}

func TestDifficultyParameters(t *testing.T) {
	cases := []struct {
		difficulty Difficulty
		depth      int
		mistake    float64
	}{
		{DifficultyEasy, 1, 0.4},
		{DifficultyMedium, 3, 0.15},
		{DifficultyHard, 6, 0.05},
		{DifficultyImpossible, 9, 0.0},
	}
	for _, tc := range cases {
		if got := tc.difficulty.MaxDepth(); got != tc.depth {
			t.Fatalf("%v: expected depth %d, got %d", tc.difficulty, tc.depth, got)
		}
		if got := tc.difficulty.MistakeProbability(); got != tc.mistake {
			t.Fatalf("%v: expected mistake probability %v, got %v", tc.difficulty, tc.mistake, got)
		}
		parsed, ok := ParseDifficulty(tc.difficulty.String())
		if !ok || parsed != tc.difficulty {
			t.Fatalf("%v: round-trip through ParseDifficulty failed", tc.difficulty)
		}
	}
	if _, ok := ParseDifficulty("nightmare"); ok {
		t.Fatalf("expected unknown difficulty to be rejected")
	}
}

func TestSeededEnginesAreReproducible(t *testing.T) {
	board := boardFromRows(t, "X..", "...", "...")
	first := NewAIPlayerSeeded(DifficultyEasy, CellO, 42)
	second := NewAIPlayerSeeded(DifficultyEasy, CellO, 42)
	for i := 0; i < 10; i++ {
		moveA, okA := first.SelectMove(board)
		moveB, okB := second.SelectMove(board)
		if okA != okB || !moveA.Equals(moveB) {
			t.Fatalf("same seed diverged at call %d: %v vs %v", i, moveA, moveB)
		}
	}
}

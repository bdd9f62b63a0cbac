package main

// winLines lists every three-in-a-row as board indexes: rows top to bottom,
// then columns left to right, then main diagonal, then anti-diagonal. The
// scan order is fixed so identical boards always report the same line.
var winLines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

type Rules struct{}

func NewRules() Rules {
	return Rules{}
}

func (r Rules) IsLegal(state GameState, move Move) (bool, string) {
	if !move.IsValid() {
		return false, "out of bounds"
	}
	if !state.Board.IsEmpty(move.Row, move.Col) {
		return false, "occupied"
	}
	return true, ""
}

// Winner returns the mark holding a completed line, if any. At most one
// winner can exist on a board reached by legal alternating play.
func (r Rules) Winner(board Board) (Cell, bool) {
	for _, line := range winLines {
		first := board.cells[line[0]]
		if first == CellEmpty {
			continue
		}
		if board.cells[line[1]] == first && board.cells[line[2]] == first {
			return first, true
		}
	}
	return CellEmpty, false
}

// WinningLine returns the cells of the first completed line in scan order,
// for highlighting on the client.
func (r Rules) WinningLine(board Board) ([]Move, bool) {
	for _, line := range winLines {
		first := board.cells[line[0]]
		if first == CellEmpty {
			continue
		}
		if board.cells[line[1]] == first && board.cells[line[2]] == first {
			return []Move{
				moveFromIndex(line[0]),
				moveFromIndex(line[1]),
				moveFromIndex(line[2]),
			}, true
		}
	}
	return nil, false
}

func (r Rules) IsDraw(board Board) bool {
	if _, won := r.Winner(board); won {
		return false
	}
	return board.IsFull()
}

// FindWinningMove probes empty cells in row-major order and returns the
// first one that completes a line for mark. It reports existence, not the
// best such move.
func (r Rules) FindWinningMove(board Board, mark Cell) (Move, bool) {
	for _, move := range board.EmptyCells() {
		probe := board
		probe.Set(move.Row, move.Col, mark)
		if winner, won := r.Winner(probe); won && winner == mark {
			return move, true
		}
	}
	return Move{}, false
}

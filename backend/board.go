package main

import "fmt"

type Cell int

const (
	CellEmpty Cell = iota
	CellX
	CellO
)

const (
	BoardRows = 3
	BoardCols = 3
)

// Board is a value type: assignment copies the whole grid, so search code
// explores hypothetical positions on plain copies without touching the
// caller's board.
type Board struct {
	cells [BoardRows * BoardCols]Cell
}

func NewBoard() Board {
	return Board{}
}

func (b *Board) Reset() {
	b.cells = [BoardRows * BoardCols]Cell{}
}

func (b Board) At(row, col int) Cell {
	return b.cells[index(row, col)]
}

func (b *Board) Set(row, col int, value Cell) {
	b.cells[index(row, col)] = value
}

func (b *Board) Remove(row, col int) {
	b.cells[index(row, col)] = CellEmpty
}

func (b Board) InBounds(row, col int) bool {
	return row >= 0 && col >= 0 && row < BoardRows && col < BoardCols
}

func (b Board) IsEmpty(row, col int) bool {
	return b.InBounds(row, col) && b.At(row, col) == CellEmpty
}

func (b Board) IsFull() bool {
	for _, cell := range b.cells {
		if cell == CellEmpty {
			return false
		}
	}
	return true
}

func (b Board) CountEmpty() int {
	count := 0
	for _, cell := range b.cells {
		if cell == CellEmpty {
			count++
		}
	}
	return count
}

// EmptyCells enumerates free cells in row-major order. That order is the
// committed tie-break everywhere a first-found move wins.
func (b Board) EmptyCells() []Move {
	moves := make([]Move, 0, len(b.cells))
	for i, cell := range b.cells {
		if cell == CellEmpty {
			moves = append(moves, moveFromIndex(i))
		}
	}
	return moves
}

func index(row, col int) int {
	return row*BoardCols + col
}

func moveFromIndex(i int) Move {
	return Move{Row: i / BoardCols, Col: i % BoardCols}
}

func (c Cell) String() string {
	switch c {
	case CellX:
		return "X"
	case CellO:
		return "O"
	default:
		return "Empty"
	}
}

func cellOpponent(cell Cell) Cell {
	if cell == CellX {
		return CellO
	}
	return CellX
}

func CellFromPlayer(player PlayerSymbol) Cell {
	if player == PlayerX {
		return CellX
	}
	return CellO
}

func PlayerFromCell(cell Cell) (PlayerSymbol, error) {
	switch cell {
	case CellX:
		return PlayerX, nil
	case CellO:
		return PlayerO, nil
	default:
		return PlayerX, fmt.Errorf("empty cell has no player")
	}
}

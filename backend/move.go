package main

type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func NewMove(row, col int) Move {
	return Move{Row: row, Col: col}
}

func (m Move) IsValid() bool {
	return m.Row >= 0 && m.Col >= 0 && m.Row < BoardRows && m.Col < BoardCols
}

func (m Move) Equals(other Move) bool {
	return m.Row == other.Row && m.Col == other.Col
}

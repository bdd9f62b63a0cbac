package main

// Statistics aggregates round outcomes across resets. The streak counters
// follow the X side (the human seat in the default settings): an X win
// extends the streak, an O win breaks it, a draw leaves it untouched.
type Statistics struct {
	XWins       int     `json:"x_wins"`
	OWins       int     `json:"o_wins"`
	Draws       int     `json:"draws"`
	TotalRounds int     `json:"total_rounds"`
	XWinStreak  int     `json:"x_win_streak"`
	XBestStreak int     `json:"x_best_streak"`
	TotalTimeMs float64 `json:"total_time_ms"`
}

func (s *Statistics) RecordResult(status GameStatus, roundTimeMs float64) {
	s.TotalRounds++
	s.TotalTimeMs += roundTimeMs
	switch status {
	case StatusXWon:
		s.XWins++
		s.XWinStreak++
		if s.XWinStreak > s.XBestStreak {
			s.XBestStreak = s.XWinStreak
		}
	case StatusOWon:
		s.OWins++
		s.XWinStreak = 0
	case StatusDraw:
		s.Draws++
	}
}

func (s *Statistics) Reset() {
	*s = Statistics{}
}

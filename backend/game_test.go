package main

import "testing"

func quietTestConfig(t *testing.T) {
	t.Helper()
	prev := GetConfig()
	cfg := prev
	cfg.AiThinkDelayEnabled = false
	cfg.LogMoves = false
	cfg.AiSeed = 7
	configStore.Update(cfg)
	t.Cleanup(func() { configStore.Update(prev) })
}

func humanVsHumanSettings() GameSettings {
	settings := DefaultGameSettings()
	settings.XType = PlayerHuman
	settings.OType = PlayerHuman
	return settings
}

func TestTryApplyMoveAlternatesAndRecordsHistory(t *testing.T) {
	quietTestConfig(t)
	game := NewGame(humanVsHumanSettings())
	game.Start()

	if applied, reason := game.TryApplyMove(Move{Row: 0, Col: 0}); !applied {
		t.Fatalf("expected X move to apply: %s", reason)
	}
	state := game.State()
	if state.Board.At(0, 0) != CellX {
		t.Fatalf("expected X at (0,0)")
	}
	if state.ToMove != PlayerO {
		t.Fatalf("expected O to move next")
	}
	if applied, reason := game.TryApplyMove(Move{Row: 1, Col: 1}); !applied {
		t.Fatalf("expected O move to apply: %s", reason)
	}
	if game.History().Size() != 2 {
		t.Fatalf("expected 2 history entries, got %d", game.History().Size())
	}
	entries := game.History().All()
	if entries[0].Player != PlayerX || entries[1].Player != PlayerO {
		t.Fatalf("history players out of order")
	}
}

func TestTryApplyMoveRejectsIllegalMoves(t *testing.T) {
	quietTestConfig(t)
	game := NewGame(humanVsHumanSettings())

	if applied, _ := game.TryApplyMove(Move{Row: 0, Col: 0}); applied {
		t.Fatalf("expected move before Start to be rejected")
	}
	game.Start()
	if applied, _ := game.TryApplyMove(Move{Row: 0, Col: 0}); !applied {
		t.Fatalf("expected legal opening move to apply")
	}
	if applied, _ := game.TryApplyMove(Move{Row: 0, Col: 0}); applied {
		t.Fatalf("expected occupied cell to be rejected")
	}
	if applied, _ := game.TryApplyMove(Move{Row: 3, Col: 3}); applied {
		t.Fatalf("expected out-of-bounds move to be rejected")
	}
}

func TestGameResolvesWinWithLineAndStats(t *testing.T) {
	quietTestConfig(t)
	game := NewGame(humanVsHumanSettings())
	game.Start()

	// X takes the top row.
	moves := []Move{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0, 2}}
	for _, move := range moves {
		if applied, reason := game.TryApplyMove(move); !applied {
			t.Fatalf("move %v rejected: %s", move, reason)
		}
	}
	state := game.State()
	if state.Status != StatusXWon {
		t.Fatalf("expected X win, got status %v", state.Status)
	}
	if len(state.WinningLine) != 3 {
		t.Fatalf("expected winning line of 3 cells, got %d", len(state.WinningLine))
	}
	want := []Move{{0, 0}, {0, 1}, {0, 2}}
	for i := range want {
		if !state.WinningLine[i].Equals(want[i]) {
			t.Fatalf("winning line cell %d: expected %v, got %v", i, want[i], state.WinningLine[i])
		}
	}
	stats := game.Stats()
	if stats.XWins != 1 || stats.TotalRounds != 1 || stats.XWinStreak != 1 {
		t.Fatalf("unexpected stats after X win: %+v", stats)
	}

	if applied, _ := game.TryApplyMove(Move{Row: 2, Col: 2}); applied {
		t.Fatalf("expected moves after game end to be rejected")
	}
}

func TestGameResolvesDraw(t *testing.T) {
	quietTestConfig(t)
	game := NewGame(humanVsHumanSettings())
	game.Start()

	// Alternating sequence with no three-in-a-row anywhere.
	moves := []Move{{0, 0}, {1, 1}, {0, 1}, {0, 2}, {2, 0}, {1, 0}, {1, 2}, {2, 1}, {2, 2}}
	for _, move := range moves {
		if applied, reason := game.TryApplyMove(move); !applied {
			t.Fatalf("move %v rejected: %s", move, reason)
		}
	}
	state := game.State()
	if state.Status != StatusDraw {
		t.Fatalf("expected draw, got status %v", state.Status)
	}
	if len(state.WinningLine) != 0 {
		t.Fatalf("draw must have no winning line")
	}
	stats := game.Stats()
	if stats.Draws != 1 || stats.TotalRounds != 1 {
		t.Fatalf("unexpected stats after draw: %+v", stats)
	}
}

func TestStatisticsSurviveRoundReset(t *testing.T) {
	quietTestConfig(t)
	game := NewGame(humanVsHumanSettings())
	game.Start()
	for _, move := range []Move{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0, 2}} {
		game.TryApplyMove(move)
	}
	firstID := game.State().ID

	game.Reset(game.Settings())
	if game.Stats().XWins != 1 {
		t.Fatalf("expected stats to survive reset")
	}
	if game.History().Size() != 0 {
		t.Fatalf("expected history to clear on reset")
	}
	if game.State().ID == firstID {
		t.Fatalf("expected a fresh round id after reset")
	}
}

func TestOStartsWhenConfigured(t *testing.T) {
	quietTestConfig(t)
	settings := humanVsHumanSettings()
	settings.OStarts = true
	game := NewGame(settings)
	game.Start()
	if game.State().ToMove != PlayerO {
		t.Fatalf("expected O to open when OStarts is set")
	}
}

package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
)

type StatusResponse struct {
	GameID          string            `json:"game_id"`
	Settings        GameSettingsDTO   `json:"settings"`
	Config          Config            `json:"config"`
	Board           [][]int           `json:"board"`
	NextPlayer      string            `json:"next_player"`
	Winner          string            `json:"winner"`
	Status          string            `json:"status"`
	History         []historyEntryDTO `json:"history"`
	WinningLine     []Move            `json:"winning_line"`
	Stats           Statistics        `json:"stats"`
	AiThinking      bool              `json:"ai_thinking"`
	XTimeMs         float64           `json:"x_time_ms"`
	OTimeMs         float64           `json:"o_time_ms"`
	TurnStartedAtMs int64             `json:"turn_started_at_ms"`
}

type GameSettingsDTO struct {
	Mode        string `json:"mode"`         // human_vs_ai, ai_vs_ai, human_vs_human
	HumanSymbol string `json:"human_symbol"` // "x" or "o" (human_vs_ai only)
	Difficulty  string `json:"difficulty"`   // easy, medium, hard, impossible
	Start       string `json:"start"`        // "x", "o" or "random"
}

type apiMove struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type historyEntryDTO struct {
	Row       int     `json:"row"`
	Col       int     `json:"col"`
	Player    string  `json:"player"`
	ElapsedMs float64 `json:"elapsed_ms"`
	IsAi      bool    `json:"is_ai"`
}

type historyPayload struct {
	History []historyEntryDTO `json:"history"`
}

type resetPayload struct {
	GameID          string            `json:"game_id"`
	History         []historyEntryDTO `json:"history"`
	NextPlayer      string            `json:"next_player"`
	Winner          string            `json:"winner"`
	Status          string            `json:"status"`
	WinningLine     []Move            `json:"winning_line"`
	Stats           Statistics        `json:"stats"`
	TurnStartedAtMs int64             `json:"turn_started_at_ms"`
}

type settingsPayload struct {
	Settings GameSettingsDTO `json:"settings"`
	Config   Config          `json:"config"`
}

type statsPayload struct {
	Stats Statistics `json:"stats"`
}

func main() {
	controller := NewGameController(DefaultGameSettings())
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go hub.Run(ctx.Done())
	go func() {
		interval := time.Duration(GetConfig().TickIntervalMs) * time.Millisecond
		if interval <= 0 {
			interval = 50 * time.Millisecond
		}
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if controller.Tick() {
					if entry, ok := controller.LatestHistoryEntry(); ok {
						hub.broadcastHistory <- historyPayload{History: []historyEntryDTO{historyEntryToDTO(entry)}}
					}
					hub.broadcastStatus <- controllerStatus(controller)
				}
			}
		}
	}()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/api/ping", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})

	r.Get("/api/status", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, controllerStatus(controller))
	})

	r.Post("/api/start", func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Settings GameSettingsDTO `json:"settings"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}
		settings, err := settingsFromDTO(payload.Settings, DefaultGameSettings())
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		controller.StartGame(settings)
		writeJSON(w, http.StatusOK, controllerStatus(controller))
		hub.broadcastReset <- resetFromController(controller)
	})

	r.Post("/api/stop", func(w http.ResponseWriter, r *http.Request) {
		settings := controller.Settings()
		controller.Reset(settings)
		writeJSON(w, http.StatusOK, controllerStatus(controller))
		hub.broadcastReset <- resetFromController(controller)
	})

	r.Post("/api/settings", func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Settings *GameSettingsDTO `json:"settings"`
			Config   *Config          `json:"config"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}
		if payload.Config != nil {
			configStore.Update(*payload.Config)
		}
		if payload.Settings != nil {
			settings, err := settingsFromDTO(*payload.Settings, controller.Settings())
			if err != nil {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
				return
			}
			controller.UpdateSettings(settings, false)
		}
		hub.broadcastSettings <- settingsPayload{
			Settings: controllerSettingsDTO(controller.Settings()),
			Config:   GetConfig(),
		}
		writeJSON(w, http.StatusOK, controllerStatus(controller))
	})

	r.Post("/api/move", func(w http.ResponseWriter, r *http.Request) {
		var payload apiMove
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}
		applied, errMsg := controller.ApplyHumanMove(Move{Row: payload.Row, Col: payload.Col})
		if !applied {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": errMsg})
			return
		}
		if entry, ok := controller.LatestHistoryEntry(); ok {
			hub.broadcastHistory <- historyPayload{History: []historyEntryDTO{historyEntryToDTO(entry)}}
		}
		hub.broadcastStatus <- controllerStatus(controller)
		writeJSON(w, http.StatusOK, controllerStatus(controller))
	})

	r.Get("/api/stats", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, statsPayload{Stats: controller.Stats()})
	})
	r.Delete("/api/stats", func(w http.ResponseWriter, r *http.Request) {
		controller.ResetStats()
		payload := statsPayload{Stats: controller.Stats()}
		hub.broadcastStats <- payload
		writeJSON(w, http.StatusOK, payload)
	})
	r.Get("/api/stats/chart", statsChartHandler(controller))

	r.Get("/ws/", func(w http.ResponseWriter, r *http.Request) {
		serveWS(hub, controller, w, r)
	})

	server := &http.Server{
		Addr:    ":8080",
		Handler: r,
	}
	serverErrCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrCh <- err
		}
		close(serverErrCh)
	}()

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	log.Println("backend listening on :8080")
	var runErr error
	select {
	case <-sigCtx.Done():
		log.Printf("[backend] shutdown signal received: %v", sigCtx.Err())
	case err, ok := <-serverErrCh:
		if ok {
			runErr = err
			log.Printf("[backend] server error: %v", err)
		}
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Printf("[backend] graceful shutdown failed: %v", err)
		if closeErr := server.Close(); closeErr != nil && !errors.Is(closeErr, http.ErrServerClosed) {
			log.Printf("[backend] forced close failed: %v", closeErr)
		}
	}

	cancel()
	if runErr != nil {
		log.Printf("[backend] exiting after server error: %v", runErr)
	}
}

func serveWS(hub *Hub, controller *GameController, w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	client := &Client{hub: hub, send: make(chan []byte, 16)}
	hub.Register(client)

	status := controllerStatus(controller)
	client.sendJSON(wsMessage{Type: "status", Payload: mustMarshal(status)})

	go func() {
		defer conn.Close()
		if err := writeWSWithHeartbeat(conn, client.send); err != nil {
			return
		}
	}()

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			hub.Unregister(client)
			return
		}
		var msg wsMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			continue
		}
		switch msg.Type {
		case "request_status":
			status := controllerStatus(controller)
			client.sendJSON(wsMessage{Type: "status", Payload: mustMarshal(status)})
		}
	}
}

func controllerStatus(controller *GameController) StatusResponse {
	state := controller.State()
	return StatusResponse{
		GameID:          state.ID,
		Settings:        controllerSettingsDTO(controller.Settings()),
		Config:          GetConfig(),
		Board:           boardToSlice(state.Board),
		NextPlayer:      playerToString(state.ToMove),
		Winner:          winnerFromStatus(state.Status),
		Status:          statusToString(state.Status),
		History:         historyToDTO(controller.History()),
		WinningLine:     append([]Move(nil), state.WinningLine...),
		Stats:           controller.Stats(),
		AiThinking:      controller.AiThinking(),
		XTimeMs:         state.XTimeMs,
		OTimeMs:         state.OTimeMs,
		TurnStartedAtMs: controller.CurrentTurnStartedAtMs(),
	}
}

func settingsFromDTO(dto GameSettingsDTO, base GameSettings) (GameSettings, error) {
	settings := base
	switch dto.Mode {
	case "ai_vs_ai":
		settings.XType = PlayerAI
		settings.OType = PlayerAI
	case "human_vs_human":
		settings.XType = PlayerHuman
		settings.OType = PlayerHuman
	case "human_vs_ai", "":
		if dto.HumanSymbol == "o" {
			settings.XType = PlayerAI
			settings.OType = PlayerHuman
		} else {
			settings.XType = PlayerHuman
			settings.OType = PlayerAI
		}
	default:
		return settings, errors.New("unknown mode")
	}
	if dto.Difficulty != "" {
		difficulty, ok := ParseDifficulty(dto.Difficulty)
		if !ok {
			return settings, errors.New("unknown difficulty")
		}
		settings.Difficulty = difficulty
	}
	switch dto.Start {
	case "o":
		settings.OStarts = true
	case "random":
		settings.OStarts = rand.Intn(2) == 0
	case "x", "":
		settings.OStarts = false
	default:
		return settings, errors.New("unknown start policy")
	}
	return settings, nil
}

func controllerSettingsDTO(settings GameSettings) GameSettingsDTO {
	mode := "human_vs_ai"
	humanSymbol := "x"
	if settings.XType == PlayerAI && settings.OType == PlayerAI {
		mode = "ai_vs_ai"
		humanSymbol = ""
	} else if settings.XType == PlayerHuman && settings.OType == PlayerHuman {
		mode = "human_vs_human"
		humanSymbol = ""
	} else if settings.OType == PlayerHuman {
		humanSymbol = "o"
	}
	start := "x"
	if settings.OStarts {
		start = "o"
	}
	return GameSettingsDTO{
		Mode:        mode,
		HumanSymbol: humanSymbol,
		Difficulty:  settings.Difficulty.String(),
		Start:       start,
	}
}

func boardToSlice(board Board) [][]int {
	rows := make([][]int, BoardRows)
	for row := 0; row < BoardRows; row++ {
		rows[row] = make([]int, BoardCols)
		for col := 0; col < BoardCols; col++ {
			rows[row][col] = cellToInt(board.At(row, col))
		}
	}
	return rows
}

func cellToInt(cell Cell) int {
	switch cell {
	case CellX:
		return 1
	case CellO:
		return 2
	default:
		return 0
	}
}

func playerToString(player PlayerSymbol) string {
	if player == PlayerX {
		return "x"
	}
	return "o"
}

func winnerFromStatus(status GameStatus) string {
	switch status {
	case StatusXWon:
		return "x"
	case StatusOWon:
		return "o"
	default:
		return ""
	}
}

func statusToString(status GameStatus) string {
	switch status {
	case StatusNotStarted:
		return "not_started"
	case StatusXWon:
		return "x_won"
	case StatusOWon:
		return "o_won"
	case StatusDraw:
		return "draw"
	default:
		return "running"
	}
}

func historyToDTO(history MoveHistory) []historyEntryDTO {
	entries := history.All()
	result := make([]historyEntryDTO, 0, len(entries))
	for _, entry := range entries {
		result = append(result, historyEntryToDTO(entry))
	}
	return result
}

func historyEntryToDTO(entry HistoryEntry) historyEntryDTO {
	return historyEntryDTO{
		Row:       entry.Move.Row,
		Col:       entry.Move.Col,
		Player:    playerToString(entry.Player),
		ElapsedMs: entry.ElapsedMs,
		IsAi:      entry.IsAi,
	}
}

func resetFromController(controller *GameController) resetPayload {
	state := controller.State()
	return resetPayload{
		GameID:          state.ID,
		History:         historyToDTO(controller.History()),
		NextPlayer:      playerToString(state.ToMove),
		Winner:          winnerFromStatus(state.Status),
		Status:          statusToString(state.Status),
		WinningLine:     append([]Move(nil), state.WinningLine...),
		Stats:           controller.Stats(),
		TurnStartedAtMs: controller.CurrentTurnStartedAtMs(),
	}
}

func mustMarshal(v any) json.RawMessage {
	data, _ := json.Marshal(v)
	return data
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

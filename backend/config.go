package main

import "sync"

type Config struct {
	TickIntervalMs      int   `json:"tick_interval_ms"`
	AiThinkDelayEnabled bool  `json:"ai_think_delay_enabled"`
	AiSeed              int64 `json:"ai_seed"`
	LogMoves            bool  `json:"log_moves"`
	ColorLog            bool  `json:"color_log"`
}

type ConfigStore struct {
	mu     sync.RWMutex
	config Config
}

func DefaultConfig() Config {
	return Config{
		TickIntervalMs: 50,

		// Pacing only; move selection itself is instant on a 3x3 board.
		AiThinkDelayEnabled: true,

		// 0 means seed from the clock. Set for reproducible games.
		AiSeed: 0,

		LogMoves: true,
		ColorLog: true,
	}
}

var configStore = &ConfigStore{config: DefaultConfig()}

func GetConfig() Config {
	return configStore.Get()
}

func (c *ConfigStore) Get() Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config
}

func (c *ConfigStore) Update(newConfig Config) {
	c.mu.Lock()
	c.config = newConfig
	c.mu.Unlock()
}

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// GameConfig carries tunables for room pacing and bot behavior.
type GameConfig struct {
	TurnDurationSeconds int `json:"turn_duration_seconds"`
	// BotAutoFillDelaySeconds configures how many seconds to wait before
	// adding bots to a solo human lobby.
	BotAutoFillDelaySeconds int `json:"bot_auto_fill_delay_seconds"`
	BotMinDelaySeconds      int `json:"bot_min_delay_seconds"`
	BotMaxDelaySeconds      int `json:"bot_max_delay_seconds"`
}

var (
	cfg      *GameConfig
	loadOnce sync.Once
	loadErr  error
)

// LoadGameConfig loads the game configuration from the given path.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read game config: %w", err)
			return
		}

		var c GameConfig
		if err := json.Unmarshal(data, &c); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal game config: %w", err)
			return
		}
		cfg = &c
	})
	return loadErr
}

// GetGameConfig returns the loaded configuration, or safe defaults when no
// file was loaded.
func GetGameConfig() GameConfig {
	if cfg == nil {
		return GameConfig{
			TurnDurationSeconds:     30,
			BotAutoFillDelaySeconds: 5,
			BotMinDelaySeconds:      1,
			BotMaxDelaySeconds:      3,
		}
	}
	return *cfg
}

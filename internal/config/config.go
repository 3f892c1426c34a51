package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerURL  string
	WSURL      string
	RoomID     string
	PlayerID   int
	PlayerName string
	Avatar     string
	DebugAddr  string
	LogLevel   string
}

// Load reads .env if one exists, then the environment. Only MISTERIO_ROOM_ID
// has no usable default.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ServerURL:  getEnv("MISTERIO_SERVER_URL", "http://localhost:8000"),
		WSURL:      getEnv("MISTERIO_WS_URL", "ws://localhost:8000"),
		RoomID:     os.Getenv("MISTERIO_ROOM_ID"),
		PlayerName: getEnv("MISTERIO_PLAYER_NAME", "invitado"),
		Avatar:     getEnv("MISTERIO_AVATAR", "detective"),
		DebugAddr:  getEnv("MISTERIO_DEBUG_ADDR", ":9090"),
		LogLevel:   getEnv("MISTERIO_LOG_LEVEL", "info"),
	}

	if raw := os.Getenv("MISTERIO_PLAYER_ID"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid MISTERIO_PLAYER_ID %q: %w", raw, err)
		}
		cfg.PlayerID = id
	}

	if cfg.RoomID == "" {
		return nil, fmt.Errorf("MISTERIO_ROOM_ID is required")
	}
	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

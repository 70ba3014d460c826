package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"pong/internal/game"
)

const (
	DefaultWidth  = 800
	DefaultHeight = 600
	DefaultTitle  = "Pong"
	DefaultPort   = "8080"
	DefaultWatch  = "ws://localhost:8080/spectate"
)

type Config struct {
	Width         int
	Height        int
	Seed          int64
	Title         string
	SpectateAddr  string // empty disables the spectator feed in the window client
	SpectateToken string // empty leaves the feed open
	Port          string
	WatchAddr     string
}

// Load reads an optional .env file and then the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("loading .env: %w", err)
		}
	} else {
		log.Println("Loaded environment from .env")
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function such as os.Getenv.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		Seed:          time.Now().UnixNano(),
		Title:         DefaultTitle,
		SpectateAddr:  getenv("PONG_SPECTATE_ADDR"),
		SpectateToken: getenv("PONG_SPECTATE_TOKEN"),
		Port:          DefaultPort,
		WatchAddr:     DefaultWatch,
	}

	var err error
	if cfg.Width, err = intVar(getenv, "PONG_WIDTH", cfg.Width); err != nil {
		return Config{}, err
	}
	if cfg.Height, err = intVar(getenv, "PONG_HEIGHT", cfg.Height); err != nil {
		return Config{}, err
	}
	if v := getenv("PONG_SEED"); v != "" {
		cfg.Seed, err = strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("PONG_SEED: %w", err)
		}
	}
	if v := getenv("PONG_TITLE"); v != "" {
		cfg.Title = v
	}
	if v := getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := getenv("PONG_WATCH_ADDR"); v != "" {
		cfg.WatchAddr = v
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects fields that cannot hold both paddles and the ball.
func (c Config) Validate() error {
	minWidth := 2*(game.PaddleMargin+game.PaddleWidth) + game.BallSize
	if float64(c.Width) < minWidth {
		return fmt.Errorf("width %d too small, need at least %.0f", c.Width, minWidth)
	}
	if float64(c.Height) < game.PaddleHeight {
		return fmt.Errorf("height %d too small, need at least %.0f", c.Height, game.PaddleHeight)
	}
	return nil
}

func (c Config) Field() game.Field {
	return game.Field{Width: float64(c.Width), Height: float64(c.Height)}
}

func intVar(getenv func(string) string, key string, def int) (int, error) {
	v := getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

package config

import (
	"testing"

	"pong/internal/game"
)

func env(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv(env(nil))
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.Width != DefaultWidth || cfg.Height != DefaultHeight {
		t.Fatalf("size = %dx%d, want %dx%d", cfg.Width, cfg.Height, DefaultWidth, DefaultHeight)
	}
	if cfg.Title != DefaultTitle || cfg.Port != DefaultPort || cfg.SpectateAddr != "" || cfg.WatchAddr != DefaultWatch {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Field() != (game.Field{Width: DefaultWidth, Height: DefaultHeight}) {
		t.Fatalf("field = %+v", cfg.Field())
	}
}

func TestFromEnvOverrides(t *testing.T) {
	cfg, err := FromEnv(env(map[string]string{
		"PONG_WIDTH":          "640",
		"PONG_HEIGHT":         "480",
		"PONG_SEED":           "99",
		"PONG_TITLE":          "Table",
		"PONG_SPECTATE_ADDR":  ":9000",
		"PONG_SPECTATE_TOKEN": "s3cret",
		"PORT":                "9090",
		"PONG_WATCH_ADDR":     "ws://table:9090/spectate",
	}))
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	want := Config{
		Width:         640,
		Height:        480,
		Seed:          99,
		Title:         "Table",
		SpectateAddr:  ":9000",
		SpectateToken: "s3cret",
		Port:          "9090",
		WatchAddr:     "ws://table:9090/spectate",
	}
	if cfg != want {
		t.Fatalf("config = %+v, want %+v", cfg, want)
	}
}

func TestFromEnvRejectsBadValues(t *testing.T) {
	tests := map[string]map[string]string{
		"non-numeric width": {"PONG_WIDTH": "wide"},
		"non-numeric seed":  {"PONG_SEED": "x"},
		"too narrow":        {"PONG_WIDTH": "60"},
		"too short":         {"PONG_HEIGHT": "99"},
		"negative height":   {"PONG_HEIGHT": "-600"},
	}
	for name, vars := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := FromEnv(env(vars)); err == nil {
				t.Fatalf("expected error for %v", vars)
			}
		})
	}
}

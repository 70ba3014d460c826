package main

import (
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"pong/internal/client"
	"pong/internal/config"
	"pong/internal/game"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	nc, err := client.NewNetClient(cfg.WatchAddr)
	if err != nil {
		log.Fatalf("failed to connect to %s: %v", cfg.WatchAddr, err)
	}
	defer nc.Close()
	log.Printf("Watching %s", cfg.WatchAddr)

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title + " (spectating)")
	ebiten.SetTPS(game.FPS)

	err = ebiten.RunGame(client.NewWatcher(nc, cfg.Field()))
	if errors.Is(err, client.ErrFeedClosed) {
		log.Printf("Feed closed by server")
		return
	}
	if err != nil {
		log.Fatal(err)
	}
}

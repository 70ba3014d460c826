package main

import (
	"context"
	"log"
	"math/rand"
	"net/http"

	"github.com/hajimehoshi/ebiten/v2"

	"pong/internal/client"
	"pong/internal/config"
	"pong/internal/game"
	"pong/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	session := game.NewSession(cfg.Field(), rand.New(rand.NewSource(cfg.Seed)))

	// Optional read-only feed for spectators
	var mirror game.Renderer
	if cfg.SpectateAddr != "" {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		hub := server.NewHub(cfg.Field())
		go hub.Run(ctx)
		go func() {
			log.Printf("Spectator feed on ws://%s/spectate", cfg.SpectateAddr)
			if err := http.ListenAndServe(cfg.SpectateAddr, server.Routes(hub, cfg.SpectateToken)); err != nil {
				log.Printf("Spectator server error: %v", err)
			}
		}()
		mirror = hub
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetTPS(game.FPS)

	if err := ebiten.RunGame(client.NewGame(session, mirror)); err != nil {
		log.Fatal(err)
	}
}

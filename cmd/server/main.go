package main

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"pong/internal/config"
	"pong/internal/game"
	"pong/internal/server"
)

// Headless table: the AI plays against a motionless paddle and the game is
// streamed to spectators.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session := game.NewSession(cfg.Field(), rand.New(rand.NewSource(cfg.Seed)))
	hub := server.NewHub(cfg.Field())
	driver := game.NewDriver(session, hub, nil)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: server.Routes(hub, cfg.SpectateToken),
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return hub.Run(ctx)
	})
	g.Go(func() error {
		err := driver.RunAtFrameRate(ctx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		log.Printf("Server starting on :%s", cfg.Port)
		log.Printf("Spectator endpoint: ws://localhost:%s/spectate", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal("Server error: ", err)
	}
	log.Printf("Server stopped at tick %d (score %d-%d)", session.Tick, session.Score.Left, session.Score.Right)
}

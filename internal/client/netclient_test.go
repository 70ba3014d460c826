package client

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pong/internal/game"
	"pong/internal/server"
)

func TestWatcherFollowsSpectatorFeed(t *testing.T) {
	field := game.Field{Width: 640, Height: 480}
	hub := server.NewHub(field)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	srv := httptest.NewServer(server.Routes(hub, ""))
	defer srv.Close()

	nc, err := NewNetClient("ws" + strings.TrimPrefix(srv.URL, "http") + "/spectate")
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer nc.Close()

	w := NewWatcher(nc, game.Field{Width: 800, Height: 600})

	deadline := time.Now().Add(2 * time.Second)
	for w.field != field {
		if time.Now().After(deadline) {
			t.Fatalf("no welcome received")
		}
		w.poll()
		time.Sleep(5 * time.Millisecond)
	}
	if width, height := w.Layout(0, 0); width != 640 || height != 480 {
		t.Fatalf("layout = %dx%d, want 640x480", width, height)
	}

	s := game.NewSession(field, nil)
	s.Score = game.Score{Left: 2, Right: 9}
	for w.current == nil {
		if time.Now().After(deadline) {
			t.Fatalf("no snapshot received")
		}
		// Even ticks are broadcast.
		s.Step(game.Input{})
		hub.Render(s.Snapshot())
		time.Sleep(5 * time.Millisecond)
		w.poll()
	}

	if w.current.Field != field {
		t.Fatalf("snapshot field = %+v", w.current.Field)
	}
	if w.current.Tick%2 != 0 {
		t.Fatalf("received odd tick %d", w.current.Tick)
	}
	if w.board.Text(LeftScoreID) != "2" || w.board.Text(RightScoreID) != "9" {
		t.Fatalf("board = %q / %q", w.board.Text(LeftScoreID), w.board.Text(RightScoreID))
	}
}

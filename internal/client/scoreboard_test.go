package client

import (
	"math/rand"
	"testing"

	"pong/internal/game"
)

func TestScoreBoardTracksSessionScores(t *testing.T) {
	s := game.NewSession(game.Field{Width: 800, Height: 600}, rand.New(rand.NewSource(5)))
	s.AI = nil
	s.Right.Y = 0
	g := NewGame(s, nil)

	s.Ball = game.Ball{X: 786, Y: 292, Size: game.BallSize, DX: 5}
	s.Step(game.Input{})
	if got := g.board.Text(LeftScoreID); got != "1" {
		t.Fatalf("%s = %q, want 1", LeftScoreID, got)
	}

	s.Ball = game.Ball{X: -11, Y: 292, Size: game.BallSize, DX: -5}
	s.Step(game.Input{})
	s.Ball = game.Ball{X: -11, Y: 292, Size: game.BallSize, DX: -5}
	s.Step(game.Input{})
	if got := g.board.Text(RightScoreID); got != "2" {
		t.Fatalf("%s = %q, want 2", RightScoreID, got)
	}
}

func TestScoreBoardSync(t *testing.T) {
	b := NewScoreBoard()
	b.Sync(game.Score{Left: 7, Right: 11})

	if b.Text(LeftScoreID) != "7" || b.Text(RightScoreID) != "11" {
		t.Fatalf("labels = %q / %q", b.Text(LeftScoreID), b.Text(RightScoreID))
	}
}

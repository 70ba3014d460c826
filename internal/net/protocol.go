package net

import "pong/internal/game"

// Server → spectator messages. Spectators never send anything the server acts on.

type WelcomeMessage struct {
	Type   string  `json:"type"`
	ID     string  `json:"id"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type PaddleState struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

type BallState struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Size float64 `json:"size"`
	DX   float64 `json:"dx"`
	DY   float64 `json:"dy"`
}

type ScoreState struct {
	Left  int `json:"left"`
	Right int `json:"right"`
}

type SnapMessage struct {
	Type  string      `json:"type"`
	Tick  uint32      `json:"tick"`
	Left  PaddleState `json:"left"`
	Right PaddleState `json:"right"`
	Ball  BallState   `json:"ball"`
	Score ScoreState  `json:"score"`
}

func NewWelcome(id string, f game.Field) WelcomeMessage {
	return WelcomeMessage{
		Type:   "welcome",
		ID:     id,
		Width:  f.Width,
		Height: f.Height,
	}
}

func NewSnap(s game.Snapshot) SnapMessage {
	return SnapMessage{
		Type:  "snap",
		Tick:  s.Tick,
		Left:  paddleState(s.Left),
		Right: paddleState(s.Right),
		Ball: BallState{
			X:    s.Ball.X,
			Y:    s.Ball.Y,
			Size: s.Ball.Size,
			DX:   s.Ball.DX,
			DY:   s.Ball.DY,
		},
		Score: ScoreState{Left: s.Score.Left, Right: s.Score.Right},
	}
}

func paddleState(p game.Paddle) PaddleState {
	return PaddleState{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

// Snapshot turns a received frame back into simulation terms for drawing.
func (m SnapMessage) Snapshot(f game.Field) game.Snapshot {
	return game.Snapshot{
		Tick:  m.Tick,
		Field: f,
		Left:  game.Paddle{X: m.Left.X, Y: m.Left.Y, Width: m.Left.W, Height: m.Left.H},
		Right: game.Paddle{X: m.Right.X, Y: m.Right.Y, Width: m.Right.W, Height: m.Right.H},
		Ball: game.Ball{
			X:    m.Ball.X,
			Y:    m.Ball.Y,
			Size: m.Ball.Size,
			DX:   m.Ball.DX,
			DY:   m.Ball.DY,
		},
		Score: game.Score{Left: m.Score.Left, Right: m.Score.Right},
	}
}

package client

import (
	"strconv"

	"pong/internal/game"
)

const (
	NetDash = 10.0 // dash and gap length of the centre line
	ScoreY  = 30
)

type Rect struct {
	X, Y, W, H float32
}

type Circle struct {
	X, Y, R float32
}

type Segment struct {
	X0, Y0, X1, Y1 float32
}

type Label struct {
	ID   string
	Text string
	X, Y int
}

// Scene is everything drawn for one frame, in screen coordinates.
type Scene struct {
	Width, Height float32
	Paddles       [2]Rect
	Ball          Circle
	Net           []Segment
	Scores        [2]Label
}

// BuildScene lays out a frame from a snapshot. It only reads its inputs.
func BuildScene(snap game.Snapshot, board *ScoreBoard) Scene {
	w := float32(snap.Field.Width)
	h := float32(snap.Field.Height)

	sc := Scene{
		Width:  w,
		Height: h,
		Paddles: [2]Rect{
			paddleRect(snap.Left),
			paddleRect(snap.Right),
		},
		Ball: Circle{
			X: float32(snap.Ball.X + snap.Ball.Size/2),
			Y: float32(snap.Ball.Y + snap.Ball.Size/2),
			R: float32(snap.Ball.Size / 2),
		},
	}

	for y := float32(0); y < h; y += 2 * NetDash {
		end := y + NetDash
		if end > h {
			end = h
		}
		sc.Net = append(sc.Net, Segment{X0: w / 2, Y0: y, X1: w / 2, Y1: end})
	}

	left, right := strconv.Itoa(snap.Score.Left), strconv.Itoa(snap.Score.Right)
	if board != nil {
		left, right = board.Text(LeftScoreID), board.Text(RightScoreID)
	}
	sc.Scores = [2]Label{
		{ID: LeftScoreID, Text: left, X: int(w / 4), Y: ScoreY},
		{ID: RightScoreID, Text: right, X: int(3 * w / 4), Y: ScoreY},
	}
	return sc
}

func paddleRect(p game.Paddle) Rect {
	return Rect{X: float32(p.X), Y: float32(p.Y), W: float32(p.Width), H: float32(p.Height)}
}

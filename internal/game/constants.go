package game

import "time"

const (
	PaddleWidth  = 14.0
	PaddleHeight = 100.0
	PaddleMargin = 20.0 // distance from the field edge
	BallSize     = 16.0
	BallSpeed    = 5.0
	AISpeed      = 4.0
	FPS          = 60
	TickDuration = time.Second / FPS
)

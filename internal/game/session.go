package game

import (
	"math/rand"
)

// ScoreSink receives the new score for one side right after that side scores.
type ScoreSink interface {
	SetScore(side Side, score int)
}

// Session owns one game: both paddles, the ball and the score.
// It is not safe for concurrent use; the frame driver is the only writer.
type Session struct {
	Field Field
	Left  Paddle // human
	Right Paddle // AI
	Ball  Ball
	Score Score
	Tick  uint32

	AI    Controller
	Sinks []ScoreSink

	rng *rand.Rand
}

// NewSession lays out a fresh game on a field of the given size and serves
// the ball in a random direction.
func NewSession(field Field, rng *rand.Rand) *Session {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	s := &Session{
		Field: field,
		Left: Paddle{
			X:      PaddleMargin,
			Y:      field.Height/2 - PaddleHeight/2,
			Width:  PaddleWidth,
			Height: PaddleHeight,
		},
		Right: Paddle{
			X:      field.Width - PaddleMargin - PaddleWidth,
			Y:      field.Height/2 - PaddleHeight/2,
			Width:  PaddleWidth,
			Height: PaddleHeight,
		},
		Ball: Ball{Size: BallSize},
		AI:   Tracker{Speed: AISpeed},
		rng:  rng,
	}
	s.ResetBall(0)
	return s
}

// ResetBall puts the ball back in the centre. dir of +1 or -1 fixes the
// horizontal direction; anything else picks one at random.
func (s *Session) ResetBall(dir int) {
	s.Ball.X = s.Field.Width/2 - s.Ball.Size/2
	s.Ball.Y = s.Field.Height/2 - s.Ball.Size/2

	sign := float64(dir)
	if dir != 1 && dir != -1 {
		sign = s.randomSign()
	}
	s.Ball.DX = BallSpeed * sign
	s.Ball.DY = BallSpeed * (s.rng.Float64()*2 - 1)
}

func (s *Session) randomSign() float64 {
	if s.rng.Float64() > 0.5 {
		return 1
	}
	return -1
}

// Step advances the game by one tick.
func (s *Session) Step(in Input) {
	if in.HasPointer {
		s.MoveHumanPaddle(in.PointerY)
	}

	b := &s.Ball
	b.X += b.DX
	b.Y += b.DY

	// Top and bottom walls
	if b.Y < 0 {
		b.Y = 0
		b.DY = -b.DY
	}
	if b.Y+b.Size > s.Field.Height {
		b.Y = s.Field.Height - b.Size
		b.DY = -b.DY
	}

	// Paddles. The ball is pushed out to the paddle face so it cannot stick.
	if Intersects(*b, s.Left) {
		b.X = s.Left.X + s.Left.Width
		b.DX = -b.DX
		b.DY = BallSpeed * impact(*b, s.Left)
	}
	if Intersects(*b, s.Right) {
		b.X = s.Right.X - b.Size
		b.DX = -b.DX
		b.DY = BallSpeed * impact(*b, s.Right)
	}

	// Scoring
	if b.X < 0 {
		s.Score.Right++
		s.notify(Right, s.Score.Right)
		s.ResetBall(1)
	}
	if b.X+b.Size > s.Field.Width {
		s.Score.Left++
		s.notify(Left, s.Score.Left)
		s.ResetBall(-1)
	}

	s.MoveAIPaddle()
	s.Tick++
}

// MoveHumanPaddle applies a pointer sample to the left paddle.
func (s *Session) MoveHumanPaddle(pointerY float64) {
	s.Left.Y = PaddleYForPointer(pointerY, s.Left, s.Field)
}

// MoveAIPaddle lets the controller move the right paddle, then clamps it.
func (s *Session) MoveAIPaddle() {
	if s.AI != nil {
		s.AI.Move(&s.Right, s.Ball, s.Field)
	}
	s.Right.Clamp(s.Field)
}

func (s *Session) notify(side Side, score int) {
	for _, sink := range s.Sinks {
		sink.SetScore(side, score)
	}
}

// Snapshot is a copy of the session state safe to hand to other goroutines.
type Snapshot struct {
	Tick  uint32
	Field Field
	Left  Paddle
	Right Paddle
	Ball  Ball
	Score Score
}

func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Tick:  s.Tick,
		Field: s.Field,
		Left:  s.Left,
		Right: s.Right,
		Ball:  s.Ball,
		Score: s.Score,
	}
}

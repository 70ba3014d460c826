package game

import "testing"

func TestTrackerMovesTowardBall(t *testing.T) {
	f := Field{Width: 800, Height: 600}
	tr := Tracker{Speed: AISpeed}

	tests := []struct {
		name  string
		y     float64
		ballY float64
		want  float64
	}{
		{"ball above", 150, 0, 146},
		{"ball below", 150, 400, 154},
		{"exact centre holds", 150, 200, 150},
		{"clamped at top", 2, 0, 0},
		{"clamped at bottom", 498, 600, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Paddle{X: 766, Y: tt.y, Width: PaddleWidth, Height: PaddleHeight}
			tr.Move(&p, Ball{Y: tt.ballY, Size: BallSize}, f)
			if p.Y != tt.want {
				t.Fatalf("paddle y = %f, want %f", p.Y, tt.want)
			}
		})
	}
}

func TestMoveAIPaddleUsesAISpeed(t *testing.T) {
	s := newTestSession()
	s.Right.Y = 150 // centre at 200
	s.Ball.Y = 0

	s.MoveAIPaddle()
	if s.Right.Y != 150-AISpeed {
		t.Fatalf("right paddle y = %f, want %f", s.Right.Y, 150-AISpeed)
	}
}

func TestMoveAIPaddleWithoutControllerStillClamps(t *testing.T) {
	s := newTestSession()
	s.AI = nil
	s.Right.Y = -30

	s.MoveAIPaddle()
	if s.Right.Y != 0 {
		t.Fatalf("right paddle y = %f, want 0", s.Right.Y)
	}
}

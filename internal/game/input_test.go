package game

import "testing"

func TestPaddleYForPointer(t *testing.T) {
	f := Field{Width: 800, Height: 600}
	p := Paddle{X: PaddleMargin, Width: PaddleWidth, Height: PaddleHeight}

	tests := []struct {
		pointer float64
		want    float64
	}{
		{300, 250},
		{10, 0},
		{-40, 0},
		{590, 500},
		{50, 0},
		{550, 500},
	}
	for _, tt := range tests {
		if got := PaddleYForPointer(tt.pointer, p, f); got != tt.want {
			t.Fatalf("PaddleYForPointer(%f) = %f, want %f", tt.pointer, got, tt.want)
		}
	}
}

package game

// Field is the fixed arena every position is clamped against.
type Field struct {
	Width  float64
	Height float64
}

// Paddle is an axis-aligned rectangle. Only Y changes after creation.
type Paddle struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

func (p Paddle) CenterY() float64 {
	return p.Y + p.Height/2
}

// Clamp keeps the paddle fully inside the field vertically.
func (p *Paddle) Clamp(f Field) {
	p.Y = clamp(p.Y, 0, f.Height-p.Height)
}

// Ball is tracked by its top-left corner; Size is both width and height.
type Ball struct {
	X    float64
	Y    float64
	Size float64
	DX   float64
	DY   float64
}

func (b Ball) CenterY() float64 {
	return b.Y + b.Size/2
}

type Score struct {
	Left  int
	Right int
}

// Side identifies one half of the table.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

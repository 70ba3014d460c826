package game

// Controller decides the AI paddle's movement for one tick.
type Controller interface {
	Move(p *Paddle, b Ball, f Field)
}

// Tracker chases the ball's y at a fixed speed. It only holds still when
// the paddle centre equals ball.Y exactly, which with float coordinates
// almost never happens, so the paddle jitters around the ball. That is
// how it has always played.
type Tracker struct {
	Speed float64
}

func (t Tracker) Move(p *Paddle, b Ball, f Field) {
	center := p.CenterY()
	if center < b.Y {
		p.Y += t.Speed
	} else if center > b.Y {
		p.Y -= t.Speed
	}
	p.Clamp(f)
}

// ControllerFunc adapts a plain function to Controller.
type ControllerFunc func(p *Paddle, b Ball, f Field)

func (fn ControllerFunc) Move(p *Paddle, b Ball, f Field) {
	fn(p, b, f)
}

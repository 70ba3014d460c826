package game

// Intersects reports whether the ball's box overlaps the paddle's box.
// Edges that only touch do not count.
func Intersects(b Ball, p Paddle) bool {
	return b.X < p.X+p.Width &&
		b.X+b.Size > p.X &&
		b.Y < p.Y+p.Height &&
		b.Y+b.Size > p.Y
}

// impact is the signed offset of the ball centre from the paddle centre,
// normalised by half the paddle height. Roughly in [-1, 1].
func impact(b Ball, p Paddle) float64 {
	return (b.CenterY() - p.CenterY()) / (p.Height / 2)
}

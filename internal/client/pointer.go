package client

import "pong/internal/game"

// pointerTracker turns polled cursor positions into move events: a sample
// is only produced when the cursor moved since the previous poll.
type pointerTracker struct {
	seen         bool
	lastX, lastY int
}

func (p *pointerTracker) sample(x, y int) game.Input {
	if !p.seen {
		p.seen = true
		p.lastX, p.lastY = x, y
		return game.Input{}
	}
	if x == p.lastX && y == p.lastY {
		return game.Input{}
	}
	p.lastX, p.lastY = x, y
	return game.Input{PointerY: float64(y), HasPointer: true}
}

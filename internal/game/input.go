package game

// Input is the host state sampled at the start of a tick.
type Input struct {
	PointerY   float64 // relative to the field's top edge
	HasPointer bool
}

// PaddleYForPointer centres the paddle on the pointer and clamps it to the field.
func PaddleYForPointer(pointerY float64, p Paddle, f Field) float64 {
	return clamp(pointerY-p.Height/2, 0, f.Height-p.Height)
}

package client

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

type Renderer struct {
	face       font.Face
	foreground color.Color
	background color.Color
}

func NewRenderer() *Renderer {
	return &Renderer{
		face:       basicfont.Face7x13,
		foreground: color.RGBA{255, 255, 255, 255},
		background: color.RGBA{0, 0, 0, 255},
	}
}

// Draw paints a scene. It clears the whole screen first, so drawing the
// same scene twice gives the same picture.
func (r *Renderer) Draw(screen *ebiten.Image, sc Scene) {
	screen.Fill(r.background)

	for _, p := range sc.Paddles {
		vector.DrawFilledRect(screen, p.X, p.Y, p.W, p.H, r.foreground, false)
	}

	vector.DrawFilledCircle(screen, sc.Ball.X, sc.Ball.Y, sc.Ball.R, r.foreground, true)

	for _, s := range sc.Net {
		vector.StrokeLine(screen, s.X0, s.Y0, s.X1, s.Y1, 1, r.foreground, false)
	}

	for _, l := range sc.Scores {
		// Centre the label on its x
		w := font.MeasureString(r.face, l.Text).Round()
		text.Draw(screen, l.Text, r.face, l.X-w/2, l.Y, r.foreground)
	}
}

// DrawWaiting is shown before the first frame arrives.
func (r *Renderer) DrawWaiting(screen *ebiten.Image) {
	screen.Fill(color.RGBA{200, 200, 200, 255})
}

package client

import (
	"github.com/hajimehoshi/ebiten/v2"

	"pong/internal/game"
)

// Game hosts a local session in an ebiten window. Ebiten's own loop is the
// frame driver: Update steps, Draw renders.
type Game struct {
	session  *game.Session
	renderer *Renderer
	board    *ScoreBoard
	mirror   game.Renderer
	pointer  pointerTracker
}

// NewGame attaches a score board to the session. mirror, if not nil,
// receives every frame as well (the spectator hub).
func NewGame(s *game.Session, mirror game.Renderer) *Game {
	board := NewScoreBoard()
	board.Sync(s.Score)
	s.Sinks = append(s.Sinks, board)

	return &Game{
		session:  s,
		renderer: NewRenderer(),
		board:    board,
		mirror:   mirror,
	}
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.session.Step(g.pointer.sample(ebiten.CursorPosition()))

	if g.mirror != nil {
		g.mirror.Render(g.session.Snapshot())
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, BuildScene(g.session.Snapshot(), g.board))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.session.Field.Width), int(g.session.Field.Height)
}

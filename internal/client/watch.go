package client

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"pong/internal/game"
)

var ErrFeedClosed = errors.New("spectator feed closed")

// Watcher draws a remote game from a spectator feed.
type Watcher struct {
	nc       *NetClient
	renderer *Renderer
	board    *ScoreBoard
	field    game.Field
	current  *game.Snapshot
}

// NewWatcher uses field until the server's welcome says otherwise.
func NewWatcher(nc *NetClient, field game.Field) *Watcher {
	return &Watcher{
		nc:       nc,
		renderer: NewRenderer(),
		board:    NewScoreBoard(),
		field:    field,
	}
}

func (w *Watcher) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	w.poll()

	select {
	case <-w.nc.Done():
		return ErrFeedClosed
	default:
	}
	return nil
}

// poll drains everything buffered and keeps the newest frame.
func (w *Watcher) poll() {
	if welcome := w.nc.GetWelcome(); welcome != nil {
		w.field = game.Field{Width: welcome.Width, Height: welcome.Height}
	}
	for {
		msg := w.nc.GetSnapshot()
		if msg == nil {
			return
		}
		snap := msg.Snapshot(w.field)
		w.current = &snap
		w.board.Sync(snap.Score)
	}
}

func (w *Watcher) Draw(screen *ebiten.Image) {
	if w.current == nil {
		w.renderer.DrawWaiting(screen)
		return
	}
	w.renderer.Draw(screen, BuildScene(*w.current, w.board))
}

func (w *Watcher) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(w.field.Width), int(w.field.Height)
}

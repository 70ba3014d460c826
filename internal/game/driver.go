package game

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Renderer consumes a snapshot once per frame. It must not hold on to the
// session itself.
type Renderer interface {
	Render(snap Snapshot)
}

type RenderFunc func(snap Snapshot)

func (fn RenderFunc) Render(snap Snapshot) {
	fn(snap)
}

// Driver runs the step, render, wait loop for hosts that do not have a
// frame loop of their own.
type Driver struct {
	session  *Session
	renderer Renderer
	input    func() Input

	running  atomic.Bool
	quit     chan struct{}
	stopOnce sync.Once
}

// NewDriver wires a session to a renderer. input may be nil, in which case
// every tick runs without a pointer sample.
func NewDriver(s *Session, r Renderer, input func() Input) *Driver {
	return &Driver{
		session:  s,
		renderer: r,
		input:    input,
		quit:     make(chan struct{}),
	}
}

// Run steps and renders once, then again on every value received from
// frames, until ctx is done, Stop is called or frames is closed.
func (d *Driver) Run(ctx context.Context, frames <-chan time.Time) error {
	d.running.Store(true)
	defer d.running.Store(false)

	for {
		d.tick()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-d.quit:
			return nil
		case _, ok := <-frames:
			if !ok {
				return nil
			}
		}
	}
}

// RunAtFrameRate runs the loop at FPS using a wall-clock ticker.
func (d *Driver) RunAtFrameRate(ctx context.Context) error {
	ticker := time.NewTicker(TickDuration)
	defer ticker.Stop()
	return d.Run(ctx, ticker.C)
}

func (d *Driver) Stop() {
	d.stopOnce.Do(func() {
		close(d.quit)
	})
}

func (d *Driver) Running() bool {
	return d.running.Load()
}

func (d *Driver) tick() {
	var in Input
	if d.input != nil {
		in = d.input()
	}
	d.session.Step(in)
	if d.renderer != nil {
		d.renderer.Render(d.session.Snapshot())
	}
}

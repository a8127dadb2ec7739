package driver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

const inputBuffer = 16

type Renderer interface {
	Render(f Frame) error
}

// RenderFunc adapts a function to Renderer.
type RenderFunc func(f Frame) error

func (fn RenderFunc) Render(f Frame) error { return fn(f) }

type Options struct {
	FrameInterval time.Duration
	StartupDelay  time.Duration
	// MaxFrames stops the loop after that many frames. Zero runs until cancelled.
	MaxFrames int
	Clock     Clock
	Logger    *zap.Logger
}

type Loop struct {
	ticker   *Ticker
	renderer Renderer
	opts     Options
	inputs   chan Input
	log      *zap.Logger
}

func NewLoop(t *Ticker, r Renderer, opts Options) *Loop {
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = time.Second / 60
	}
	if opts.Clock == nil {
		opts.Clock = SystemClock
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Loop{
		ticker:   t,
		renderer: r,
		opts:     opts,
		inputs:   make(chan Input, inputBuffer),
		log:      log.Named("loop"),
	}
}

// Send queues an input for the next frame. It never blocks; when the queue
// is full the oldest input is dropped, carrying its commit flag forward.
func (l *Loop) Send(in Input) {
	for {
		select {
		case l.inputs <- in:
			return
		default:
		}
		select {
		case old := <-l.inputs:
			in.Commit = in.Commit || old.Commit
		default:
		}
	}
}

// Run waits out the startup delay and then ticks once per frame interval
// until ctx is done, MaxFrames is reached or the renderer fails.
func (l *Loop) Run(ctx context.Context) error {
	if l.renderer == nil || l.ticker == nil {
		l.log.Warn("no renderer or ticker attached, loop disabled")
		return nil
	}

	clock := l.opts.Clock
	if err := l.wait(ctx, l.opts.StartupDelay); err != nil {
		return stopErr(err)
	}
	l.ticker.Start(clock.Now())
	l.log.Debug("loop started", zap.Duration("interval", l.opts.FrameInterval), zap.Int("teeth", l.ticker.sim.Len()))

	for frames := 0; ; {
		l.drain()

		frame := l.ticker.Tick(clock.Now())
		if err := l.renderer.Render(frame); err != nil {
			l.log.Error("render failed", zap.Int("frame", frames), zap.Error(err))
			return fmt.Errorf("render frame %d: %w", frames, err)
		}
		frames++

		if l.opts.MaxFrames > 0 && frames >= l.opts.MaxFrames {
			l.log.Debug("frame limit reached", zap.Int("frames", frames))
			return nil
		}
		if err := l.wait(ctx, l.opts.FrameInterval); err != nil {
			l.log.Debug("loop stopped", zap.Int("frames", frames), zap.Error(err))
			return stopErr(err)
		}
	}
}

// wait blocks for d and returns ctx.Err() if ctx ends first.
func (l *Loop) wait(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-l.opts.Clock.After(d):
		return nil
	}
}

// stopErr treats plain cancellation as a clean stop.
func stopErr(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (l *Loop) drain() {
	for {
		select {
		case in := <-l.inputs:
			l.ticker.Apply(in)
			if in.Commit {
				l.log.Info("teeth reinitialized", zap.Int("teeth", l.ticker.sim.Len()))
			}
		default:
			return
		}
	}
}

package anim

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/san-kum/wirecube/internal/config"
	"github.com/san-kum/wirecube/internal/render"
	"github.com/san-kum/wirecube/internal/screen"
	"github.com/san-kum/wirecube/internal/term"
)

// Loop owns the scene, the frame buffer, and the running rotation
// angle, and drives the rotate → project → rasterize → emit cycle at a
// fixed cadence. All state is confined to the single goroutine calling
// Run.
type Loop struct {
	fb        *screen.FrameBuffer
	scene     render.Scene
	cam       render.Camera
	display   term.Display
	angle     float64
	increment float64
	delay     time.Duration
}

func New(cfg *config.Config, display term.Display) (*Loop, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	fb, err := screen.New(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	return &Loop{
		fb:    fb,
		scene: render.Cube(),
		cam: render.Camera{
			Position: render.Vec3{X: cfg.Camera.X, Y: cfg.Camera.Y, Z: cfg.Camera.Z},
			SurfaceZ: cfg.Camera.SurfaceZ,
		},
		display:   display,
		increment: cfg.AngleIncrement,
		delay:     cfg.FrameDelay,
	}, nil
}

// Angle reports the current rotation angle in [0, 2π).
func (l *Loop) Angle() float64 { return l.angle }

// SetAngle places the loop at a specific rotation, wrapped into [0, 2π).
func (l *Loop) SetAngle(a float64) {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	l.angle = a
}

// Increment reports the per-cycle angle step in radians.
func (l *Loop) Increment() float64 { return l.increment }

// SetIncrement adjusts the per-cycle angle step; non-positive values
// are ignored.
func (l *Loop) SetIncrement(v float64) {
	if v > 0 {
		l.increment = v
	}
}

// Delay reports the inter-frame delay.
func (l *Loop) Delay() time.Duration { return l.delay }

// Frame renders the scene at the current angle and returns the
// serialized text without emitting it or advancing the angle.
func (l *Loop) Frame() string {
	l.fb.Clear()
	render.Draw(l.fb, l.scene, l.cam, render.Vec3{X: l.angle, Y: 0, Z: l.angle})
	return l.fb.String()
}

// Advance moves the rotation forward one step, wrapping at 2π.
func (l *Loop) Advance() {
	l.angle += l.increment
	if l.angle >= 2*math.Pi {
		l.angle -= 2 * math.Pi
	}
}

// Cycle renders, emits, and advances: one full beat of the loop.
func (l *Loop) Cycle() error {
	frame := l.Frame()
	if err := l.display.Clear(); err != nil {
		return err
	}
	if err := l.display.WriteFrame(frame); err != nil {
		return err
	}
	l.Advance()
	return nil
}

// Run cycles until ctx is cancelled or the display fails. Cancellation
// is the normal exit: Run returns nil so the process can finish with
// status 0. A display error is fatal and returned as-is.
func (l *Loop) Run(ctx context.Context) error {
	for {
		if err := l.Cycle(); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(l.delay):
		}
	}
}

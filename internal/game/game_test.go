package game

import (
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/planet-field/internal/scene"
	"github.com/iburimskiy/planet-field/internal/trajectory"
)

type fakeRenderer struct {
	resizes [][2]int
	pulses  []float64
	renders int
}

func (f *fakeRenderer) Render(*ebiten.Image, *scene.Scene, trajectory.CameraState) { f.renders++ }
func (f *fakeRenderer) Resize(w, h int)                                            { f.resizes = append(f.resizes, [2]int{w, h}) }
func (f *fakeRenderer) SetPulse(v float64)                                         { f.pulses = append(f.pulses, v) }

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func newTestGame(r Renderer, clock *fakeClock, level Level) *Game {
	return New(Options{
		Scene:      &scene.Scene{},
		Renderer:   r,
		Trajectory: trajectory.New(trajectory.DefaultDistance),
		TimeScale:  trajectory.DefaultTimeScale,
		Level:      level,
		Pulse:      2,
		Now:        clock.now,
	})
}

func TestLayout_ResizesOnChange(t *testing.T) {
	r := &fakeRenderer{}
	g := newTestGame(r, &fakeClock{t: time.Unix(0, 0)}, nil)

	w, h := g.Layout(800, 600)
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)
	g.Layout(800, 600)
	g.Layout(1024, 512)

	assert.Equal(t, [][2]int{{800, 600}, {1024, 512}}, r.resizes)
}

func TestUpdate_FollowsClock(t *testing.T) {
	r := &fakeRenderer{}
	clock := &fakeClock{t: time.Unix(100, 0)}
	g := newTestGame(r, clock, nil)
	startRoll := g.Camera().Roll

	clock.t = clock.t.Add(30 * time.Second)
	require.NoError(t, g.Update())

	cam := g.Camera()
	// 30 s at the default scale is trajectory time 2.
	assert.InDelta(t, 1.0, cam.Orbit.Y, 1e-9)
	assert.InDelta(t, startRoll+trajectory.Wobble(2), cam.Roll, 1e-9)
	assert.Empty(t, r.pulses, "no level source, no pulse")
}

func TestUpdate_Pulse(t *testing.T) {
	r := &fakeRenderer{}
	g := newTestGame(r, &fakeClock{t: time.Unix(0, 0)}, func() float64 { return 0.25 })

	require.NoError(t, g.Update())
	require.NoError(t, g.Update())
	assert.Equal(t, []float64{0.5, 0.5}, r.pulses)
}

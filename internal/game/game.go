package game

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/planet-field/internal/scene"
	"github.com/iburimskiy/planet-field/internal/trajectory"
)

// Renderer draws a scene for a camera and follows viewport changes.
type Renderer interface {
	Render(dst *ebiten.Image, s *scene.Scene, cam trajectory.CameraState)
	Resize(width, height int)
	SetPulse(v float64)
}

// Level reports a loudness in [0, 1]; nil means silence.
type Level func() float64

type Game struct {
	scene    *scene.Scene
	renderer Renderer
	traj     *trajectory.Trajectory

	// clock
	start     time.Time
	now       func() time.Time
	timeScale float64

	// pulse
	level Level
	pulse float64

	camera trajectory.CameraState
	width  int
	height int
}

type Options struct {
	Scene      *scene.Scene
	Renderer   Renderer
	Trajectory *trajectory.Trajectory
	TimeScale  float64
	Level      Level
	Pulse      float64
	// Now defaults to time.Now.
	Now func() time.Time
}

func New(o Options) *Game {
	now := o.Now
	if now == nil {
		now = time.Now
	}
	g := &Game{
		scene:     o.Scene,
		renderer:  o.Renderer,
		traj:      o.Trajectory,
		now:       now,
		start:     now(),
		timeScale: o.TimeScale,
		level:     o.Level,
		pulse:     o.Pulse,
	}
	g.camera = g.traj.PositionAt(0)
	return g
}

// Camera returns the camera of the last update.
func (g *Game) Camera() trajectory.CameraState { return g.camera }

func (g *Game) Update() error {
	t := trajectory.Scaled(g.now().Sub(g.start), g.timeScale)
	g.camera = g.traj.PositionAt(t)

	if g.level != nil {
		g.renderer.SetPulse(g.pulse * g.level())
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Render(screen, g.scene, g.camera)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.renderer.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until it is closed.
func Run(g *Game, width, height int, title string) error {
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

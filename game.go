package main

import (
	"fmt"
	"log"
	"path/filepath"
	"reflect"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/inkfall/ecs"
	"github.com/milk9111/inkfall/ecs/component"
	"github.com/milk9111/inkfall/ecs/render"
	"github.com/milk9111/inkfall/ecs/system"
	"github.com/milk9111/inkfall/prefabs"
)

type Game struct {
	frames int

	configPath string
	spec       *prefabs.SketchSpec
	watcher    *prefabs.Watcher

	world     *ecs.World
	scheduler *ecs.Scheduler
	physics   *system.PhysicsSystem
	session   *system.TouchSession
	renderer  *system.RenderSystem
	passes    ecs.RenderPasses
	stats     *strokeStats
}

func NewGame(configPath, replayPath string, debug, watch bool) (*Game, error) {
	spec, err := prefabs.LoadSketchSpec(configPath)
	if err != nil {
		return nil, err
	}

	brush, err := render.LoadBrush(spec.Brush.Image)
	if err != nil {
		return nil, err
	}

	world := ecs.NewWorld()
	physics := system.NewPhysicsSystem(system.PhysicsConfigFromSpec(spec))
	if _, err := physics.Attach(world); err != nil {
		return nil, fmt.Errorf("attach boundary: %w", err)
	}
	physics.SetTimeStep(1 / float64(ebiten.TPS()))

	session := system.NewTouchSession(system.TouchSessionConfig{
		ViewportW:  spec.Viewport.Width,
		ViewportH:  spec.Viewport.Height,
		Brush:      brush,
		Material:   materialFromSpec(spec),
		NewSurface: render.NewEbitenSurface,
	}, physics)

	var source system.TouchSource = system.NewEbitenTouchSource()
	if replayPath != "" {
		script, err := prefabs.LoadStrokeScript(replayPath)
		if err != nil {
			return nil, err
		}
		replay := system.NewReplaySource(script.Vectors(), float64(spec.Viewport.Height))
		source = system.MultiSource{source, replay}
		log.Printf("Game: replaying %d strokes from %s", len(script.Strokes), replayPath)
	}
	dispatcher := system.NewTouchDispatcher(source, session, float64(spec.Viewport.Height))
	stats := &strokeStats{}

	renderer := system.NewRenderSystem(spec.Background, session.Canvas)
	passes := ecs.RenderPasses{
		renderer,
		&system.PhysicsDebugPass{Physics: physics, ViewportH: float64(spec.Viewport.Height)},
	}

	g := &Game{
		configPath: configPath,
		spec:       spec,
		world:      world,
		scheduler:  ecs.NewScheduler(dispatcher, physics, stats),
		physics:    physics,
		session:    session,
		renderer:   renderer,
		passes:     passes,
		stats:      stats,
	}

	if err := system.SetDebug(world, debug); err != nil {
		return nil, fmt.Errorf("set debug: %w", err)
	}

	if watch {
		w, err := prefabs.NewWatcher(g.watchDir())
		if err != nil {
			log.Printf("Game: config watch disabled: %v", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

func (g *Game) Viewport() (int, int) {
	return g.spec.Viewport.Width, g.spec.Viewport.Height
}

func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("Game: close watcher: %v", err)
		}
	}
}

func (g *Game) Update() error {
	g.frames++

	g.pollConfig()

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		enabled := !system.DebugEnabled(g.world)
		if err := system.SetDebug(g.world, enabled); err != nil {
			return err
		}
		log.Printf("Game: physics debug %v", enabled)
	}

	g.scheduler.Update(g.world)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.passes.Draw(g.world, screen)

	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.2f    Strokes: %d    Bodies: %d    Fixtures: %d",
		ebiten.ActualFPS(), g.stats.strokes, len(g.physics.Bodies()), g.stats.fixtures))
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return float64(g.spec.Viewport.Width), float64(g.spec.Viewport.Height)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// pollConfig applies edits to the config file. Material and background
// take effect on the next stroke and frame; everything else needs a restart.
func (g *Game) pollConfig() {
	if g.watcher == nil {
		return
	}
	select {
	case err, ok := <-g.watcher.Errors:
		if ok && err != nil {
			log.Printf("Game: config watch: %v", err)
		}
	default:
	}

	name, ok := g.watcher.Poll()
	if !ok || filepath.Base(name) != filepath.Base(g.configName()) {
		return
	}

	spec, err := prefabs.LoadSketchSpec(g.configPath)
	if err != nil {
		log.Printf("Game: reload %s: %v (keeping previous config)", name, err)
		return
	}
	if !reflect.DeepEqual(spec.Physics, g.spec.Physics) || spec.Viewport != g.spec.Viewport || spec.Brush != g.spec.Brush {
		log.Printf("Game: physics, viewport and brush changes apply after restart")
	}

	g.session.SetMaterial(materialFromSpec(spec))
	g.renderer.Background = spec.Background
	g.spec.Material = spec.Material
	g.spec.Background = spec.Background
	log.Printf("Game: reloaded %s", name)
}

func (g *Game) configName() string {
	if g.configPath == "" {
		return prefabs.SketchFile
	}
	return g.configPath
}

func (g *Game) watchDir() string {
	if g.configPath == "" {
		return "prefabs"
	}
	return filepath.Dir(g.configPath)
}

func materialFromSpec(spec *prefabs.SketchSpec) component.Material {
	return component.Material{
		Density:     *spec.Material.Density,
		Friction:    *spec.Material.Friction,
		Restitution: *spec.Material.Restitution,
	}
}

// strokeStats counts stroke bodies for the HUD.
type strokeStats struct {
	strokes  int
	fixtures int
}

func (s *strokeStats) Update(w *ecs.World) {
	for _, ev := range w.Events().Drain() {
		if ev.Type != ecs.EventStrokeBody {
			continue
		}
		data, ok := ev.Data.(ecs.StrokeBodyEvent)
		if !ok {
			continue
		}
		s.strokes++
		s.fixtures += data.Fixtures
	}
}

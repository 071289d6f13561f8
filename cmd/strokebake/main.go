package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/inkfall/ecs"
	"github.com/milk9111/inkfall/ecs/component"
	"github.com/milk9111/inkfall/ecs/render"
	"github.com/milk9111/inkfall/ecs/system"
	"github.com/milk9111/inkfall/prefabs"
)

// strokebake replays a stroke script without a window: every stroke is
// painted on a CPU canvas, turned into a body and cropped to a sprite
// PNG, then the world is simulated and the final poses are printed.
func main() {
	configPath := flag.String("config", "", "path to a sketch.yaml on disk (embedded copy otherwise)")
	strokesPath := flag.String("strokes", prefabs.DemoStrokesFile, "stroke script to replay")
	outDir := flag.String("out", "strokebake_out", "directory for sprite PNGs")
	steps := flag.Int("steps", 300, "physics frames to simulate after the replay")
	flag.Parse()

	spec, err := prefabs.LoadSketchSpec(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	script, err := prefabs.LoadStrokeScript(*strokesPath)
	if err != nil {
		log.Fatal(err)
	}
	brush, err := render.LoadBrush(spec.Brush.Image)
	if err != nil {
		log.Fatal(err)
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatal(err)
	}

	viewportH := float64(spec.Viewport.Height)
	world := ecs.NewWorld()
	physics := system.NewPhysicsSystem(system.PhysicsConfigFromSpec(spec))
	if _, err := physics.Attach(world); err != nil {
		log.Fatal(err)
	}

	var crops []image.Image
	session := system.NewTouchSession(system.TouchSessionConfig{
		ViewportW: spec.Viewport.Width,
		ViewportH: spec.Viewport.Height,
		Brush:     brush,
		Material: component.Material{
			Density:     *spec.Material.Density,
			Friction:    *spec.Material.Friction,
			Restitution: *spec.Material.Restitution,
		},
		NewSurface: render.NewRasterSurface,
		NewTexture: func(img image.Image) *ebiten.Image {
			crops = append(crops, img)
			return nil
		},
	}, physics)

	replay := system.NewReplaySource(script.Vectors(), viewportH)
	scheduler := ecs.NewScheduler(system.NewTouchDispatcher(replay, session, viewportH), physics)
	for !replay.Done() {
		scheduler.Update(world)
	}
	for i := 0; i < *steps; i++ {
		scheduler.Update(world)
	}

	for i, img := range crops {
		path := filepath.Join(*outDir, fmt.Sprintf("stroke_%02d.png", i))
		if err := writePNG(path, img); err != nil {
			log.Fatal(err)
		}
	}

	ecs.ForEach3(world, component.StrokeTagComponent.Kind(), component.TransformComponent.Kind(), component.PhysicsBodyComponent.Kind(),
		func(e ecs.Entity, tag *component.StrokeTag, t *component.Transform, pb *component.PhysicsBody) {
			fmt.Printf("entity %d: %d points, %d fixtures, mass %.3f, at (%.1f, %.1f) rot %.3f\n",
				e, tag.Points, len(pb.Fixtures), pb.Body.Mass(), t.X, t.Y, t.Rotation)
		})
	log.Printf("strokebake: %d sprites written to %s", len(crops), *outDir)
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

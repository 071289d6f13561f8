package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	debug := flag.Bool("debug", false, "start with physics debug drawing")
	configPath := flag.String("config", "", "path to a sketch.yaml on disk (embedded copy otherwise)")
	watch := flag.Bool("watch", false, "hot-reload the config while running")
	replay := flag.String("replay", "", "stroke script to play back at start (demo_strokes.yaml for the embedded one)")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	game, err := NewGame(*configPath, *replay, *debug, *watch)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	w, h := game.Viewport()
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("inkfall")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

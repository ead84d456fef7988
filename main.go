package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	debug := flag.Bool("debug", false, "draw physics shapes and controller state")
	levelName := flag.String("level", "level", "level prefab name in prefabs/ (.yaml optional)")
	watch := flag.Bool("watch", false, "hot reload prefabs/ on change")
	flag.Parse()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("hopper")

	game, err := NewGame(*levelName, *debug, *watch)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

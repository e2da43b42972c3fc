package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/arrowlanes/prefabs"
)

func main() {
	layoutName := flag.String("layout", prefabs.DefaultLayout, "layout file in prefabs/ (embedded copy used when not on disk)")
	watch := flag.Bool("watch", false, "reload the layout when it changes on disk")
	debug := flag.Bool("debug", false, "enable debug overlay")
	mute := flag.Bool("mute", false, "disable the hit sound")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	layout, err := prefabs.LoadLayout(*layoutName)
	if err != nil {
		log.Fatalf("load layout: %v", err)
	}

	ebiten.SetWindowSize(layout.Width, layout.Height)
	ebiten.SetWindowTitle("arrowlanes")

	game := NewGame(*layoutName, layout, *debug, *watch, *mute)
	err = ebiten.RunGame(game)
	game.Close()
	if err != nil {
		log.Fatal(err)
	}
}

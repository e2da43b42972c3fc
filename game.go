package main

import (
	"fmt"
	"image/color"
	"log"
	"path/filepath"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/arrowlanes/assets"
	"github.com/milk9111/arrowlanes/ecs"
	"github.com/milk9111/arrowlanes/ecs/system"
	"github.com/milk9111/arrowlanes/prefabs"
	"github.com/milk9111/arrowlanes/scene"
)

type Game struct {
	layoutName string
	debug      bool

	canvas *Canvas
	frames *ecs.FrameQueue
	scene  *scene.Scene
	input  *PointerInput

	ui             *ebitenui.UI
	hud            *widget.Text
	resetRequested bool

	watcher *prefabs.Watcher
	lastMod time.Time
}

func NewGame(layoutName string, layout *prefabs.LayoutSpec, debug, watch, mute bool) *Game {
	g := &Game{
		layoutName: layoutName,
		debug:      debug,
		frames:     &ecs.FrameQueue{},
		input:      NewPointerInput(),
	}
	g.ui, g.hud = NewResetUI(g)

	img := ebiten.NewImage(layout.Width, layout.Height)
	g.canvas = NewCanvas(img, backgroundOf(layout))

	var systems []ecs.System
	if !mute {
		player, err := assets.HitTone.NewPlayer()
		if err != nil {
			log.Printf("audio: hit sound disabled: %v", err)
		} else {
			systems = append(systems, system.NewHitSoundSystem(player))
		}
	}
	g.scene = scene.New(layout, g.frames, g.canvas, scene.WithSystems(systems...))

	if mod, ok := prefabs.ModTime(layoutName); ok {
		g.lastMod = mod
	}
	if watch {
		g.startWatcher()
	}

	return g
}

func (g *Game) startWatcher() {
	path, ok := prefabs.ResolveDisk(g.layoutName)
	if !ok {
		log.Printf("prefabs: %s is embedded only, nothing to watch", g.layoutName)
		return
	}
	w, err := prefabs.NewWatcher(filepath.Dir(path))
	if err != nil {
		log.Printf("prefabs: watch %s: %v", path, err)
		return
	}
	g.watcher = w
	log.Printf("prefabs: watching %s", path)
}

func (g *Game) Update() error {
	g.ui.Update()
	g.pollWatcher()

	if g.resetRequested || resetPressed() {
		g.resetRequested = false
		g.scene.Reset()
	}

	for _, p := range g.input.Presses() {
		g.scene.Click(p.X, p.Y)
	}

	g.frames.Run()

	g.hud.Label = hitsLabel(g.scene.Hits(), len(g.scene.Layout().Lanes))
	return nil
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if prefabs.SameFile(path, g.layoutName) {
				g.reload()
			}
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("prefabs: watcher: %v", err)
		default:
			return
		}
	}
}

// reload swaps in the on-disk layout. A layout that fails to load is logged
// and the current one stays active.
func (g *Game) reload() {
	if mod, ok := prefabs.ModTime(g.layoutName); ok {
		if !mod.After(g.lastMod) {
			return
		}
		g.lastMod = mod
	}

	layout, err := prefabs.LoadLayout(g.layoutName)
	if err != nil {
		log.Printf("prefabs: reload %s, keeping previous layout: %v", g.layoutName, err)
		return
	}

	img := g.canvas.Image()
	if b := img.Bounds(); b.Dx() != layout.Width || b.Dy() != layout.Height {
		img.Deallocate()
		img = ebiten.NewImage(layout.Width, layout.Height)
	}
	g.canvas.SetTarget(img, backgroundOf(layout))
	g.scene.SetLayout(layout)
	log.Printf("prefabs: reloaded %s (%d lanes)", g.layoutName, len(layout.Lanes))
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.canvas.Image(), nil)
	g.ui.Draw(screen)

	if g.debug {
		state := "idle"
		if g.scene.Running() {
			state = "running"
		}
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %.1f  session: %s  loop: %s", ebiten.ActualTPS(), g.scene.ID(), state))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	b := g.canvas.Image().Bounds()
	return b.Dx(), b.Dy()
}

func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("prefabs: close watcher: %v", err)
		}
	}
}

func backgroundOf(layout *prefabs.LayoutSpec) color.Color {
	if layout.Background != nil && layout.Background.Color != nil {
		return layout.Background.Color
	}
	return color.White
}

package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"
)

// PointerInput collects the presses of this frame in canvas coordinates.
type PointerInput struct {
	touches []ebiten.TouchID
	presses []cp.Vector
}

func NewPointerInput() *PointerInput {
	return &PointerInput{}
}

// Presses returns the left clicks and new touches since the last frame. The
// slice is reused between calls.
func (i *PointerInput) Presses() []cp.Vector {
	i.presses = i.presses[:0]

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		i.presses = append(i.presses, cp.Vector{X: float64(x), Y: float64(y)})
	}

	i.touches = inpututil.AppendJustPressedTouchIDs(i.touches[:0])
	for _, id := range i.touches {
		x, y := ebiten.TouchPosition(id)
		i.presses = append(i.presses, cp.Vector{X: float64(x), Y: float64(y)})
	}

	return i.presses
}

// resetPressed reports whether the reset key went down this frame.
func resetPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyR)
}

package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-tower-keep/internal/input"
	"go-tower-keep/internal/interfaces"
	"go-tower-keep/pkg/geom"
)

var keyBindings = map[interfaces.Key][]ebiten.Key{
	interfaces.KeyUp:    {ebiten.KeyW, ebiten.KeyArrowUp},
	interfaces.KeyDown:  {ebiten.KeyS, ebiten.KeyArrowDown},
	interfaces.KeyLeft:  {ebiten.KeyA, ebiten.KeyArrowLeft},
	interfaces.KeyRight: {ebiten.KeyD, ebiten.KeyArrowRight},
}

var mouseBindings = []struct {
	native ebiten.MouseButton
	button interfaces.MouseButton
}{
	{ebiten.MouseButtonLeft, interfaces.MouseLeft},
	{ebiten.MouseButtonRight, interfaces.MouseRight},
}

// pollInput copies this frame's keyboard and mouse into st.
func pollInput(st *input.State) {
	st.EndFrame()

	for key, keys := range keyBindings {
		held := false
		for _, k := range keys {
			held = held || ebiten.IsKeyPressed(k)
		}
		st.SetHeld(key, held)
	}

	x, y := ebiten.CursorPosition()
	cursor := geom.Vector2{X: float64(x), Y: float64(y)}
	st.SetMouse(cursor)

	st.SetMouseDown(interfaces.MouseNone)
	for _, b := range mouseBindings {
		if ebiten.IsMouseButtonPressed(b.native) {
			st.SetMouseDown(b.button)
			break
		}
	}
	for _, b := range mouseBindings {
		if inpututil.IsMouseButtonJustReleased(b.native) {
			st.AddClick(interfaces.Click{Button: b.button, Screen: cursor})
		}
	}
}

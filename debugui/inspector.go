package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/stepwise/world"
)

// Inspector shows the state of the entity selected in the browser.
type Inspector struct{}

func NewInspector() *Inspector {
	return &Inspector{}
}

func (in *Inspector) Render(w *world.World, selected world.ID) {
	if !imgui.BeginV("Entity Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	if selected == 0 {
		imgui.Text("No entity selected")
		imgui.End()
		return
	}

	e := w.Get(selected)
	if e == nil {
		imgui.Text(fmt.Sprintf("Entity %d not found", selected))
		imgui.End()
		return
	}

	info := describe(selected, e)
	imgui.Text(fmt.Sprintf("Entity ID: %d", info.ID))
	imgui.Separator()

	if imgui.TreeNodeStr("Location") {
		imgui.Text(fmt.Sprintf("x: %.3f  y: %.3f", e.Location.X, e.Location.Y))
		imgui.Text(fmt.Sprintf("w: %.3f  h: %.3f", e.Location.W, e.Location.H))
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Physics") {
		imgui.Text(fmt.Sprintf("system: %s", info.Physics))
		imgui.Text(fmt.Sprintf("velocity: (%.3f, %.3f)", info.VX, info.VY))
		imgui.Text(fmt.Sprintf("affected by gravity: %t", info.Gravity))
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Draw") {
		imgui.Text(fmt.Sprintf("system: %s", info.Draw))
		imgui.Text(fmt.Sprintf("extrapolation: %t", info.Extrapolation))
		imgui.TreePop()
	}

	imgui.End()
}

// Package debugui provides a Dear ImGui overlay for inspecting a running
// loop: an entity browser, an entity inspector and loop statistics.
package debugui

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/stepwise/loop"
	"github.com/plus3/stepwise/world"
)

var _ loop.Overlay = (*Overlay)(nil)

// Overlay renders the debug windows through the Ebiten ImGui backend.
// Pass it to loop.WithOverlay.
type Overlay struct {
	backend   *ebitenbackend.EbitenBackend
	world     *world.World
	browser   *EntityBrowser
	inspector *Inspector
	perf      *PerformanceStats
	timer     *FrameTimer
}

// NewOverlay creates the ImGui backend window and the debug windows.
func NewOverlay(title string, width, height int, w *world.World) *Overlay {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")

	return &Overlay{
		backend:   backend,
		world:     w,
		browser:   NewEntityBrowser(100),
		inspector: NewInspector(),
		perf:      NewPerformanceStats(120),
		timer:     NewFrameTimer(),
	}
}

// Update builds this frame's ImGui windows.
func (o *Overlay) Update(stats loop.Stats) {
	o.backend.BeginFrame()

	o.perf.Render(stats, o.timer.GetDeltaTime())
	o.browser.Render(o.world)
	o.inspector.Render(o.world, o.browser.GetSelectedEntity())

	o.backend.EndFrame()
}

func (o *Overlay) Draw(screen *ebiten.Image) {
	o.backend.Draw(screen)
}

func (o *Overlay) Layout(width, height int) {
	o.backend.Layout(width, height)
}

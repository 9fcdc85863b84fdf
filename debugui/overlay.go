// Package debugui renders a Dear ImGui overlay on top of the game: world
// occupancy as reported by the stats pass, plus a frame-time plot.
package debugui

import (
	"fmt"
	"time"

	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
)

// Overlay owns the Ebiten ImGui backend and doubles as a count-reporting
// sink: the stats system pushes live/capacity into it each tick and the
// overlay shows the latest values each display frame.
type Overlay struct {
	backend *ebitenbackend.EbitenBackend

	live     int
	capacity int

	frameHistory []float32
	frameIndex   int
	lastFrame    time.Time
}

// NewOverlay creates the ImGui backend and window. historyFrames sizes the
// frame-time ring buffer.
func NewOverlay(title string, width, height, historyFrames int) *Overlay {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("") // no imgui.ini litter

	return &Overlay{
		backend:      backend,
		frameHistory: make([]float32, historyFrames),
		lastFrame:    time.Now(),
	}
}

// ReportCounts implements the game's count sink.
func (o *Overlay) ReportCounts(live, capacity int) {
	o.live = live
	o.capacity = capacity
}

// BeginFrame starts an ImGui frame. Call before issuing any widgets.
func (o *Overlay) BeginFrame() {
	o.backend.BeginFrame()
}

// EndFrame finishes the ImGui frame.
func (o *Overlay) EndFrame() {
	o.backend.EndFrame()
}

// Update issues the overlay widgets. Must run between BeginFrame and
// EndFrame.
func (o *Overlay) Update(gameOver bool) {
	now := time.Now()
	delta := float32(now.Sub(o.lastFrame).Seconds())
	o.lastFrame = now

	o.frameHistory[o.frameIndex] = delta * 1000.0
	o.frameIndex = (o.frameIndex + 1) % len(o.frameHistory)

	if !imgui.BeginV("World", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Live Entities: %d", o.live))
	imgui.Text(fmt.Sprintf("Slot Capacity: %d", o.capacity))
	if gameOver {
		imgui.Separator()
		imgui.Text("GAME OVER")
	}

	var avg float32
	for _, ft := range o.frameHistory {
		avg += ft
	}
	avg /= float32(len(o.frameHistory))
	if avg > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, 1000.0/avg))
	}
	imgui.PlotLinesFloatPtr("##frametime", &o.frameHistory[0], int32(len(o.frameHistory)))

	imgui.End()
}

// Draw renders the ImGui overlay on top of the screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	o.backend.Draw(screen)
}

// Layout forwards Ebiten layout to the backend.
func (o *Overlay) Layout(outsideWidth, outsideHeight int) {
	o.backend.Layout(outsideWidth, outsideHeight)
}

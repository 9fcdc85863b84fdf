package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/calluna/strafe/ecs"
)

var backgroundColor = color.RGBA{R: 0x10, G: 0x12, B: 0x1a, A: 0xff}

// Renderer draws the world onto an Ebiten image once per display frame,
// after all logical ticks for that frame. Tombstones and entities without
// Position+Renderable are skipped.
type Renderer struct{}

func (Renderer) Draw(screen *ebiten.Image, w *ecs.World) {
	screen.Fill(backgroundColor)
	for _, e := range w.Slots() {
		if e == nil {
			continue
		}
		pos := ecs.Get[Position](e)
		rend := ecs.Get[Renderable](e)
		if pos == nil || rend == nil {
			continue
		}
		if rend.Sprite != nil {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(pos.X, pos.Y)
			screen.DrawImage(rend.Sprite, op)
			continue
		}
		if rect := ecs.Get[Rect](e); rect != nil {
			vector.DrawFilledRect(screen,
				float32(pos.X), float32(pos.Y),
				float32(rect.W), float32(rect.H),
				rend.Color, false)
		}
	}
}

// DrawGameOver overlays the end-of-session notice.
func (Renderer) DrawGameOver(screen *ebiten.Image) {
	b := screen.Bounds()
	ebitenutil.DebugPrintAt(screen, "GAME OVER", b.Dx()/2-30, b.Dy()/2)
}

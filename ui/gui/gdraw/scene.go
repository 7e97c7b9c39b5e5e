package gdraw

import (
	"dragchess/ui/gui/gctx"
	"dragchess/ui/gui/ghelper"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// ---- Scene ----

type Scene interface {
	Update(ctx *gctx.GUIGameContext) error
	Draw(ctx *gctx.GUIGameContext, screen *ebiten.Image)
	// Resize is called from Layout with the logical window size.
	Resize(ctx *gctx.GUIGameContext, w, h int)
}

func DrawModal(ctx *gctx.GUIGameContext, scale float64, message string, screen *ebiten.Image) {
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()

	// dim background
	ghelper.DrawRect(screen, 0, 0, float64(sw), float64(sh), ctx.Theme.ModalBg)

	face := ctx.AssetsWorker.Fonts().Normal
	bounds := text.BoundString(face, message)
	mx, my, mw, mh := ghelper.ModalRect(sw, sh, bounds.Dx(), bounds.Dy())

	if scale < 0 {
		scale = 0
	}
	if scale > 1 {
		scale = 1
	}
	currW := int(float64(mw) * scale)
	currH := int(float64(mh) * scale)
	if currW < 6 {
		currW = 6
	}
	if currH < 6 {
		currH = 6
	}
	cx := (sw - currW) / 2
	cy := (sh - currH) / 2

	modalImg := ghelper.RenderRoundedRect(currW, currH, 16, ctx.Theme.ButtonFill, ctx.Theme.ButtonStroke, 3)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(cx), float64(cy))
	screen.DrawImage(modalImg, op)

	// text and OK only once fully opened
	if scale > 0.85 {
		text.Draw(screen, message, face, mx+32, my+60, ctx.Theme.MenuText)
		okX, okY, okW, okH := ghelper.OKRect(mx, my, mw, mh)
		okImg := ghelper.RenderRoundedRect(okW, okH, 16, ctx.Theme.Accent, ctx.Theme.ButtonStroke, 3)
		op2 := &ebiten.DrawImageOptions{}
		op2.GeoM.Translate(float64(okX), float64(okY))
		screen.DrawImage(okImg, op2)
		label := ctx.AssetsWorker.Lang().T("button.ok")
		lb := text.BoundString(face, label)
		text.Draw(screen, label, face, okX+(okW-lb.Dx())/2, okY+(okH+lb.Dy())/2, color.White)
	}
}

package ghelper

import (
	"dragchess/ui/gui/gbase"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// ---- Button ----

type Button struct {
	Label      string
	X, Y, W, H int
	Image      *ebiten.Image // pre-rendered rounded rect with stroke
	Disabled   bool

	Hover   bool // mouse over
	Pressed bool // mouse went down on this button
	// animation
	Scale         float64
	TargetScale   float64
	OffsetY       float64
	TargetOffsetY float64
	AnimSpeed     float64 // per second
}

func NewButton(label string, x, y, w, h int, theme gbase.Palette) *Button {
	return &Button{
		Label: label,
		X:     x, Y: y, W: w, H: h,
		Image: RenderRoundedRect(w, h, 10, theme.ButtonFill, theme.ButtonStroke, 2),
		Scale: 1.0, TargetScale: 1.0, AnimSpeed: 10.0,
	}
}

func (b *Button) Contains(px, py int) bool {
	return PointInRect(px, py, b.X, b.Y, b.W, b.H)
}

// HandleInput is called every Update and reports a finished click.
func (b *Button) HandleInput(px, py int, justClicked, justReleased bool) bool {
	inside := b.Contains(px, py) && !b.Disabled
	b.Hover = inside

	if justClicked && inside {
		b.Pressed = true
		b.TargetScale = 0.96
		b.TargetOffsetY = 2.0
	}
	if justReleased {
		clicked := b.Pressed && inside
		b.Pressed = false
		b.TargetOffsetY = 0
		if clicked {
			b.TargetScale = 1.03
			return true
		}
		b.TargetScale = 1.0
	}
	if !b.Pressed {
		b.TargetOffsetY = 0
		if inside {
			b.TargetScale = 1.02
		} else {
			b.TargetScale = 1.0
		}
	}
	return false
}

func (b *Button) UpdateAnim(dt float64) {
	if b.AnimSpeed <= 0 {
		b.AnimSpeed = 8.0
	}
	t := 1.0 - math.Exp(-b.AnimSpeed*dt)
	b.Scale = b.Scale*(1.0-t) + b.TargetScale*t
	b.OffsetY = b.OffsetY*(1.0-t) + b.TargetOffsetY*t

	if !b.Pressed && math.Abs(b.Scale-1.03) < 0.005 {
		b.TargetScale = 1.0
	}
}

func (b *Button) DrawAnimated(screen *ebiten.Image, face font.Face, theme gbase.Palette) {
	if b.Image == nil {
		return
	}
	cx := float64(b.X + b.W/2)
	cy := float64(b.Y+b.H/2) + b.OffsetY

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Image.Bounds().Dx())/2, -float64(b.Image.Bounds().Dy())/2)
	op.GeoM.Scale(b.Scale, b.Scale)
	op.GeoM.Translate(cx, cy)
	op.Filter = ebiten.FilterLinear
	if b.Disabled {
		op.ColorScale.ScaleAlpha(0.5)
	}
	screen.DrawImage(b.Image, op)

	bounds := text.BoundString(face, b.Label)
	text.Draw(screen, b.Label, face, int(cx)-bounds.Dx()/2, int(cy)+bounds.Dy()/2, theme.ButtonText)
}

// ---- MessageBox ----

type MessageBox struct {
	Open      bool
	Animating bool
	Opening   bool
	Scale     float64 // 0..1
	Text      string
	OnClose   func()
}

func (mb *MessageBox) ShowMessage(msg string, onClose func()) {
	mb.Text = msg
	mb.Open = true
	mb.Opening = true
	mb.Animating = true
	mb.Scale = 0.0
	mb.OnClose = onClose
}

func (mb *MessageBox) Collapse() {
	mb.Opening = false
	mb.Animating = true
}

// AnimateMessage advances one tick of the open/close tween.
func (mb *MessageBox) AnimateMessage() {
	const dt = 1.0 / 60.0
	const speed = 6.0
	if !mb.Animating {
		return
	}
	if mb.Opening {
		mb.Scale += speed * dt
		if mb.Scale >= 1.0 {
			mb.Scale = 1.0
			mb.Animating = false
		}
		return
	}
	mb.Scale -= speed * dt
	if mb.Scale <= 0.0 {
		mb.Scale = 0.0
		mb.Animating = false
		mb.Open = false
		if mb.OnClose != nil {
			mb.OnClose()
		}
	}
}

// ModalRect is the geometry shared by DrawModal and the OK hit test.
func ModalRect(windW, windH, textW, textH int) (x, y, w, h int) {
	w = textW + 64
	h = textH + 120
	return (windW - w) / 2, (windH - h) / 2, w, h
}

func OKRect(mx, my, mw, mh int) (x, y, w, h int) {
	w, h = 120, 44
	return mx + (mw-w)/2, my + mh - 56, w, h
}

// CollapseOnOK starts closing when (px, py) hits the OK button.
func (mb *MessageBox) CollapseOnOK(px, py, windW, windH, textW, textH int) bool {
	okX, okY, okW, okH := OKRect(ModalRect(windW, windH, textW, textH))
	if PointInRect(px, py, okX, okY, okW, okH) {
		mb.Collapse()
		return true
	}
	return false
}

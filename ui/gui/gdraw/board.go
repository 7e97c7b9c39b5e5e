package gdraw

import (
	"dragchess/src/base"
	"dragchess/src/logic/coords"
	"dragchess/ui/gui/gbase"
	"dragchess/ui/gui/gctx"
	"dragchess/ui/gui/ghelper"
	"dragchess/ui/gui/ghelper/gclipboard"
	"dragchess/ui/gui/ghelper/gdialog"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// openResult carries a finished native file dialog back to the frame loop.
type openResult struct {
	res gdialog.Result
	err error
}

// GUIBoardDrawer implements Scene
type GUIBoardDrawer struct {
	camera coords.Camera

	// buttons
	buttons  []*ghelper.Button
	idxReset int
	idxUndo  int
	idxRedo  int
	idxOpen  int
	idxPaste int
	idxCopy  int
	idxTheme int

	// file dialog runs outside the frame loop
	dialogOpen bool
	openCh     chan openResult

	msg *ghelper.MessageBox

	lastTick time.Time
}

func NewGUIBoardDrawer(ctx *gctx.GUIGameContext) *GUIBoardDrawer {
	bd := &GUIBoardDrawer{
		camera:   coords.NewBoardCamera(ctx.Session.Layout()),
		openCh:   make(chan openResult, 1),
		msg:      &ghelper.MessageBox{},
		lastTick: time.Now(),
	}
	bd.makeLayoutButtons(ctx)
	return bd
}

// Resize fits the board to the window: ten squares across the shorter side.
func (bd *GUIBoardDrawer) Resize(ctx *gctx.GUIGameContext, w, h int) {
	if float64(w) == bd.camera.ViewW && float64(h) == bd.camera.ViewH {
		return
	}
	side := w
	if h < side {
		side = h
	}
	size := float64(side / (base.BoardSide + 2))
	if size < 1 {
		size = 1
	}
	if size != ctx.Session.Layout().SquareSize {
		// cancels a drag in progress, its grab offset is in the old scale
		ctx.Session.SetLayout(coords.NewLayout(size))
		ctx.Logx.Debugf("window %dx%d, square size %v", w, h, size)
	}
	bd.camera = coords.NewBoardCamera(ctx.Session.Layout())
	bd.camera.Resize(float64(w), float64(h))
	bd.makeLayoutButtons(ctx)
}

// toolbar sits in the top margin, one square high
func (bd *GUIBoardDrawer) makeLayoutButtons(ctx *gctx.GUIGameContext) {
	bd.buttons = []*ghelper.Button{}
	lang := ctx.AssetsWorker.Lang()

	addBtn := func(label string, x, y, w, h int) int {
		idx := len(bd.buttons)
		bd.buttons = append(bd.buttons, ghelper.NewButton(label, x, y, w, h, ctx.Theme))
		return idx
	}

	const count = 7
	sq := int(ctx.Session.Layout().SquareSize)
	gap := 6
	w := (int(bd.camera.ViewW) - gap*(count+1)) / count
	if w < 8 {
		w = 8
	}
	h := sq * 2 / 3
	if h < 8 {
		h = 8
	}
	x, y := gap, (sq-h)/2
	next := func(key string) int {
		idx := addBtn(lang.T(key), x, y, w, h)
		x += w + gap
		return idx
	}
	bd.idxReset = next("toolbar.reset")
	bd.idxUndo = next("toolbar.undo")
	bd.idxRedo = next("toolbar.redo")
	bd.idxOpen = next("toolbar.open")
	bd.idxPaste = next("toolbar.paste")
	bd.idxCopy = next("toolbar.copy")
	bd.idxTheme = next("toolbar.theme")
}

func (bd *GUIBoardDrawer) Update(ctx *gctx.GUIGameContext) error {
	now := time.Now()
	dt := now.Sub(bd.lastTick).Seconds()
	bd.lastTick = now

	select {
	case r := <-bd.openCh:
		bd.dialogOpen = false
		bd.handleOpenResult(ctx, r)
	default:
	}

	mx, my := ebiten.CursorPosition()
	justPressed := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	justReleased := inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if ctx.Session.Drag().Dragging() {
			ctx.Session.CancelDrag()
		} else {
			return gbase.ErrExit
		}
	}

	if bd.msg.Open {
		if justPressed {
			bounds := text.BoundString(ctx.AssetsWorker.Fonts().Normal, bd.msg.Text)
			bd.msg.CollapseOnOK(mx, my, int(bd.camera.ViewW), int(bd.camera.ViewH), bounds.Dx(), bounds.Dy())
		}
		bd.msg.AnimateMessage()
		return nil
	}

	if !ebiten.IsFocused() && ctx.Session.Drag().Dragging() {
		ctx.Session.CancelDrag()
	}

	bd.buttons[bd.idxUndo].Disabled = !ctx.Session.CanUndo()
	bd.buttons[bd.idxRedo].Disabled = !ctx.Session.CanRedo()
	bd.buttons[bd.idxOpen].Disabled = bd.dialogOpen

	dragging := ctx.Session.Drag().Dragging()
	for i, b := range bd.buttons {
		clicked := b.HandleInput(mx, my, justPressed && !dragging, justReleased)
		b.UpdateAnim(dt)
		if !clicked {
			continue
		}
		switch i {
		case bd.idxReset:
			bd.loadFEN(ctx, ctx.Config.StartFEN)
		case bd.idxUndo:
			if err := ctx.Session.Undo(); err != nil {
				bd.showError(ctx, ctx.AssetsWorker.Lang().T("error.undo"), err)
			}
		case bd.idxRedo:
			if err := ctx.Session.Redo(); err != nil {
				bd.showError(ctx, ctx.AssetsWorker.Lang().T("error.redo"), err)
			}
		case bd.idxOpen:
			bd.dialogOpen = true
			go bd.openFileAsync(ctx.AssetsWorker.Lang().T("dialog.open_title"))
		case bd.idxPaste:
			fen, err := gclipboard.ReadText()
			if err != nil {
				bd.showError(ctx, ctx.AssetsWorker.Lang().T("error.clipboard"), err)
				break
			}
			bd.loadFEN(ctx, fen)
		case bd.idxCopy:
			fen := ctx.Session.FEN()
			if err := gclipboard.WriteText(fen); err != nil {
				bd.showError(ctx, ctx.AssetsWorker.Lang().T("error.copy"), err)
				break
			}
			ctx.Logx.Infof("copied position %s", fen)
		case bd.idxTheme:
			bd.toggleTheme(ctx)
			return nil
		}
	}

	// board drag & drop in world space
	wx, wy := bd.camera.ScreenToWorld(float64(mx), float64(my))
	if justPressed && !bd.overToolbar(mx, my) {
		ctx.Session.Press(wx, wy)
	}
	if ctx.Session.Drag().Dragging() {
		ctx.Session.Move(wx, wy)
	}
	if justReleased && ctx.Session.Drag().Dragging() {
		ctx.Session.Release(wx, wy)
	}
	return nil
}

// toggleTheme switches palettes and remembers the choice in the config file.
func (bd *GUIBoardDrawer) toggleTheme(ctx *gctx.GUIGameContext) {
	theme := ctx.Config.ToggleTheme()
	ctx.Theme = gbase.PaletteFromString(theme)
	bd.makeLayoutButtons(ctx)
	if err := ctx.Config.Save(); err != nil {
		bd.showError(ctx, ctx.AssetsWorker.Lang().Tf("error.save", map[string]interface{}{"Err": err}), err)
		return
	}
	ctx.Logx.Infof("theme %s saved to %s", theme, ctx.Config.Path())
}

func (bd *GUIBoardDrawer) overToolbar(mx, my int) bool {
	for _, b := range bd.buttons {
		if b.Contains(mx, my) {
			return true
		}
	}
	return false
}

func (bd *GUIBoardDrawer) openFileAsync(title string) {
	res, err := gdialog.OpenFile(title)
	bd.openCh <- openResult{res: res, err: err}
}

func (bd *GUIBoardDrawer) handleOpenResult(ctx *gctx.GUIGameContext, r openResult) {
	if errors.Is(r.err, gdialog.ErrCancelled) {
		return
	} else if r.err != nil {
		bd.showError(ctx, ctx.AssetsWorker.Lang().Tf("error.open", map[string]interface{}{"Err": r.err}), r.err)
		return
	}
	ctx.Logx.Infof("open position file %s", r.res.Path)
	bd.loadFEN(ctx, strings.TrimSpace(string(r.res.Data)))
}

func (bd *GUIBoardDrawer) loadFEN(ctx *gctx.GUIGameContext, fen string) {
	if err := ctx.Session.CreateFromFEN(fen); err != nil {
		bd.showError(ctx, ctx.AssetsWorker.Lang().Tf("error.load", map[string]interface{}{"Err": err}), err)
	}
}

func (bd *GUIBoardDrawer) showError(ctx *gctx.GUIGameContext, msg string, err error) {
	ctx.Logx.Errorf("%s: %v", msg, err)
	ctx.Session.CancelDrag()
	bd.msg.ShowMessage(msg, nil)
}

func (bd *GUIBoardDrawer) Draw(ctx *gctx.GUIGameContext, screen *ebiten.Image) {
	screen.Fill(ctx.Theme.Bg)

	bd.drawBoard(ctx, screen)
	bd.drawLabels(ctx, screen)
	bd.drawPieces(ctx, screen)

	for _, b := range bd.buttons {
		b.DrawAnimated(screen, ctx.AssetsWorker.Fonts().Normal, ctx.Theme)
	}

	if ctx.Config.Debug {
		bd.drawDebug(ctx, screen)
	}

	if bd.msg.Open {
		DrawModal(ctx, bd.msg.Scale, bd.msg.Text, screen)
	}
}

// squareRect returns the screen rectangle of sq. World y grows up, so the
// top edge on screen is the square's upper world edge.
func (bd *GUIBoardDrawer) squareRect(l coords.Layout, sq base.Square) (x, y, size float64) {
	cx, cy := l.Corner(sq)
	x, y = bd.camera.WorldToScreen(cx, cy+l.SquareSize)
	return x, y, l.SquareSize
}

func (bd *GUIBoardDrawer) drawBoard(ctx *gctx.GUIGameContext, screen *ebiten.Image) {
	l := ctx.Session.Layout()
	drag := ctx.Session.Drag()
	for rank := 0; rank < base.BoardSide; rank++ {
		for file := 0; file < base.BoardSide; file++ {
			sq := base.Square{File: file, Rank: rank}
			x, y, s := bd.squareRect(l, sq)
			if base.IsLightSquare(sq) {
				ghelper.DrawRect(screen, x, y, s, s, gbase.LightSquare)
			} else {
				ghelper.DrawRect(screen, x, y, s, s, gbase.DarkSquare)
			}
			if drag.Dragging() && drag.Origin() == sq {
				ghelper.DrawRectStroke(screen, x, y, s, s, 3, ctx.Theme.Accent)
			}
		}
	}
}

// A-H under the board, 1-8 left of it
func (bd *GUIBoardDrawer) drawLabels(ctx *gctx.GUIGameContext, screen *ebiten.Image) {
	l := ctx.Session.Layout()
	face := ctx.AssetsWorker.Fonts().Label
	half := l.SquareSize / 2

	drawCentered := func(label string, wx, wy float64) {
		sx, sy := bd.camera.WorldToScreen(wx, wy)
		b := text.BoundString(face, label)
		text.Draw(screen, label, face, int(sx)-b.Dx()/2, int(sy)+b.Dy()/2, gbase.LabelColor)
	}
	for i := 0; i < base.BoardSide; i++ {
		pos := float64(i)*l.SquareSize + half
		drawCentered(string(rune('A'+i)), l.OriginX+pos, l.OriginY-half)
		drawCentered(string(rune('1'+i)), l.OriginX-half, l.OriginY+pos)
	}
}

func (bd *GUIBoardDrawer) drawPieces(ctx *gctx.GUIGameContext, screen *ebiten.Image) {
	l := ctx.Session.Layout()
	drag := ctx.Session.Drag()
	for _, pl := range ctx.Session.Placements() {
		if drag.Dragging() && drag.Origin() == pl.Square {
			continue
		}
		wx, wy := l.PixelFromSquare(pl.Square)
		sx, sy := bd.camera.WorldToScreen(wx, wy)
		bd.drawSprite(ctx, screen, pl.Piece, sx, sy, l.SquareSize)
	}
	// dragged piece on top of everything else on the board
	if drag.Dragging() {
		sx, sy := bd.camera.WorldToScreen(drag.SpriteCenter())
		bd.drawSprite(ctx, screen, drag.Piece(), sx, sy, l.SquareSize)
	}
}

func (bd *GUIBoardDrawer) drawSprite(ctx *gctx.GUIGameContext, screen *ebiten.Image, p base.Piece, cx, cy, size float64) {
	img := ctx.AssetsWorker.Piece(p)
	if img == nil {
		return
	}
	iw, ih := img.Bounds().Dx(), img.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size/float64(iw), size/float64(ih))
	op.GeoM.Translate(cx-size/2, cy-size/2)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

func (bd *GUIBoardDrawer) drawDebug(ctx *gctx.GUIGameContext, screen *ebiten.Image) {
	mx, my := ebiten.CursorPosition()
	wx, wy := bd.camera.ScreenToWorld(float64(mx), float64(my))
	status := "-"
	if sq, ok := ctx.Session.Layout().BoardFromPixel(wx, wy); ok {
		status = ctx.AssetsWorker.Lang().Tf("status.square", map[string]interface{}{"Square": sq})
	}
	face := ctx.AssetsWorker.Fonts().Small
	lines := []string{
		fmt.Sprintf("TPS: %0.2f", ebiten.ActualTPS()),
		fmt.Sprintf("FPS: %0.2f", ebiten.ActualFPS()),
		status,
		fmt.Sprintf("drag: %s", ctx.Session.Drag().State()),
	}
	lh := face.Metrics().Height.Ceil()
	y := int(bd.camera.ViewH) - lh*len(lines)
	for _, line := range lines {
		y += lh
		text.Draw(screen, line, face, 4, y-4, ctx.Theme.MenuText)
	}
}

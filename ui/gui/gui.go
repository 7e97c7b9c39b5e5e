package gui

import (
	"dragchess/src"
	"dragchess/src/logx"
	"dragchess/ui/gui/gbase"
	"dragchess/ui/gui/gbase/gconf"
	"dragchess/ui/gui/gctx"
	"dragchess/ui/gui/gdraw"
	"dragchess/ui/gui/ghelper"
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

type GUIProcessing struct {
	current gdraw.Scene
	ctx     *gctx.GUIGameContext
}

func NewGUI(s *src.Session, cfg *gconf.Config, logx logx.Logger) (*GUIProcessing, error) {
	assets, err := ghelper.NewGUIAssetsWorker(cfg, logx)
	if err != nil {
		return nil, err
	}
	ctx := gctx.NewGUIGameContext(s, assets, cfg, logx)
	return &GUIProcessing{
		current: gdraw.NewGUIBoardDrawer(ctx),
		ctx:     ctx,
	}, nil
}

func (gp *GUIProcessing) Run() error {
	side := gp.ctx.Config.WindowSize()
	title := gp.ctx.Config.Title
	if title == "" {
		title = gp.ctx.AssetsWorker.Lang().T("window.title")
	}
	ebiten.SetWindowSize(side, side)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	gp.ctx.Logx.Infof("start GUI %dx%d", side, side)
	err := ebiten.RunGame(gp)
	if errors.Is(err, gbase.ErrExit) {
		gp.ctx.Logx.Info("exit by user")
		return nil
	}
	return err
}

func (gp *GUIProcessing) Update() error {
	return gp.current.Update(gp.ctx)
}

func (gp *GUIProcessing) Draw(screen *ebiten.Image) {
	gp.current.Draw(gp.ctx, screen)
}

func (gp *GUIProcessing) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	gp.current.Resize(gp.ctx, outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

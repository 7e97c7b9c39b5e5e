package ghelper

import (
	"dragchess/src/base"
	"dragchess/src/logx"
	"dragchess/ui/gui/gbase/gconf"
	"dragchess/ui/gui/ghelper/gfont"
	"dragchess/ui/gui/ghelper/gimages"
	"dragchess/ui/gui/ghelper/glang"

	"github.com/hajimehoshi/ebiten/v2"
)

type GUIAssetsWorker struct {
	pieceImages map[base.Piece]*ebiten.Image
	fonts       *gfont.Fonts
	lang        *glang.GUILangWorker
}

func NewGUIAssetsWorker(cfg *gconf.Config, l logx.Logger) (*GUIAssetsWorker, error) {
	imgs, sources, err := gimages.LoadPieceImages(cfg.PiecesDir, cfg.SquareSize)
	if err != nil {
		return nil, err
	}
	pieces := make(map[base.Piece]*ebiten.Image, len(imgs))
	for p, img := range imgs {
		pieces[p] = ebiten.NewImageFromImage(img)
		l.Debugf("sprite %s from %s", p.ImagePath(), sources[p])
	}

	fonts, err := gfont.LoadFonts(cfg.FontPath, cfg.SquareSize)
	if err != nil {
		return nil, err
	}
	lw, err := glang.NewGUILangWorker(cfg.Lang, cfg.LangDir)
	if err != nil {
		return nil, err
	}
	return &GUIAssetsWorker{pieceImages: pieces, fonts: fonts, lang: lw}, nil
}

// Piece is nil for empty cells.
func (aw *GUIAssetsWorker) Piece(p base.Piece) *ebiten.Image {
	return aw.pieceImages[p]
}

func (aw *GUIAssetsWorker) Fonts() *gfont.Fonts {
	return aw.fonts
}

func (aw *GUIAssetsWorker) Lang() *glang.GUILangWorker {
	return aw.lang
}

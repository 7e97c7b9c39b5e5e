package gctx

import (
	"dragchess/src"
	"dragchess/src/logx"
	"dragchess/ui/gui/gbase"
	"dragchess/ui/gui/gbase/gconf"
	"dragchess/ui/gui/ghelper"
)

// ---- GUI Context ----

type GUIGameContext struct {
	Session      *src.Session
	AssetsWorker *ghelper.GUIAssetsWorker
	Config       *gconf.Config
	Theme        gbase.Palette
	Logx         logx.Logger
}

func NewGUIGameContext(s *src.Session, a *ghelper.GUIAssetsWorker, c *gconf.Config, l logx.Logger) *GUIGameContext {
	return &GUIGameContext{
		Session:      s,
		AssetsWorker: a,
		Config:       c,
		Theme:        gbase.PaletteFromString(c.Theme),
		Logx:         l,
	}
}

package gbase

import (
	"errors"
	"image/color"
)

// ---- Exit Call ----

var ErrExit = errors.New("exit request")

// ---- Board colours ----

var (
	LightSquare = color.RGBA{0xff, 0xff, 0xff, 0xff}
	DarkSquare  = color.RGBA{0x4d, 0x4d, 0x4d, 0xff} // 0.3 grey
	LabelColor  = color.RGBA{0xff, 0xa5, 0x00, 0xff} // orange
)

// ---- Styles (palettes) ----

// Palette colours the chrome around the board. Both palettes are built on
// the same greys as the squares and share the label orange as accent.
type Palette struct {
	Bg           color.RGBA
	ButtonFill   color.RGBA
	ButtonStroke color.RGBA
	ButtonText   color.RGBA
	MenuText     color.RGBA
	Accent       color.RGBA
	ModalBg      color.RGBA
}

func grey(v uint8) color.RGBA {
	return color.RGBA{v, v, v, 0xff}
}

var LightPalette = Palette{
	Bg:           grey(0xd9),
	ButtonFill:   LightSquare,
	ButtonStroke: DarkSquare,
	ButtonText:   DarkSquare,
	MenuText:     grey(0x26),
	Accent:       LabelColor,
	ModalBg:      color.RGBA{0x26, 0x26, 0x26, 0x80},
}

var DarkPalette = Palette{
	Bg:           grey(0x1a),
	ButtonFill:   DarkSquare,
	ButtonStroke: grey(0x99),
	ButtonText:   LightSquare,
	MenuText:     LightSquare,
	Accent:       LabelColor,
	ModalBg:      color.RGBA{0x00, 0x00, 0x00, 0xa0},
}

var palettes = map[string]Palette{
	"light": LightPalette,
	"dark":  DarkPalette,
}

// PaletteFromString falls back to the light palette for unknown names.
func PaletteFromString(p string) Palette {
	if pal, ok := palettes[p]; ok {
		return pal
	}
	return LightPalette
}

func (p Palette) String() string {
	for name, pal := range palettes {
		if pal == p {
			return name
		}
	}
	return ""
}

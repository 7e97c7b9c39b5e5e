package gfont

import (
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

type Fonts struct {
	Label  font.Face // board coordinates
	Normal font.Face // buttons, messages
	Small  font.Face // debug overlay
}

// LoadFonts reads a ttf/otf at path. A missing file is not an error: the
// built-in 7x13 face is used everywhere instead.
func LoadFonts(path string, squareSize int) (*Fonts, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) || path == "" {
		return BasicFonts(), nil
	} else if err != nil {
		return nil, err
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}

	face := func(size float64) (font.Face, error) {
		return opentype.NewFace(f, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	}

	fonts := &Fonts{}
	// 30px at the default 60px square
	if fonts.Label, err = face(float64(squareSize) / 2); err != nil {
		return nil, err
	}
	if fonts.Normal, err = face(14); err != nil {
		return nil, err
	}
	if fonts.Small, err = face(11); err != nil {
		return nil, err
	}
	return fonts, nil
}

func BasicFonts() *Fonts {
	return &Fonts{
		Label:  basicfont.Face7x13,
		Normal: basicfont.Face7x13,
		Small:  basicfont.Face7x13,
	}
}

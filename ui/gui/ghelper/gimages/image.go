// Package gimages builds piece sprites as plain images. Conversion to GPU
// images happens in ghelper so this package stays usable without a window.
package gimages

import (
	"bytes"
	"dragchess/src/base"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Pieces lists every drawable piece, white first.
func Pieces() []base.Piece {
	out := make([]base.Piece, 0, 12)
	for _, c := range []base.PieceColor{base.White, base.Black} {
		for _, t := range base.AllPieceTypes() {
			if t == base.None {
				continue
			}
			out = append(out, base.NewPiece(t, c))
		}
	}
	return out
}

type Source int

const (
	SourcePNG Source = iota
	SourceSVG
	SourcePlaceholder
)

func (s Source) String() string {
	switch s {
	case SourcePNG:
		return "png"
	case SourceSVG:
		return "svg"
	default:
		return "placeholder"
	}
}

// LoadPieceImages looks in dir for <color>-<type>.png, then .svg, and
// falls back to a drawn disc so the board is always usable.
func LoadPieceImages(dir string, size int) (map[base.Piece]image.Image, map[base.Piece]Source, error) {
	if size <= 0 {
		return nil, nil, fmt.Errorf("sprite size %d", size)
	}
	imgs := make(map[base.Piece]image.Image)
	sources := make(map[base.Piece]Source)
	for _, p := range Pieces() {
		img, src, err := loadPiece(dir, p, size)
		if err != nil {
			return nil, nil, err
		}
		imgs[p] = img
		sources[p] = src
	}
	return imgs, sources, nil
}

func loadPiece(dir string, p base.Piece, size int) (image.Image, Source, error) {
	pngPath := filepath.Join(dir, p.Image())
	if f, err := os.Open(pngPath); err == nil {
		defer f.Close()
		img, _, err := image.Decode(f)
		if err != nil {
			return nil, SourcePNG, fmt.Errorf("decode %s: %w", pngPath, err)
		}
		return img, SourcePNG, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, SourcePNG, err
	}

	svgPath := filepath.Join(dir, strings.TrimSuffix(p.Image(), ".png")+".svg")
	data, err := os.ReadFile(svgPath)
	if err == nil {
		img, err := RenderSVG(data, size)
		if err != nil {
			return nil, SourceSVG, fmt.Errorf("render %s: %w", svgPath, err)
		}
		return img, SourceSVG, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, SourceSVG, err
	}

	return Placeholder(p, size), SourcePlaceholder, nil
}

// RenderSVG rasterises an icon into a size x size image.
func RenderSVG(data []byte, size int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if icon.ViewBox.W <= 0 {
		icon.ViewBox.W = float64(size)
	}
	if icon.ViewBox.H <= 0 {
		icon.ViewBox.H = float64(size)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)
	return rgba, nil
}

var placeholderLetters = map[base.PieceType]string{
	base.King:   "K",
	base.Queen:  "Q",
	base.Rook:   "R",
	base.Bishop: "B",
	base.Knight: "N",
	base.Pawn:   "P",
}

// Placeholder draws a disc in the piece colour with its letter.
func Placeholder(p base.Piece, size int) image.Image {
	fill, ink := color.RGBA{0xf5, 0xf5, 0xf0, 0xff}, color.RGBA{0x10, 0x10, 0x10, 0xff}
	if p.Color() == base.Black {
		fill, ink = ink, fill
	}
	s := float64(size)

	dc := gg.NewContext(size, size)
	dc.DrawCircle(s/2, s/2, s*0.38)
	dc.SetColor(fill)
	dc.FillPreserve()
	dc.SetColor(color.RGBA{0x80, 0x80, 0x80, 0xff})
	dc.SetLineWidth(s / 20)
	dc.Stroke()

	// basic face is 13px tall, scale it up around the centre
	scale := s / 26
	dc.Push()
	dc.ScaleAbout(scale, scale, s/2, s/2)
	dc.SetColor(ink)
	dc.DrawStringAnchored(placeholderLetters[p.Type()], s/2, s/2, 0.5, 0.35)
	dc.Pop()
	return dc.Image()
}

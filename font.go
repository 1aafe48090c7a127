package glworks

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Atlas layout: printable ASCII in a 16x6 grid.
const (
	atlasFirst = 32
	atlasLast  = 126
	atlasCols  = 16
	atlasRows  = 6
)

// FontAtlas is an alpha-only glyph atlas for the built-in monospace font.
// The backend uploads Pix as a single-channel texture.
type FontAtlas struct {
	Pix    []byte // One byte of coverage per pixel, row by row
	Width  int
	Height int
	CellW  int // Glyph advance in pixels
	CellH  int // Line height in pixels
}

// NewFontAtlas rasterizes basicfont's 7x13 face into a new atlas.
func NewFontAtlas() *FontAtlas {
	face := basicfont.Face7x13
	cellW, cellH := face.Advance, face.Height

	img := image.NewAlpha(image.Rect(0, 0, atlasCols*cellW, atlasRows*cellH))
	d := font.Drawer{Dst: img, Src: image.Opaque, Face: face}
	for ch := atlasFirst; ch <= atlasLast; ch++ {
		idx := ch - atlasFirst
		col, row := idx%atlasCols, idx/atlasCols
		d.Dot = fixed.P(col*cellW, row*cellH+face.Ascent)
		d.DrawString(string(rune(ch)))
	}

	return &FontAtlas{
		Pix:    img.Pix,
		Width:  img.Rect.Dx(),
		Height: img.Rect.Dy(),
		CellW:  cellW,
		CellH:  cellH,
	}
}

// GlyphUV returns the texture coordinates of r's cell.
// Runes outside printable ASCII map to '?'.
func (a *FontAtlas) GlyphUV(r rune) (u0, v0, u1, v1 float32) {
	if r < atlasFirst || r > atlasLast {
		r = '?'
	}
	idx := int(r - atlasFirst)
	col, row := idx%atlasCols, idx/atlasCols

	w, h := float32(a.Width), float32(a.Height)
	u0 = float32(col*a.CellW) / w
	v0 = float32(row*a.CellH) / h
	u1 = float32((col+1)*a.CellW) / w
	v1 = float32((row+1)*a.CellH) / h
	return u0, v0, u1, v1
}

// Coverage returns the atlas alpha at (x, y), or 0 outside the atlas.
func (a *FontAtlas) Coverage(x, y int) byte {
	if x < 0 || y < 0 || x >= a.Width || y >= a.Height {
		return 0
	}
	return a.Pix[y*a.Width+x]
}

package opengl

import (
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/glworks/internal/texture"
)

// TextureOptions controls sampling of an uploaded texture.
type TextureOptions struct {
	Mipmaps bool // Generate mipmaps and sample them trilinearly
	Nearest bool // Nearest filtering instead of linear
	Clamp   bool // Clamp to edge instead of repeating
	FlipY   bool // Flip rows so the first image row lands at v = 1
}

// Texture is a 2D RGBA texture.
type Texture struct {
	ID            uint32
	Width, Height int
}

// NewTexture uploads img. img is not modified.
func NewTexture(img *image.NRGBA, opts TextureOptions) (*Texture, error) {
	src := img
	if opts.FlipY {
		src = texture.FlippedCopy(img)
	}
	w, h := src.Rect.Dx(), src.Rect.Dy()

	t := &Texture{Width: w, Height: h}
	gl.GenTextures(1, &t.ID)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)

	wrap := int32(gl.REPEAT)
	if opts.Clamp {
		wrap = gl.CLAMP_TO_EDGE
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrap)

	minFilter, magFilter := int32(gl.LINEAR), int32(gl.LINEAR)
	switch {
	case opts.Nearest && opts.Mipmaps:
		minFilter, magFilter = gl.NEAREST_MIPMAP_NEAREST, gl.NEAREST
	case opts.Nearest:
		minFilter, magFilter = gl.NEAREST, gl.NEAREST
	case opts.Mipmaps:
		minFilter = gl.LINEAR_MIPMAP_LINEAR
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, minFilter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, magFilter)

	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(src.Stride/4))
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(w), int32(h), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(src.Pix))
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)

	if opts.Mipmaps {
		gl.GenerateMipmap(gl.TEXTURE_2D)
	}
	gl.BindTexture(gl.TEXTURE_2D, 0)

	if err := CheckError("texture upload"); err != nil {
		t.Delete()
		return nil, err
	}
	return t, nil
}

// Bind binds the texture to a texture unit.
func (t *Texture) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)
}

// Delete releases the texture.
func (t *Texture) Delete() {
	if t.ID != 0 {
		gl.DeleteTextures(1, &t.ID)
		t.ID = 0
	}
}

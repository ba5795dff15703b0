package raster

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/clone"
)

// FromImage copies a decoded image into a new Buffer.
//
// Any color model is accepted; the source is first normalized to 8-bit RGBA.
// Alpha is dropped. Because image.RGBA stores premultiplied values, fully
// transparent pixels become black.
func FromImage(img image.Image) *Buffer {
	rgba := clone.AsRGBA(img)
	bounds := rgba.Bounds()
	buf := &Buffer{
		width:  bounds.Dx(),
		height: bounds.Dy(),
		pix:    make([]int, bounds.Dx()*bounds.Dy()*Channels),
	}

	for y := 0; y < buf.height; y++ {
		row := rgba.Pix[y*rgba.Stride:]
		for x := 0; x < buf.width; x++ {
			buf.Set(y, x, int(row[x*4]), int(row[x*4+1]), int(row[x*4+2]))
		}
	}
	return buf
}

// ToImage returns an opaque 8-bit copy of the buffer anchored at (0,0).
//
// Channels are clamped during conversion, so the buffer itself is untouched.
func (b *Buffer) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.width, b.height))
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			r, g, bl := b.At(y, x)
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(ClampChannel(r)),
				G: uint8(ClampChannel(g)),
				B: uint8(ClampChannel(bl)),
				A: 255,
			})
		}
	}
	return img
}

package pixelsort

import (
	"image"
	"image/color"
)

// Image is a decoded P3 image. Pix holds Width*Height linear colors in
// row-major order.
type Image struct {
	Format     string
	Width      int
	Height     int
	Colorspace int // maximum channel value
	Pix        []Color
}

// NewImage returns a black image of the given size.
func NewImage(width, height, colorspace int) *Image {
	return &Image{
		Format:     magicP3,
		Width:      width,
		Height:     height,
		Colorspace: colorspace,
		Pix:        make([]Color, width*height),
	}
}

func (img *Image) ColorModel() color.Model {
	return Model
}

func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.Width, img.Height)
}

func (img *Image) At(x, y int) color.Color {
	if !image.Pt(x, y).In(img.Bounds()) {
		return Color{}
	}
	return img.Pix[y*img.Width+x]
}

// Set stores c at (x, y). Out-of-bounds writes are ignored.
func (img *Image) Set(x, y int, c Color) {
	if !image.Pt(x, y).In(img.Bounds()) {
		return
	}
	img.Pix[y*img.Width+x] = c
}

// Row returns row y of the image. The slice aliases Pix.
func (img *Image) Row(y int) []Color {
	return img.Pix[y*img.Width : (y+1)*img.Width]
}

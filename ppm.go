package pixelsort

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"io"
	"strconv"
	"time"
)

func init() {
	image.RegisterFormat("ppm", magicP3, decode, DecodeConfig)
}

const magicP3 = "P3"

const ppmPixelsMax = 400_000_000

const minPixelBytes = 6

// FormatError reports malformed PPM data. Field names the part of the file
// that could not be parsed.
type FormatError struct {
	Field string
	Msg   string
	Err   error
}

func (e *FormatError) Error() string {
	s := "ppm: invalid " + e.Field
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *FormatError) Unwrap() error { return e.Err }

// Header is the textual PPM header.
type Header struct {
	Format     string
	Width      int
	Height     int
	Colorspace int
}

func (h Header) validate() error {
	if h.Format != magicP3 {
		return &FormatError{Field: "magic", Msg: strconv.Quote(h.Format)}
	}
	if h.Width <= 0 {
		return &FormatError{Field: "width", Msg: fmt.Sprintf("%d must be positive", h.Width)}
	}
	if h.Height <= 0 {
		return &FormatError{Field: "height", Msg: fmt.Sprintf("%d must be positive", h.Height)}
	}
	if h.Colorspace <= 0 {
		return &FormatError{Field: "colorspace", Msg: fmt.Sprintf("%d must be positive", h.Colorspace)}
	}
	if h.Width > ppmPixelsMax/h.Height {
		return &FormatError{Field: "width", Msg: fmt.Sprintf("image must have less than %d pixels total", ppmPixelsMax)}
	}
	return nil
}

// tokenizer walks whitespace-separated ASCII tokens of a byte slice.
type tokenizer struct {
	data []byte
	pos  int
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\n' || c == '\r' || c == '\t' || c == '\v' || c == '\f'
}

// next returns the next token, or nil at end of input.
func (t *tokenizer) next() []byte {
	for t.pos < len(t.data) && isSpace(t.data[t.pos]) {
		t.pos++
	}
	start := t.pos
	for t.pos < len(t.data) && !isSpace(t.data[t.pos]) {
		t.pos++
	}
	if start == t.pos {
		return nil
	}
	return t.data[start:t.pos]
}

func (t *tokenizer) int(field string) (int, error) {
	tok := t.next()
	if tok == nil {
		return 0, &FormatError{Field: field, Msg: "unexpected end of data"}
	}
	n, err := strconv.Atoi(string(tok))
	if err != nil {
		return 0, &FormatError{Field: field, Err: err}
	}
	return n, nil
}

func (t *tokenizer) header() (h Header, err error) {
	if tok := t.next(); tok != nil {
		h.Format = string(tok)
	}
	if h.Format != magicP3 {
		return Header{}, &FormatError{Field: "magic", Msg: strconv.Quote(h.Format)}
	}
	if h.Width, err = t.int("width"); err != nil {
		return Header{}, err
	}
	if h.Height, err = t.int("height"); err != nil {
		return Header{}, err
	}
	if h.Colorspace, err = t.int("colorspace"); err != nil {
		return Header{}, err
	}
	return h, h.validate()
}

// DecodeHeader parses only the header at the start of data.
func DecodeHeader(data []byte) (Header, error) {
	t := tokenizer{data: data}
	return t.header()
}

// DecodeConfig returns the dimensions of a P3 image without decoding its pixels.
func DecodeConfig(r io.Reader) (image.Config, error) {
	s := bufio.NewScanner(r)
	s.Split(bufio.ScanWords)
	var head []byte
	for i := 0; i < 4 && s.Scan(); i++ {
		head = append(head, s.Bytes()...)
		head = append(head, ' ')
	}
	if err := s.Err(); err != nil {
		return image.Config{}, err
	}
	h, err := DecodeHeader(head)
	if err != nil {
		return image.Config{}, err
	}
	return image.Config{ColorModel: Model, Width: h.Width, Height: h.Height}, nil
}

func decode(r io.Reader) (image.Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Decode(data, nil)
}

// Decode parses a P3 image held entirely in data. Pixels are normalized by
// the header's colorspace and converted to linear light.
func Decode(data []byte, o *Options) (*Image, error) {
	start := time.Now()
	t := tokenizer{data: data}
	h, err := t.header()
	if err != nil {
		return nil, err
	}

	numPixels := h.Width * h.Height
	// Every pixel takes at least "d d d" plus a separator.
	if avail := (len(data) - t.pos + 1) / minPixelBytes; numPixels > avail {
		return nil, &FormatError{
			Field: "pixel data",
			Msg:   fmt.Sprintf("%d bytes cannot hold %d pixels", len(data)-t.pos, numPixels),
		}
	}
	pix := make([]Color, numPixels)
	if err := decodeBody(&t, pix, h.Colorspace, o.newProgress(StageDecode, numPixels)); err != nil {
		return nil, err
	}

	Logger().Debug("ppm decoded",
		"width", h.Width, "height", h.Height, "colorspace", h.Colorspace,
		"elapsed", time.Since(start))
	return &Image{
		Format:     h.Format,
		Width:      h.Width,
		Height:     h.Height,
		Colorspace: h.Colorspace,
		Pix:        pix,
	}, nil
}

func decodeBody(t *tokenizer, dest []Color, colorspace int, p *progress) error {
	cs := float64(colorspace)
	var v [3]int
	for i := range dest {
		for c := range v {
			tok := t.next()
			if tok == nil {
				return &FormatError{
					Field: "pixel data",
					Msg:   fmt.Sprintf("unexpected end of data after %d pixels: expected %d", i, len(dest)),
				}
			}
			n, err := strconv.Atoi(string(tok))
			if err != nil {
				return &FormatError{Field: "pixel data", Msg: fmt.Sprintf("pixel %d", i), Err: err}
			}
			v[c] = n
		}
		px := Color{R: float64(v[0]) / cs, G: float64(v[1]) / cs, B: float64(v[2]) / cs}
		px.ToLinear()
		dest[i] = px
		p.add(1)
	}
	p.finish()
	return nil
}

// Append appends the P3 encoding of img to dst. Each pixel is gamma-encoded
// and quantized on a copy; img is left unchanged.
func Append(dst []byte, img *Image, o *Options) ([]byte, error) {
	if img.Format != "" && img.Format != magicP3 {
		return dst, fmt.Errorf("ppm: cannot encode format %q", img.Format)
	}
	h := Header{Format: magicP3, Width: img.Width, Height: img.Height, Colorspace: img.Colorspace}
	if err := h.validate(); err != nil {
		return dst, err
	}
	if len(img.Pix) != img.Width*img.Height {
		return dst, errors.New("ppm: pixel count does not match image size")
	}

	start := time.Now()
	dst = append(dst, magicP3...)
	dst = append(dst, '\n')
	dst = strconv.AppendInt(dst, int64(img.Width), 10)
	dst = append(dst, ' ')
	dst = strconv.AppendInt(dst, int64(img.Height), 10)
	dst = append(dst, '\n')
	dst = strconv.AppendInt(dst, int64(img.Colorspace), 10)
	dst = append(dst, '\n')

	p := o.newProgress(StageEncode, len(img.Pix))
	for _, px := range img.Pix {
		px.ToGamma()
		r, g, b := px.Quantize(img.Colorspace)
		dst = strconv.AppendInt(dst, int64(r), 10)
		dst = append(dst, ' ')
		dst = strconv.AppendInt(dst, int64(g), 10)
		dst = append(dst, ' ')
		dst = strconv.AppendInt(dst, int64(b), 10)
		dst = append(dst, '\n')
		p.add(1)
	}
	p.finish()

	Logger().Debug("ppm encoded", "width", img.Width, "height", img.Height,
		"bytes", len(dst), "elapsed", time.Since(start))
	return dst, nil
}

// Encode writes img to w as a P3 file. The whole file is buffered and handed
// to w in a single Write.
func Encode(w io.Writer, img *Image, o *Options) error {
	// "r g b\n" averages about 12 bytes at 8-bit depth.
	buf, err := Append(make([]byte, 0, len(img.Pix)*12+32), img, o)
	if err != nil {
		return err
	}
	_, err = w.Write(buf)
	return err
}

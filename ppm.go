package raster

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
)

// ppmMaxVal is the quantization ceiling advertised in the header.
// Channels are mapped from [0, 1] with round(v*255), clamped after the
// round to guard float rounding at the boundary.
const ppmMaxVal = 255

// ErrPPMFormat is returned by DecodePPM for data that is not a binary
// PPM this package can read.
var ErrPPMFormat = errors.New("ppm: malformed image")

// EncodePPM serializes the canvas to w as binary PPM (P6):
//
//	P6\n<width> <height>\n255\n
//
// followed by one red, green, blue byte triple per pixel, row-major,
// top row first, left pixel first. Alpha is not encoded; the canvas is
// expected to hold colors already composited against an opaque
// background. The output is a compatibility contract: DecodePPM reads
// back exactly what EncodePPM produced.
func EncodePPM(w io.Writer, c *Canvas) error {
	if _, err := fmt.Fprintf(w, "P6\n%d %d\n%d\n", c.Width(), c.Height(), ppmMaxVal); err != nil {
		return fmt.Errorf("ppm: write header: %w", err)
	}

	row := make([]byte, c.Width()*3)
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			px := c.Get(x, y)
			row[x*3+0] = quantize(px.R, ppmMaxVal)
			row[x*3+1] = quantize(px.G, ppmMaxVal)
			row[x*3+2] = quantize(px.B, ppmMaxVal)
		}
		if _, err := w.Write(row); err != nil {
			return fmt.Errorf("ppm: write row %d: %w", y, err)
		}
	}
	return nil
}

// SavePPM writes the canvas to a PPM file.
func SavePPM(c *Canvas, path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("ppm: %w", err)
	}

	bw := bufio.NewWriter(f)
	if err := EncodePPM(bw, c); err != nil {
		_ = f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("ppm: flush: %w", err)
	}
	return f.Close()
}

// DecodePPM reads a binary PPM produced by EncodePPM (or any
// conforming P6 writer with an 8-bit maxval). Decoded pixels are fully
// opaque. Header whitespace and # comments are handled per the netpbm
// convention.
func DecodePPM(r io.Reader) (*Canvas, error) {
	br := bufio.NewReader(r)

	width, height, err := decodePPMHeader(br)
	if err != nil {
		return nil, err
	}

	c, err := NewCanvas(width, height, Black)
	if err != nil {
		return nil, fmt.Errorf("ppm: %w", err)
	}

	row := make([]byte, width*3)
	for y := 0; y < height; y++ {
		if _, err := io.ReadFull(br, row); err != nil {
			return nil, fmt.Errorf("ppm: read row %d: %w", y, err)
		}
		for x := 0; x < width; x++ {
			c.Set(x, y, Color{
				R: float64(row[x*3+0]) / ppmMaxVal,
				G: float64(row[x*3+1]) / ppmMaxVal,
				B: float64(row[x*3+2]) / ppmMaxVal,
				A: 1,
			})
		}
	}
	return c, nil
}

func decodePPMHeader(br *bufio.Reader) (width, height int, err error) {
	var magic [2]byte
	if _, err := io.ReadFull(br, magic[:]); err != nil {
		return 0, 0, fmt.Errorf("ppm: read magic: %w", err)
	}
	if magic[0] != 'P' || magic[1] != '6' {
		return 0, 0, fmt.Errorf("%w: bad magic %q", ErrPPMFormat, magic[:])
	}

	width, err = readPPMInt(br)
	if err != nil {
		return 0, 0, err
	}
	height, err = readPPMInt(br)
	if err != nil {
		return 0, 0, err
	}
	maxVal, err := readPPMInt(br)
	if err != nil {
		return 0, 0, err
	}
	if width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("%w: bad dimensions %dx%d", ErrPPMFormat, width, height)
	}
	if maxVal != ppmMaxVal {
		return 0, 0, fmt.Errorf("%w: unsupported maxval %d", ErrPPMFormat, maxVal)
	}
	return width, height, nil
}

// readPPMInt reads the next decimal integer, skipping whitespace and
// # comments. Exactly one whitespace byte terminates the integer, so
// the pixel data following the header is left untouched.
func readPPMInt(br *bufio.Reader) (int, error) {
	inComment := false
	started := false
	n := 0
	for {
		b, err := br.ReadByte()
		if err != nil {
			if started && err == io.EOF {
				return n, nil
			}
			return 0, fmt.Errorf("ppm: read header: %w", err)
		}

		switch {
		case inComment:
			if b == '\n' {
				inComment = false
			}
		case b == '#':
			inComment = true
		case b >= '0' && b <= '9':
			started = true
			n = n*10 + int(b-'0')
		case b == ' ' || b == '\t' || b == '\n' || b == '\r':
			if started {
				return n, nil
			}
		default:
			return 0, fmt.Errorf("%w: unexpected byte %q in header", ErrPPMFormat, b)
		}
	}
}

// Register PPM with the standard library's image registry so that
// image.Decode recognizes P6 streams.
func init() {
	image.RegisterFormat("ppm", "P6", decodeImage, decodeConfig)
}

func decodeImage(r io.Reader) (image.Image, error) {
	return DecodePPM(r)
}

func decodeConfig(r io.Reader) (image.Config, error) {
	width, height, err := decodePPMHeader(bufio.NewReader(r))
	if err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: color.NRGBAModel,
		Width:      width,
		Height:     height,
	}, nil
}

// Package imagecrop produces the fixed-aspect cover raster from a source
// image, a zoom scale, and a vertical drag offset. Pure geometry: no UI
// state, identical inputs give identical output bytes.
package imagecrop

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	"image/png"
	"math"

	"github.com/nfnt/resize"
)

// Target cover dimensions (3:1).
const (
	TargetWidth  = 1200
	TargetHeight = 400
)

// SourceRect computes the sampled sub-rectangle for a w×h source at the
// given scale and vertical offset. The window is centered horizontally;
// a positive offset shifts the sampled start up by offset/scale (dragging
// the preview down reveals lower content). The rect is clamped to the
// source bounds.
func SourceRect(w, h int, scale, yOffset float64) image.Rectangle {
	if scale <= 0 {
		scale = 1
	}
	sw := math.Min(float64(w)*scale, TargetWidth) / scale
	sh := math.Min(float64(h)*scale, TargetHeight) / scale
	sx := (float64(w) - sw) / 2
	sy := (float64(h)-sh)/2 - yOffset/scale

	sx = math.Max(0, math.Min(sx, float64(w)-sw))
	sy = math.Max(0, math.Min(sy, float64(h)-sh))

	x0 := int(math.Round(sx))
	y0 := int(math.Round(sy))
	x1 := int(math.Round(sx + sw))
	y1 := int(math.Round(sy + sh))
	return image.Rect(x0, y0, x1, y1).Intersect(image.Rect(0, 0, w, h))
}

// Cover crops src per SourceRect and resamples to TargetWidth×TargetHeight.
func Cover(src image.Image, scale, yOffset float64) image.Image {
	b := src.Bounds()
	r := SourceRect(b.Dx(), b.Dy(), scale, yOffset)

	sub := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(sub, sub.Bounds(), src, b.Min.Add(r.Min), draw.Src)

	return resize.Resize(TargetWidth, TargetHeight, sub, resize.Lanczos3)
}

// CoverBytes decodes data (PNG or JPEG), crops, and re-encodes in the
// source format. JPEG output uses quality 95.
func CoverBytes(data []byte, scale, yOffset float64) ([]byte, error) {
	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode cover image: %w", err)
	}
	out := Cover(src, scale, yOffset)

	var buf bytes.Buffer
	switch format {
	case "png":
		err = png.Encode(&buf, out)
	case "jpeg":
		err = jpeg.Encode(&buf, out, &jpeg.Options{Quality: 95})
	default:
		return nil, fmt.Errorf("unsupported cover format %q", format)
	}
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

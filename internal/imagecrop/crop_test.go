package imagecrop

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func TestSourceRect_CenteredAtDefaults(t *testing.T) {
	t.Parallel()
	r := SourceRect(2400, 800, 1, 0)
	want := image.Rect(600, 200, 1800, 600)
	if r != want {
		t.Fatalf("rect = %v, want %v", r, want)
	}
}

func TestSourceRect_OffsetShiftsUp(t *testing.T) {
	t.Parallel()
	base := SourceRect(2400, 800, 1, 0)
	moved := SourceRect(2400, 800, 1, 50)
	if moved.Min.Y != base.Min.Y-50 || moved.Max.Y != base.Max.Y-50 {
		t.Fatalf("offset 50: %v from %v", moved, base)
	}

	// at scale 2 the same offset moves half as far in source pixels
	base2 := SourceRect(2400, 800, 2, 0)
	moved2 := SourceRect(2400, 800, 2, 50)
	if moved2.Min.Y != base2.Min.Y-25 {
		t.Fatalf("offset at scale 2: %v from %v", moved2, base2)
	}
}

func TestSourceRect_ScaleNarrowsWindow(t *testing.T) {
	t.Parallel()
	r := SourceRect(2400, 800, 2, 0)
	want := image.Rect(900, 300, 1500, 500)
	if r != want {
		t.Fatalf("rect = %v, want %v", r, want)
	}
}

func TestSourceRect_SmallSourceUsesWholeImage(t *testing.T) {
	t.Parallel()
	r := SourceRect(600, 200, 1, 0)
	if r != image.Rect(0, 0, 600, 200) {
		t.Fatalf("rect = %v", r)
	}
}

func TestSourceRect_ClampsToBounds(t *testing.T) {
	t.Parallel()
	r := SourceRect(2400, 800, 1, 10000)
	if r.Min.Y != 0 {
		t.Fatalf("not clamped to top: %v", r)
	}
	r = SourceRect(2400, 800, 1, -10000)
	if r.Max.Y != 800 {
		t.Fatalf("not clamped to bottom: %v", r)
	}

	// non-positive scale falls back to 1
	if SourceRect(2400, 800, 0, 0) != SourceRect(2400, 800, 1, 0) {
		t.Fatalf("zero scale not normalized")
	}
}

func testImage(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: uint8((x + y) % 256), A: 255})
		}
	}
	return img
}

func TestCover_OutputDimensions(t *testing.T) {
	t.Parallel()
	out := Cover(testImage(2400, 800), 1, 0)
	b := out.Bounds()
	if b.Dx() != TargetWidth || b.Dy() != TargetHeight {
		t.Fatalf("bounds = %v", b)
	}
}

func TestCoverBytes_DeterministicPNG(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	if err := png.Encode(&buf, testImage(1600, 900)); err != nil {
		t.Fatalf("encode: %v", err)
	}
	src := buf.Bytes()

	a, err := CoverBytes(src, 1.5, 30)
	if err != nil {
		t.Fatalf("CoverBytes: %v", err)
	}
	b, err := CoverBytes(src, 1.5, 30)
	if err != nil {
		t.Fatalf("CoverBytes: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Fatalf("same inputs produced different bytes")
	}

	out, _, err := image.Decode(bytes.NewReader(a))
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if out.Bounds().Dx() != TargetWidth || out.Bounds().Dy() != TargetHeight {
		t.Fatalf("output bounds = %v", out.Bounds())
	}
}

func TestCoverBytes_RejectsGarbage(t *testing.T) {
	t.Parallel()
	if _, err := CoverBytes([]byte("not an image"), 1, 0); err == nil {
		t.Fatalf("want decode error")
	}
}

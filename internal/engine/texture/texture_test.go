package texture

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(y * 10), G: 0, B: 0, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name          string
		w, h, maxSize int
		wantW, wantH  int
	}{
		{"no limit", 40, 20, 0, 40, 20},
		{"within limit", 40, 20, 64, 40, 20},
		{"wide", 200, 100, 50, 50, 25},
		{"tall", 100, 400, 100, 25, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, format, err := Decode(encodePNG(t, tt.w, tt.h), tt.maxSize)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if format != "png" {
				t.Errorf("format = %q, want png", format)
			}
			if img.Rect.Dx() != tt.wantW || img.Rect.Dy() != tt.wantH {
				t.Errorf("size = %dx%d, want %dx%d", img.Rect.Dx(), img.Rect.Dy(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestDecodeInvalid(t *testing.T) {
	if _, _, err := Decode([]byte("not an image"), 0); err == nil {
		t.Error("expected error for garbage input")
	}
}

func TestToRGBAOffsetBounds(t *testing.T) {
	src := image.NewRGBA(image.Rect(5, 5, 7, 8))
	src.SetRGBA(5, 5, color.RGBA{R: 255, A: 255})

	got := ToRGBA(src)
	if got.Rect.Min != (image.Point{}) || got.Rect.Dx() != 2 || got.Rect.Dy() != 3 {
		t.Fatalf("bounds = %v", got.Rect)
	}
	if got.RGBAAt(0, 0).R != 255 {
		t.Error("pixel did not move to the origin")
	}
}

func TestFlipVertical(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 3))
	for y := 0; y < 3; y++ {
		img.SetRGBA(0, y, color.RGBA{R: uint8(y), A: 255})
	}

	FlipVertical(img)
	for y := 0; y < 3; y++ {
		if got := img.RGBAAt(0, y).R; got != uint8(2-y) {
			t.Errorf("row %d = %d, want %d", y, got, 2-y)
		}
	}
}

func TestSolid(t *testing.T) {
	img := Solid(color.RGBA{255, 255, 255, 255})
	if img.Rect.Dx() != 1 || img.RGBAAt(0, 0).A != 255 {
		t.Errorf("unexpected solid image %v", img.Rect)
	}
}

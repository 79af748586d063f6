package export

import (
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
)

func TestFitToSizeNoopWhenMatching(t *testing.T) {
	img := imaging.New(960, 540, color.White)

	got := FitToSize(img, 960, 540)
	if got != img {
		t.Error("matching dimensions should return the image unchanged")
	}
}

func TestFitToSizeResamples(t *testing.T) {
	tests := []struct {
		name         string
		rawW, rawH   int
		wantW, wantH int
	}{
		{"downscale retina screenshot", 1920, 1080, 960, 540},
		{"upscale", 480, 270, 960, 540},
		{"aspect change", 1000, 540, 960, 540},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := imaging.New(tt.rawW, tt.rawH, color.White)
			got := FitToSize(img, tt.wantW, tt.wantH)

			b := got.Bounds()
			if b.Dx() != tt.wantW || b.Dy() != tt.wantH {
				t.Errorf("resampled to %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestEncodeDecodePNG(t *testing.T) {
	img := imaging.New(24, 13, color.NRGBA{R: 200, G: 10, B: 10, A: 255})

	data, err := EncodePNG(img)
	if err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("EncodePNG returned no data")
	}

	decoded, err := DecodePNG(data)
	if err != nil {
		t.Fatalf("DecodePNG: %v", err)
	}
	b := decoded.Bounds()
	if b.Dx() != 24 || b.Dy() != 13 {
		t.Errorf("decoded dimensions %dx%d, want 24x13", b.Dx(), b.Dy())
	}
}

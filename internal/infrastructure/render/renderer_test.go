package render_test

import (
	"errors"
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"autoscale/internal/domain/entities"
	"autoscale/internal/domain/scalebar"
	"autoscale/internal/infrastructure/render"
)

func blackImage(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 255
	}
	return img
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		value    string
		expected color.NRGBA
		wantErr  bool
	}{
		{"white", color.NRGBA{255, 255, 255, 255}, false},
		{" Red ", color.NRGBA{255, 0, 0, 255}, false},
		{"#00ff00", color.NRGBA{0, 255, 0, 255}, false},
		{"#00F", color.NRGBA{0, 0, 255, 255}, false},
		{"#11223380", color.NRGBA{0x11, 0x22, 0x33, 0x80}, false},
		{"blurple", color.NRGBA{}, true},
		{"#12", color.NRGBA{}, true},
		{"#gggggg", color.NRGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			c, err := render.ParseColor(tt.value)
			if tt.wantErr {
				if !errors.Is(err, entities.ErrUnknownColor) {
					t.Errorf("Expected ErrUnknownColor, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseColor() error = %v", err)
			}
			got := color.NRGBAModel.Convert(c).(color.NRGBA)
			if got != tt.expected {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.value, got, tt.expected)
			}
		})
	}
}

func TestRenderer_Render(t *testing.T) {
	fonts, err := render.NewFontProvider("")
	if err != nil {
		t.Fatal(err)
	}
	renderer := render.NewRenderer(fonts)

	src := blackImage(400, 300)
	plan := scalebar.NewEngine().ComputeOverlay(400, 300, 2, 50, "um", "white")

	out, err := renderer.Render(src, plan)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	// Центр полосы: x в [280, 380), y в [285, 288)
	r, g, b, _ := out.At(330, 286).RGBA()
	if r>>8 != 255 || g>>8 != 255 || b>>8 != 255 {
		t.Errorf("Expected white bar pixel, got %v", out.At(330, 286))
	}

	// Вне полосы изображение не меняется
	r, _, _, _ = out.At(10, 10).RGBA()
	if r != 0 {
		t.Errorf("Expected untouched pixel, got %v", out.At(10, 10))
	}

	// Источник не изменен
	if src.NRGBAAt(330, 286).R != 0 {
		t.Error("Render must not modify the source image")
	}

	if !hasColoredPixelAbove(out, 285) {
		t.Error("Expected label pixels above the bar")
	}
}

func hasColoredPixelAbove(img image.Image, y int) bool {
	b := img.Bounds()
	for py := b.Min.Y; py < y; py++ {
		for px := b.Min.X; px < b.Max.X; px++ {
			if r, _, _, _ := img.At(px, py).RGBA(); r > 0 {
				return true
			}
		}
	}
	return false
}

func TestRenderer_UnknownColor(t *testing.T) {
	fonts, _ := render.NewFontProvider("")
	plan := scalebar.NewEngine().ComputeOverlay(100, 100, 1, 10, "um", "nope")

	if _, err := render.NewRenderer(fonts).Render(blackImage(100, 100), plan); !errors.Is(err, entities.ErrUnknownColor) {
		t.Errorf("Expected ErrUnknownColor, got %v", err)
	}
}

func TestNewFontProvider_Fallback(t *testing.T) {
	provider, err := render.NewFontProvider(filepath.Join(t.TempDir(), "missing.ttf"))
	if err == nil {
		t.Error("Expected error for missing font file")
	}
	if provider == nil {
		t.Fatal("Expected fallback provider")
	}
	face := provider.Face(24)
	if face == nil {
		t.Fatal("Expected font face")
	}
	if provider.Face(24) != face {
		t.Error("Expected cached face for the same size")
	}
}

package scalebar_test

import (
	"fmt"
	"math"
	"testing"

	"autoscale/internal/domain/entities"
	"autoscale/internal/domain/scalebar"
)

const tolerance = 1e-9

type fixedMeasurer float64

func (m fixedMeasurer) Measure(text string) float64 {
	return float64(m)
}

func TestComputeOverlay_BarGeometry(t *testing.T) {
	engine := scalebar.NewEngine()

	tests := []struct {
		width, height int
		pixelPerUnit  float64
		barWidth      float64
	}{
		{2096, 1572, entities.PixelPerUnit10x, 50},
		{1024, 768, entities.PixelPerUnit50x, 10},
		{4000, 3000, entities.PixelPerUnit100x, 25.5},
		{640, 480, 0.75, 1},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%dx%d ppu=%v bar=%v", tt.width, tt.height, tt.pixelPerUnit, tt.barWidth), func(t *testing.T) {
			plan := engine.ComputeOverlay(tt.width, tt.height, tt.pixelPerUnit, tt.barWidth, "um", "white")

			if got, want := plan.BarWidth(), tt.barWidth*tt.pixelPerUnit; math.Abs(got-want) > tolerance {
				t.Errorf("Bar width = %v, want %v", got, want)
			}
			if got, want := plan.BarEnd.X, float64(tt.width)*0.95; math.Abs(got-want) > tolerance {
				t.Errorf("Bar right edge = %v, want %v", got, want)
			}
			if got, want := plan.BarStart.Y, float64(tt.height)*0.95; math.Abs(got-want) > tolerance {
				t.Errorf("Bar top = %v, want %v", got, want)
			}
			if got, want := plan.BarEnd.Y, float64(tt.height)*0.96; math.Abs(got-want) > tolerance {
				t.Errorf("Bar bottom = %v, want %v", got, want)
			}
			if plan.Color != "white" {
				t.Errorf("Expected color white, got %s", plan.Color)
			}
		})
	}
}

func TestComputeOverlay_LabelPosition(t *testing.T) {
	engine := scalebar.NewEngineWithMeasurer(fixedMeasurer(30))

	plan := engine.ComputeOverlay(1000, 500, 2, 50, "um", "red")

	// 950 - 100/2 - 30*2
	if math.Abs(plan.LabelPosition.X-840) > tolerance {
		t.Errorf("Label X = %v, want 840", plan.LabelPosition.X)
	}
	if math.Abs(plan.LabelPosition.Y-460) > tolerance {
		t.Errorf("Label Y = %v, want 460", plan.LabelPosition.Y)
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		barWidth float64
		unit     string
		expected string
	}{
		{30, "um", "30 µm"},
		{50, "nm", "50 nm"},
		{12.9, "um", "12 µm"},
		{100, "UM", "100 UM"},
		{5, "µm", "5 µm"},
	}

	for _, tt := range tests {
		if got := scalebar.Label(tt.barWidth, tt.unit); got != tt.expected {
			t.Errorf("Label(%v, %q) = %q, want %q", tt.barWidth, tt.unit, got, tt.expected)
		}
	}
}

func TestFontSize(t *testing.T) {
	tests := []struct {
		width    int
		expected int
	}{
		{2096, 40},
		{1048, 20},
		{4192, 80},
		{1000, 19},
		{10, 1},
	}

	for _, tt := range tests {
		if got := scalebar.FontSize(tt.width); got != tt.expected {
			t.Errorf("FontSize(%d) = %d, want %d", tt.width, got, tt.expected)
		}
	}
}

func TestComputeOverlay_FontSizeAndLabel(t *testing.T) {
	plan := scalebar.NewEngine().ComputeOverlay(2096, 1000, 1, 30, "um", "white")

	if plan.Label != "30 µm" {
		t.Errorf("Expected label 30 µm, got %q", plan.Label)
	}
	if plan.FontSize != 40 {
		t.Errorf("Expected font size 40, got %d", plan.FontSize)
	}
}

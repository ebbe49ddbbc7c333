package render

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/image/colornames"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"autoscale/internal/domain/entities"
)

// Renderer рисует план линейки на копии изображения
type Renderer struct {
	fonts FontProvider
}

// NewRenderer создает рендерер с заданным провайдером шрифтов
func NewRenderer(fonts FontProvider) *Renderer {
	return &Renderer{fonts: fonts}
}

// Render рисует подпись и полосу. Исходное изображение не меняется.
func (r *Renderer) Render(img image.Image, plan entities.OverlayPlan) (image.Image, error) {
	col, err := ParseColor(plan.Color)
	if err != nil {
		return nil, err
	}

	dst := imaging.Clone(img)
	src := image.NewUniform(col)

	// Положение подписи задает верхний левый угол текста, Dot у font.Drawer это базовая линия
	face := r.fonts.Face(plan.FontSize)
	drawer := &font.Drawer{
		Dst:  dst,
		Src:  src,
		Face: face,
		Dot: fixed.Point26_6{
			X: toFixed(plan.LabelPosition.X),
			Y: toFixed(plan.LabelPosition.Y) + face.Metrics().Ascent,
		},
	}
	drawer.DrawString(plan.Label)

	draw.Draw(dst, barRect(plan), src, image.Point{}, draw.Over)

	return dst, nil
}

// barRect переводит дробные углы полосы в пиксели, полоса не бывает тоньше пикселя
func barRect(plan entities.OverlayPlan) image.Rectangle {
	x0 := int(math.Floor(plan.BarStart.X))
	y0 := int(math.Floor(plan.BarStart.Y))
	x1 := int(math.Ceil(plan.BarEnd.X))
	y1 := int(math.Ceil(plan.BarEnd.Y))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return image.Rect(x0, y0, x1, y1)
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

// ParseColor разбирает имя цвета SVG/CSS ("white", "Red") или "#rgb", "#rrggbb", "#rrggbbaa"
func ParseColor(value string) (color.Color, error) {
	text := strings.ToLower(strings.TrimSpace(value))
	if c, ok := colornames.Map[text]; ok {
		return c, nil
	}
	if !strings.HasPrefix(text, "#") {
		return nil, fmt.Errorf("%w: %q", entities.ErrUnknownColor, value)
	}

	hex := text[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return nil, fmt.Errorf("%w: %q", entities.ErrUnknownColor, value)
	}

	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", entities.ErrUnknownColor, value)
	}
	return color.NRGBA{R: uint8(n >> 24), G: uint8(n >> 16), B: uint8(n >> 8), A: uint8(n)}, nil
}

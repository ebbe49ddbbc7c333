// Package scalebar рассчитывает геометрию масштабной линейки и имена выходных файлов.
// Пакет не выполняет ввод-вывод.
package scalebar

import (
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"autoscale/internal/domain/entities"
)

// Доли размеров изображения для размещения линейки
const (
	barRightFraction  = 0.95
	barTopFraction    = 0.95
	barBottomFraction = 0.96
	labelTopFraction  = 0.92

	baseFontSize       = 40
	referenceWidthPx   = 2096
	labelOffsetFactor  = 2
	micrometreASCII    = "um"
	micrometreReadable = "µm"
)

// TextMeasurer возвращает ширину строки в пикселях
type TextMeasurer interface {
	Measure(text string) float64
}

// FaceMeasurer измеряет текст шрифтом x/image
type FaceMeasurer struct {
	Face font.Face
}

// Measure возвращает ширину строки в пикселях
func (m FaceMeasurer) Measure(text string) float64 {
	advance := font.MeasureString(m.Face, text)
	return float64(advance) / 64
}

// Engine рассчитывает план отрисовки линейки
type Engine struct {
	measurer TextMeasurer
}

// NewEngine создает движок. Смещение подписи считается по ширине текста
// стандартным растровым шрифтом 7x13, а не шрифтом подписи.
func NewEngine() *Engine {
	return NewEngineWithMeasurer(FaceMeasurer{Face: basicfont.Face7x13})
}

// NewEngineWithMeasurer создает движок с заданным измерителем текста
func NewEngineWithMeasurer(measurer TextMeasurer) *Engine {
	return &Engine{measurer: measurer}
}

// ComputeOverlay рассчитывает подпись, ее положение и прямоугольник линейки.
// Ожидает положительные размеры изображения, калибровку и длину линейки.
func (e *Engine) ComputeOverlay(width, height int, pixelPerUnit, barWidth float64, unit, color string) entities.OverlayPlan {
	label := Label(barWidth, unit)

	w := float64(width)
	h := float64(height)
	barPx := barWidth * pixelPerUnit
	right := w * barRightFraction

	// Подпись центрируется приблизительно: сдвиг на две ширины текста
	textWidth := e.measurer.Measure(label)

	return entities.OverlayPlan{
		Label: label,
		LabelPosition: entities.Point{
			X: right - barPx/2 - textWidth*labelOffsetFactor,
			Y: h * labelTopFraction,
		},
		FontSize: FontSize(width),
		BarStart: entities.Point{X: right - barPx, Y: h * barTopFraction},
		BarEnd:   entities.Point{X: right, Y: h * barBottomFraction},
		Color:    color,
	}
}

// Label формирует подпись: целая часть длины, пробел и единица измерения
func Label(barWidth float64, unit string) string {
	if unit == micrometreASCII {
		unit = micrometreReadable
	}
	return strconv.Itoa(int(barWidth)) + " " + unit
}

// FontSize размер шрифта пропорционален ширине изображения
func FontSize(width int) int {
	size := baseFontSize * width / referenceWidthPx
	if size < 1 {
		return 1
	}
	return size
}

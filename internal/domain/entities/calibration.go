package entities

import (
	"strings"
)

// Zoom уровень увеличения микроскопа (калибровка)
type Zoom string

const (
	Zoom10x    Zoom = "10x"
	Zoom50x    Zoom = "50x"
	Zoom100x   Zoom = "100x"
	ZoomCustom Zoom = "custom"
)

// Пикселей на микрометр для фиксированных объективов
const (
	PixelPerUnit10x  = 2.604169
	PixelPerUnit50x  = 12.84722
	PixelPerUnit100x = 25.5002
)

// ZoomOptions порядок вариантов в выпадающем списке таблицы
var ZoomOptions = []Zoom{Zoom10x, Zoom50x, Zoom100x, ZoomCustom}

// IsPreset возвращает true для фиксированных уровней увеличения
func (z Zoom) IsPreset() bool {
	switch z {
	case Zoom10x, Zoom50x, Zoom100x:
		return true
	default:
		return false
	}
}

// PixelPerUnit возвращает калибровку пресета; для custom возвращает false
func (z Zoom) PixelPerUnit() (float64, bool) {
	switch z {
	case Zoom10x:
		return PixelPerUnit10x, true
	case Zoom50x:
		return PixelPerUnit50x, true
	case Zoom100x:
		return PixelPerUnit100x, true
	default:
		return 0, false
	}
}

// Label название для отображения в UI
func (z Zoom) Label() string {
	if z == ZoomCustom {
		return "Custom"
	}
	return string(z)
}

// Index позиция в ZoomOptions
func (z Zoom) Index() int {
	for i, option := range ZoomOptions {
		if option == z {
			return i
		}
	}
	return len(ZoomOptions) - 1
}

// ParseZoom разбирает текстовое значение уровня увеличения
func ParseZoom(text string) (Zoom, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "10x":
		return Zoom10x, nil
	case "50x":
		return Zoom50x, nil
	case "100x":
		return Zoom100x, nil
	case "custom":
		return ZoomCustom, nil
	default:
		return "", ErrUnknownZoom
	}
}

// InferZoom определяет увеличение по имени файла (без учета регистра)
func InferZoom(filename string) Zoom {
	name := strings.ToLower(filename)
	switch {
	case strings.Contains(name, "100x") || strings.Contains(name, "x100"):
		return Zoom100x
	case strings.Contains(name, "50x") || strings.Contains(name, "x50"):
		return Zoom50x
	default:
		return Zoom10x
	}
}

package entities

import "fmt"

// Point точка в пикселях изображения, начало координат в левом верхнем углу
type Point struct {
	X float64
	Y float64
}

// OverlayPlan все, что нужно отрисовать на изображении: подпись и полосу
type OverlayPlan struct {
	Label         string
	LabelPosition Point
	FontSize      int
	BarStart      Point
	BarEnd        Point
	Color         string
}

// BarWidth ширина полосы в пикселях
func (p OverlayPlan) BarWidth() float64 {
	return p.BarEnd.X - p.BarStart.X
}

// Outcome результат обработки одного файла
type Outcome int

const (
	OutcomeSkipped Outcome = iota
	OutcomeProcessed
)

// Count вклад в счетчик "N images processed"
func (o Outcome) Count() int {
	if o == OutcomeProcessed {
		return 1
	}
	return 0
}

// SkipReason причина пропуска файла
type SkipReason string

const (
	SkipNone          SkipReason = ""
	SkipNotImage      SkipReason = "not an image"
	SkipAlreadyScaled SkipReason = "already scaled"
)

// BatchResult итог пакетной обработки
type BatchResult struct {
	Processed int
	Skipped   int
	Failed    int
	Errors    []FileError
}

// FileError ошибка обработки конкретного файла
type FileError struct {
	Path string
	Err  error
}

// Summary текст для итогового окна
func (r *BatchResult) Summary() string {
	if r.Processed == 1 {
		return "1 image processed."
	}
	return fmt.Sprintf("%d images processed.", r.Processed)
}

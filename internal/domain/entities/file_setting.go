package entities

import (
	"math"
	"path/filepath"
	"strconv"
	"strings"
)

// Значения по умолчанию для нового файла
const (
	DefaultBarWidth = 50.0
	DefaultUnit     = "um"
	DefaultColor    = "white"
	DefaultSuffix   = "_with_scale"
)

// Field редактируемое поле настроек файла
type Field string

const (
	FieldEnabled      Field = "enabled"
	FieldZoom         Field = "zoom"
	FieldPixelPerUnit Field = "pixel_per_unit"
	FieldBarWidth     Field = "bar_width"
	FieldUnit         Field = "unit"
	FieldColor        Field = "color"
)

// Колонки таблицы просмотра
const (
	ColumnEnabled = iota
	ColumnFile
	ColumnZoom
	ColumnPixelPerUnit
	ColumnBarWidth
	ColumnUnit
	ColumnColor
)

// ColumnHeaders заголовки колонок таблицы
var ColumnHeaders = []string{"do", "File", "Zoom", "Pixel per unit", "Bar size (Unit)", "Unit", "Color"}

// FieldForColumn возвращает поле, которое редактируется в колонке.
// Колонка с именем файла не редактируется.
func FieldForColumn(column int) (Field, bool) {
	switch column {
	case ColumnEnabled:
		return FieldEnabled, true
	case ColumnZoom:
		return FieldZoom, true
	case ColumnPixelPerUnit:
		return FieldPixelPerUnit, true
	case ColumnBarWidth:
		return FieldBarWidth, true
	case ColumnUnit:
		return FieldUnit, true
	case ColumnColor:
		return FieldColor, true
	default:
		return "", false
	}
}

// FileSetting настройки масштабной линейки для одного изображения
type FileSetting struct {
	Path         string
	Zoom         Zoom
	PixelPerUnit float64
	BarWidth     float64
	Unit         string
	Color        string
	Enabled      bool
}

// NewFileSetting создает настройки по умолчанию, увеличение определяется по имени файла
func NewFileSetting(path string) *FileSetting {
	fs := &FileSetting{
		Path:     path,
		BarWidth: DefaultBarWidth,
		Unit:     DefaultUnit,
		Color:    DefaultColor,
		Enabled:  true,
	}
	fs.SetZoom(InferZoom(filepath.Base(path)))
	return fs
}

// Name возвращает имя файла без директории
func (fs *FileSetting) Name() string {
	return filepath.Base(fs.Path)
}

// SetZoom устанавливает увеличение. Пресет перезаписывает калибровку,
// custom оставляет текущее значение для ручного ввода.
func (fs *FileSetting) SetZoom(zoom Zoom) {
	fs.Zoom = zoom
	if ppu, ok := zoom.PixelPerUnit(); ok {
		fs.PixelPerUnit = ppu
	}
}

// PixelPerUnitEditable калибровку можно менять только вручную в режиме custom
func (fs *FileSetting) PixelPerUnitEditable() bool {
	return fs.Zoom == ZoomCustom
}

// CopySettingsFrom копирует параметры линейки, путь и флаг обработки не меняются
func (fs *FileSetting) CopySettingsFrom(src *FileSetting) {
	fs.Zoom = src.Zoom
	fs.PixelPerUnit = src.PixelPerUnit
	fs.BarWidth = src.BarWidth
	fs.Unit = src.Unit
	fs.Color = src.Color
}

// Clone возвращает независимую копию
func (fs *FileSetting) Clone() *FileSetting {
	c := *fs
	return &c
}

// Apply применяет одно изменение из таблицы. При ошибке запись не меняется.
func (fs *FileSetting) Apply(field Field, raw string) error {
	switch field {
	case FieldEnabled:
		value, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return newValidationError(field, raw, err)
		}
		fs.Enabled = value

	case FieldZoom:
		zoom, err := ParseZoom(raw)
		if err != nil {
			return newValidationError(field, raw, err)
		}
		fs.SetZoom(zoom)

	case FieldPixelPerUnit:
		if !fs.PixelPerUnitEditable() {
			return newValidationError(field, raw, ErrReadOnlyField)
		}
		value, err := parsePositive(raw)
		if err != nil {
			return newValidationError(field, raw, err)
		}
		fs.PixelPerUnit = value

	case FieldBarWidth:
		value, err := parsePositive(raw)
		if err != nil {
			return newValidationError(field, raw, err)
		}
		fs.BarWidth = value

	case FieldUnit:
		fs.Unit = raw

	case FieldColor:
		fs.Color = raw

	default:
		return newValidationError(field, raw, ErrUnknownField)
	}
	return nil
}

// Validate проверяет, что запись пригодна для построения линейки
func (fs *FileSetting) Validate() error {
	if !isPositive(fs.PixelPerUnit) {
		return newValidationError(FieldPixelPerUnit, FormatNumber(fs.PixelPerUnit), ErrNonPositive)
	}
	if !isPositive(fs.BarWidth) {
		return newValidationError(FieldBarWidth, FormatNumber(fs.BarWidth), ErrNonPositive)
	}
	return nil
}

// FormatNumber форматирует число для таблицы без лишних нулей
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func parsePositive(raw string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, ErrNotANumber
	}
	if !isPositive(value) {
		return 0, ErrNonPositive
	}
	return value, nil
}

func isPositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1) && !math.IsNaN(v)
}

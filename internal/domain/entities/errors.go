package entities

import (
	"errors"
	"fmt"
)

// Доменные ошибки
var (
	ErrNotANumber         = errors.New("значение должно быть числом")
	ErrNonPositive        = errors.New("значение должно быть больше нуля")
	ErrReadOnlyField      = errors.New("поле доступно только для чтения")
	ErrUnknownZoom        = errors.New("неизвестный уровень увеличения")
	ErrUnknownField       = errors.New("неизвестное поле")
	ErrIndexOutOfRange    = errors.New("индекс вне диапазона")
	ErrDirectoryNotFound  = errors.New("директория не найдена")
	ErrUnsupportedFormat  = errors.New("неподдерживаемый формат изображения")
	ErrUnknownColor       = errors.New("неизвестный цвет")
	ErrInvalidSuffix      = errors.New("суффикс выходного файла не может быть пустым")
	ErrInvalidPreviewSize = errors.New("размер превью должен быть больше нуля")
)

// ValidationError ошибка проверки значения, введенного пользователем
type ValidationError struct {
	Field Field
	Value string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %q: %v", e.Field, e.Value, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func newValidationError(field Field, value string, err error) *ValidationError {
	return &ValidationError{Field: field, Value: value, Err: err}
}

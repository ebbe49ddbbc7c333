package usecases

import (
	"fmt"

	"autoscale/internal/domain/entities"
)

// Scanner источник записей для реестра
type Scanner interface {
	Execute(root string, includeSubdirectories bool) ([]*entities.FileSetting, error)
}

// FileRegistry упорядоченный список настроек файлов.
// Единственный источник истины для таблицы; меняется только через свои методы.
// Не потокобезопасен: используется из одного потока UI.
type FileRegistry struct {
	scanner Scanner
	files   []*entities.FileSetting
}

// NewFileRegistry создает пустой реестр
func NewFileRegistry(scanner Scanner) *FileRegistry {
	return &FileRegistry{scanner: scanner}
}

// Scan заменяет все записи результатом сканирования директории.
// При ошибке реестр очищается: записи старой папки не должны обрабатываться
// с корнями новой.
func (r *FileRegistry) Scan(root string, includeSubdirectories bool) error {
	files, err := r.scanner.Execute(root, includeSubdirectories)
	if err != nil {
		r.files = nil
		return err
	}
	r.files = files
	return nil
}

// Replace заменяет записи готовым списком
func (r *FileRegistry) Replace(files []*entities.FileSetting) {
	r.files = files
}

// Len количество записей
func (r *FileRegistry) Len() int {
	return len(r.files)
}

// At возвращает копию записи по индексу
func (r *FileRegistry) At(index int) (entities.FileSetting, error) {
	if err := r.checkIndex(index); err != nil {
		return entities.FileSetting{}, err
	}
	return *r.files[index], nil
}

// Files возвращает копии всех записей в порядке сканирования
func (r *FileRegistry) Files() []*entities.FileSetting {
	return cloneAll(r.files, false)
}

// EnabledFiles возвращает копии записей, отмеченных для обработки
func (r *FileRegistry) EnabledFiles() []*entities.FileSetting {
	return cloneAll(r.files, true)
}

// SetAllEnabled отмечает или снимает отметку со всех записей (Select All / Select None)
func (r *FileRegistry) SetAllEnabled(value bool) {
	for _, fs := range r.files {
		fs.Enabled = value
	}
}

// CopySettingsToAll копирует калибровку, длину, единицу и цвет записи sourceIndex во все записи.
// Путь и отметка каждой записи не меняются.
func (r *FileRegistry) CopySettingsToAll(sourceIndex int) error {
	if err := r.checkIndex(sourceIndex); err != nil {
		return err
	}
	src := r.files[sourceIndex].Clone()
	for _, fs := range r.files {
		fs.CopySettingsFrom(src)
	}
	return nil
}

// ApplyFieldEdit применяет изменение одной ячейки таблицы.
// Некорректное значение возвращает ValidationError, запись не меняется.
func (r *FileRegistry) ApplyFieldEdit(index int, field entities.Field, rawValue string) error {
	if err := r.checkIndex(index); err != nil {
		return err
	}
	return r.files[index].Apply(field, rawValue)
}

func (r *FileRegistry) checkIndex(index int) error {
	if index < 0 || index >= len(r.files) {
		return fmt.Errorf("%w: %d", entities.ErrIndexOutOfRange, index)
	}
	return nil
}

func cloneAll(files []*entities.FileSetting, enabledOnly bool) []*entities.FileSetting {
	result := make([]*entities.FileSetting, 0, len(files))
	for _, fs := range files {
		if enabledOnly && !fs.Enabled {
			continue
		}
		result = append(result, fs.Clone())
	}
	return result
}

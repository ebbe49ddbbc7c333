package repositories

import (
	"image"

	"autoscale/internal/domain/entities"
)

// ImageStore интерфейс для чтения и записи растровых изображений
type ImageStore interface {
	Load(path string) (image.Image, error)
	Save(img image.Image, path string) error
}

// OverlayRenderer рисует подпись и полосу линейки поверх изображения
type OverlayRenderer interface {
	Render(img image.Image, plan entities.OverlayPlan) (image.Image, error)
}

// FileRepository интерфейс для работы с файловой системой
type FileRepository interface {
	FileExists(path string) bool
	CreateDirectory(path string) error
	ListImageFiles(directory string, recursive bool, extensions []string) ([]string, error)
}

// SettingsFactory создает настройки по умолчанию для найденного файла
type SettingsFactory interface {
	NewSetting(path string) *entities.FileSetting
}

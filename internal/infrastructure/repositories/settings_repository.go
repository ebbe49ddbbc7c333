package repositories

import (
	"autoscale/internal/domain/entities"
)

// SettingsRepository создает настройки файлов по умолчанию из конфигурации
type SettingsRepository struct {
	defaults entities.AnnotationConfig
}

// NewSettingsRepository создает новый репозиторий настроек
func NewSettingsRepository(defaults entities.AnnotationConfig) *SettingsRepository {
	return &SettingsRepository{defaults: defaults}
}

// NewSetting возвращает настройки для найденного файла
func (r *SettingsRepository) NewSetting(path string) *entities.FileSetting {
	return r.defaults.DefaultSetting(path)
}

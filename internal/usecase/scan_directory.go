package usecases

import (
	"fmt"

	"autoscale/internal/domain/entities"
	"autoscale/internal/domain/repositories"
)

// ScanDirectoryUseCase сценарий поиска изображений в директории
type ScanDirectoryUseCase struct {
	fileRepo   repositories.FileRepository
	settings   repositories.SettingsFactory
	extensions []string
	logger     repositories.Logger
}

// NewScanDirectoryUseCase создает новый сценарий сканирования.
// Пустой список расширений означает набор по умолчанию.
func NewScanDirectoryUseCase(
	fileRepo repositories.FileRepository,
	settings repositories.SettingsFactory,
	extensions []string,
	logger repositories.Logger,
) *ScanDirectoryUseCase {
	if len(extensions) == 0 {
		extensions = entities.ScanExtensions
	}
	return &ScanDirectoryUseCase{
		fileRepo:   fileRepo,
		settings:   settings,
		extensions: extensions,
		logger:     logger,
	}
}

// Execute возвращает настройки по умолчанию для каждого найденного изображения
func (uc *ScanDirectoryUseCase) Execute(root string, includeSubdirectories bool) ([]*entities.FileSetting, error) {
	if !uc.fileRepo.FileExists(root) {
		return nil, fmt.Errorf("%w: %s", entities.ErrDirectoryNotFound, root)
	}

	files, err := uc.fileRepo.ListImageFiles(root, includeSubdirectories, uc.extensions)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка файлов: %w", err)
	}

	settings := make([]*entities.FileSetting, 0, len(files))
	seen := make(map[string]struct{}, len(files))
	for _, path := range files {
		if _, ok := seen[path]; ok {
			continue
		}
		seen[path] = struct{}{}
		settings = append(settings, uc.settings.NewSetting(path))
	}

	if uc.logger != nil {
		uc.logger.Info("Найдено изображений в %s: %d", root, len(settings))
	}

	return settings, nil
}

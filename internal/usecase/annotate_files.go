package usecases

import (
	"context"
	"path/filepath"

	"autoscale/internal/domain/entities"
	"autoscale/internal/domain/repositories"
)

// AnnotateFilesUseCase обработка списка файлов из командной строки
type AnnotateFilesUseCase struct {
	processor ImageProcessor
	settings  repositories.SettingsFactory
	logger    repositories.Logger
}

// NewAnnotateFilesUseCase создает новый сценарий обработки списка файлов
func NewAnnotateFilesUseCase(processor ImageProcessor, settings repositories.SettingsFactory, logger repositories.Logger) *AnnotateFilesUseCase {
	return &AnnotateFilesUseCase{
		processor: processor,
		settings:  settings,
		logger:    logger,
	}
}

// Execute размечает каждый файл с увеличением 10x.
// Результат сохраняется рядом с исходным файлом; ошибки файлов не прерывают обработку.
func (uc *AnnotateFilesUseCase) Execute(ctx context.Context, paths []string, base AnnotateOptions) (*entities.BatchResult, error) {
	result := &entities.BatchResult{}

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		setting := uc.settings.NewSetting(path)
		setting.SetZoom(entities.Zoom10x)

		opts := base
		opts.InputRoot = filepath.Dir(path)
		opts.OutputRoot = opts.InputRoot

		outcome, err := uc.processor.ProcessOne(ctx, setting, opts)
		switch {
		case err != nil:
			result.Failed++
			result.Errors = append(result.Errors, entities.FileError{Path: path, Err: err})
			if uc.logger != nil {
				uc.logger.Error("Ошибка обработки %s: %v", path, err)
			}
		case outcome == entities.OutcomeProcessed:
			result.Processed += outcome.Count()
			if uc.logger != nil {
				uc.logger.Success("Обработан: %s", path)
			}
		default:
			result.Skipped++
		}
	}

	return result, nil
}

package usecases

import (
	"context"
	"path/filepath"

	"autoscale/internal/domain/entities"
	"autoscale/internal/domain/repositories"
)

// ImageProcessor обработка одного файла
type ImageProcessor interface {
	ProcessOne(ctx context.Context, setting *entities.FileSetting, opts AnnotateOptions) (entities.Outcome, error)
}

// RunBatchUseCase сценарий пакетной обработки отмеченных файлов
type RunBatchUseCase struct {
	processor        ImageProcessor
	logger           repositories.Logger
	progressReporter func(entities.BatchStatus)
}

// NewRunBatchUseCase создает новый сценарий пакетной обработки
func NewRunBatchUseCase(processor ImageProcessor, logger repositories.Logger) *RunBatchUseCase {
	return &RunBatchUseCase{
		processor: processor,
		logger:    logger,
	}
}

// SetProgressReporter устанавливает функцию для отчета о прогрессе
func (uc *RunBatchUseCase) SetProgressReporter(reporter func(entities.BatchStatus)) {
	uc.progressReporter = reporter
}

// reportProgress отправляет обновление прогресса
func (uc *RunBatchUseCase) reportProgress(status *entities.BatchStatus) {
	if uc.progressReporter != nil {
		uc.progressReporter(*status)
	}
}

// Execute обрабатывает записи с Enabled по очереди.
// Ошибка одного файла не прерывает пакет; отмена ctx проверяется между файлами.
func (uc *RunBatchUseCase) Execute(ctx context.Context, records []*entities.FileSetting, opts AnnotateOptions) (*entities.BatchResult, error) {
	enabled := make([]*entities.FileSetting, 0, len(records))
	for _, record := range records {
		if record.Enabled {
			enabled = append(enabled, record)
		}
	}

	status := entities.NewBatchStatus(len(enabled))
	result := &entities.BatchResult{}

	uc.logInfo("Начало обработки: файлов %d, вход %s, выход %s", len(enabled), opts.InputRoot, opts.OutputRoot)
	status.Phase = entities.PhaseAnnotating
	uc.reportProgress(status)

	for i, record := range enabled {
		if err := ctx.Err(); err != nil {
			uc.logWarning("Обработка прервана после %d из %d файлов", i, len(enabled))
			status.Cancel(err)
			uc.reportProgress(status)
			return result, err
		}

		outcome, err := uc.processor.ProcessOne(ctx, record, opts)
		status.AddOutcome(record.Path, outcome, err)

		fileName := filepath.Base(record.Path)
		switch {
		case err != nil:
			result.Failed++
			result.Errors = append(result.Errors, entities.FileError{Path: record.Path, Err: err})
			uc.logError("[%d/%d] ✗ %s: %v", i+1, len(enabled), fileName, err)
		case outcome == entities.OutcomeProcessed:
			result.Processed += outcome.Count()
			uc.logSuccess("[%d/%d] ✓ %s", i+1, len(enabled), fileName)
		default:
			result.Skipped++
		}

		uc.reportProgress(status)
	}

	status.Complete()
	uc.reportProgress(status)

	uc.logInfo("Обработка завершена: обработано %d, пропущено %d, ошибок %d", result.Processed, result.Skipped, result.Failed)

	return result, nil
}

// Методы для логирования
func (uc *RunBatchUseCase) logInfo(format string, args ...interface{}) {
	if uc.logger != nil {
		uc.logger.Info(format, args...)
	}
}

func (uc *RunBatchUseCase) logSuccess(format string, args ...interface{}) {
	if uc.logger != nil {
		uc.logger.Success(format, args...)
	}
}

func (uc *RunBatchUseCase) logWarning(format string, args ...interface{}) {
	if uc.logger != nil {
		uc.logger.Warning(format, args...)
	}
}

func (uc *RunBatchUseCase) logError(format string, args ...interface{}) {
	if uc.logger != nil {
		uc.logger.Error(format, args...)
	}
}

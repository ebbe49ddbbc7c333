package usecases

import (
	"context"
	"fmt"
	"image"
	"path/filepath"

	"autoscale/internal/domain/entities"
	"autoscale/internal/domain/repositories"
	"autoscale/internal/domain/scalebar"
)

// AnnotateOptions общие для пакета параметры обработки
type AnnotateOptions struct {
	InputRoot       string
	OutputRoot      string
	Suffix          string
	OutputExtension string
	Lowercase       bool
	Overwrite       bool
	// Recognized расширения, которые обрабатываются; пустой список означает набор по умолчанию
	Recognized []string
}

// NewAnnotateOptions собирает параметры обработки из конфигурации
func NewAnnotateOptions(config *entities.Config) AnnotateOptions {
	return AnnotateOptions{
		InputRoot:       config.Scanner.InputDirectory,
		OutputRoot:      config.Scanner.OutputDirectory,
		Suffix:          config.Annotation.Suffix,
		OutputExtension: config.Annotation.OutputExtension,
		Lowercase:       config.Annotation.Lowercase,
		Overwrite:       config.Annotation.Overwrite,
	}
}

func (o AnnotateOptions) naming() scalebar.NamingOptions {
	return scalebar.NamingOptions{
		InputRoot:  o.InputRoot,
		OutputRoot: o.OutputRoot,
		Suffix:     o.Suffix,
		Extension:  o.OutputExtension,
		Lowercase:  o.Lowercase,
	}
}

// AnnotateImageUseCase наносит линейку на одно изображение
type AnnotateImageUseCase struct {
	engine   *scalebar.Engine
	store    repositories.ImageStore
	renderer repositories.OverlayRenderer
	fileRepo repositories.FileRepository
	logger   repositories.Logger
}

// NewAnnotateImageUseCase создает новый UseCase для нанесения линейки
func NewAnnotateImageUseCase(
	engine *scalebar.Engine,
	store repositories.ImageStore,
	renderer repositories.OverlayRenderer,
	fileRepo repositories.FileRepository,
	logger repositories.Logger,
) *AnnotateImageUseCase {
	return &AnnotateImageUseCase{
		engine:   engine,
		store:    store,
		renderer: renderer,
		fileRepo: fileRepo,
		logger:   logger,
	}
}

// ProcessOne проверяет, загружает, размечает и сохраняет изображение.
// Пропуск возвращает OutcomeSkipped без ошибки.
func (uc *AnnotateImageUseCase) ProcessOne(ctx context.Context, setting *entities.FileSetting, opts AnnotateOptions) (entities.Outcome, error) {
	if err := ctx.Err(); err != nil {
		return entities.OutcomeSkipped, err
	}

	recognized := opts.Recognized
	if len(recognized) == 0 {
		recognized = entities.RecognizedExtensions
	}

	if skip, reason := scalebar.ShouldSkip(setting.Path, opts.Suffix, recognized); skip {
		uc.logSkip(setting.Path, reason)
		return entities.OutcomeSkipped, nil
	}

	outputPath := scalebar.PlanOutputPath(setting.Path, opts.naming())
	if !opts.Overwrite && uc.fileRepo.FileExists(outputPath) {
		uc.logSkip(setting.Path, entities.SkipAlreadyScaled)
		return entities.OutcomeSkipped, nil
	}

	if err := setting.Validate(); err != nil {
		return entities.OutcomeSkipped, err
	}

	img, err := uc.store.Load(setting.Path)
	if err != nil {
		return entities.OutcomeSkipped, err
	}

	bounds := img.Bounds()
	plan := uc.engine.ComputeOverlay(bounds.Dx(), bounds.Dy(), setting.PixelPerUnit, setting.BarWidth, setting.Unit, setting.Color)

	annotated, err := uc.renderer.Render(img, plan)
	if err != nil {
		return entities.OutcomeSkipped, fmt.Errorf("ошибка отрисовки линейки %s: %w", setting.Path, err)
	}

	outputDir := filepath.Dir(outputPath)
	if err := uc.fileRepo.CreateDirectory(outputDir); err != nil {
		return entities.OutcomeSkipped, fmt.Errorf("не удалось создать директорию %s: %w", outputDir, err)
	}

	if err := uc.store.Save(annotated, outputPath); err != nil {
		return entities.OutcomeSkipped, err
	}

	if uc.logger != nil {
		uc.logger.Debug("Сохранено: %s", outputPath)
	}
	return entities.OutcomeProcessed, nil
}

// Preview возвращает изображение с линейкой без сохранения
func (uc *AnnotateImageUseCase) Preview(setting *entities.FileSetting) (image.Image, error) {
	if err := setting.Validate(); err != nil {
		return nil, err
	}
	img, err := uc.store.Load(setting.Path)
	if err != nil {
		return nil, err
	}
	bounds := img.Bounds()
	plan := uc.engine.ComputeOverlay(bounds.Dx(), bounds.Dy(), setting.PixelPerUnit, setting.BarWidth, setting.Unit, setting.Color)
	return uc.renderer.Render(img, plan)
}

func (uc *AnnotateImageUseCase) logSkip(path string, reason entities.SkipReason) {
	if uc.logger == nil {
		return
	}
	switch reason {
	case entities.SkipNotImage:
		uc.logger.Info("Файл %s не является изображением, пропуск", path)
	case entities.SkipAlreadyScaled:
		uc.logger.Info("Файл %s уже содержит линейку, пропуск", path)
	}
}

package main

import (
	"context"
	"image"
	"sync"

	"autoscale/internal/domain/entities"
	"autoscale/internal/domain/repositories"
	"autoscale/internal/presentation/tui"
	usecases "autoscale/internal/usecase"
)

// ApplicationProcessor связывает интерфейс с реестром файлов и сценариями
type ApplicationProcessor struct {
	registry  *usecases.FileRegistry
	batch     *usecases.RunBatchUseCase
	annotator *usecases.AnnotateImageUseCase
	config    *entities.Config
	logger    repositories.Logger

	// Отмена обработки при завершении приложения
	ctx    context.Context
	cancel context.CancelFunc

	mu          sync.Mutex
	batchCancel context.CancelFunc
}

// NewApplicationProcessor создает новый процессор приложения
func NewApplicationProcessor(
	registry *usecases.FileRegistry,
	batch *usecases.RunBatchUseCase,
	annotator *usecases.AnnotateImageUseCase,
	config *entities.Config,
	logger repositories.Logger,
) *ApplicationProcessor {
	ctx, cancel := context.WithCancel(context.Background())

	return &ApplicationProcessor{
		registry:  registry,
		batch:     batch,
		annotator: annotator,
		config:    config,
		logger:    logger,
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Refresh пересканирует входную папку
func (p *ApplicationProcessor) Refresh(state tui.State) error {
	p.applyState(state)
	if err := p.registry.Scan(state.InputDirectory, state.IncludeSubdirectories); err != nil {
		if p.logger != nil {
			p.logger.Error("Ошибка сканирования %s: %v", state.InputDirectory, err)
		}
		return err
	}
	return nil
}

// Files текущие записи реестра
func (p *ApplicationProcessor) Files() []*entities.FileSetting {
	return p.registry.Files()
}

// SetAllEnabled Select All / Select None
func (p *ApplicationProcessor) SetAllEnabled(value bool) {
	p.registry.SetAllEnabled(value)
}

// CopySettingsToAll копирует настройки строки во все записи
func (p *ApplicationProcessor) CopySettingsToAll(index int) error {
	if err := p.registry.CopySettingsToAll(index); err != nil {
		return err
	}
	if p.logger != nil {
		if fs, err := p.registry.At(index); err == nil {
			p.logger.Info("Настройки %s скопированы во все файлы", fs.Name())
		}
	}
	return nil
}

// ApplyFieldEdit изменение ячейки таблицы
func (p *ApplicationProcessor) ApplyFieldEdit(index int, field entities.Field, rawValue string) error {
	err := p.registry.ApplyFieldEdit(index, field, rawValue)
	if err != nil && p.logger != nil {
		p.logger.Warning("Значение отклонено: %v", err)
	}
	return err
}

// RunBatch размечает отмеченные файлы
func (p *ApplicationProcessor) RunBatch(ctx context.Context, state tui.State) (*entities.BatchResult, error) {
	p.applyState(state)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	if err := p.trackBatch(cancel); err != nil {
		return nil, err
	}
	defer p.trackBatch(nil)

	return p.batch.Execute(ctx, p.registry.Files(), usecases.NewAnnotateOptions(p.config))
}

// trackBatch запоминает отмену текущего пакета, чтобы Shutdown мог прервать его
func (p *ApplicationProcessor) trackBatch(cancel context.CancelFunc) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if cancel != nil {
		if err := p.ctx.Err(); err != nil {
			return err
		}
	}
	p.batchCancel = cancel
	return nil
}

// Preview изображение выбранной записи с линейкой
func (p *ApplicationProcessor) Preview(index int) (image.Image, error) {
	fs, err := p.registry.At(index)
	if err != nil {
		return nil, err
	}
	return p.annotator.Preview(&fs)
}

// Config конфигурация с папками и флагами из интерфейса
func (p *ApplicationProcessor) Config() *entities.Config {
	return p.config
}

func (p *ApplicationProcessor) applyState(state tui.State) {
	p.config.Scanner.InputDirectory = state.InputDirectory
	p.config.Scanner.OutputDirectory = state.OutputDirectory
	p.config.Scanner.IncludeSubdirectories = state.IncludeSubdirectories
	p.config.Annotation.Lowercase = state.Lowercase
}

// Shutdown прерывает обработку при выходе.
// Вызывается из обработчика сигналов, пока пакет идет в потоке UI.
func (p *ApplicationProcessor) Shutdown() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cancel()
	if p.batchCancel != nil {
		p.batchCancel()
	}
}

package controllers

import (
	"context"
	"fmt"
	"io"

	"autoscale/internal/domain/entities"
	usecases "autoscale/internal/usecase"
)

// CLIController контроллер для командной строки: размечает файлы из аргументов
type CLIController struct {
	annotateFiles *usecases.AnnotateFilesUseCase
	options       usecases.AnnotateOptions
	out           io.Writer
}

// NewCLIController создает новый CLI контроллер
func NewCLIController(annotateFiles *usecases.AnnotateFilesUseCase, options usecases.AnnotateOptions, out io.Writer) *CLIController {
	return &CLIController{
		annotateFiles: annotateFiles,
		options:       options,
		out:           out,
	}
}

// HandleFiles обрабатывает файлы и печатает итог.
// Ошибки отдельных файлов печатаются и не возвращаются; ошибка означает прерывание.
func (c *CLIController) HandleFiles(ctx context.Context, paths []string) error {
	result, err := c.annotateFiles.Execute(ctx, paths, c.options)
	if result != nil {
		c.showResult(result)
	}
	if err != nil {
		return fmt.Errorf("обработка прервана: %w", err)
	}
	return nil
}

// showResult показывает результат обработки
func (c *CLIController) showResult(result *entities.BatchResult) {
	if len(result.Errors) > 0 {
		fmt.Fprintln(c.out, "Ошибки:")
		for i, fileErr := range result.Errors {
			fmt.Fprintf(c.out, "[%d] %s: %v\n", i+1, fileErr.Path, fileErr.Err)
		}
	}
	if result.Skipped > 0 {
		fmt.Fprintf(c.out, "Пропущено: %d\n", result.Skipped)
	}
	fmt.Fprintln(c.out, result.Summary())
}

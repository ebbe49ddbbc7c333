package usecases_test

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"autoscale/internal/domain/entities"
	"autoscale/internal/domain/scalebar"
	"autoscale/internal/infrastructure/images"
	"autoscale/internal/infrastructure/render"
	"autoscale/internal/infrastructure/repositories"
	usecases "autoscale/internal/usecase"
)

// recordingLogger собирает сообщения для проверок
type recordingLogger struct {
	errors   []string
	messages []string
}

func (l *recordingLogger) Debug(format string, args ...interface{}) {}

func (l *recordingLogger) Info(format string, args ...interface{}) {
	l.messages = append(l.messages, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Warning(format string, args ...interface{}) {
	l.messages = append(l.messages, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Error(format string, args ...interface{}) {
	l.errors = append(l.errors, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Success(format string, args ...interface{}) {
	l.messages = append(l.messages, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Close() error { return nil }

func writePNG(t *testing.T, path string, width, height int) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.NRGBA{R: 20, G: 20, B: 20, A: 255})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func writeGarbage(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("not an image"), 0644); err != nil {
		t.Fatal(err)
	}
}

func newAnnotator(t *testing.T, logger *recordingLogger) *usecases.AnnotateImageUseCase {
	t.Helper()
	fonts, err := render.NewFontProvider("")
	if err != nil {
		t.Fatal(err)
	}
	return usecases.NewAnnotateImageUseCase(
		scalebar.NewEngine(),
		images.NewStore(),
		render.NewRenderer(fonts),
		repositories.NewFileSystemRepository(),
		logger,
	)
}

func newScanner(logger *recordingLogger) *usecases.ScanDirectoryUseCase {
	return usecases.NewScanDirectoryUseCase(
		repositories.NewFileSystemRepository(),
		repositories.NewSettingsRepository(entities.AnnotationConfig{}),
		nil,
		logger,
	)
}

func options(inputRoot, outputRoot string) usecases.AnnotateOptions {
	return usecases.AnnotateOptions{
		InputRoot:  inputRoot,
		OutputRoot: outputRoot,
		Suffix:     entities.DefaultSuffix,
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// lowercaseTempDir временная директория, путь которой не меняется при
// переводе в нижний регистр. Имя t.TempDir содержит имя теста.
func lowercaseTempDir(t *testing.T) string {
	t.Helper()
	dir, err := os.MkdirTemp("", "autoscale")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })
	if strings.ToLower(dir) != dir {
		t.Skipf("Временная директория %s содержит заглавные буквы", dir)
	}
	return dir
}

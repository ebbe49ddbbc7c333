package images

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"autoscale/internal/domain/entities"
)

// JPEGQuality качество сохранения JPEG
const JPEGQuality = 95

// Store чтение и запись изображений через imaging (jpeg, png, gif, tiff, bmp)
type Store struct {
	jpegQuality int
}

// NewStore создает хранилище изображений
func NewStore() *Store {
	return &Store{jpegQuality: JPEGQuality}
}

// Load открывает и декодирует изображение
func (s *Store) Load(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("не удалось открыть изображение %s: %w", path, err)
	}
	return img, nil
}

// Save кодирует изображение в формат по расширению пути.
// Запись идет во временный файл, который затем переименовывается.
func (s *Store) Save(img image.Image, path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	tmpPath := path + ".tmp"
	tmpFile, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("не удалось создать временный файл: %w", err)
	}

	err = imaging.Encode(tmpFile, img, format, imaging.JPEGQuality(s.jpegQuality))
	closeErr := tmpFile.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("не удалось закодировать %s: %w", path, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("не удалось переименовать временный файл: %w", err)
	}

	return nil
}

// FormatFromPath возвращает формат кодирования по расширению файла
func FormatFromPath(path string) (imaging.Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".jfif" {
		return imaging.JPEG, nil
	}
	format, err := imaging.FormatFromExtension(ext)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", entities.ErrUnsupportedFormat, path)
	}
	return format, nil
}

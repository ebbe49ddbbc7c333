package tui

import (
	"image"

	"autoscale/internal/domain/entities"

	"github.com/nfnt/resize"
)

// previewKey запись, для которой построен текущий предпросмотр
type previewKey struct {
	index   int
	setting entities.FileSetting
}

// Thumbnail уменьшает изображение до рамки maxWidth x maxHeight с сохранением пропорций.
// Изображения меньше рамки возвращаются без изменений.
func Thumbnail(img image.Image, maxWidth, maxHeight int) image.Image {
	if img == nil || maxWidth <= 0 || maxHeight <= 0 {
		return img
	}
	return resize.Thumbnail(uint(maxWidth), uint(maxHeight), img, resize.Lanczos3)
}

func blankImage() image.Image {
	return image.NewRGBA(image.Rect(0, 0, 1, 1))
}

// updatePreview показывает выбранный файл с линейкой
func (m *Manager) updatePreview(index int) {
	if m.previewView == nil || m.controller == nil {
		return
	}

	files := m.controller.Files()
	if index < 0 || index >= len(files) {
		m.lastPreview = nil
		m.previewView.SetImage(blankImage())
		m.previewView.SetTitle("Preview")
		return
	}

	key := previewKey{index: index, setting: *files[index]}
	if m.lastPreview != nil && *m.lastPreview == key {
		return
	}
	m.lastPreview = &key

	img, err := m.controller.Preview(index)
	if err != nil {
		m.previewView.SetImage(blankImage())
		m.previewView.SetTitle("Preview: " + err.Error())
		return
	}

	m.previewView.SetImage(Thumbnail(img, m.preview.MaxWidth, m.preview.MaxHeight))
	m.previewView.SetTitle("Preview: " + files[index].Name())
}

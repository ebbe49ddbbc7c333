package render

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontProvider выдает шрифт подписи нужного размера в пикселях
type FontProvider interface {
	Face(size int) font.Face
}

// OpenTypeProvider шрифт из TTF/OTF файла с кэшем по размеру
type OpenTypeProvider struct {
	font  *opentype.Font
	cache map[int]font.Face
}

// NewFontProvider загружает шрифт по пути. Пустой путь означает встроенный Go Regular.
// Если файл не читается, возвращается провайдер со встроенным шрифтом и ошибка.
func NewFontProvider(path string) (*OpenTypeProvider, error) {
	fallback, err := newProvider(goregular.TTF)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return fallback, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fallback, fmt.Errorf("не удалось прочитать шрифт %s: %w", path, err)
	}
	provider, err := newProvider(data)
	if err != nil {
		return fallback, fmt.Errorf("не удалось разобрать шрифт %s: %w", path, err)
	}
	return provider, nil
}

func newProvider(data []byte) (*OpenTypeProvider, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}
	return &OpenTypeProvider{font: f, cache: make(map[int]font.Face)}, nil
}

// Face возвращает шрифт размера size; при ошибке растровый 7x13
func (p *OpenTypeProvider) Face(size int) font.Face {
	if p == nil {
		return basicfont.Face7x13
	}
	if face, ok := p.cache[size]; ok {
		return face
	}
	face, err := opentype.NewFace(p.font, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return basicfont.Face7x13
	}
	p.cache[size] = face
	return face
}

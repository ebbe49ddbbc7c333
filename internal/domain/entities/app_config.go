package entities

import (
	"strings"
	"time"
)

// Config представляет конфигурацию приложения
type Config struct {
	Scanner    ScannerConfig    `yaml:"scanner"`
	Annotation AnnotationConfig `yaml:"annotation"`
	Preview    PreviewConfig    `yaml:"preview"`
	Output     OutputConfig     `yaml:"output"`
}

// ScannerConfig настройки сканирования директорий
type ScannerConfig struct {
	InputDirectory        string   `yaml:"input_directory"`
	OutputDirectory       string   `yaml:"output_directory"`
	IncludeSubdirectories bool     `yaml:"include_subdirectories"`
	Extensions            []string `yaml:"extensions"`
}

// AnnotationConfig настройки линейки и имен выходных файлов
type AnnotationConfig struct {
	Suffix          string  `yaml:"suffix"`
	Lowercase       bool    `yaml:"lowercase"`
	Overwrite       bool    `yaml:"overwrite"`
	OutputExtension string  `yaml:"output_extension"`
	BarWidth        float64 `yaml:"bar_width"`
	Unit            string  `yaml:"unit"`
	Color           string  `yaml:"color"`
	FontPath        string  `yaml:"font_path"`
}

// PreviewConfig настройки превью в TUI
type PreviewConfig struct {
	Enabled   bool `yaml:"enabled"`
	MaxWidth  int  `yaml:"max_width"`
	MaxHeight int  `yaml:"max_height"`
}

// OutputConfig настройки вывода
type OutputConfig struct {
	LogLevel     string `yaml:"log_level"`
	LogToFile    bool   `yaml:"log_to_file"`
	LogFileName  string `yaml:"log_file_name"`
	LogMaxSizeMB int    `yaml:"log_max_size_mb"`
}

// ScanExtensions расширения, которые попадают в таблицу при сканировании.
// Набор уже, чем RecognizedExtensions; совпадение ищется с учетом регистра.
var ScanExtensions = []string{".tif", ".tiff", ".png", ".jpg", ".jpeg"}

// RecognizedExtensions расширения, которые обрабатываются при запуске
var RecognizedExtensions = []string{".jpeg", ".jpg", ".jfif", ".png", ".bmp", ".tif", ".tiff", ".gif"}

// Validate проверяет корректность конфигурации
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Annotation.Suffix) == "" {
		return ErrInvalidSuffix
	}
	if !isPositive(c.Annotation.BarWidth) {
		return newValidationError(FieldBarWidth, FormatNumber(c.Annotation.BarWidth), ErrNonPositive)
	}
	if c.Preview.Enabled && (c.Preview.MaxWidth <= 0 || c.Preview.MaxHeight <= 0) {
		return ErrInvalidPreviewSize
	}
	return nil
}

// DefaultSetting создает настройки файла с учетом значений по умолчанию из конфигурации
func (c *AnnotationConfig) DefaultSetting(path string) *FileSetting {
	fs := NewFileSetting(path)
	if c.BarWidth > 0 {
		fs.BarWidth = c.BarWidth
	}
	if c.Unit != "" {
		fs.Unit = c.Unit
	}
	if c.Color != "" {
		fs.Color = c.Color
	}
	return fs
}

// BatchPhase фаза пакетной обработки
type BatchPhase int

const (
	PhaseInitializing BatchPhase = iota
	PhaseAnnotating
	PhaseCompleted
	PhaseCancelled
)

// BatchStatus статус пакетной обработки для отчета о прогрессе
type BatchStatus struct {
	Phase BatchPhase

	CurrentFile string

	TotalFiles     int
	HandledFiles   int
	ProcessedFiles int
	SkippedFiles   int
	FailedFiles    int

	Progress float64

	StartTime   time.Time
	ElapsedTime time.Duration

	IsComplete bool
	Error      error
}

// NewBatchStatus создает новый статус обработки
func NewBatchStatus(totalFiles int) *BatchStatus {
	return &BatchStatus{
		Phase:      PhaseInitializing,
		TotalFiles: totalFiles,
		StartTime:  time.Now(),
	}
}

// AddOutcome учитывает результат обработки одного файла
func (s *BatchStatus) AddOutcome(path string, outcome Outcome, err error) {
	s.CurrentFile = path
	s.HandledFiles++

	switch {
	case err != nil:
		s.FailedFiles++
	case outcome == OutcomeProcessed:
		s.ProcessedFiles++
	default:
		s.SkippedFiles++
	}

	if s.TotalFiles > 0 {
		s.Progress = float64(s.HandledFiles) / float64(s.TotalFiles) * 100
	}
	s.ElapsedTime = time.Since(s.StartTime)
}

// Complete завершает обработку
func (s *BatchStatus) Complete() {
	s.IsComplete = true
	s.Phase = PhaseCompleted
	s.Progress = 100
	s.ElapsedTime = time.Since(s.StartTime)
}

// Cancel отмечает обработку как прерванную
func (s *BatchStatus) Cancel(err error) {
	s.IsComplete = true
	s.Phase = PhaseCancelled
	s.Error = err
	s.ElapsedTime = time.Since(s.StartTime)
}

func (phase BatchPhase) String() string {
	switch phase {
	case PhaseInitializing:
		return "Инициализация"
	case PhaseAnnotating:
		return "Нанесение линеек"
	case PhaseCompleted:
		return "Завершено"
	case PhaseCancelled:
		return "Прервано"
	default:
		return "Неизвестно"
	}
}

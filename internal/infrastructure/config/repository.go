package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"autoscale/internal/domain/entities"
)

// Repository реализация репозитория конфигурации
type Repository struct {
	// workDir подставляется вместо пустых директорий, фиксируется при старте процесса
	workDir string
}

// NewRepository создает новый репозиторий конфигурации
func NewRepository(workDir string) *Repository {
	return &Repository{workDir: workDir}
}

// Load загружает конфигурацию из файла
func (r *Repository) Load(configPath string) (*entities.Config, error) {
	config := r.DefaultConfig()

	// Если файл не существует, используем конфигурацию по умолчанию
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	// Поля, которых нет в файле, сохраняют значения по умолчанию
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("ошибка разбора %s: %w", configPath, err)
	}

	r.fillDirectories(config)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("некорректная конфигурация %s: %w", configPath, err)
	}

	return config, nil
}

// Save сохраняет конфигурацию в файл
func (r *Repository) Save(configPath string, config *entities.Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// DefaultConfig создает конфигурацию по умолчанию
func (r *Repository) DefaultConfig() *entities.Config {
	return &entities.Config{
		Scanner: entities.ScannerConfig{
			InputDirectory:        r.workDir,
			OutputDirectory:       r.workDir,
			IncludeSubdirectories: false,
			Extensions:            append([]string(nil), entities.ScanExtensions...),
		},
		Annotation: entities.AnnotationConfig{
			Suffix:    entities.DefaultSuffix,
			Lowercase: false,
			Overwrite: false,
			BarWidth:  entities.DefaultBarWidth,
			Unit:      entities.DefaultUnit,
			Color:     entities.DefaultColor,
		},
		Preview: entities.PreviewConfig{
			Enabled:   true,
			MaxWidth:  480,
			MaxHeight: 360,
		},
		Output: entities.OutputConfig{
			LogLevel:     "info",
			LogToFile:    true,
			LogFileName:  "autoscale.log",
			LogMaxSizeMB: 10,
		},
	}
}

func (r *Repository) fillDirectories(config *entities.Config) {
	if config.Scanner.InputDirectory == "" {
		config.Scanner.InputDirectory = r.workDir
	}
	if config.Scanner.OutputDirectory == "" {
		config.Scanner.OutputDirectory = config.Scanner.InputDirectory
	}
	if len(config.Scanner.Extensions) == 0 {
		config.Scanner.Extensions = append([]string(nil), entities.ScanExtensions...)
	}
}

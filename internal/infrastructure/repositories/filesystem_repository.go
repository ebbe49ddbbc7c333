package repositories

import (
	"io/fs"
	"os"
	"path/filepath"

	"autoscale/internal/domain/scalebar"
)

// FileSystemRepository реализация репозитория для работы с файловой системой
type FileSystemRepository struct{}

// NewFileSystemRepository создает новый репозиторий файловой системы
func NewFileSystemRepository() *FileSystemRepository {
	return &FileSystemRepository{}
}

// FileExists проверяет существование файла
func (r *FileSystemRepository) FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// CreateDirectory создает директорию вместе с родительскими
func (r *FileSystemRepository) CreateDirectory(path string) error {
	return os.MkdirAll(path, 0755)
}

// ListImageFiles возвращает файлы, в имени которых встречается одно из расширений.
// Без recursive просматривается только сама директория. Порядок лексический.
func (r *FileSystemRepository) ListImageFiles(directory string, recursive bool, extensions []string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(directory, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == directory {
				return err
			}
			// Недоступные поддиректории пропускаем
			return nil
		}
		if d.IsDir() {
			if path != directory && !recursive {
				return fs.SkipDir
			}
			return nil
		}
		if scalebar.MatchesLoosely(d.Name(), extensions) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

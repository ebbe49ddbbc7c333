package repositories_test

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"autoscale/internal/domain/entities"
	"autoscale/internal/infrastructure/repositories"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}
}

func TestFileSystemRepository_ListImageFiles(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"b.png", "a.tif", "G.PNG", "c.txt", "d.bmp", "sub/e.jpg", "sub/deeper/f.jpeg"} {
		touch(t, filepath.Join(root, filepath.FromSlash(name)))
	}

	repo := repositories.NewFileSystemRepository()

	tests := []struct {
		name      string
		recursive bool
		expected  []string
	}{
		{"Top level only", false, []string{"a.tif", "b.png"}},
		{"Recursive", true, []string{"a.tif", "b.png", "sub/deeper/f.jpeg", "sub/e.jpg"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files, err := repo.ListImageFiles(root, tt.recursive, entities.ScanExtensions)
			if err != nil {
				t.Fatalf("ListImageFiles() error = %v", err)
			}

			expected := make([]string, len(tt.expected))
			for i, name := range tt.expected {
				expected[i] = filepath.Join(root, filepath.FromSlash(name))
			}
			if !reflect.DeepEqual(files, expected) {
				t.Errorf("ListImageFiles() = %v, want %v", files, expected)
			}
		})
	}
}

func TestFileSystemRepository_MissingDirectory(t *testing.T) {
	repo := repositories.NewFileSystemRepository()
	if _, err := repo.ListImageFiles(filepath.Join(t.TempDir(), "missing"), false, entities.ScanExtensions); err == nil {
		t.Error("Expected error for missing directory")
	}
}

func TestFileSystemRepository_CreateDirectory(t *testing.T) {
	repo := repositories.NewFileSystemRepository()
	dir := filepath.Join(t.TempDir(), "a", "b", "c")

	if repo.FileExists(dir) {
		t.Fatal("Directory must not exist yet")
	}
	if err := repo.CreateDirectory(dir); err != nil {
		t.Fatalf("CreateDirectory() error = %v", err)
	}
	if !repo.FileExists(dir) {
		t.Error("Directory must exist after CreateDirectory")
	}
}

func TestSettingsRepository_NewSetting(t *testing.T) {
	repo := repositories.NewSettingsRepository(entities.AnnotationConfig{BarWidth: 25, Unit: "nm", Color: "black"})

	fs := repo.NewSetting("/data/cell_50x.png")
	if fs.Zoom != entities.Zoom50x || fs.BarWidth != 25 || fs.Unit != "nm" || fs.Color != "black" || !fs.Enabled {
		t.Errorf("Unexpected setting: %+v", fs)
	}
}

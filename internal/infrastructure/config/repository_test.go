package config_test

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"autoscale/internal/domain/entities"
	"autoscale/internal/infrastructure/config"
)

func TestRepository_LoadMissingFile(t *testing.T) {
	repo := config.NewRepository("/work")

	cfg, err := repo.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Scanner.InputDirectory != "/work" || cfg.Scanner.OutputDirectory != "/work" {
		t.Errorf("Expected working directory defaults, got %+v", cfg.Scanner)
	}
	if cfg.Annotation.Suffix != "_with_scale" || cfg.Annotation.BarWidth != 50 {
		t.Errorf("Unexpected annotation defaults: %+v", cfg.Annotation)
	}
	if !reflect.DeepEqual(cfg.Scanner.Extensions, entities.ScanExtensions) {
		t.Errorf("Unexpected scan extensions: %v", cfg.Scanner.Extensions)
	}
}

func TestRepository_SaveAndLoad(t *testing.T) {
	repo := config.NewRepository("/work")
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := repo.DefaultConfig()
	cfg.Scanner.InputDirectory = "/data/in"
	cfg.Scanner.OutputDirectory = "/data/out"
	cfg.Scanner.IncludeSubdirectories = true
	cfg.Annotation.Lowercase = true
	cfg.Annotation.Color = "yellow"

	if err := repo.Save(path, cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := repo.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(loaded, cfg) {
		t.Errorf("Round trip mismatch:\n got %+v\nwant %+v", loaded, cfg)
	}
}

func TestRepository_PartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "scanner:\n  input_directory: /data/in\nannotation:\n  bar_width: 20\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.NewRepository("/work").Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Scanner.OutputDirectory != "/data/in" {
		t.Errorf("Output directory must default to input, got %q", cfg.Scanner.OutputDirectory)
	}
	if cfg.Annotation.BarWidth != 20 {
		t.Errorf("Expected bar width 20, got %v", cfg.Annotation.BarWidth)
	}
	if cfg.Annotation.Suffix != "_with_scale" || cfg.Annotation.Unit != "um" {
		t.Errorf("Defaults must survive partial file: %+v", cfg.Annotation)
	}
}

func TestRepository_InvalidFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"Broken YAML", "scanner: [\n"},
		{"Empty suffix", "annotation:\n  suffix: \"\"\n"},
		{"Negative bar", "annotation:\n  bar_width: -1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := config.NewRepository("/work").Load(path); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

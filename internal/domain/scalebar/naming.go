package scalebar

import (
	"path/filepath"
	"strings"

	"autoscale/internal/domain/entities"
)

// NamingOptions параметры построения выходного пути
type NamingOptions struct {
	InputRoot  string
	OutputRoot string
	Suffix     string
	// Extension заменяет расширение исходного файла, если задано
	Extension string
	Lowercase bool
}

// PlanOutputPath строит путь для сохранения изображения с линейкой.
// Если корни различаются, префикс InputRoot в директории файла заменяется на OutputRoot.
// Lowercase переводит в нижний регистр весь путь, включая OutputRoot.
func PlanOutputPath(sourcePath string, opts NamingOptions) string {
	suffix := opts.Suffix
	if suffix == "" {
		suffix = entities.DefaultSuffix
	}

	ext := filepath.Ext(sourcePath)
	stem := strings.TrimSuffix(sourcePath, ext)
	if opts.Extension != "" {
		ext = opts.Extension
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
	}

	if filepath.Clean(opts.InputRoot) != filepath.Clean(opts.OutputRoot) {
		stem = rebase(stem, opts.InputRoot, opts.OutputRoot)
	}

	result := stem + suffix + ext
	if opts.Lowercase {
		result = strings.ToLower(result)
	}
	return result
}

// rebase переносит путь из inputRoot в outputRoot. Пути вне inputRoot не меняются.
func rebase(path, inputRoot, outputRoot string) string {
	rel, err := filepath.Rel(filepath.Clean(inputRoot), path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return filepath.Join(outputRoot, rel)
}

// ShouldSkip решает, нужно ли пропустить файл.
// Суффикс ищется как подстрока в любом месте пути.
func ShouldSkip(path, suffix string, recognized []string) (bool, entities.SkipReason) {
	if !HasExtension(path, recognized) {
		return true, entities.SkipNotImage
	}
	if suffix == "" {
		suffix = entities.DefaultSuffix
	}
	if strings.Contains(path, suffix) {
		return true, entities.SkipAlreadyScaled
	}
	return false, entities.SkipNone
}

// HasExtension проверяет расширение файла без учета регистра
func HasExtension(path string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return false
	}
	for _, candidate := range extensions {
		if ext == normalizeExtension(candidate) {
			return true
		}
	}
	return false
}

// MatchesLoosely повторяет проверку при сканировании: расширение ищется
// как подстрока в имени файла с учетом регистра, поэтому cell.TIF не попадает в список.
func MatchesLoosely(name string, extensions []string) bool {
	for _, candidate := range extensions {
		ext := strings.TrimSpace(candidate)
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		if strings.Contains(name, ext) {
			return true
		}
	}
	return false
}

func normalizeExtension(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// FileLogger реализация логгера на zerolog
type FileLogger struct {
	file   *os.File
	logger zerolog.Logger
}

// NewFileLogger создает новый файловый логгер.
// Если файл больше maxSizeMB, он переименовывается в <имя>.1 перед открытием.
func NewFileLogger(filename, logLevel string, maxSizeMB int, logToFile bool) (*FileLogger, error) {
	if !logToFile {
		return nil, nil
	}

	if err := rotate(filename, maxSizeMB); err != nil {
		return nil, err
	}

	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, err
	}

	return &FileLogger{
		file:   file,
		logger: newLogger(file, logLevel),
	}, nil
}

// NewConsoleLogger пишет читаемый лог в консоль (режим командной строки)
func NewConsoleLogger(out io.Writer, logLevel string) *FileLogger {
	return &FileLogger{
		logger: newLogger(zerolog.ConsoleWriter{Out: out, NoColor: true}, logLevel),
	}
}

func newLogger(w io.Writer, logLevel string) zerolog.Logger {
	return zerolog.New(w).Level(ParseLevel(logLevel)).With().Timestamp().Logger()
}

// ParseLevel переводит уровень из конфигурации в уровень zerolog
func ParseLevel(logLevel string) zerolog.Level {
	switch strings.ToLower(logLevel) {
	case "debug":
		return zerolog.DebugLevel
	case "warning", "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func rotate(filename string, maxSizeMB int) error {
	if maxSizeMB <= 0 {
		return nil
	}
	info, err := os.Stat(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if info.Size() < int64(maxSizeMB)*1024*1024 {
		return nil
	}
	return os.Rename(filename, filename+".1")
}

// Debug логирует отладочное сообщение
func (l *FileLogger) Debug(format string, args ...interface{}) {
	l.logger.Debug().Msgf(format, args...)
}

// Info логирует информационное сообщение
func (l *FileLogger) Info(format string, args ...interface{}) {
	l.logger.Info().Msgf(format, args...)
}

// Warning логирует предупреждение
func (l *FileLogger) Warning(format string, args ...interface{}) {
	l.logger.Warn().Msgf(format, args...)
}

// Error логирует ошибку
func (l *FileLogger) Error(format string, args ...interface{}) {
	l.logger.Error().Msgf(format, args...)
}

// Success логирует успешное выполнение
func (l *FileLogger) Success(format string, args ...interface{}) {
	l.logger.Info().Bool("success", true).Msgf(format, args...)
}

// Close закрывает логгер
func (l *FileLogger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

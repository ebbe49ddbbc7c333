package tui

import (
	"fmt"

	"autoscale/internal/domain/repositories"
)

// LogSink приемник строк журнала в интерфейсе
type LogSink interface {
	AddLog(level, message string)
}

// UILogger дублирует записи в файловый журнал и в панель журнала
type UILogger struct {
	next repositories.Logger
	sink LogSink
}

// NewUILogger создает новый UI логгер. next может быть nil, если журнал в файл отключен.
func NewUILogger(next repositories.Logger, sink LogSink) *UILogger {
	return &UILogger{
		next: next,
		sink: sink,
	}
}

func (l *UILogger) Debug(format string, args ...interface{}) {
	if l.next != nil {
		l.next.Debug(format, args...)
	}
	l.show("DEBUG", format, args)
}

func (l *UILogger) Info(format string, args ...interface{}) {
	if l.next != nil {
		l.next.Info(format, args...)
	}
	l.show("INFO", format, args)
}

func (l *UILogger) Warning(format string, args ...interface{}) {
	if l.next != nil {
		l.next.Warning(format, args...)
	}
	l.show("WARNING", format, args)
}

func (l *UILogger) Error(format string, args ...interface{}) {
	if l.next != nil {
		l.next.Error(format, args...)
	}
	l.show("ERROR", format, args)
}

func (l *UILogger) Success(format string, args ...interface{}) {
	if l.next != nil {
		l.next.Success(format, args...)
	}
	l.show("SUCCESS", format, args)
}

// Close закрывает вложенный логгер
func (l *UILogger) Close() error {
	if l.next != nil {
		return l.next.Close()
	}
	return nil
}

func (l *UILogger) show(level, format string, args []interface{}) {
	if l.sink != nil {
		l.sink.AddLog(level, fmt.Sprintf(format, args...))
	}
}

// Package logger обёртка над zerolog с printf-style интерфейсом,
// который используют все слои сервиса (handlers, usecases, services, clients).
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// Logger пишет структурированные логи через zerolog.
// Пустой путь файла означает вывод в stdout (console writer).
type Logger struct {
	log  zerolog.Logger
	file *os.File
}

// New создает логгер. level: debug | info | warn | error.
func New(filePath, level string) (*Logger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}

	var (
		out io.Writer
		f   *os.File
	)

	if filePath == "" {
		out = zerolog.ConsoleWriter{Out: os.Stdout}
	} else {
		if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
			return nil, fmt.Errorf("logger: create log dir: %w", err)
		}
		f, err = os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("logger: open log file: %w", err)
		}
		out = f
	}

	return &Logger{
		log:  zerolog.New(out).Level(lvl).With().Timestamp().Logger(),
		file: f,
	}, nil
}

// Debug логирует сообщение с уровнем debug.
func (l *Logger) Debug(format string, v ...interface{}) {
	l.log.Debug().Msgf(format, v...)
}

// Info логирует сообщение с уровнем info.
func (l *Logger) Info(format string, v ...interface{}) {
	l.log.Info().Msgf(format, v...)
}

// Warn логирует сообщение с уровнем warn.
func (l *Logger) Warn(format string, v ...interface{}) {
	l.log.Warn().Msgf(format, v...)
}

// Error логирует сообщение с уровнем error.
func (l *Logger) Error(format string, v ...interface{}) {
	l.log.Error().Msgf(format, v...)
}

// Fatal логирует сообщение и завершает процесс с кодом 1.
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.log.Fatal().Msgf(format, v...)
}

// Close закрывает файл логов, если он был открыт.
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

func parseLevel(level string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", "info":
		return zerolog.InfoLevel, nil
	case "debug":
		return zerolog.DebugLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("logger: unknown log level %q", level)
	}
}

package logging

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"treediff/internal/config"
)

// New builds the process logger from config. Output goes to stderr so
// the report confirmation lines on stdout stay clean.
func New(cfg config.Log) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Logger{}, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	writer := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger(), nil
}

package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// New creates a file-backed logger. The TUI owns the terminal, so log
// output goes to a file under the OS temp directory instead of stdout.
func New() (zerolog.Logger, io.Closer, error) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	path := filepath.Join(os.TempDir(), "scrbrd.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, err
	}

	logger := zerolog.New(f).
		With().
		Timestamp().
		Logger().
		Level(zerolog.InfoLevel)

	return logger, f, nil
}

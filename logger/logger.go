package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New builds the process logger. Output is JSON on stdout; set LOG_PRETTY
// for the human-readable console writer during local runs.
func New() zerolog.Logger {
	var w io.Writer = os.Stdout
	if os.Getenv("LOG_PRETTY") != "" {
		w = zerolog.ConsoleWriter{Out: os.Stdout}
	}
	return zerolog.New(w).With().Timestamp().Logger()
}

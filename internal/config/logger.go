package config

import (
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger builds the process logger.
func NewLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          "snake",
		ReportTimestamp: true,
	})
}

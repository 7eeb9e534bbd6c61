// Package logging constructs the zerolog logger used for diagnostics.
//
// All log output goes to stderr so stdout stays reserved for the group
// listing — scripts piping dock-sorter output must never see warnings
// mixed into the data. Partition warnings are emitted at warn level;
// --verbose lowers the threshold to debug.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a console-format logger writing to stderr. When verbose is
// set the level drops to debug, otherwise informational and above.
func New(verbose bool) zerolog.Logger {
	return NewWithWriter(os.Stderr, verbose)
}

// NewWithWriter is New with an explicit destination, used by tests to
// capture output.
func NewWithWriter(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

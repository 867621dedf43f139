// Package logging configures zerolog for the argspec command
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"
)

// LevelFor maps a -v count to a level: 0 warn, 1 info, 2 debug, 3 and above trace
func LevelFor(verbosity int) zerolog.Level {
	switch {
	case verbosity <= 0:
		return zerolog.WarnLevel
	case verbosity == 1:
		return zerolog.InfoLevel
	case verbosity == 2:
		return zerolog.DebugLevel
	}

	return zerolog.TraceLevel
}

// SetupLogger configures the global logger to write to stderr at the level for verbosity
func SetupLogger(verbosity int) {
	zerolog.SetGlobalLevel(LevelFor(verbosity))
	log.Logger = New(os.Stderr, verbosity)
	log.Debug().Int("verbosity", verbosity).Msg("Logger initialized")
}

// New returns a console logger writing to w. Colour is used only when w is a terminal.
func New(w io.Writer, verbosity int) zerolog.Logger {
	console := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.Kitchen,
		NoColor:    !isTerminal(w),
	}
	logger := zerolog.New(console).Level(LevelFor(verbosity)).With().Timestamp().Logger()
	if verbosity >= 2 {
		logger = logger.With().Caller().Logger()
	}

	return logger
}

// GetLogger returns a contextualized logger with the given name
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

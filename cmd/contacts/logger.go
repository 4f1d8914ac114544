package main

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/arjungandhi/contactbook"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// newLogger builds the diagnostic logger. Logs go to errOut and, when a log
// file is configured, to a rotating file as well. The returned closer
// releases the file.
func newLogger(cfg *contactbook.Config, errOut io.Writer) (zerolog.Logger, io.Closer) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.WarnLevel
	}

	console := selectOutput(errOut)
	if cfg.LogFile == "" {
		return zerolog.New(console).Level(level).With().Timestamp().Logger(), nopCloser{}
	}

	lj := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    5,
		MaxBackups: 3,
		MaxAge:     28,
	}
	w := zerolog.MultiLevelWriter(console, lj)
	return zerolog.New(w).Level(level).With().Timestamp().Logger(), lj
}

// selectOutput uses the console writer on a TTY without NO_COLOR and plain
// JSON otherwise.
func selectOutput(errOut io.Writer) io.Writer {
	if f, ok := errOut.(*os.File); ok && term.IsTerminal(int(f.Fd())) && os.Getenv("NO_COLOR") == "" {
		return zerolog.ConsoleWriter{Out: f, TimeFormat: time.Kitchen}
	}
	return errOut
}

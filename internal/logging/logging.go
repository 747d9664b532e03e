// Package logging builds the debug logger. Nothing is written to the
// terminal: the TUI owns it, so logs go to a file or nowhere.
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New returns a logger writing to path at debug level, or a logger that
// discards everything when path is empty. The returned close function
// releases the file.
func New(path string) (*logrus.Logger, func() error, error) {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000",
	})

	if path == "" {
		log.SetOutput(io.Discard)
		log.SetLevel(logrus.PanicLevel)
		return log, func() error { return nil }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	log.SetOutput(f)
	log.SetLevel(logrus.DebugLevel)
	return log, f.Close, nil
}

// Discard returns a logger that drops everything. Used by tests.
func Discard() *logrus.Logger {
	log, _, _ := New("")
	return log
}

package cmd

import (
	"io"

	"github.com/sirupsen/logrus"
)

// newLogger returns a logger writing to stderr. Only warnings are shown
// unless verbose is set.
func newLogger(stderr io.Writer, verbose bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(stderr)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    true,
	})
	logger.SetLevel(logrus.WarnLevel)
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

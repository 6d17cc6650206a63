// Package logger builds the structured logger shared by the CLI and the store.
package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New creates a text logger writing to w.
// The level is Warn, or Debug when debug is set; LOG_LEVEL overrides both.
func New(w io.Writer, debug bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    true,
	})

	log.SetLevel(logrus.WarnLevel)
	if debug {
		log.SetLevel(logrus.DebugLevel)
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		if lvl, err := logrus.ParseLevel(level); err == nil {
			log.SetLevel(lvl)
		}
	}
	return log
}

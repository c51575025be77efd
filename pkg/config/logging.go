package config

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// SetupLogging configures the logrus standard logger from cfg. Logs go to
// stderr, plus the configured file when one is set; stdout is reserved for
// the report lines. It creates the directory for the log file if necessary.
func SetupLogging(cfg *Config) error {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	out := io.Writer(os.Stderr)
	if cfg.LogFile != "" {
		dir := filepath.Dir(cfg.LogFile)
		if dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		out = io.MultiWriter(os.Stderr, f)
	}
	logrus.SetOutput(out)
	return nil
}

// NewLogger returns a logger entry tagged with the component name.
func NewLogger(component string) *logrus.Entry {
	return logrus.WithField("component", component)
}

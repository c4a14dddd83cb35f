package main

import (
	"io"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// newLogger writes to stderr, or to a rotated file when the config names one.
func newLogger(cfg *Config, stderr io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if cfg.LogFile != "" {
		log.SetOutput(&lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    128,
			MaxBackups: 5,
			MaxAge:     16,
		})
	} else {
		log.SetOutput(stderr)
	}

	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	} else {
		log.SetLevel(logrus.WarnLevel)
		log.Warnf("invalid log level %s, defaulting to warn", cfg.LogLevel)
	}
	return log
}

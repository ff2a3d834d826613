package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger. It discards output until Init is called.
var Log = Discard()

// Init configures Log from LOG_LEVEL (default info) and LOG_FORMAT (json or
// text). Call it once from main.
func Init() {
	Log = New(os.Stdout, os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))
}

// New builds a logger writing to out.
func New(out io.Writer, levelName, format string) *logrus.Logger {
	l := logrus.New()

	if levelName == "" {
		levelName = "info"
	}
	level, err := logrus.ParseLevel(levelName)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	if strings.ToLower(format) == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	l.SetOutput(out)
	return l
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Or returns l, or a discarding logger when l is nil.
func Or(l logrus.FieldLogger) logrus.FieldLogger {
	if l == nil {
		return Discard()
	}
	return l
}

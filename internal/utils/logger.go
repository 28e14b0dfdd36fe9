package utils

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

type Logger struct {
	entry *logrus.Entry
}

// NewLogger writes to out, or stdout when out is nil.
func NewLogger(debug bool, jsonFormat bool, out io.Writer) *Logger {
	if out == nil {
		out = os.Stdout
	}

	l := logrus.New()
	l.SetOutput(out)
	if jsonFormat {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	l.SetLevel(logrus.InfoLevel)
	if debug {
		l.SetLevel(logrus.DebugLevel)
	}

	return &Logger{entry: logrus.NewEntry(l)}
}

// With returns a logger that attaches key/value to every line.
func (l *Logger) With(key string, value interface{}) *Logger {
	return &Logger{entry: l.entry.WithField(key, value)}
}

func (l *Logger) Debug(v ...interface{}) {
	l.entry.Debugln(v...)
}

func (l *Logger) Info(v ...interface{}) {
	l.entry.Infoln(v...)
}

func (l *Logger) Warn(v ...interface{}) {
	l.entry.Warnln(v...)
}

func (l *Logger) Error(v ...interface{}) {
	l.entry.Errorln(v...)
}

func (l *Logger) Fatal(v ...interface{}) {
	l.entry.Fatalln(v...)
}

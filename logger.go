package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
)

// logTimeFormat renders as "10/18/26 09:14:02 AM:".
const logTimeFormat = "01/02/06 03:04:05 PM:"

// EventLogger writes timestamped events to the run log.  The file is
// truncated when the logger is created, so it only ever holds the latest run.
type EventLogger struct {
	log  *logrus.Logger
	file io.Closer
	once sync.Once
}

// NewEventLogger creates a logger writing to filePath.  If the directory does
// not exist it will be created.
func NewEventLogger(filePath string) (*EventLogger, error) {
	if dir := filepath.Dir(filePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
	}
	f, err := os.OpenFile(filePath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	el := newEventLogger(f)
	el.file = f
	return el, nil
}

// newEventLogger builds a logger around an arbitrary writer.
func newEventLogger(w io.Writer) *EventLogger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&eventFormatter{})
	return &EventLogger{log: l}
}

// Log writes a single informational event.
func (el *EventLogger) Log(format string, args ...any) {
	el.log.Infof(format, args...)
}

// Error writes a single error event.
func (el *EventLogger) Error(format string, args ...any) {
	el.log.Errorf(format, args...)
}

// Close closes the log file.  Further calls are no-ops.
func (el *EventLogger) Close() error {
	var err error
	el.once.Do(func() {
		if el.file != nil {
			err = el.file.Close()
		}
	})
	return err
}

// eventFormatter produces "<timestamp> LEVEL: message" lines.
type eventFormatter struct{}

func (eventFormatter) Format(e *logrus.Entry) ([]byte, error) {
	level := "INFO"
	switch e.Level {
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		level = "ERROR"
	case logrus.WarnLevel:
		level = "WARNING"
	case logrus.DebugLevel, logrus.TraceLevel:
		level = "DEBUG"
	}
	return []byte(fmt.Sprintf("%s %s: %s\n", e.Time.Format(logTimeFormat), level, e.Message)), nil
}

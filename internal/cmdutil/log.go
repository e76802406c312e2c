// internal/cmdutil/log.go
package cmdutil

import (
	"io"

	"github.com/sirupsen/logrus"
)

// NewLogger returns a text logger on w. quiet keeps warnings and errors
// only; verbose adds debug output. quiet wins when both are set.
func NewLogger(w io.Writer, quiet, verbose bool) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})
	switch {
	case quiet:
		l.SetLevel(logrus.WarnLevel)
	case verbose:
		l.SetLevel(logrus.DebugLevel)
	default:
		l.SetLevel(logrus.InfoLevel)
	}
	return l
}

func Warnf(log logrus.FieldLogger, format string, a ...any) {
	log.Warnf(format, a...)
}

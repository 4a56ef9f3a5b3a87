package logger

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
)

var (
	log           = logrus.New()
	sentryEnabled bool
)

func init() {
	// A library must stay silent unless the integrator opts in.
	log.SetOutput(io.Discard)
	log.SetLevel(logrus.InfoLevel)
	log.SetFormatter(&formatter{})
}

// Fields type, used to pass to WithFields.
type Fields logrus.Fields

// SetOutput directs SDK logs to w. Pass os.Stderr (or any writer) to enable
// logging; the default discards everything.
func SetOutput(w io.Writer) {
	log.SetOutput(w)
}

// SetLogLevel sets the log level for the SDK logger.
func SetLogLevel(level logrus.Level) {
	log.SetLevel(level)
}

// EnableSentry initializes Sentry error reporting for SDK-level errors.
// Intended for integrators who already route their telemetry there.
func EnableSentry(dsn, environment string) error {
	err := sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		Environment:      environment,
		AttachStacktrace: true,
	})
	if err != nil {
		return err
	}
	sentryEnabled = true
	return nil
}

// WithFields returns an entry carrying structured context.
func WithFields(fields Fields) *logrus.Entry {
	return log.WithFields(logrus.Fields(fields))
}

// Debugf logs a message at level Debug.
func Debugf(format string, args ...interface{}) {
	log.Debugf(format, args...)
}

// Infof logs a message at level Info.
func Infof(format string, args ...interface{}) {
	log.Infof(format, args...)
}

// Warnf logs a message at level Warn.
func Warnf(format string, args ...interface{}) {
	log.Warnf(format, args...)
}

// Errorf logs an error message, forwarding it to Sentry when enabled.
func Errorf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if sentryEnabled {
		sentry.CaptureMessage(msg)
	}
	log.Error(msg)
}

// formatter implements logrus.Formatter interface
type formatter struct{}

// Format building log message
func (f *formatter) Format(entry *logrus.Entry) ([]byte, error) {
	var sb bytes.Buffer
	sb.WriteString(strings.ToUpper(entry.Level.String()))
	sb.WriteString(" ")
	sb.WriteString(entry.Time.Format(time.RFC3339))
	sb.WriteString(" ")
	sb.WriteString(entry.Message)

	if len(entry.Data) > 0 {
		sb.WriteString(" [")
		for key, value := range entry.Data {
			sb.WriteString(fmt.Sprintf("%s=%v ", key, value))
		}
		sb.WriteString("]")
	}
	sb.WriteString("\n")

	return sb.Bytes(), nil
}

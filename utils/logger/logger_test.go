package logger

import (
	"bytes"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestLoggerOutput(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(io.Discard)

	t.Run("formatter renders level and message", func(t *testing.T) {
		buf.Reset()
		Infof("upload %s finished", "file-1")

		out := buf.String()
		assert.Contains(t, out, "INFO")
		assert.Contains(t, out, "upload file-1 finished")
	})

	t.Run("fields are appended", func(t *testing.T) {
		buf.Reset()
		WithFields(Fields{"customer_id": "cus-1"}).Warn("slow response")

		out := buf.String()
		assert.Contains(t, out, "WARNING")
		assert.Contains(t, out, "customer_id=cus-1")
	})

	t.Run("debug is silent at the default level", func(t *testing.T) {
		buf.Reset()
		Debugf("noisy detail")
		assert.Empty(t, buf.String())

		SetLogLevel(logrus.DebugLevel)
		defer SetLogLevel(logrus.InfoLevel)

		Debugf("noisy detail")
		assert.Contains(t, buf.String(), "noisy detail")
	})

	t.Run("errors always log", func(t *testing.T) {
		buf.Reset()
		Errorf("request failed: %v", io.ErrUnexpectedEOF)
		assert.Contains(t, buf.String(), "ERROR")
		assert.Contains(t, buf.String(), "unexpected EOF")
	})
}

package logger

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	t.Run("release mode", func(t *testing.T) {
		t.Setenv("GIN_MODE", "release")
		var buf bytes.Buffer
		l := New(&buf, "")
		assert.Equal(t, logrus.InfoLevel, l.GetLevel())
		assert.IsType(t, new(logrus.JSONFormatter), l.Formatter)

		l.Info("hello")
		assert.Contains(t, buf.String(), `"msg":"hello"`)
	})

	t.Run("debug mode", func(t *testing.T) {
		t.Setenv("GIN_MODE", "debug")
		l := New(&bytes.Buffer{}, "")
		assert.Equal(t, logrus.DebugLevel, l.GetLevel())
		assert.IsType(t, new(logrus.TextFormatter), l.Formatter)
	})

	t.Run("explicit level", func(t *testing.T) {
		t.Setenv("GIN_MODE", "release")
		l := New(&bytes.Buffer{}, "warn")
		assert.Equal(t, logrus.WarnLevel, l.GetLevel())
	})

	t.Run("unknown level", func(t *testing.T) {
		t.Setenv("GIN_MODE", "release")
		var buf bytes.Buffer
		l := New(&buf, "loud")
		assert.Equal(t, logrus.InfoLevel, l.GetLevel())
		assert.Contains(t, buf.String(), "unknown log level")
	})
}

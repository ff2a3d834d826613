package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLevelAndFormat(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		wantLevel logrus.Level
	}{
		{"default_info", "", logrus.InfoLevel},
		{"debug", "debug", logrus.DebugLevel},
		{"garbage_falls_back", "loud", logrus.InfoLevel},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := New(&bytes.Buffer{}, tc.level, "")
			assert.Equal(t, tc.wantLevel, l.GetLevel())
		})
	}
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "info", "JSON")
	l.WithField("wave", 3).Info("wave started")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "wave started", line["msg"])
	assert.EqualValues(t, 3, line["wave"])
}

func TestOr(t *testing.T) {
	assert.NotNil(t, Or(nil))
	l := Discard()
	assert.Same(t, l, Or(l))
}

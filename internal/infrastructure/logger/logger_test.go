package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigure_JSON(t *testing.T) {
	var buf bytes.Buffer
	Configure("debug", "json", &buf)
	t.Cleanup(func() { Configure("info", "text", &bytes.Buffer{}) })

	For("physics").Debug("tick")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "physics", entry["component"])
	assert.Equal(t, "tick", entry["msg"])
	assert.Equal(t, "debug", entry["level"])
}

func TestConfigure_DefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	Configure("nonsense", "", &buf)
	t.Cleanup(func() { Configure("info", "text", &bytes.Buffer{}) })

	assert.Equal(t, logrus.InfoLevel, Log.GetLevel())

	For("editor").Debug("hidden")
	assert.Empty(t, buf.String())

	For("editor").Info("shown")
	assert.Contains(t, buf.String(), "component=editor")
}

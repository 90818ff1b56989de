package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitToHonoursEnv(t *testing.T) {
	prev := Log
	t.Cleanup(func() { Log = prev })

	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	var buf bytes.Buffer
	InitTo(&buf)
	assert.Equal(t, logrus.DebugLevel, Log.GetLevel())

	Component("spawner").Debug("source opened")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "spawner", line["component"])
	assert.Equal(t, "source opened", line["msg"])
}

func TestInitToFallsBackToInfo(t *testing.T) {
	prev := Log
	t.Cleanup(func() { Log = prev })

	t.Setenv("LOG_LEVEL", "chatty")
	InitTo(&bytes.Buffer{})
	assert.Equal(t, logrus.InfoLevel, Log.GetLevel())
}

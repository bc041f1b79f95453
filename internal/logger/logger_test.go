package logger

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tatianab/treasure-hunter/internal/config"
)

func TestNewJSONInProduction(t *testing.T) {
	var buf bytes.Buffer
	log, id := WithSession(New(&buf, &config.Config{LogLevel: "info", Environment: "production"}))
	log.Info("game started", "gold", 20)
	log.Debug("hidden")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "game started", rec["msg"])
	assert.Equal(t, id, rec["session"])
	assert.EqualValues(t, 20, rec["gold"])
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
}

func TestNewTextInDevelopment(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, &config.Config{LogLevel: "debug", Environment: "development"})
	log.Debug("entered town", "terrain", "Ocean")

	assert.Contains(t, buf.String(), "msg=\"entered town\"")
	assert.Contains(t, buf.String(), "terrain=Ocean")
}

func TestSetupWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.log")
	log, closer, err := Setup(&config.Config{LogLevel: "info", LogFile: path})
	require.NoError(t, err)
	log.Info("hello")
	require.NoError(t, closer.Close())

	assert.FileExists(t, path)
}

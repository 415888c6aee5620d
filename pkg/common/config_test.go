package common

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"botName: Ferra\nmessageSizeLimit: 400\nplaygroundTimeout: 5000\n",
	), 0644))

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "Ferra", config.GetString("botName"))
	assert.Equal(t, 400, config.GetIntOrDefault("messageSizeLimit", 2000))
	assert.Equal(t, 5*time.Second, config.GetDurationOrDefault("playgroundTimeout", time.Minute))
}

func TestConfigDefaults(t *testing.T) {
	config := NewConfig(nil)
	assert.Equal(t, "fallback", config.GetStringOrDefault("missing", "fallback"))
	assert.Equal(t, 42, config.GetIntOrDefault("missing", 42))
	assert.Equal(t, time.Minute, config.GetDurationOrDefault("missing", time.Minute))
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

package config

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppConfig_Defaults(t *testing.T) {
	cfg, err := NewAppConfig(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "(nemu) ", cfg.GetPrompt())
	assert.False(t, cfg.IsBatch())
	assert.False(t, cfg.IsDeviceEnabled())
	assert.Equal(t, 128<<20, cfg.MemSize)
	assert.Empty(t, cfg.ImagePath)
}

func TestNewAppConfig_FromEnv(t *testing.T) {
	t.Setenv("SDB_BATCH", "true")
	t.Setenv("SDB_DEVICE", "1")
	t.Setenv("SDB_IMAGE", "/tmp/prog.bin")
	t.Setenv("SDB_MEM_SIZE", "4096")
	t.Setenv("SDB_PROMPT", "> ")

	cfg, err := NewAppConfig(context.Background())
	require.NoError(t, err)

	assert.True(t, cfg.IsBatch())
	assert.True(t, cfg.IsDeviceEnabled())
	assert.Equal(t, "/tmp/prog.bin", cfg.ImagePath)
	assert.Equal(t, 4096, cfg.MemSize)
	assert.Equal(t, "> ", cfg.GetPrompt())
}

func TestNewAppConfig_Invalid(t *testing.T) {
	t.Run("not a number", func(t *testing.T) {
		t.Setenv("SDB_MEM_SIZE", "lots")
		_, err := NewAppConfig(context.Background())
		assert.Error(t, err)
	})

	for _, size := range []string{"0", "-4096", "8", "19"} {
		t.Run("too small "+size, func(t *testing.T) {
			t.Setenv("SDB_MEM_SIZE", size)
			_, err := NewAppConfig(context.Background())
			assert.Error(t, err)
		})
	}

	t.Run("smallest accepted", func(t *testing.T) {
		t.Setenv("SDB_MEM_SIZE", "20")
		cfg, err := NewAppConfig(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 20, cfg.MemSize)
	})
}

func TestGetPrompt_EmptyFallsBack(t *testing.T) {
	cfg := AppConfig{}
	assert.Equal(t, "(nemu) ", cfg.GetPrompt())
}

func TestGetRuntimePath(t *testing.T) {
	t.Run("absolute", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("SDB_RUNTIME_PATH", dir)
		assert.Equal(t, dir, GetRuntimePath())
	})

	t.Run("default under config dir", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", dir)
		t.Setenv("SDB_RUNTIME_PATH", "")
		assert.Equal(t, filepath.Join(dir, "sdb"), GetRuntimePath())
	})

	t.Run("relative under config dir", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", dir)
		t.Setenv("SDB_RUNTIME_PATH", "nemu/sdb")
		assert.Equal(t, filepath.Join(dir, "nemu", "sdb"), GetRuntimePath())
	})
}

func TestIsDebug(t *testing.T) {
	for value, want := range map[string]bool{"1": true, "true": true, "": false, "0": false, "yes": false} {
		t.Setenv("SDB_DEBUG", value)
		assert.Equal(t, want, IsDebug(), "SDB_DEBUG=%q", value)
	}
}

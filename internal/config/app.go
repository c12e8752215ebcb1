package config

import (
	"context"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/sdb/internal/core"
	"github.com/sandevgo/sdb/internal/sim"
	"github.com/sandevgo/sdb/pkg/log"
)

type AppConfig struct {
	RuntimePath string `env:"SDB_RUNTIME_PATH" envDefault:"sdb"`
	Prompt      string `env:"SDB_PROMPT"`

	// Session
	Batch bool `env:"SDB_BATCH" envDefault:"false"`

	// Simulator
	ImagePath    string `env:"SDB_IMAGE"`
	MemSize      int    `env:"SDB_MEM_SIZE" envDefault:"134217728"`
	EnableDevice bool   `env:"SDB_DEVICE" envDefault:"false"`
}

func NewAppConfig(ctx context.Context) (*AppConfig, error) {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		return nil, fmt.Errorf("failed to parse App config: %w", err)
	}
	if err := ValidateMemSize(c.MemSize); err != nil {
		return nil, err
	}
	log.FromCtx(ctx).Debug().
		Bool("batch", c.Batch).
		Str("image", c.ImagePath).
		Int("mem_size", c.MemSize).
		Bool("device", c.EnableDevice).
		Msg("loaded config")
	return c, nil
}

// ValidateMemSize rejects guest memory too small for the built-in image.
func ValidateMemSize(size int) error {
	if size < sim.MinMemSize {
		return fmt.Errorf("memory size must be at least %d bytes, got %d", sim.MinMemSize, size)
	}
	return nil
}

func (c AppConfig) GetPrompt() string {
	if c.Prompt == "" {
		return core.SdbPrompt
	}
	return c.Prompt
}

func (c AppConfig) GetRuntimePath() string {
	return c.RuntimePath
}

func (c AppConfig) IsBatch() bool {
	return c.Batch
}

func (c AppConfig) IsDeviceEnabled() bool {
	return c.EnableDevice
}

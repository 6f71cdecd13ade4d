package app

import (
	"testing"

	"github.com/fosdem/twotri/lib/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.GL = config.GLCfg{Major: 4, Minor: 1}
	return cfg
}

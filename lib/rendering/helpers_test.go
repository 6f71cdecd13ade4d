package rendering_test

import "github.com/fosdem/twotri/lib/config"

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.GL = config.GLCfg{Major: 4, Minor: 1}
	return cfg
}

package main

import (
	"flag"
	"log/slog"
	"os"
	"runtime"

	"github.com/fosdem/twotri/lib/app"
	"github.com/fosdem/twotri/lib/config"
	"github.com/fosdem/twotri/lib/log"
)

func init() {
	// The OpenGL stuff must be in one thread
	runtime.LockOSThread()
}

func main() {
	configPtr := flag.String("config", "", "YAML config file (built-in defaults when empty)")
	debugPtr := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	log.Setup(*debugPtr)

	cfg := config.Default()
	if *configPtr != "" {
		var err error
		cfg, err = config.Parse(*configPtr)
		if err != nil {
			slog.Error("invalid config", "err", err)
			os.Exit(1)
		}
	}

	err := app.Run(cfg)
	if err != nil {
		slog.Error("exiting", "err", err)
		os.Exit(1)
	}
}

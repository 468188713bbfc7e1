// Package main is the entry point for the ImGui rotation workbench.
package main

import (
	"fmt"
	"os"
	"runtime"

	"go.uber.org/zap"

	"github.com/Faultbox/quatviz/internal/app"
	"github.com/Faultbox/quatviz/internal/config"
	"github.com/Faultbox/quatviz/internal/logger"
)

func init() {
	// SDL and OpenGL calls must stay on the main thread
	runtime.LockOSThread()
}

func main() {
	flags := config.ParseFlags()

	cfg, err := config.Load(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== quatviz workbench ===")

	wb, err := app.NewWorkbench(cfg)
	if err != nil {
		logger.Error("failed to create workbench", zap.Error(err))
		os.Exit(1)
	}
	wb.Run()

	logger.Info("workbench closed normally")
}

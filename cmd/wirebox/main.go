// Package main is the entry point for the wirebox viewer.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/wirebox/internal/config"
	"github.com/Faultbox/wirebox/internal/engine/camera"
	"github.com/Faultbox/wirebox/internal/logger"
	"github.com/Faultbox/wirebox/internal/viewer"
	"github.com/Faultbox/wirebox/pkg/geom"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== wirebox ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	v, err := viewer.New(viewer.Config{
		Title:    "wirebox",
		Width:    cfg.Graphics.Width,
		Height:   cfg.Graphics.Height,
		VSync:    cfg.Graphics.VSync,
		HalfA:    cfg.Cuboid.HalfA,
		HalfB:    cfg.Cuboid.HalfB,
		HalfC:    cfg.Cuboid.HalfC,
		ShowAxis: cfg.Cuboid.ShowAxis,
		Camera: camera.Config{
			Origin: geom.Vec3{
				X: cfg.Camera.Origin[0],
				Y: cfg.Camera.Origin[1],
				Z: cfg.Camera.Origin[2],
			},
			DragSensitivity: cfg.Camera.DragSensitivity,
			ZoomSensitivity: cfg.Camera.ZoomSensitivity,
			MinScale:        cfg.Camera.MinZoom,
			MaxScale:        cfg.Camera.MaxZoom,
		},
	})
	if err != nil {
		logger.Error("failed to create viewer", zap.Error(err))
		os.Exit(1)
	}
	defer v.Close()

	if err := v.Run(); err != nil {
		logger.Error("viewer error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("viewer closed normally")
}

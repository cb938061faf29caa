//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"quarkcube/app"
	"quarkcube/hal"
	"quarkcube/quark"
	"quarkcube/tasks/spincube"
)

func main() {
	var (
		headless   hal.HeadlessConfig
		host       hal.HostConfig
		modeName   string
		projName   string
		formatName string
		fov        float64
		fps        int
		hud        bool
		verbose    bool
	)
	flag.StringVar(&modeName, "mode", "mesh", "Geometry: mesh (cube vertices) or points (9x9x9 cloud).")
	flag.StringVar(&projName, "projection", "", "Projection: perspective or orthographic (default depends on -mode).")
	flag.Float64Var(&fov, "fov", 0, "Projection scale factor (default depends on -mode).")
	flag.IntVar(&fps, "fps", spincube.DefaultFPS, "Frame rate cap.")
	flag.IntVar(&host.Width, "width", hal.DefaultWidth, "Framebuffer width in pixels.")
	flag.IntVar(&host.Height, "height", hal.DefaultHeight, "Framebuffer height in pixels.")
	flag.IntVar(&host.Scale, "scale", 1, "Window scale factor.")
	flag.StringVar(&formatName, "format", "argb8888", "Framebuffer pixel format: argb8888 or rgb565.")
	flag.BoolVar(&headless.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&headless.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&headless.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.BoolVar(&hud, "hud", false, "Show the HUD overlay (toggle with F1).")
	flag.BoolVar(&verbose, "v", false, "Log pipeline diagnostics to stderr.")
	flag.Parse()

	if verbose {
		quark.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	cfg, err := pipelineConfig(modeName, projName, fov, fps)
	if err != nil {
		fail(err)
	}
	switch formatName {
	case "argb8888", "argb":
		host.Format = hal.PixelFormatARGB8888
	case "rgb565":
		host.Format = hal.PixelFormatRGB565
	default:
		fail(fmt.Errorf("unknown pixel format %q", formatName))
	}
	host.TPS = cfg.FPS

	newApp := func(h hal.HAL) func() error {
		return app.NewWithConfig(h, app.Config{Pipeline: cfg, HUD: hud})
	}

	if headless.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, host, newApp, headless); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fail(err)
		}
		return
	}

	if err := hal.RunWindow(host, newApp); err != nil {
		fail(err)
	}
}

func pipelineConfig(modeName, projName string, fov float64, fps int) (spincube.Config, error) {
	mode, err := spincube.ParseMode(modeName)
	if err != nil {
		return spincube.Config{}, err
	}
	cfg := spincube.DefaultConfig(mode)
	if projName != "" {
		if cfg.Projection, err = quark.ParseProjectionMode(projName); err != nil {
			return spincube.Config{}, err
		}
	}
	if fov != 0 {
		cfg.FOV = fov
	}
	cfg.FPS = fps
	return cfg, cfg.Validate()
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

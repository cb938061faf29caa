//go:build tinygo

package main

import (
	"quarkcube/app"
	"quarkcube/hal"
	"quarkcube/tasks/spincube"
)

func main() {
	// 320x320 RGB565 panel: the point cloud fits the screen at the default FOV.
	app.RunWithConfig(hal.New(), app.Config{Pipeline: spincube.DefaultConfig(spincube.ModePoints)})
}

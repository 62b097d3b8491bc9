// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Command vkinfo prints the Vulkan instance extensions, layers and
// physical devices available on the host. It takes no arguments, see
// core.LoadConfiguration for the environment it reads.
package main

import (
	"os"
	"runtime"

	"github.com/devblok/vkinfo/core"
	"github.com/devblok/vkinfo/device"
	"github.com/devblok/vkinfo/device/vulkan"
	"github.com/devblok/vkinfo/window"
	"github.com/devblok/vkinfo/window/glfw"
	"github.com/devblok/vkinfo/window/sdl"
)

func init() {
	runtime.LockOSThread()
}

func newWindowing(name string) device.Windowing {
	switch name {
	case window.SDL:
		return sdl.New()
	case window.Headless:
		return window.NewHeadless()
	default:
		return glfw.New()
	}
}

func main() {
	cfg, err := core.LoadConfiguration()
	if err != nil {
		core.NewLogger(core.DefaultConfiguration, os.Stderr).Error(err)
		os.Exit(core.ExitFailure)
	}
	log := core.NewLogger(cfg, os.Stderr)

	win := newWindowing(cfg.Windowing)
	os.Exit(core.Run(cfg, win, vulkan.NewRuntime(win), os.Stdout, log))
}

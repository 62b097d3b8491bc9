// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package sdl provides the SDL2 windowing session.
// Init and Terminate must be called from the main thread.
package sdl

import (
	"errors"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"
)

// New creates an SDL session that is not yet initialised
func New() *Windowing {
	return &Windowing{}
}

// Windowing is the SDL library session with its Vulkan loader
type Windowing struct {
	initialised  bool
	vulkanLoaded bool
}

// Name implements interface
func (w *Windowing) Name() string {
	return "SDL"
}

// Init implements interface
func (w *Windowing) Init() error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return errors.New("sdl.Init(): " + err.Error())
	}
	w.initialised = true

	if err := sdl.VulkanLoadLibrary(""); err != nil {
		return errors.New("sdl.VulkanLoadLibrary(): " + err.Error())
	}
	w.vulkanLoaded = true
	return nil
}

// RequiredInstanceExtensions implements interface
func (w *Windowing) RequiredInstanceExtensions(count *uint32, names []string) {
	if !w.vulkanLoaded {
		*count = 0
		return
	}
	// SDL ignores the window since 2.0.8
	var window *sdl.Window
	required := window.VulkanGetInstanceExtensions()
	if names == nil {
		*count = uint32(len(required))
		return
	}
	*count = uint32(copy(names, required))
}

// ProcAddr implements interface
func (w *Windowing) ProcAddr() unsafe.Pointer {
	if !w.vulkanLoaded {
		return nil
	}
	return sdl.VulkanGetVkGetInstanceProcAddr()
}

// Terminate implements interface
func (w *Windowing) Terminate() {
	if w.vulkanLoaded {
		sdl.VulkanUnloadLibrary()
		w.vulkanLoaded = false
	}
	if w.initialised {
		sdl.Quit()
		w.initialised = false
	}
}

// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package glfw provides the GLFW windowing session.
// Init and Terminate must be called from the main thread.
package glfw

import (
	"errors"
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// New creates a GLFW session that is not yet initialised
func New() *Windowing {
	return &Windowing{}
}

// Windowing is the GLFW library session. No window is ever created,
// GLFW answers the extension query without one.
type Windowing struct {
	initialised bool
}

// Name implements interface
func (w *Windowing) Name() string {
	return "GLFW"
}

// Init implements interface
func (w *Windowing) Init() error {
	if err := glfw.Init(); err != nil {
		return errors.New("glfw.Init(): " + err.Error())
	}
	w.initialised = true
	if !glfw.VulkanSupported() {
		return errors.New("glfw.VulkanSupported(): no Vulkan loader found")
	}
	return nil
}

// RequiredInstanceExtensions implements interface
func (w *Windowing) RequiredInstanceExtensions(count *uint32, names []string) {
	if !w.initialised {
		*count = 0
		return
	}
	var window *glfw.Window
	required := window.GetRequiredInstanceExtensions()
	if names == nil {
		*count = uint32(len(required))
		return
	}
	*count = uint32(copy(names, required))
}

// ProcAddr implements interface
func (w *Windowing) ProcAddr() unsafe.Pointer {
	if !w.initialised {
		return nil
	}
	return glfw.GetVulkanGetInstanceProcAddress()
}

// Terminate implements interface
func (w *Windowing) Terminate() {
	glfw.Terminate()
	w.initialised = false
}

// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package window holds the windowing library backends. Backends that link
// a C library live in their own subpackages, glfw and sdl.
package window

import "unsafe"

// Backend names as used in configuration
const (
	GLFW     = "glfw"
	SDL      = "sdl"
	Headless = "headless"
)

// NewHeadless creates a windowing session without any library behind it.
// It requires no instance extensions and lets the runtime load its
// default loader.
func NewHeadless() *HeadlessWindowing {
	return &HeadlessWindowing{}
}

// HeadlessWindowing is used on hosts without a display
type HeadlessWindowing struct{}

// Name implements interface
func (h *HeadlessWindowing) Name() string {
	return "HEADLESS"
}

// Init implements interface
func (h *HeadlessWindowing) Init() error {
	return nil
}

// RequiredInstanceExtensions implements interface
func (h *HeadlessWindowing) RequiredInstanceExtensions(count *uint32, names []string) {
	*count = 0
}

// ProcAddr implements interface
func (h *HeadlessWindowing) ProcAddr() unsafe.Pointer {
	return nil
}

// Terminate implements interface
func (h *HeadlessWindowing) Terminate() {}

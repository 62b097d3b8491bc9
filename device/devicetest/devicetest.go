// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package devicetest provides deterministic stand-ins for the windowing
// library and the graphics runtime. Every call is appended to a shared
// Calls log so tests can check ordering and buffer sizes.
package devicetest

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/devblok/vkinfo/device"
)

// ErrCreateInstance is returned by CreateInstance when the runtime is set to fail
var ErrCreateInstance = errors.New("VK_ERROR_INCOMPATIBLE_DRIVER")

// Calls is an ordered log of calls into the mocks.
// Fetch calls are logged with the destination length, count
// calls with "nil".
type Calls []string

// Count returns how many times call was logged
func (c Calls) Count(call string) int {
	var n int
	for _, v := range c {
		if v == call {
			n++
		}
	}
	return n
}

// Index returns the position of the first logged call, or -1
func (c Calls) Index(call string) int {
	for i, v := range c {
		if v == call {
			return i
		}
	}
	return -1
}

func (c *Calls) add(format string, args ...interface{}) {
	*c = append(*c, fmt.Sprintf(format, args...))
}

func dstLen(isNil bool, n int) string {
	if isNil {
		return "nil"
	}
	return fmt.Sprint(n)
}

// fill is the runtime side of a count/fetch query over a fixed slice
func fill[T any](src []T, count *uint32, dst []T) {
	if dst == nil {
		*count = uint32(len(src))
		return
	}
	*count = uint32(copy(dst, src))
}

// Windowing is a mock windowing library
type Windowing struct {
	LibraryName string
	Required    []string
	InitErr     error
	Log         *Calls
}

// Name implements interface
func (w *Windowing) Name() string {
	if w.LibraryName == "" {
		return "MOCK"
	}
	return w.LibraryName
}

// Init implements interface
func (w *Windowing) Init() error {
	w.Log.add("windowing.Init")
	return w.InitErr
}

// RequiredInstanceExtensions implements interface
func (w *Windowing) RequiredInstanceExtensions(count *uint32, names []string) {
	w.Log.add("windowing.RequiredInstanceExtensions(%s)", dstLen(names == nil, len(names)))
	fill(w.Required, count, names)
}

// ProcAddr implements interface
func (w *Windowing) ProcAddr() unsafe.Pointer {
	return nil
}

// Terminate implements interface
func (w *Windowing) Terminate() {
	w.Log.add("windowing.Terminate")
}

// Device is a mock physical device
type Device struct {
	Props      device.DeviceProperties
	Extensions []device.ExtensionRecord
	Log        *Calls
}

// Properties implements interface
func (d *Device) Properties() device.DeviceProperties {
	d.Log.add("device(%s).Properties", d.Props.Name)
	return d.Props
}

// EnumerateExtensions implements interface
func (d *Device) EnumerateExtensions(count *uint32, extensions []device.ExtensionRecord) {
	d.Log.add("device(%s).EnumerateExtensions(%s)", d.Props.Name, dstLen(extensions == nil, len(extensions)))
	fill(d.Extensions, count, extensions)
}

// Runtime is a mock graphics runtime. Its instance sees Devices.
type Runtime struct {
	Extensions []device.ExtensionRecord
	Layers     []device.LayerRecord
	Devices    []*Device
	FailCreate bool
	Log        *Calls

	// CreatedWith holds the extensions the last CreateInstance was given
	CreatedWith []string
}

// CreateInstance implements interface
func (r *Runtime) CreateInstance(app device.ApplicationDescriptor, extensions []string) (device.Instance, error) {
	r.Log.add("runtime.CreateInstance")
	r.CreatedWith = extensions
	if r.FailCreate {
		return nil, ErrCreateInstance
	}
	return &Instance{runtime: r}, nil
}

// EnumerateInstanceExtensions implements interface
func (r *Runtime) EnumerateInstanceExtensions(count *uint32, extensions []device.ExtensionRecord) {
	r.Log.add("runtime.EnumerateInstanceExtensions(%s)", dstLen(extensions == nil, len(extensions)))
	fill(r.Extensions, count, extensions)
}

// EnumerateInstanceLayers implements interface
func (r *Runtime) EnumerateInstanceLayers(count *uint32, layers []device.LayerRecord) {
	r.Log.add("runtime.EnumerateInstanceLayers(%s)", dstLen(layers == nil, len(layers)))
	fill(r.Layers, count, layers)
}

// Instance is the mock instance handed out by Runtime
type Instance struct {
	runtime *Runtime
}

// EnumeratePhysicalDevices implements interface
func (i *Instance) EnumeratePhysicalDevices(count *uint32, devices []device.PhysicalDevice) {
	i.runtime.Log.add("instance.EnumeratePhysicalDevices(%s)", dstLen(devices == nil, len(devices)))
	src := make([]device.PhysicalDevice, len(i.runtime.Devices))
	for idx, d := range i.runtime.Devices {
		src[idx] = d
	}
	fill(src, count, devices)
}

// Destroy implements interface
func (i *Instance) Destroy() {
	i.runtime.Log.add("instance.Destroy")
}

// New returns a windowing library and runtime sharing one call log.
// Devices added to the runtime afterwards should use the same log.
func New() (*Windowing, *Runtime, *Calls) {
	log := &Calls{}
	return &Windowing{Log: log}, &Runtime{Log: log}, log
}

// AddDevice appends a device to the runtime, logging into the runtime's log
func (r *Runtime) AddDevice(props device.DeviceProperties, extensions ...device.ExtensionRecord) *Device {
	d := &Device{
		Props:      props,
		Extensions: extensions,
		Log:        r.Log,
	}
	r.Devices = append(r.Devices, d)
	return d
}

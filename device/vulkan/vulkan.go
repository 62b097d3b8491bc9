// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package vulkan implements device.Runtime over the Vulkan loader.
package vulkan

import (
	"errors"
	"unsafe"

	vk "github.com/devblok/vulkan"

	"github.com/devblok/vkinfo/device"
)

// ProcAddrSource resolves vkGetInstanceProcAddr, usually the windowing library
type ProcAddrSource interface {
	ProcAddr() unsafe.Pointer
}

// NewRuntime creates a runtime that loads Vulkan lazily through src.
// The loader can only be set up once the windowing library is initialised.
func NewRuntime(src ProcAddrSource) *Runtime {
	return &Runtime{
		source: src,
	}
}

// Runtime is the Vulkan loader
type Runtime struct {
	source ProcAddrSource
	loaded bool
}

func (r *Runtime) load() error {
	if r.loaded {
		return nil
	}

	if procAddr := r.source.ProcAddr(); procAddr == nil {
		if err := vk.SetDefaultGetInstanceProcAddr(); err != nil {
			return errors.New("vk.SetDefaultGetInstanceProcAddr(): " + err.Error())
		}
	} else {
		vk.SetGetInstanceProcAddr(procAddr)
	}

	if err := vk.Init(); err != nil {
		return errors.New("vk.Init(): " + err.Error())
	}
	r.loaded = true
	return nil
}

// CreateInstance implements interface
func (r *Runtime) CreateInstance(app device.ApplicationDescriptor, extensions []string) (device.Instance, error) {
	if err := r.load(); err != nil {
		return nil, err
	}

	appInfo := vk.ApplicationInfo{
		SType:              vk.StructureTypeApplicationInfo,
		PApplicationName:   safeString(app.Name),
		ApplicationVersion: app.ApplicationVersion,
		PEngineName:        safeString(app.EngineName),
		EngineVersion:      app.EngineVersion,
		ApiVersion:         app.APIVersion,
	}

	instanceInfo := vk.InstanceCreateInfo{
		SType:                   vk.StructureTypeInstanceCreateInfo,
		PApplicationInfo:        &appInfo,
		EnabledExtensionCount:   uint32(len(extensions)),
		PpEnabledExtensionNames: safeStrings(extensions),
	}

	var instance vk.Instance
	if err := vk.Error(vk.CreateInstance(&instanceInfo, nil, &instance)); err != nil {
		return nil, errors.New("vk.CreateInstance(): " + err.Error())
	}
	if err := vk.InitInstance(instance); err != nil {
		vk.DestroyInstance(instance, nil)
		return nil, errors.New("vk.InitInstance(): " + err.Error())
	}

	return &Instance{
		instance: instance,
	}, nil
}

// EnumerateInstanceExtensions implements interface
func (r *Runtime) EnumerateInstanceExtensions(count *uint32, extensions []device.ExtensionRecord) {
	if r.load() != nil {
		*count = 0
		return
	}
	if extensions == nil {
		vk.EnumerateInstanceExtensionProperties("", count, nil)
		return
	}
	props := make([]vk.ExtensionProperties, len(extensions))
	vk.EnumerateInstanceExtensionProperties("", count, props)
	copyExtensions(extensions, props, *count)
}

// EnumerateInstanceLayers implements interface
func (r *Runtime) EnumerateInstanceLayers(count *uint32, layers []device.LayerRecord) {
	if r.load() != nil {
		*count = 0
		return
	}
	if layers == nil {
		vk.EnumerateInstanceLayerProperties(count, nil)
		return
	}
	props := make([]vk.LayerProperties, len(layers))
	vk.EnumerateInstanceLayerProperties(count, props)
	for i := uint32(0); i < *count && int(i) < len(props); i++ {
		props[i].Deref()
		layers[i] = device.LayerRecord{
			Name:                  vk.ToString(props[i].LayerName[:]),
			SpecVersion:           props[i].SpecVersion,
			ImplementationVersion: props[i].ImplementationVersion,
			Description:           vk.ToString(props[i].Description[:]),
		}
	}
}

// Instance is a Vulkan instance
type Instance struct {
	instance vk.Instance
}

// EnumeratePhysicalDevices implements interface
func (v *Instance) EnumeratePhysicalDevices(count *uint32, devices []device.PhysicalDevice) {
	if devices == nil {
		vk.EnumeratePhysicalDevices(v.instance, count, nil)
		return
	}
	handles := make([]vk.PhysicalDevice, len(devices))
	vk.EnumeratePhysicalDevices(v.instance, count, handles)
	for i := uint32(0); i < *count && int(i) < len(handles); i++ {
		devices[i] = PhysicalDevice{handle: handles[i]}
	}
}

// Destroy implements interface
func (v *Instance) Destroy() {
	if v == nil {
		return
	}
	vk.DestroyInstance(v.instance, nil)
}

// PhysicalDevice is a Vulkan physical device handle
type PhysicalDevice struct {
	handle vk.PhysicalDevice
}

// Properties implements interface
func (pd PhysicalDevice) Properties() device.DeviceProperties {
	var props vk.PhysicalDeviceProperties
	vk.GetPhysicalDeviceProperties(pd.handle, &props)
	props.Deref()
	return device.DeviceProperties{
		Name:          vk.ToString(props.DeviceName[:]),
		APIVersion:    props.ApiVersion,
		DriverVersion: props.DriverVersion,
		VendorID:      props.VendorID,
		DeviceID:      props.DeviceID,
		Type:          device.Type(props.DeviceType),
	}
}

// EnumerateExtensions implements interface
func (pd PhysicalDevice) EnumerateExtensions(count *uint32, extensions []device.ExtensionRecord) {
	if extensions == nil {
		vk.EnumerateDeviceExtensionProperties(pd.handle, "", count, nil)
		return
	}
	props := make([]vk.ExtensionProperties, len(extensions))
	vk.EnumerateDeviceExtensionProperties(pd.handle, "", count, props)
	copyExtensions(extensions, props, *count)
}

func copyExtensions(dst []device.ExtensionRecord, props []vk.ExtensionProperties, count uint32) {
	for i := uint32(0); i < count && int(i) < len(props); i++ {
		props[i].Deref()
		dst[i] = device.ExtensionRecord{
			Name:        vk.ToString(props[i].ExtensionName[:]),
			SpecVersion: props[i].SpecVersion,
		}
	}
}

func safeString(s string) string {
	return s + "\x00"
}

func safeStrings(sgs []string) []string {
	safe := make([]string, 0, len(sgs))
	for _, s := range sgs {
		safe = append(safe, safeString(s))
	}
	return safe
}

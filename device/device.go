// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package device describes what a Vulkan runtime reports about the host:
// instance extensions and layers, physical devices and their extensions.
// Real runtimes and windowing libraries are reached through the Runtime and
// Windowing interfaces, so everything here can run against a mock.
package device

import "unsafe"

// ApplicationDescriptor is handed to the runtime on instance creation.
type ApplicationDescriptor struct {
	Name               string
	ApplicationVersion uint32
	EngineName         string
	EngineVersion      uint32
	APIVersion         uint32
}

// DefaultApplication describes vkinfo itself
var DefaultApplication = ApplicationDescriptor{
	Name:               "vkinfo",
	ApplicationVersion: MakeVersion(1, 0, 0),
	EngineName:         "No Engine",
	EngineVersion:      MakeVersion(1, 0, 0),
	APIVersion:         MakeVersion(1, 0, 0),
}

// MakeVersion packs a version the way VK_MAKE_VERSION does.
func MakeVersion(major, minor, patch uint32) uint32 {
	return major<<22 | minor<<12 | patch
}

// ExtensionRecord is a named optional capability with its spec version.
// Instance and device extensions share it.
type ExtensionRecord struct {
	Name        string `json:"name"`
	SpecVersion uint32 `json:"specVersion"`
}

// LayerRecord describes an instance layer
type LayerRecord struct {
	Name                  string `json:"name"`
	SpecVersion           uint32 `json:"specVersion"`
	ImplementationVersion uint32 `json:"implementationVersion"`
	Description           string `json:"description"`
}

// DeviceProperties are the identifying properties of a physical device
type DeviceProperties struct {
	Name          string `json:"name"`
	APIVersion    uint32 `json:"apiVersion"`
	DriverVersion uint32 `json:"driverVersion"`
	VendorID      uint32 `json:"vendorId"`
	DeviceID      uint32 `json:"deviceId"`
	Type          Type   `json:"deviceType"`
}

// PhysicalDeviceRecord is one device as reported by the runtime,
// along with the extensions queried for that device only.
type PhysicalDeviceRecord struct {
	DeviceProperties
	Extensions []ExtensionRecord `json:"extensions"`
}

// Windowing describes the windowing library session that declares
// which instance extensions it needs.
type Windowing interface {
	// Name is how the library is called in the report
	Name() string

	// Init initialises the library
	Init() error

	// RequiredInstanceExtensions is the count/fetch query for
	// the instance extensions the library requires.
	RequiredInstanceExtensions(count *uint32, names []string)

	// ProcAddr returns the vkGetInstanceProcAddr the library resolved,
	// or nil when the runtime should load its default one.
	ProcAddr() unsafe.Pointer

	// Terminate releases the library
	Terminate()
}

// Runtime describes the graphics runtime before an instance exists.
type Runtime interface {
	// CreateInstance creates the runtime's top level instance
	CreateInstance(app ApplicationDescriptor, extensions []string) (Instance, error)

	// EnumerateInstanceExtensions is the count/fetch query for instance extensions
	EnumerateInstanceExtensions(count *uint32, extensions []ExtensionRecord)

	// EnumerateInstanceLayers is the count/fetch query for instance layers
	EnumerateInstanceLayers(count *uint32, layers []LayerRecord)
}

// Instance is a live runtime instance
type Instance interface {
	// EnumeratePhysicalDevices is the count/fetch query for devices
	EnumeratePhysicalDevices(count *uint32, devices []PhysicalDevice)

	// Destroy releases the instance
	Destroy()
}

// PhysicalDevice is a handle to a device the instance can see
type PhysicalDevice interface {
	// Properties returns identifying properties of the device
	Properties() DeviceProperties

	// EnumerateExtensions is the count/fetch query for device extensions
	EnumerateExtensions(count *uint32, extensions []ExtensionRecord)
}

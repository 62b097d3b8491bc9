// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package device

// Query is a runtime count/fetch entry point. Called with a nil
// destination it stores the element count, otherwise it fills
// the destination and stores how many elements it wrote.
type Query[T any] func(count *uint32, dst []T)

// Enumerate runs the two-phase query: count first, then fetch into a
// buffer of exactly that many elements. Zero count returns nil without
// allocating. The runtime is trusted to report the same count twice;
// a shorter fetch truncates the result, nothing is ever retried.
func Enumerate[T any](query Query[T]) []T {
	var count uint32
	query(&count, nil)
	if count == 0 {
		return nil
	}

	buf := make([]T, count)
	query(&count, buf)
	if int(count) < len(buf) {
		buf = buf[:count]
	}
	return buf
}

// RequiredExtensions lists instance extensions the windowing library needs
func RequiredExtensions(w Windowing) []string {
	return Enumerate(w.RequiredInstanceExtensions)
}

// InstanceExtensions lists instance extensions offered by the runtime
func InstanceExtensions(rt Runtime) []ExtensionRecord {
	return Enumerate(rt.EnumerateInstanceExtensions)
}

// InstanceLayers lists instance layers offered by the runtime
func InstanceLayers(rt Runtime) []LayerRecord {
	return Enumerate(rt.EnumerateInstanceLayers)
}

// PhysicalDevices lists the devices visible to the instance
func PhysicalDevices(instance Instance) []PhysicalDevice {
	return Enumerate(instance.EnumeratePhysicalDevices)
}

// DescribeDevice reads the device properties and queries
// the extensions of that one device.
func DescribeDevice(pd PhysicalDevice) PhysicalDeviceRecord {
	return PhysicalDeviceRecord{
		DeviceProperties: pd.Properties(),
		Extensions:       Enumerate(pd.EnumerateExtensions),
	}
}

// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package device

import "strconv"

// Type is the runtime's physical device type code
type Type int32

// Known device types, numbered as VkPhysicalDeviceType
const (
	TypeOther Type = iota
	TypeIntegratedGPU
	TypeDiscreteGPU
	TypeVirtualGPU
	TypeCPU
)

// UnknownLabel is the label of any code outside the known table
const UnknownLabel = "unknown"

var typeLabels = [...]string{
	TypeOther:         "other",
	TypeIntegratedGPU: "integrated GPU",
	TypeDiscreteGPU:   "discrete GPU",
	TypeVirtualGPU:    "virtual GPU",
	TypeCPU:           "CPU",
}

// Label classifies the device type.
func (t Type) Label() string {
	if t < 0 || int(t) >= len(typeLabels) {
		return UnknownLabel
	}
	return typeLabels[t]
}

// String renders the raw code next to its label
func (t Type) String() string {
	return strconv.Itoa(int(t)) + " (" + t.Label() + ")"
}

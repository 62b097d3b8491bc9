// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package report

import (
	"encoding/json"
	"io"

	"github.com/devblok/vkinfo/device"
)

// Inventory is the whole snapshot as a single document, for machine use
type Inventory struct {
	Windowing          string                        `json:"windowing"`
	RequiredExtensions []string                      `json:"requiredExtensions"`
	InstanceExtensions []device.ExtensionRecord      `json:"instanceExtensions"`
	Layers             []device.LayerRecord          `json:"layers"`
	Devices            []device.PhysicalDeviceRecord `json:"devices"`
}

// Encode writes the inventory as indented JSON. Empty collections
// are written as empty arrays, never null.
func (inv Inventory) Encode(w io.Writer) error {
	out := inv
	if out.RequiredExtensions == nil {
		out.RequiredExtensions = []string{}
	}
	if out.InstanceExtensions == nil {
		out.InstanceExtensions = []device.ExtensionRecord{}
	}
	if out.Layers == nil {
		out.Layers = []device.LayerRecord{}
	}
	out.Devices = make([]device.PhysicalDeviceRecord, len(inv.Devices))
	for i, d := range inv.Devices {
		if d.Extensions == nil {
			d.Extensions = []device.ExtensionRecord{}
		}
		out.Devices[i] = d
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package report renders enumerated capabilities as text sections.
// Collections are reproduced in the order and cardinality the runtime
// reported them; an empty collection renders a placeholder line.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/devblok/vkinfo/device"
)

// None is the placeholder line of an empty collection
const None = "<none>"

// deviceIndent prefixes every line inside a device block
const deviceIndent = "  "

// Section is a heading followed by its lines. An empty heading is not printed.
type Section struct {
	Heading string
	Lines   []string
}

// WriteTo writes the heading, the lines and a closing blank line.
func (s Section) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	if s.Heading != "" {
		b.WriteString(s.Heading)
		b.WriteString("\n")
	}
	for _, line := range s.Lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

// Report is an ordered sequence of sections
type Report []Section

// WriteTo writes every section in order
func (r Report) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, s := range r {
		n, err := s.WriteTo(w)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// String renders the whole report
func (r Report) String() string {
	var b strings.Builder
	r.WriteTo(&b)
	return b.String()
}

// RequiredExtensions is the section listing what the windowing library needs
func RequiredExtensions(windowing string, names []string) Section {
	return Section{
		Heading: "INSTANCE EXTENSIONS REQUIRED BY " + windowing,
		Lines:   orNone(append([]string(nil), names...), ""),
	}
}

// InstanceExtensions is the section of instance extensions available
func InstanceExtensions(extensions []device.ExtensionRecord) Section {
	return Section{
		Heading: "INSTANCE EXTENSIONS AVAILABLE",
		Lines:   extensionLines(extensions, ""),
	}
}

// Layers is the section of instance layers available
func Layers(layers []device.LayerRecord) Section {
	lines := make([]string, 0, len(layers))
	for _, l := range layers {
		lines = append(lines, fmt.Sprintf("%s (spec version %d; version %d; %s)",
			l.Name, l.SpecVersion, l.ImplementationVersion, l.Description))
	}
	return Section{
		Heading: "LAYERS AVAILABLE",
		Lines:   orNone(lines, ""),
	}
}

// Device renders one device as its properties block
// followed by its extensions block.
func Device(d device.PhysicalDeviceRecord) []Section {
	return []Section{
		{
			Heading: "DEVICE " + d.Name,
			Lines: []string{
				"",
				fmt.Sprintf("%sVersion: %d (api); %d (driver)", deviceIndent, d.APIVersion, d.DriverVersion),
				fmt.Sprintf("%sID: %d (vendor); %d (device)", deviceIndent, d.VendorID, d.DeviceID),
				fmt.Sprintf("%sType: %d (%s)", deviceIndent, uint32(d.Type), d.Type.Label()),
			},
		},
		{
			Heading: deviceIndent + "Extensions:",
			Lines:   extensionLines(d.Extensions, deviceIndent),
		},
	}
}

// Devices renders every device in order, or a placeholder section if there are none
func Devices(devices []device.PhysicalDeviceRecord) []Section {
	if len(devices) == 0 {
		return []Section{{Lines: []string{None}}}
	}
	sections := make([]Section, 0, 2*len(devices))
	for _, d := range devices {
		sections = append(sections, Device(d)...)
	}
	return sections
}

func extensionLines(extensions []device.ExtensionRecord, indent string) []string {
	lines := make([]string, 0, len(extensions))
	for _, ext := range extensions {
		lines = append(lines, fmt.Sprintf("%s%s (spec version %d)", indent, ext.Name, ext.SpecVersion))
	}
	return orNone(lines, indent)
}

func orNone(lines []string, indent string) []string {
	if len(lines) == 0 {
		return []string{indent + None}
	}
	return lines
}

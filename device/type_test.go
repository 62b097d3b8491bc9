// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package device_test

import (
	"math"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/devblok/vkinfo/device"
)

func TestTypeLabelKnown(t *testing.T) {
	c := qt.New(t)
	known := map[device.Type]string{
		0: "other",
		1: "integrated GPU",
		2: "discrete GPU",
		3: "virtual GPU",
		4: "CPU",
	}
	for code, label := range known {
		c.Assert(code.Label(), qt.Equals, label, qt.Commentf("code %d", code))
	}
}

func TestTypeLabelOutOfRange(t *testing.T) {
	c := qt.New(t)
	for _, code := range []device.Type{-1, 5, 6, 1000, math.MaxInt32, math.MinInt32} {
		c.Assert(code.Label(), qt.Equals, device.UnknownLabel, qt.Commentf("code %d", code))
	}
}

func TestTypeLabelIdempotent(t *testing.T) {
	c := qt.New(t)
	c.Assert(device.TypeCPU.Label(), qt.Equals, device.TypeCPU.Label())
	c.Assert(device.TypeDiscreteGPU.String(), qt.Equals, "2 (discrete GPU)")
	c.Assert(device.Type(7).String(), qt.Equals, "7 (unknown)")
}

func BenchmarkTypeLabel(b *testing.B) {
	for idx := 0; idx < b.N; idx++ {
		device.Type(idx % 8).Label()
	}
}

// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/devblok/vkinfo/core"
	"github.com/devblok/vkinfo/device"
	"github.com/devblok/vkinfo/device/devicetest"
	"github.com/devblok/vkinfo/report"
)

func scenario() (*devicetest.Windowing, *devicetest.Runtime, *devicetest.Calls) {
	win, rt, log := devicetest.New()
	win.LibraryName = "GLFW"
	rt.Extensions = []device.ExtensionRecord{
		{Name: "VK_KHR_surface", SpecVersion: 1},
		{Name: "VK_KHR_x", SpecVersion: 2},
	}
	rt.AddDevice(device.DeviceProperties{
		Name:          "GPU0",
		APIVersion:    1,
		DriverVersion: 1,
		VendorID:      0x10,
		DeviceID:      0x20,
		Type:          device.TypeDiscreteGPU,
	})
	return win, rt, log
}

func TestRunEndToEnd(t *testing.T) {
	c := qt.New(t)
	win, rt, calls := scenario()
	logger, hook := test.NewNullLogger()

	var out bytes.Buffer
	status := core.Run(core.DefaultConfiguration, win, rt, &out, logger)
	c.Assert(status, qt.Equals, core.ExitOK)
	c.Assert(hook.Entries, qt.HasLen, 0)

	c.Assert(out.String(), qt.Equals, strings.Join([]string{
		"INSTANCE EXTENSIONS REQUIRED BY GLFW",
		"<none>",
		"",
		"INSTANCE EXTENSIONS AVAILABLE",
		"VK_KHR_surface (spec version 1)",
		"VK_KHR_x (spec version 2)",
		"",
		"LAYERS AVAILABLE",
		"<none>",
		"",
		"DEVICE GPU0",
		"",
		"  Version: 1 (api); 1 (driver)",
		"  ID: 16 (vendor); 32 (device)",
		"  Type: 2 (discrete GPU)",
		"",
		"  Extensions:",
		"  <none>",
		"",
		"",
	}, "\n"))

	// empty collections never get a fetch buffer
	c.Assert(calls.Count("windowing.RequiredInstanceExtensions(nil)"), qt.Equals, 1)
	c.Assert(calls.Count("runtime.EnumerateInstanceLayers(nil)"), qt.Equals, 1)
	c.Assert(calls.Count("device(GPU0).EnumerateExtensions(nil)"), qt.Equals, 1)
	c.Assert(calls.Count("runtime.EnumerateInstanceExtensions(2)"), qt.Equals, 1)
	for _, call := range *calls {
		c.Assert(call, qt.Not(qt.Matches), `windowing.RequiredInstanceExtensions\(\d+\)`)
		c.Assert(call, qt.Not(qt.Matches), `runtime.EnumerateInstanceLayers\(\d+\)`)
		c.Assert(call, qt.Not(qt.Matches), `device\(GPU0\).EnumerateExtensions\(\d+\)`)
	}
}

func TestRunTeardownAfterDevices(t *testing.T) {
	c := qt.New(t)
	for _, n := range []int{0, 1, 3} {
		win, rt, calls := devicetest.New()
		for i := 0; i < n; i++ {
			rt.AddDevice(device.DeviceProperties{Name: "GPU" + string(rune('0'+i))},
				device.ExtensionRecord{Name: "VK_KHR_swapchain", SpecVersion: 70})
		}
		logger, _ := test.NewNullLogger()

		status := core.Run(core.DefaultConfiguration, win, rt, &bytes.Buffer{}, logger)
		c.Assert(status, qt.Equals, core.ExitOK)

		c.Assert(calls.Count("instance.Destroy"), qt.Equals, 1)
		c.Assert(calls.Count("windowing.Terminate"), qt.Equals, 1)
		destroy := calls.Index("instance.Destroy")
		c.Assert(destroy < calls.Index("windowing.Terminate"), qt.IsTrue)
		// nothing is queried after teardown starts
		c.Assert(destroy, qt.Equals, len(*calls)-2)
	}
}

func TestRunNoDevices(t *testing.T) {
	c := qt.New(t)
	win, rt, _ := devicetest.New()
	logger, _ := test.NewNullLogger()

	var out bytes.Buffer
	c.Assert(core.Run(core.DefaultConfiguration, win, rt, &out, logger), qt.Equals, core.ExitOK)
	c.Assert(strings.HasSuffix(out.String(), "LAYERS AVAILABLE\n<none>\n\n<none>\n\n"), qt.IsTrue)
}

func TestRunInstanceCreationFails(t *testing.T) {
	c := qt.New(t)
	win, rt, calls := scenario()
	win.Required = []string{"VK_KHR_surface"}
	rt.FailCreate = true
	logger, hook := test.NewNullLogger()

	var out bytes.Buffer
	status := core.Run(core.DefaultConfiguration, win, rt, &out, logger)
	c.Assert(status, qt.Equals, core.ExitFailure)

	c.Assert(calls.Count("windowing.Terminate"), qt.Equals, 1)
	c.Assert(calls.Count("instance.Destroy"), qt.Equals, 0)
	c.Assert(calls.Index("runtime.EnumerateInstanceExtensions(nil)"), qt.Equals, -1)

	c.Assert(hook.LastEntry(), qt.Not(qt.IsNil))
	c.Assert(hook.LastEntry().Level, qt.Equals, logrus.ErrorLevel)
	c.Assert(hook.LastEntry().Message, qt.Equals, "vkCreateInstance() failed")

	// the section printed before the failure stands
	c.Assert(out.String(), qt.Equals, "INSTANCE EXTENSIONS REQUIRED BY GLFW\nVK_KHR_surface\n\n")
	c.Assert(rt.CreatedWith, qt.DeepEquals, []string{"VK_KHR_surface"})
}

func TestRunWindowingInitFailureContinues(t *testing.T) {
	c := qt.New(t)
	win, rt, _ := scenario()
	win.InitErr = devicetest.ErrCreateInstance
	logger, hook := test.NewNullLogger()

	status := core.Run(core.DefaultConfiguration, win, rt, &bytes.Buffer{}, logger)
	c.Assert(status, qt.Equals, core.ExitOK)
	c.Assert(hook.Entries, qt.HasLen, 1)
	c.Assert(hook.Entries[0].Level, qt.Equals, logrus.WarnLevel)
}

func TestRunJSON(t *testing.T) {
	c := qt.New(t)
	win, rt, _ := scenario()
	logger, _ := test.NewNullLogger()
	cfg := core.DefaultConfiguration
	cfg.Format = core.FormatJSON

	var out bytes.Buffer
	c.Assert(core.Run(cfg, win, rt, &out, logger), qt.Equals, core.ExitOK)

	var inv report.Inventory
	c.Assert(json.Unmarshal(out.Bytes(), &inv), qt.IsNil)
	c.Assert(inv.Windowing, qt.Equals, "GLFW")
	c.Assert(inv.InstanceExtensions, qt.HasLen, 2)
	c.Assert(inv.Devices, qt.HasLen, 1)
	c.Assert(inv.Devices[0].Type, qt.Equals, device.TypeDiscreteGPU)
	c.Assert(inv.Devices[0].VendorID, qt.Equals, uint32(0x10))
}

func TestNewLoggerWritesToGivenStream(t *testing.T) {
	c := qt.New(t)
	var errOut bytes.Buffer
	log := core.NewLogger(core.DefaultConfiguration, &errOut)
	log.Info("hidden")
	log.Error("vkCreateInstance() failed")
	c.Assert(errOut.String(), qt.Equals, "level=error msg=\"vkCreateInstance() failed\"\n")
}

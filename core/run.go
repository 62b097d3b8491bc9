// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/devblok/vkinfo/device"
	"github.com/devblok/vkinfo/report"
)

// Exit statuses of Run
const (
	ExitOK      = 0
	ExitFailure = 1
)

// NewLogger creates the diagnostics logger, it never writes to the report stream
func NewLogger(cfg Configuration, out io.Writer) *logrus.Logger {
	log := logrus.New()
	log.Out = out
	log.Level = cfg.LogLevel
	log.Formatter = &logrus.TextFormatter{
		DisableTimestamp: true,
	}
	return log
}

// Run enumerates everything the windowing library and the runtime
// report and writes it to out. Sections are written as soon as their
// collection is known, so a failed instance creation leaves the
// required extensions section in place. Returns the process exit status.
func Run(cfg Configuration, win device.Windowing, rt device.Runtime, out io.Writer, log *logrus.Logger) int {
	session := device.NewSession(win, rt)
	if err := session.Start(); err != nil {
		log.WithError(err).Warnf("%s did not initialise", win.Name())
	}
	defer session.Close()

	p := &printer{
		out:  out,
		json: cfg.Format == FormatJSON,
	}
	inv := report.Inventory{
		Windowing: win.Name(),
	}

	inv.RequiredExtensions = device.RequiredExtensions(win)
	log.Debugf("%d instance extensions required by %s", len(inv.RequiredExtensions), win.Name())
	p.print(report.RequiredExtensions(win.Name(), inv.RequiredExtensions))

	if err := session.CreateInstance(device.DefaultApplication, inv.RequiredExtensions); err != nil {
		log.WithError(err).Error("vkCreateInstance() failed")
		return ExitFailure
	}
	log.Debugf("session %s", session.State())

	inv.InstanceExtensions = device.InstanceExtensions(rt)
	log.Debugf("%d instance extensions available", len(inv.InstanceExtensions))
	p.print(report.InstanceExtensions(inv.InstanceExtensions))

	inv.Layers = device.InstanceLayers(rt)
	log.Debugf("%d layers available", len(inv.Layers))
	p.print(report.Layers(inv.Layers))

	devices := device.PhysicalDevices(session.Instance())
	log.Debugf("%d physical devices", len(devices))
	if len(devices) == 0 {
		p.print(report.Devices(nil)...)
	}
	for _, pd := range devices {
		rec := device.DescribeDevice(pd)
		log.WithFields(logrus.Fields{
			"type":       rec.Type.String(),
			"extensions": len(rec.Extensions),
		}).Debugf("device %s", rec.Name)
		inv.Devices = append(inv.Devices, rec)
		p.print(report.Device(rec)...)
	}

	if p.json {
		p.err = inv.Encode(out)
	}
	if p.err != nil {
		log.WithError(p.err).Error("writing report failed")
		return ExitFailure
	}
	return ExitOK
}

// printer writes text sections until the first error.
// In JSON mode sections are dropped, the inventory is written instead.
type printer struct {
	out  io.Writer
	json bool
	err  error
}

func (p *printer) print(sections ...report.Section) {
	if p.json || p.err != nil {
		return
	}
	_, p.err = report.Report(sections).WriteTo(p.out)
}

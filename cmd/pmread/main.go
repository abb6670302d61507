// go-sps30
// Copyright (c) 2025 The OpenAir Project Contributors.
// SPDX-License-Identifier: LGPL-3.0-or-later
//
// This file is part of go-sps30.
//
// go-sps30 is free software; you can redistribute it and/or
// modify it under the terms of the GNU Lesser General Public
// License as published by the Free Software Foundation; either
// version 3 of the License, or (at your option) any later version.
//
// go-sps30 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with go-sps30; if not, write to the Free Software Foundation,
// Inc., 51 Franklin Street, Fifth Floor, Boston, MA  02110-1301, USA.

// pmread reads particulate matter values from an SPS30 sensor and prints
// them to stdout.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	sps30 "github.com/OpenAirProject/go-sps30"
	"github.com/OpenAirProject/go-sps30/detection"
	"github.com/OpenAirProject/go-sps30/transport/uart"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

type config struct {
	devicePath *string
	interval   *time.Duration
	count      *int
	ledPin     *string
	timeout    *time.Duration
	debug      *bool
	info       *bool
}

func parseFlags() *config {
	cfg := &config{
		devicePath: flag.String("device", "",
			"Serial device path (e.g., /dev/ttyUSB0 or COM3). Leave empty for auto-detection."),
		interval: flag.Duration("interval", 1*time.Second, "Delay between readings (default: 1s)"),
		count:    flag.Int("count", 0, "Number of readings to take, 0 for unlimited"),
		ledPin: flag.String("led", "",
			"GPIO pin name for an activity LED (e.g., GPIO25). Leave empty to disable."),
		timeout: flag.Duration("timeout", 2*time.Second, "Per-read timeout (default: 2s)"),
		debug:   flag.Bool("debug", false, "Enable debug output"),
		info:    flag.Bool("info", true, "Print product type, serial number and firmware version on startup"),
	}
	flag.Parse()

	if *cfg.debug {
		sps30.SetDebugEnabled(true)
	}

	return cfg
}

// activityLED returns a callback toggling the named GPIO pin, or nil when
// no pin is configured or GPIO is unavailable on this host.
func activityLED(pinName string) func() {
	if pinName == "" {
		return nil
	}
	if _, err := host.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: GPIO unavailable, LED disabled: %v\n", err)
		return nil
	}
	pin := gpioreg.ByName(pinName)
	if pin == nil {
		fmt.Fprintf(os.Stderr, "Warning: GPIO pin %q not found, LED disabled\n", pinName)
		return nil
	}

	level := gpio.Low
	return func() {
		level = !level
		_ = pin.Out(level)
	}
}

func resolveDevicePath(path string) (string, error) {
	if path != "" {
		return path, nil
	}

	devices, err := detection.DetectAll(nil)
	if err != nil {
		return "", fmt.Errorf("port detection failed: %w", err)
	}
	if len(devices) == 0 {
		return "", sps30.ErrNoDeviceFound
	}

	dev := devices[0]
	if dev.Name != "" {
		fmt.Printf("Using detected port %s (%s)\n", dev.Path, dev.Name)
	} else {
		fmt.Printf("Using detected port %s\n", dev.Path)
	}
	return dev.Path, nil
}

func printSensorInfo(device *sps30.Device) {
	if product, err := device.ReadProductType(); err == nil {
		fmt.Printf("Product type:     %s\n", product)
	} else {
		fmt.Fprintf(os.Stderr, "Warning: failed to read product type: %v\n", err)
	}
	if serial, err := device.ReadSerialNumber(); err == nil {
		fmt.Printf("Serial number:    %s\n", serial)
	} else {
		fmt.Fprintf(os.Stderr, "Warning: failed to read serial number: %v\n", err)
	}
	if version, err := device.ReadFirmwareVersion(); err == nil {
		fmt.Printf("Firmware version: %s\n", version)
	} else {
		fmt.Fprintf(os.Stderr, "Warning: failed to read firmware version: %v\n", err)
	}
}

func readLoop(ctx context.Context, device *sps30.Device, cfg *config) error {
	retry := device.RetryConfig()

	for taken := 0; *cfg.count == 0 || taken < *cfg.count; taken++ {
		if taken > 0 {
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(*cfg.interval):
			}
		}

		var m *sps30.Measurement
		err := sps30.RetryWithConfig(ctx, retry, func() error {
			var readErr error
			m, readErr = device.ReadMeasurement()
			return readErr
		})
		if err != nil {
			return fmt.Errorf("measurement read failed: %w", err)
		}

		if m.Degraded {
			fmt.Fprintln(os.Stderr, "Warning: sensor returned an undecodable measurement, values zeroed")
			continue
		}
		fmt.Println(m)
	}
	return nil
}

func run() error {
	cfg := parseFlags()

	path, err := resolveDevicePath(*cfg.devicePath)
	if err != nil {
		return err
	}

	transport, err := uart.New(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = transport.Close() }()

	opts := []sps30.Option{sps30.WithTimeout(*cfg.timeout)}
	if blink := activityLED(*cfg.ledPin); blink != nil {
		opts = append(opts, sps30.WithActivityIndicator(blink))
	}

	device, err := sps30.New(transport, opts...)
	if err != nil {
		return fmt.Errorf("failed to create device: %w", err)
	}

	if err := device.Start(); err != nil {
		return fmt.Errorf("failed to start measurement: %w", err)
	}
	defer func() { _ = device.Stop() }()

	// The sensor needs a moment in measurement mode before the first
	// values are ready.
	time.Sleep(1 * time.Second)

	if *cfg.info {
		printSensorInfo(device)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return readLoop(ctx, device, cfg)
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

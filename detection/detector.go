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

// Package detection finds serial ports that may have an SPS30 attached.
// The sensor itself carries no USB descriptor, so detection enumerates
// the host's serial ports and filters out devices known not to be
// USB-to-UART bridges.
package detection

import (
	"fmt"

	"go.bug.st/serial/enumerator"
)

// DeviceInfo describes one candidate serial port
type DeviceInfo struct {
	// Path is the port path to open (/dev/ttyUSB0, COM3, ...)
	Path string
	// Name is a human-readable product name, if the port reports one
	Name string
	// VID and PID are the USB vendor/product IDs for USB-attached ports,
	// empty for onboard UARTs
	VID string
	PID string
}

// Options configures detection behavior
type Options struct {
	// Blocklist holds VID:PID pairs that must never be offered as
	// candidates. Defaults to DefaultBlocklist.
	Blocklist []string
	// USBOnly restricts results to USB-attached ports. Onboard UARTs
	// (a Raspberry Pi's /dev/ttyAMA0, for example) are common SPS30
	// hosts, so this is off by default.
	USBOnly bool
}

// DefaultOptions returns the default detection options
func DefaultOptions() Options {
	return Options{
		Blocklist: DefaultBlocklist(),
	}
}

// DetectAll returns the candidate serial ports on this host, in
// enumeration order. A nil opts uses DefaultOptions.
func DetectAll(opts *Options) ([]DeviceInfo, error) {
	options := DefaultOptions()
	if opts != nil {
		options = *opts
	}

	ports, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate serial ports: %w", err)
	}

	devices := make([]DeviceInfo, 0, len(ports))
	for _, port := range ports {
		if options.USBOnly && !port.IsUSB {
			continue
		}
		if port.IsUSB && IsBlocked(port.VID+":"+port.PID, options.Blocklist) {
			continue
		}
		devices = append(devices, DeviceInfo{
			Path: port.Name,
			Name: port.Product,
			VID:  port.VID,
			PID:  port.PID,
		})
	}
	return devices, nil
}

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

/*
Package sps30 provides a pure Go driver for the Sensirion SPS30 particulate
matter sensor over its UART interface.

The SPS30 speaks an SHDLC-derived framing protocol: commands and responses
are byte-stuffed frames delimited by 0x7E markers, carrying an address,
command code, length, payload, and checksum. This library implements the
framing engine and exposes one typed operation per sensor command.

Basic Usage:

	import (
	    sps30 "github.com/OpenAirProject/go-sps30"
	    "github.com/OpenAirProject/go-sps30/transport/uart"
	)

	transport, err := uart.New("/dev/ttyUSB0")
	if err != nil {
	    log.Fatal(err)
	}
	defer transport.Close()

	device, err := sps30.New(transport)
	if err != nil {
	    log.Fatal(err)
	}

	if err := device.Start(); err != nil {
	    log.Fatal(err)
	}
	defer device.Stop()

	m, err := device.ReadMeasurement()
	if err != nil {
	    log.Fatal(err)
	}
	fmt.Printf("PM2.5: %.2f µg/m³\n", m.MassPM2p5)

Operations:

  - Start / Stop: enter and leave continuous measurement mode
  - ReadMeasurement: ten float32 values (mass and number concentrations,
    typical particle size)
  - ReadProductType / ReadSerialNumber: identification strings
  - ReadFirmwareVersion: firmware major.minor revision

Error Handling:

All operations return errors inspectable with errors.Is and errors.As:

	if errors.Is(err, sps30.ErrReadTimeout) {
	    // sensor had no data ready within the deadline
	}

A timed-out or failed operation leaves the Device reusable; every
operation drains stale transport input before writing its command.
Retries are a caller decision, see RetryWithConfig.

Degraded Readings:

A measurement payload the sensor mangles decodes to an all-zero reading
with Measurement.Degraded set, rather than an error. Check the flag when
zero readings matter.

Thread Safety:

Device operations are not thread-safe and must be serialized by the
caller; the protocol has no request correlation.
*/
package sps30

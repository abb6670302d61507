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

package sps30

// SPS30 UART command codes
const (
	cmdStartMeasurement = 0x00
	cmdStopMeasurement  = 0x01
	cmdReadMeasurement  = 0x03
	cmdDeviceInfo       = 0xD0
	cmdReadVersion      = 0xD1
)

// Device info subcommands for cmdDeviceInfo
const (
	infoProductType  = 0x01
	infoSerialNumber = 0x03
)

// measurementFormatFloat selects big-endian IEEE754 output in the start
// measurement command.
const measurementFormatFloat = 0x03

// Raw response frame sizes, markers and stuffing included
const (
	measurementFrameSize = 47
	deviceInfoFrameSize  = 24
	versionFrameSize     = 14
)

// commandDescriptor ties a command code to its argument bytes and the raw
// size of the response frame the sensor replies with. A responseSize of
// zero marks a fire-and-forget command with no response read.
type commandDescriptor struct {
	data         []byte
	code         byte
	responseSize int
}

var (
	startMeasurementCmd = commandDescriptor{
		code: cmdStartMeasurement,
		data: []byte{0x01, measurementFormatFloat},
	}
	stopMeasurementCmd = commandDescriptor{
		code: cmdStopMeasurement,
	}
	readMeasurementCmd = commandDescriptor{
		code:         cmdReadMeasurement,
		responseSize: measurementFrameSize,
	}
	productTypeCmd = commandDescriptor{
		code:         cmdDeviceInfo,
		data:         []byte{infoProductType},
		responseSize: deviceInfoFrameSize,
	}
	serialNumberCmd = commandDescriptor{
		code:         cmdDeviceInfo,
		data:         []byte{infoSerialNumber},
		responseSize: deviceInfoFrameSize,
	}
	readVersionCmd = commandDescriptor{
		code:         cmdReadVersion,
		responseSize: versionFrameSize,
	}
)

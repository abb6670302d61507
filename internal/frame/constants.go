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

// Package frame implements the SHDLC framing layer of the SPS30 UART
// protocol: frame assembly, byte stuffing, checksums. It performs no I/O.
package frame

// Frame markers and the escape byte
const (
	Start  = 0x7E // frame start marker
	Stop   = 0x7E // frame stop marker
	Escape = 0x7D // escape byte introducing a stuffed sequence
)

// SensorAddr is the address of the sensor on the SHDLC bus. The SPS30 is a
// single-drop device, the address is always zero.
const SensorAddr = 0x00

// Layout of a response frame. The header covers the start marker, address,
// command, state, and length bytes; the trailer covers the checksum and
// stop marker.
const (
	HeaderSize  = 5
	TrailerSize = 2
)

// Escape codes following the 0x7D escape byte. Each reserved byte value is
// transmitted as 0x7D followed by the original XORed with 0x20.
const (
	escStart  = 0x5E // 0x7E
	escEscape = 0x5D // 0x7D
	escXON    = 0x31 // 0x11
	escXOFF   = 0x33 // 0x13
)

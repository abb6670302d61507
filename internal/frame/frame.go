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

package frame

// Build assembles a complete command frame for the given command code and
// data bytes: address, command, length, data, checksum, byte-stuffed and
// wrapped in start/stop markers. The markers themselves are never stuffed.
func Build(cmd byte, data []byte) []byte {
	body := make([]byte, 0, 4+len(data))
	body = append(body, SensorAddr, cmd, byte(len(data)))
	body = append(body, data...)
	body = append(body, Checksum(body))

	out := make([]byte, 0, 2+len(body))
	out = append(out, Start)
	out = append(out, Stuff(body)...)
	out = append(out, Stop)
	return out
}

// Stuff applies forward byte stuffing to data, replacing each reserved
// byte value with its two-byte escape sequence.
func Stuff(data []byte) []byte {
	out := make([]byte, 0, len(data))
	for _, b := range data {
		switch b {
		case 0x7E:
			out = append(out, Escape, escStart)
		case 0x7D:
			out = append(out, Escape, escEscape)
		case 0x11:
			out = append(out, Escape, escXON)
		case 0x13:
			out = append(out, Escape, escXOFF)
		default:
			out = append(out, b)
		}
	}
	return out
}

// Unstuff reverses byte stuffing on raw, scanning left to right and
// replacing each of the four two-byte escape sequences with its single-byte
// original. It is total: bytes that do not form a recognized escape
// sequence pass through unmodified, so Unstuff never fails.
//
// A stuffed sequence must not be split across calls. Callers reading in
// chunks hold back a trailing 0x7D and prepend it to the next chunk.
func Unstuff(raw []byte) []byte {
	out := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		if raw[i] == Escape && i+1 < len(raw) {
			switch raw[i+1] {
			case escStart:
				out = append(out, 0x7E)
				i++
				continue
			case escEscape:
				out = append(out, 0x7D)
				i++
				continue
			case escXON:
				out = append(out, 0x11)
				i++
				continue
			case escXOFF:
				out = append(out, 0x13)
				i++
				continue
			}
		}
		out = append(out, raw[i])
	}
	return out
}

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

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"
)

// measurementPayloadSize is the decoded measurement payload: ten
// big-endian float32 values.
const measurementPayloadSize = 40

// versionPayloadSize is the decoded firmware version payload: seven
// signed bytes.
const versionPayloadSize = 7

// Measurement holds one reading from the sensor.
//
// Mass concentrations are in µg/m³, number concentrations in #/cm³ and
// the typical particle size in µm.
type Measurement struct {
	MassPM1   float32 // PM1.0 mass concentration
	MassPM2p5 float32 // PM2.5 mass concentration
	MassPM4   float32 // PM4.0 mass concentration
	MassPM10  float32 // PM10 mass concentration

	NumPM0p5 float32 // particles with diameter 0.3 to 0.5 µm
	NumPM1   float32 // particles with diameter 0.3 to 1.0 µm
	NumPM2p5 float32 // particles with diameter 0.3 to 2.5 µm
	NumPM4   float32 // particles with diameter 0.3 to 4.0 µm
	NumPM10  float32 // particles with diameter 0.3 to 10 µm

	TypicalParticleSize float32

	// Degraded is true when the payload could not be decoded and the
	// zero values above were substituted. A genuine all-zero reading
	// (sensor warming up) has Degraded false.
	Degraded bool
}

func (m *Measurement) String() string {
	return fmt.Sprintf("PM1.0 %.2f PM2.5 %.2f PM4.0 %.2f PM10 %.2f µg/m³ (typical size %.2f µm)",
		m.MassPM1, m.MassPM2p5, m.MassPM4, m.MassPM10, m.TypicalParticleSize)
}

// decodeMeasurement decodes a 40-byte measurement payload into ten
// big-endian float32 fields. A payload of the wrong size fails closed to
// fallbackMeasurement rather than returning an error, matching the
// sensor's documented host behavior.
func decodeMeasurement(payload []byte) *Measurement {
	if len(payload) != measurementPayloadSize {
		debugf("measurement payload has %d bytes, want %d; falling back to zeros", len(payload), measurementPayloadSize)
		return fallbackMeasurement()
	}

	f := func(off int) float32 {
		return math.Float32frombits(binary.BigEndian.Uint32(payload[off : off+4]))
	}

	return &Measurement{
		MassPM1:             f(0),
		MassPM2p5:           f(4),
		MassPM4:             f(8),
		MassPM10:            f(12),
		NumPM0p5:            f(16),
		NumPM1:              f(20),
		NumPM2p5:            f(24),
		NumPM4:              f(28),
		NumPM10:             f(32),
		TypicalParticleSize: f(36),
	}
}

// fallbackMeasurement is the all-zero reading substituted for an
// undecodable payload. The Degraded flag lets callers tell it apart from
// a real zero reading.
func fallbackMeasurement() *Measurement {
	return &Measurement{Degraded: true}
}

// FirmwareVersion is the sensor's reported firmware revision
type FirmwareVersion struct {
	Major int8
	Minor int8
}

func (v *FirmwareVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// decodeVersion decodes the 7-byte version payload. The first two signed
// bytes are the firmware major and minor revision; the rest cover
// hardware and protocol revisions this driver does not expose.
func decodeVersion(payload []byte) (*FirmwareVersion, error) {
	if len(payload) != versionPayloadSize {
		return nil, &DecodeError{
			Op:     "firmware version",
			Reason: fmt.Sprintf("payload has %d bytes, want %d", len(payload), versionPayloadSize),
			Data:   payload,
		}
	}
	return &FirmwareVersion{
		Major: int8(payload[0]),
		Minor: int8(payload[1]),
	}, nil
}

// decodeASCII decodes an identification payload as ASCII text, trimming
// trailing NUL padding. Non-ASCII bytes are a protocol violation and
// yield a DecodeError.
func decodeASCII(op string, payload []byte) (string, error) {
	for i, b := range payload {
		if b > 0x7F {
			return "", &DecodeError{
				Op:     op,
				Reason: fmt.Sprintf("non-ASCII byte %#02x at offset %d", b, i),
				Data:   payload,
			}
		}
	}
	return strings.TrimRight(string(payload), "\x00"), nil
}

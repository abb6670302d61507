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

import "testing"

func TestChecksum(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		data []byte
		want byte
	}{
		{
			name: "empty data",
			data: []byte{},
			want: 0xFF,
		},
		{
			name: "start measurement body",
			data: []byte{0x00, 0x00, 0x02, 0x01, 0x03},
			want: 0xF9,
		},
		{
			name: "stop measurement body",
			data: []byte{0x00, 0x01, 0x00},
			want: 0xFE,
		},
		{
			name: "read measurement body",
			data: []byte{0x00, 0x03, 0x00},
			want: 0xFC,
		},
		{
			name: "read version body",
			data: []byte{0x00, 0xD1, 0x00},
			want: 0x2E,
		},
		{
			name: "overflow wraps at one byte",
			data: []byte{0xFF, 0x01},
			want: 0xFF, // 0xFF + 0x01 wraps to 0x00, complemented
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Checksum(tt.data); got != tt.want {
				t.Errorf("Checksum() = %#02x, want %#02x", got, tt.want)
			}
		})
	}
}

// TestChecksumProperty verifies that the checksum plus the byte sum of the
// covered data is always 0xFF (mod 256).
func TestChecksumProperty(t *testing.T) {
	t.Parallel()
	for i := 0; i < 256; i++ {
		data := []byte{byte(i)}
		sum := byte(i) + Checksum(data)
		if sum != 0xFF {
			t.Errorf("Property violation: data=%#02x + checksum = %#02x, expected 0xFF", i, sum)
		}
	}
}

func TestVerifyChecksum(t *testing.T) {
	t.Parallel()
	// Inbound checksums are accepted unverified. Both a valid and a
	// corrupted frame must pass.
	frames := [][]byte{
		{0x7E, 0x00, 0x03, 0x00, 0x00, 0xFC, 0x7E},
		{0x7E, 0x00, 0x03, 0x00, 0x00, 0xAA, 0x7E},
		{},
	}
	for _, f := range frames {
		if err := VerifyChecksum(f); err != nil {
			t.Errorf("VerifyChecksum(% X) = %v, want nil", f, err)
		}
	}
}

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

import (
	"bytes"
	"testing"
)

func TestBuild(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		cmd  byte
		data []byte
		want []byte
	}{
		{
			name: "start measurement",
			cmd:  0x00,
			data: []byte{0x01, 0x03},
			want: []byte{0x7E, 0x00, 0x00, 0x02, 0x01, 0x03, 0xF9, 0x7E},
		},
		{
			name: "stop measurement",
			cmd:  0x01,
			data: nil,
			want: []byte{0x7E, 0x00, 0x01, 0x00, 0xFE, 0x7E},
		},
		{
			name: "read measured values",
			cmd:  0x03,
			data: nil,
			want: []byte{0x7E, 0x00, 0x03, 0x00, 0xFC, 0x7E},
		},
		{
			name: "device info product type",
			cmd:  0xD0,
			data: []byte{0x01},
			want: []byte{0x7E, 0x00, 0xD0, 0x01, 0x01, 0x2D, 0x7E},
		},
		{
			name: "device info serial number",
			cmd:  0xD0,
			data: []byte{0x03},
			want: []byte{0x7E, 0x00, 0xD0, 0x01, 0x03, 0x2B, 0x7E},
		},
		{
			name: "read firmware version",
			cmd:  0xD1,
			data: nil,
			want: []byte{0x7E, 0x00, 0xD1, 0x00, 0x2E, 0x7E},
		},
		{
			name: "reserved byte in data is stuffed",
			cmd:  0x80,
			data: []byte{0x7E},
			// body 00 80 01 7E, checksum ^(0x00+0x80+0x01+0x7E) = 0x00
			want: []byte{0x7E, 0x00, 0x80, 0x01, 0x7D, 0x5E, 0x00, 0x7E},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Build(tt.cmd, tt.data); !bytes.Equal(got, tt.want) {
				t.Errorf("Build() = % X, want % X", got, tt.want)
			}
		})
	}
}

func TestUnstuff(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		raw  []byte
		want []byte
	}{
		{
			name: "escaped start marker",
			raw:  []byte{0x7D, 0x5E},
			want: []byte{0x7E},
		},
		{
			name: "escaped escape byte",
			raw:  []byte{0x7D, 0x5D},
			want: []byte{0x7D},
		},
		{
			name: "escaped xon",
			raw:  []byte{0x7D, 0x31},
			want: []byte{0x11},
		},
		{
			name: "escaped xoff",
			raw:  []byte{0x7D, 0x33},
			want: []byte{0x13},
		},
		{
			name: "all four escapes in one buffer",
			raw:  []byte{0x01, 0x7D, 0x5E, 0x02, 0x7D, 0x5D, 0x03, 0x7D, 0x31, 0x04, 0x7D, 0x33, 0x05},
			want: []byte{0x01, 0x7E, 0x02, 0x7D, 0x03, 0x11, 0x04, 0x13, 0x05},
		},
		{
			name: "no escapes is identity",
			raw:  []byte{0x00, 0x03, 0x00, 0x28, 0xFF},
			want: []byte{0x00, 0x03, 0x00, 0x28, 0xFF},
		},
		{
			name: "unrecognized escape code passes through",
			raw:  []byte{0x7D, 0x42},
			want: []byte{0x7D, 0x42},
		},
		{
			name: "trailing escape byte passes through",
			raw:  []byte{0x01, 0x7D},
			want: []byte{0x01, 0x7D},
		},
		{
			name: "empty input",
			raw:  []byte{},
			want: []byte{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Unstuff(tt.raw); !bytes.Equal(got, tt.want) {
				t.Errorf("Unstuff(% X) = % X, want % X", tt.raw, got, tt.want)
			}
		})
	}
}

// TestStuffUnstuffRoundTrip verifies that Unstuff composed with Stuff is
// the identity over all single byte values and over mixed payloads.
func TestStuffUnstuffRoundTrip(t *testing.T) {
	t.Parallel()

	for i := 0; i < 256; i++ {
		in := []byte{byte(i)}
		if got := Unstuff(Stuff(in)); !bytes.Equal(got, in) {
			t.Errorf("round trip of %#02x = % X", i, got)
		}
	}

	payload := []byte{0x7E, 0x7D, 0x11, 0x13, 0x00, 0xFF, 0x7E, 0x7E, 0x5E, 0x31}
	if got := Unstuff(Stuff(payload)); !bytes.Equal(got, payload) {
		t.Errorf("round trip of % X = % X", payload, got)
	}
}

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

import "time"

// Transport defines the duplex byte-stream interface the driver speaks
// over. The stock implementation is transport/uart for a real serial port;
// tests use MockTransport.
type Transport interface {
	// Write submits data to the sensor and flushes it onto the wire
	Write(data []byte) error

	// Read performs one bounded read, returning between 1 and max raw
	// bytes. When the read deadline elapses with no data it returns an
	// error wrapping ErrReadTimeout, never an empty slice.
	Read(max int) ([]byte, error)

	// Drain discards any unread input buffered by the transport
	Drain() error

	// Close closes the transport connection
	Close() error

	// SetTimeout sets the per-read deadline for the transport
	SetTimeout(timeout time.Duration) error

	// IsConnected returns true if the transport is usable
	IsConnected() bool

	// Type returns the transport type
	Type() TransportType
}

// TransportType represents the type of transport
type TransportType string

const (
	// TransportUART represents UART/serial transport.
	TransportUART TransportType = "uart"
	// TransportMock represents a mock transport for testing
	TransportMock TransportType = "mock"
)

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

// Package uart implements the sps30.Transport interface over a serial
// port using go.bug.st/serial.
package uart

import (
	"time"

	sps30 "github.com/OpenAirProject/go-sps30"
	"go.bug.st/serial"
)

// Serial parameters of the SPS30 UART interface. The sensor is fixed at
// 115200 8N1; only the read deadline is host policy.
const (
	baudRate       = 115200
	defaultTimeout = 2 * time.Second
)

// Transport implements sps30.Transport for a serial port
type Transport struct {
	port      serial.Port
	portName  string
	timeout   time.Duration
	connected bool
}

// New opens the serial port at portName with the sensor's fixed line
// settings and the default 2s read deadline.
func New(portName string) (*Transport, error) {
	mode := &serial.Mode{
		BaudRate: baudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}

	port, err := serial.Open(portName, mode)
	if err != nil {
		return nil, sps30.NewTransportError("open", portName, err, sps30.ErrorTypePermanent)
	}

	t := &Transport{
		port:      port,
		portName:  portName,
		connected: true,
	}
	if err := t.SetTimeout(defaultTimeout); err != nil {
		_ = port.Close()
		return nil, err
	}
	return t, nil
}

// Write submits data to the sensor and blocks until it is on the wire
func (t *Transport) Write(data []byte) error {
	if !t.connected {
		return sps30.NewTransportError("write", t.portName, sps30.ErrTransportClosed, sps30.ErrorTypePermanent)
	}

	n, err := t.port.Write(data)
	if err != nil {
		return sps30.NewTransportError("write", t.portName, err, sps30.ErrorTypeTransient)
	}
	if n != len(data) {
		return sps30.NewTransportError("write", t.portName, sps30.ErrTransportWrite, sps30.ErrorTypeTransient)
	}
	if err := t.port.Drain(); err != nil {
		return sps30.NewTransportError("flush", t.portName, err, sps30.ErrorTypeTransient)
	}
	return nil
}

// Read performs one bounded read of up to max bytes. go.bug.st/serial
// signals an expired deadline as a zero-byte read with no error; that is
// mapped to a timeout error here so callers never see an empty slice.
func (t *Transport) Read(max int) ([]byte, error) {
	if !t.connected {
		return nil, sps30.NewTransportError("read", t.portName, sps30.ErrTransportClosed, sps30.ErrorTypePermanent)
	}

	buf := make([]byte, max)
	n, err := t.port.Read(buf)
	if err != nil {
		return nil, sps30.NewTransportError("read", t.portName, err, sps30.ErrorTypeTransient)
	}
	if n == 0 {
		return nil, sps30.NewTimeoutError("read", t.portName)
	}
	return buf[:n], nil
}

// Drain discards any bytes buffered on the receive side
func (t *Transport) Drain() error {
	if !t.connected {
		return sps30.NewTransportError("drain", t.portName, sps30.ErrTransportClosed, sps30.ErrorTypePermanent)
	}
	if err := t.port.ResetInputBuffer(); err != nil {
		return sps30.NewTransportError("drain", t.portName, err, sps30.ErrorTypeTransient)
	}
	return nil
}

// SetTimeout sets the per-read deadline
func (t *Transport) SetTimeout(timeout time.Duration) error {
	if err := t.port.SetReadTimeout(timeout); err != nil {
		return sps30.NewTransportError("set timeout", t.portName, err, sps30.ErrorTypePermanent)
	}
	t.timeout = timeout
	return nil
}

// Timeout returns the currently active per-read deadline
func (t *Transport) Timeout() time.Duration {
	return t.timeout
}

// Close closes the serial port
func (t *Transport) Close() error {
	if !t.connected {
		return nil
	}
	t.connected = false
	if err := t.port.Close(); err != nil {
		return sps30.NewTransportError("close", t.portName, err, sps30.ErrorTypePermanent)
	}
	return nil
}

// IsConnected returns true while the port is open
func (t *Transport) IsConnected() bool {
	return t.connected
}

// Type returns sps30.TransportUART
func (*Transport) Type() sps30.TransportType {
	return sps30.TransportUART
}

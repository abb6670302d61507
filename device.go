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
	"errors"
	"fmt"
	"time"

	"github.com/OpenAirProject/go-sps30/detection"
	"github.com/OpenAirProject/go-sps30/internal/frame"
)

// DeviceConfig contains configuration options for the Device
type DeviceConfig struct {
	// RetryConfig is the retry policy exposed through Device.RetryConfig
	// for callers that wrap operations with RetryWithConfig. The Device
	// itself never retries: the protocol has no request correlation, so
	// a retry decision belongs to whoever owns the request cadence.
	RetryConfig *RetryConfig
	// Timeout is the per-read deadline applied to the transport
	Timeout time.Duration
}

// DefaultDeviceConfig returns default device configuration. The 2s read
// timeout matches the sensor datasheet's worst-case response time.
func DefaultDeviceConfig() *DeviceConfig {
	return &DeviceConfig{
		RetryConfig: DefaultRetryConfig(),
		Timeout:     2 * time.Second,
	}
}

// Device represents an SPS30 particulate matter sensor on a UART link
//
// Thread Safety: Device is NOT thread-safe. The SHDLC protocol carries no
// request identifiers, so two in-flight exchanges cannot be told apart.
// Callers must serialize operations: one request, one response, before
// the next request.
type Device struct {
	transport  Transport
	config     *DeviceConfig
	onActivity func()
}

// New creates a new SPS30 device with the given transport
func New(transport Transport, opts ...Option) (*Device, error) {
	device := &Device{
		transport: transport,
		config:    DefaultDeviceConfig(),
	}

	for _, opt := range opts {
		if err := opt(device); err != nil {
			return nil, err
		}
	}

	if device.config.Timeout > 0 {
		if err := transport.SetTimeout(device.config.Timeout); err != nil {
			return nil, fmt.Errorf("failed to set timeout on transport: %w", err)
		}
	}

	return device, nil
}

// Transport returns the underlying transport
func (d *Device) Transport() Transport {
	return d.transport
}

// RetryConfig returns the retry policy configured for this device, for
// callers that wrap operations with RetryWithConfig
func (d *Device) RetryConfig() *RetryConfig {
	return d.config.RetryConfig
}

// SetTimeout sets the per-read deadline for subsequent operations
func (d *Device) SetTimeout(timeout time.Duration) error {
	d.config.Timeout = timeout
	if err := d.transport.SetTimeout(timeout); err != nil {
		return fmt.Errorf("failed to set timeout on transport: %w", err)
	}
	return nil
}

// Close closes the device connection
func (d *Device) Close() error {
	if d.transport != nil {
		if err := d.transport.Close(); err != nil {
			return fmt.Errorf("failed to close transport: %w", err)
		}
	}
	return nil
}

// Start switches the sensor into continuous measurement mode. The command
// is fire-and-forget: the sensor's acknowledgement frame is not read, only
// submission to the transport is guaranteed.
func (d *Device) Start() error {
	_, err := d.request(startMeasurementCmd)
	return err
}

// Stop switches the sensor back to idle mode. Fire-and-forget like Start.
func (d *Device) Stop() error {
	_, err := d.request(stopMeasurementCmd)
	return err
}

// ReadMeasurement requests the current measured values and decodes them.
// When the sensor has no new values ready within the read deadline the
// call fails with an error wrapping ErrReadTimeout; no partial data is
// returned. An undecodable payload yields the zero-valued fallback
// reading with Degraded set, not an error.
func (d *Device) ReadMeasurement() (*Measurement, error) {
	raw, err := d.request(readMeasurementCmd)
	if err != nil {
		return nil, err
	}
	payload := raw[frame.HeaderSize : len(raw)-frame.TrailerSize]
	return decodeMeasurement(payload), nil
}

// ReadProductType reads the sensor's product type string ("00080000" for
// the SPS30).
func (d *Device) ReadProductType() (string, error) {
	return d.readDeviceInfo("product type", productTypeCmd)
}

// ReadSerialNumber reads the sensor's serial number string
func (d *Device) ReadSerialNumber() (string, error) {
	return d.readDeviceInfo("serial number", serialNumberCmd)
}

// readDeviceInfo performs a device-info exchange and decodes the ASCII
// payload. The trailer strip covers one extra byte: the sensor terminates
// identification strings with a NUL before the checksum.
func (d *Device) readDeviceInfo(op string, cmd commandDescriptor) (string, error) {
	raw, err := d.request(cmd)
	if err != nil {
		return "", err
	}
	payload := raw[frame.HeaderSize : len(raw)-frame.TrailerSize-1]
	return decodeASCII(op, payload)
}

// ReadFirmwareVersion reads the sensor's firmware revision. Format the
// result with FirmwareVersion.String for the usual "major.minor" form.
func (d *Device) ReadFirmwareVersion() (*FirmwareVersion, error) {
	raw, err := d.request(readVersionCmd)
	if err != nil {
		return nil, err
	}
	payload := raw[frame.HeaderSize : len(raw)-frame.TrailerSize]
	return decodeVersion(payload)
}

// request performs one full command exchange: drain stale input, write
// the command frame, read the fixed-size response. Commands without a
// response return a nil buffer after the write.
func (d *Device) request(cmd commandDescriptor) ([]byte, error) {
	if d.onActivity != nil {
		d.onActivity()
	}

	// A timed-out previous exchange leaves the transport's buffer state
	// undefined; dropping pending input prevents a stale response from
	// being framed as this command's reply.
	if err := d.transport.Drain(); err != nil {
		return nil, fmt.Errorf("failed to drain transport: %w", err)
	}

	out := frame.Build(cmd.code, cmd.data)
	debugf("-> % X", out)
	if err := d.transport.Write(out); err != nil {
		return nil, fmt.Errorf("failed to write command %#02x: %w", cmd.code, err)
	}

	if cmd.responseSize == 0 {
		return nil, nil
	}

	raw, err := d.readExactly(cmd.responseSize)
	if err != nil {
		return nil, fmt.Errorf("failed to read response to command %#02x: %w", cmd.code, err)
	}
	debugf("<- % X", raw)

	if err := frame.VerifyChecksum(raw); err != nil {
		return nil, fmt.Errorf("response to command %#02x corrupted: %w", cmd.code, err)
	}
	return raw, nil
}

// readExactly accumulates exactly length post-destuffing bytes from the
// transport. Stuffing removal can shrink a chunk, so the remaining
// deficit is recomputed after every read. A chunk ending in the escape
// byte is held back one byte so an escape sequence split across two reads
// is still reversed as a pair.
//
// A read that expires with no data aborts the whole accumulation: the
// partial buffer is discarded and the timeout error surfaces to the
// caller.
func (d *Device) readExactly(length int) ([]byte, error) {
	data := make([]byte, 0, length)
	var pending []byte

	for len(data) < length {
		raw, err := d.transport.Read(length - len(data))
		if err != nil {
			return nil, err
		}

		chunk := raw
		if len(pending) > 0 {
			chunk = append(pending, raw...)
			pending = nil
		}
		if n := len(chunk); n > 0 && chunk[n-1] == frame.Escape {
			pending = []byte{chunk[n-1]}
			chunk = chunk[:n-1]
		}

		data = append(data, frame.Unstuff(chunk)...)
	}
	// A held-back stray 0x7D that turns out not to open a recognized
	// escape sequence can push the accumulation one byte past the target.
	return data[:length], nil
}

// TransportFactory is a function type for creating transports
type TransportFactory func(path string) (Transport, error)

// ConnectOption represents a functional option for ConnectDevice
type ConnectOption func(*connectConfig) error

// connectConfig holds configuration options for device connection
type connectConfig struct {
	transportFactory TransportFactory
	deviceOptions    []Option
	timeout          time.Duration
	autoDetect       bool
}

// WithAutoDetection enables automatic serial port detection instead of
// using a specific path
func WithAutoDetection() ConnectOption {
	return func(c *connectConfig) error {
		c.autoDetect = true
		return nil
	}
}

// WithConnectTimeout sets the per-read deadline applied after connecting
func WithConnectTimeout(timeout time.Duration) ConnectOption {
	return func(c *connectConfig) error {
		c.timeout = timeout
		return nil
	}
}

// WithTransportFactory sets the transport factory function
func WithTransportFactory(factory TransportFactory) ConnectOption {
	return func(c *connectConfig) error {
		c.transportFactory = factory
		return nil
	}
}

// WithDeviceOptions adds device-level options
func WithDeviceOptions(opts ...Option) ConnectOption {
	return func(c *connectConfig) error {
		c.deviceOptions = append(c.deviceOptions, opts...)
		return nil
	}
}

// ConnectDevice creates an SPS30 device from a serial port path or
// auto-detection. The transport factory is injected to keep this package
// free of a dependency on any one transport implementation:
//
//	device, err := sps30.ConnectDevice("/dev/ttyUSB0",
//		sps30.WithTransportFactory(func(path string) (sps30.Transport, error) {
//			return uart.New(path)
//		}))
func ConnectDevice(path string, opts ...ConnectOption) (*Device, error) {
	config := &connectConfig{}
	for _, opt := range opts {
		if err := opt(config); err != nil {
			return nil, fmt.Errorf("failed to apply connect option: %w", err)
		}
	}

	if config.transportFactory == nil {
		return nil, errors.New("transport factory not provided")
	}

	if config.autoDetect || path == "" {
		detected, err := detection.DetectAll(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to detect serial ports: %w", err)
		}
		if len(detected) == 0 {
			return nil, ErrNoDeviceFound
		}
		path = detected[0].Path
	}

	transport, err := config.transportFactory(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create transport for path %s: %w", path, err)
	}

	device, err := New(transport, config.deviceOptions...)
	if err != nil {
		_ = transport.Close()
		return nil, err
	}

	if config.timeout > 0 {
		if err := device.SetTimeout(config.timeout); err != nil {
			_ = transport.Close()
			return nil, err
		}
	}

	return device, nil
}

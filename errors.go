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
)

// Sentinel errors returned by driver and transport operations
var (
	// ErrReadTimeout indicates a read deadline elapsed before the sensor
	// produced any data. Recoverable; the caller decides whether to retry.
	ErrReadTimeout = errors.New("read timeout")

	// ErrTransportRead indicates the transport failed while reading.
	ErrTransportRead = errors.New("transport read failed")

	// ErrTransportWrite indicates the transport failed while writing.
	ErrTransportWrite = errors.New("transport write failed")

	// ErrTransportClosed is returned by operations on a closed transport.
	ErrTransportClosed = errors.New("transport closed")

	// ErrCommunicationFailed indicates a command exchange could not be
	// completed for a reason other than a timeout.
	ErrCommunicationFailed = errors.New("communication failed")

	// ErrNoDeviceFound is returned by auto-detection when no candidate
	// serial port is present.
	ErrNoDeviceFound = errors.New("no serial device found")

	// ErrInvalidParameter indicates a configuration or argument error.
	ErrInvalidParameter = errors.New("invalid parameter")
)

// ErrorType classifies errors for retry decisions
type ErrorType int

const (
	// ErrorTypePermanent indicates an error that will not resolve on retry
	ErrorTypePermanent ErrorType = iota
	// ErrorTypeTransient indicates an error that may resolve on retry
	ErrorTypeTransient
	// ErrorTypeTimeout indicates a deadline expired before completion
	ErrorTypeTimeout
)

// TransportError wraps a transport failure with its operation and port
type TransportError struct {
	Err       error
	Op        string
	Port      string
	Type      ErrorType
	Retryable bool
}

func (e *TransportError) Error() string {
	if e.Port != "" {
		return fmt.Sprintf("transport %s on %s: %v", e.Op, e.Port, e.Err)
	}
	return fmt.Sprintf("transport %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// NewTransportError creates a TransportError with retryability derived
// from the error type.
func NewTransportError(op, port string, err error, errType ErrorType) *TransportError {
	return &TransportError{
		Op:        op,
		Port:      port,
		Err:       err,
		Type:      errType,
		Retryable: errType != ErrorTypePermanent,
	}
}

// NewTimeoutError creates a TransportError for an expired read deadline
func NewTimeoutError(op, port string) *TransportError {
	return &TransportError{
		Op:        op,
		Port:      port,
		Err:       ErrReadTimeout,
		Type:      ErrorTypeTimeout,
		Retryable: true,
	}
}

// DecodeError indicates a response payload could not be decoded for the
// named operation. The offending payload bytes are retained for debugging.
type DecodeError struct {
	Op     string
	Reason string
	Data   []byte
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %s", e.Op, e.Reason)
}

// IsRetryable reports whether an operation that failed with err is worth
// retrying. Timeouts and transient transport failures are retryable;
// decode failures and parameter errors are not.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return transportErr.Retryable
	}

	var decodeErr *DecodeError
	if errors.As(err, &decodeErr) {
		return false
	}

	switch {
	case errors.Is(err, ErrReadTimeout),
		errors.Is(err, ErrTransportRead),
		errors.Is(err, ErrTransportWrite),
		errors.Is(err, ErrCommunicationFailed):
		return true
	}
	return false
}

// GetErrorType returns the classification of err
func GetErrorType(err error) ErrorType {
	if err == nil {
		return ErrorTypePermanent
	}

	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return transportErr.Type
	}

	switch {
	case errors.Is(err, ErrReadTimeout):
		return ErrorTypeTimeout
	case errors.Is(err, ErrTransportRead),
		errors.Is(err, ErrTransportWrite),
		errors.Is(err, ErrCommunicationFailed):
		return ErrorTypeTransient
	}
	return ErrorTypePermanent
}

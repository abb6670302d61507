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
	"testing"
)

func TestIsRetryable(t *testing.T) {
	t.Parallel()
	tests := []struct {
		err  error
		name string
		want bool
	}{
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
		{
			name: "read timeout retryable",
			err:  ErrReadTimeout,
			want: true,
		},
		{
			name: "transport read retryable",
			err:  ErrTransportRead,
			want: true,
		},
		{
			name: "transport write retryable",
			err:  ErrTransportWrite,
			want: true,
		},
		{
			name: "communication failed retryable",
			err:  ErrCommunicationFailed,
			want: true,
		},
		{
			name: "wrapped timeout retryable",
			err:  fmt.Errorf("read response: %w", ErrReadTimeout),
			want: true,
		},
		{
			name: "invalid parameter not retryable",
			err:  ErrInvalidParameter,
			want: false,
		},
		{
			name: "no device found not retryable",
			err:  ErrNoDeviceFound,
			want: false,
		},
		{
			name: "decode error not retryable",
			err:  &DecodeError{Op: "serial number", Reason: "non-ASCII"},
			want: false,
		},
		{
			name: "unrelated error not retryable",
			err:  errors.New("something else"),
			want: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsRetryable(tt.err); got != tt.want {
				t.Errorf("IsRetryable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsRetryableTransportError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		transport *TransportError
		name      string
		want      bool
	}{
		{
			name:      "timeout error retryable",
			transport: NewTimeoutError("read", "/dev/ttyUSB0"),
			want:      true,
		},
		{
			name:      "transient error retryable",
			transport: NewTransportError("write", "/dev/ttyUSB0", errors.New("EAGAIN"), ErrorTypeTransient),
			want:      true,
		},
		{
			name:      "permanent error not retryable",
			transport: NewTransportError("open", "/dev/ttyUSB0", errors.New("no such file"), ErrorTypePermanent),
			want:      false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsRetryable(tt.transport); got != tt.want {
				t.Errorf("IsRetryable() = %v, want %v", got, tt.want)
			}
			// Wrapping must not change the verdict
			wrapped := fmt.Errorf("operation failed: %w", tt.transport)
			if got := IsRetryable(wrapped); got != tt.want {
				t.Errorf("IsRetryable(wrapped) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetErrorType(t *testing.T) {
	t.Parallel()
	tests := []struct {
		err  error
		name string
		want ErrorType
	}{
		{
			name: "nil error",
			err:  nil,
			want: ErrorTypePermanent,
		},
		{
			name: "read timeout",
			err:  ErrReadTimeout,
			want: ErrorTypeTimeout,
		},
		{
			name: "transport read",
			err:  ErrTransportRead,
			want: ErrorTypeTransient,
		},
		{
			name: "timeout transport error",
			err:  NewTimeoutError("read", "mock"),
			want: ErrorTypeTimeout,
		},
		{
			name: "decode error",
			err:  &DecodeError{Op: "firmware version", Reason: "short"},
			want: ErrorTypePermanent,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := GetErrorType(tt.err); got != tt.want {
				t.Errorf("GetErrorType() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTransportErrorUnwrap(t *testing.T) {
	t.Parallel()

	err := NewTimeoutError("read", "/dev/ttyUSB0")
	if !errors.Is(err, ErrReadTimeout) {
		t.Error("timeout error should unwrap to ErrReadTimeout")
	}
	want := "transport read on /dev/ttyUSB0: read timeout"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestDecodeErrorMessage(t *testing.T) {
	t.Parallel()

	err := &DecodeError{Op: "product type", Reason: "non-ASCII byte 0xc3 at offset 3"}
	want := "decode product type: non-ASCII byte 0xc3 at offset 3"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

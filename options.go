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

// Option is a functional option for configuring a Device
type Option func(*Device) error

// WithTimeout sets the per-read deadline for device operations
func WithTimeout(timeout time.Duration) Option {
	return func(d *Device) error {
		if timeout <= 0 {
			return ErrInvalidParameter
		}
		d.config.Timeout = timeout
		return nil
	}
}

// WithRetryConfig sets the retry policy reported by Device.RetryConfig.
// Operations themselves stay single-shot.
func WithRetryConfig(config *RetryConfig) Option {
	return func(d *Device) error {
		if config == nil {
			return ErrInvalidParameter
		}
		d.config.RetryConfig = config
		return nil
	}
}

// WithActivityIndicator registers a callback invoked once per request
// issued to the sensor. Hosts use it to drive a status LED or similar
// diagnostic; it must be fast and must not block.
func WithActivityIndicator(fn func()) Option {
	return func(d *Device) error {
		d.onActivity = fn
		return nil
	}
}

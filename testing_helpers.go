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
	"sync"
	"time"
)

// MockTransport is a scripted in-memory transport used in tests. Reads
// are served from a queue of chunks, one chunk per Read call, so tests
// can exercise fragmented responses and stuffing sequences split across
// read boundaries. An empty queue behaves like an expired read deadline.
type MockTransport struct {
	mu      sync.Mutex
	reads   [][]byte
	writes  [][]byte
	drains  int
	timeout time.Duration
	closed  bool

	// ReadErr, when set, is returned by every Read call
	ReadErr error
	// WriteErr, when set, is returned by every Write call
	WriteErr error
}

// NewMockTransport creates an empty mock transport
func NewMockTransport() *MockTransport {
	return &MockTransport{timeout: 2 * time.Second}
}

// QueueRead appends chunks to the read script. Each chunk is delivered by
// one Read call; a chunk larger than the caller's max is split and the
// remainder re-queued.
func (m *MockTransport) QueueRead(chunks ...[]byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range chunks {
		m.reads = append(m.reads, append([]byte(nil), c...))
	}
}

// Write records the frame and returns WriteErr if configured
func (m *MockTransport) Write(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return NewTransportError("write", "mock", ErrTransportClosed, ErrorTypePermanent)
	}
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.writes = append(m.writes, append([]byte(nil), data...))
	return nil
}

// Read pops the next scripted chunk, honoring the caller's max. With no
// chunks queued it reports a timeout, like a deadline expiring on a
// silent wire.
func (m *MockTransport) Read(max int) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil, NewTransportError("read", "mock", ErrTransportClosed, ErrorTypePermanent)
	}
	if m.ReadErr != nil {
		return nil, m.ReadErr
	}
	if len(m.reads) == 0 {
		return nil, NewTimeoutError("read", "mock")
	}

	chunk := m.reads[0]
	if len(chunk) > max {
		m.reads[0] = chunk[max:]
		chunk = chunk[:max]
	} else {
		m.reads = m.reads[1:]
	}
	return chunk, nil
}

// Drain records that it was called. Scripted chunks represent the
// sensor's reply to the upcoming command, so they stay queued.
func (m *MockTransport) Drain() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.drains++
	return nil
}

// Writes returns all frames written so far
func (m *MockTransport) Writes() [][]byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([][]byte, len(m.writes))
	copy(out, m.writes)
	return out
}

// DrainCount returns how many times Drain was called
func (m *MockTransport) DrainCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.drains
}

// PendingReads returns how many scripted chunks remain
func (m *MockTransport) PendingReads() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.reads)
}

// Close marks the transport closed
func (m *MockTransport) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// SetTimeout records the read deadline
func (m *MockTransport) SetTimeout(timeout time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.timeout = timeout
	return nil
}

// Timeout returns the last deadline passed to SetTimeout
func (m *MockTransport) Timeout() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.timeout
}

// IsConnected returns true until Close is called
func (m *MockTransport) IsConnected() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return !m.closed
}

// Type returns TransportMock
func (*MockTransport) Type() TransportType {
	return TransportMock
}

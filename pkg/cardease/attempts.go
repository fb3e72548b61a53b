// Copyright (c) 2024 BaseKit
// SPDX-License-Identifier: BSD-2-Clause

package cardease

import (
	"sync"
	"time"
)

// Attempt records the outcome of one endpoint exchange within a send.
type Attempt struct {
	Endpoint  string
	StartedAt time.Time
	Duration  time.Duration
	Err       error
}

// attemptLog keeps the per-endpoint outcomes of the most recent send.
// Process resets it at the start of each call.
type attemptLog struct {
	mu       sync.Mutex
	attempts []Attempt
}

func (l *attemptLog) reset() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.attempts = l.attempts[:0]
}

func (l *attemptLog) record(a Attempt) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.attempts = append(l.attempts, a)
}

func (l *attemptLog) snapshot() []Attempt {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Attempt, len(l.attempts))
	copy(out, l.attempts)
	return out
}

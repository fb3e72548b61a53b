// Copyright (c) 2024 BaseKit
// SPDX-License-Identifier: BSD-2-Clause

package cardease

import (
	"fmt"
	"net/url"
	"time"
)

const (
	// MinEndpointTimeout is the lowest per-endpoint timeout the payment
	// servers support. The gateway can take close to thirty seconds to
	// answer under load, so shorter timeouts would abandon exchanges
	// that were about to succeed.
	MinEndpointTimeout = 30 * time.Second

	// DefaultEndpointTimeout is applied when no timeout is given.
	DefaultEndpointTimeout = 45 * time.Second
)

// Endpoint is one payment-server URL with its exchange timeout.
// Clients try endpoints in order until an exchange succeeds.
type Endpoint struct {
	URL     string
	Timeout time.Duration
}

// NewEndpoint creates an endpoint. A zero timeout selects
// DefaultEndpointTimeout; timeouts below MinEndpointTimeout are
// rejected.
func NewEndpoint(rawURL string, timeout time.Duration) (Endpoint, error) {
	if rawURL == "" {
		return Endpoint{}, fmt.Errorf("cardease: endpoint URL is required")
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return Endpoint{}, fmt.Errorf("cardease: invalid endpoint URL %q: %w", rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return Endpoint{}, fmt.Errorf("cardease: endpoint URL %q must use http or https", rawURL)
	}

	if timeout == 0 {
		timeout = DefaultEndpointTimeout
	}
	if timeout < MinEndpointTimeout {
		return Endpoint{}, fmt.Errorf("cardease: endpoint timeout %v is below the %v minimum", timeout, MinEndpointTimeout)
	}

	return Endpoint{URL: rawURL, Timeout: timeout}, nil
}

// MustEndpoint is like NewEndpoint but panics on error. It is intended
// for wiring well-known endpoint constants.
func MustEndpoint(rawURL string, timeout time.Duration) Endpoint {
	ep, err := NewEndpoint(rawURL, timeout)
	if err != nil {
		panic(err)
	}
	return ep
}

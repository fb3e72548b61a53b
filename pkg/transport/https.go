// Copyright (c) 2024 BaseKit
// SPDX-License-Identifier: BSD-2-Clause

package transport

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// TLS version constants
const (
	TLS12 = tls.VersionTLS12
	TLS13 = tls.VersionTLS13
)

// Recommended TLS 1.2 cipher suites
var RecommendedTLS12CipherSuites = []uint16{
	tls.TLS_ECDHE_ECDSA_WITH_AES_256_GCM_SHA384,
	tls.TLS_ECDHE_ECDSA_WITH_AES_128_GCM_SHA256,
	tls.TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384,
	tls.TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256,
}

// TransportError reports a failed exchange with one endpoint: a
// connection or timeout failure, a non-200 status, or an empty response
// body. The failover client recovers from it by moving to the next
// endpoint.
type TransportError struct {
	URL    string
	Status int
	Reason string
	Err    error
}

func (e *TransportError) Error() string {
	msg := fmt.Sprintf("cardease: transport %s: %s", e.URL, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// HTTPSConfig contains HTTPS client configuration.
type HTTPSConfig struct {
	MinTLSVersion   uint16
	MaxTLSVersion   uint16
	CipherSuites    []uint16
	RootCAs         *x509.CertPool
	IdleConnTimeout time.Duration

	// Proxy settings. Credentials are optional; a proxy is used only
	// when ProxyHost is set.
	ProxyHost     string
	ProxyPort     int
	ProxyUserName string
	ProxyPassword string
}

// DefaultHTTPSConfig returns a default HTTPS configuration.
func DefaultHTTPSConfig() *HTTPSConfig {
	return &HTTPSConfig{
		MinTLSVersion:   TLS12,
		MaxTLSVersion:   TLS13,
		CipherSuites:    RecommendedTLS12CipherSuites,
		IdleConnTimeout: 90 * time.Second,
	}
}

// HTTPSClient submits CardEaseXML documents over HTTPS.
type HTTPSClient struct {
	client *http.Client
	config *HTTPSConfig
}

// NewHTTPSClient creates a new HTTPS client.
func NewHTTPSClient(config *HTTPSConfig) *HTTPSClient {
	if config == nil {
		config = DefaultHTTPSConfig()
	}

	tlsConfig := &tls.Config{
		MinVersion:   config.MinTLSVersion,
		MaxVersion:   config.MaxTLSVersion,
		CipherSuites: config.CipherSuites,
		RootCAs:      config.RootCAs,
	}

	transport := &http.Transport{
		TLSClientConfig:     tlsConfig,
		IdleConnTimeout:     config.IdleConnTimeout,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
	}

	if config.ProxyHost != "" {
		proxy := &url.URL{
			Scheme: "http",
			Host:   config.ProxyHost + ":" + strconv.Itoa(config.ProxyPort),
		}
		if config.ProxyUserName != "" {
			proxy.User = url.UserPassword(config.ProxyUserName, config.ProxyPassword)
		}
		transport.Proxy = http.ProxyURL(proxy)
	}

	return &HTTPSClient{
		// Timeouts are per-endpoint and applied through the request
		// context by the caller.
		client: &http.Client{Transport: transport},
		config: config,
	}
}

// Send posts a CardEaseXML document to the endpoint and returns the
// raw response body. The timeout bounds the whole exchange. Any
// connection failure, non-200 status or empty body is reported as a
// TransportError.
func (c *HTTPSClient) Send(ctx context.Context, endpoint string, document []byte, timeout time.Duration) ([]byte, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(document))
	if err != nil {
		return nil, &TransportError{URL: endpoint, Reason: "failed to create request", Err: err}
	}

	req.Header.Set("Content-Type", "text/xml")
	req.Header.Set("User-Agent", "CardEaseXMLClient-Go/1.0")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &TransportError{URL: endpoint, Reason: "failed to send request", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body) //nolint:errcheck // draining for connection reuse
		return nil, &TransportError{URL: endpoint, Status: resp.StatusCode, Reason: fmt.Sprintf("unexpected status code %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{URL: endpoint, Reason: "failed to read response", Err: err}
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return nil, &TransportError{URL: endpoint, Status: resp.StatusCode, Reason: "empty response body"}
	}

	return body, nil
}

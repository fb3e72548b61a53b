// Copyright (c) 2024 BaseKit
// SPDX-License-Identifier: BSD-2-Clause

/*
Package transport implements the HTTPS transport used to exchange
CardEaseXML documents with the payment servers.

Documents are posted with Content-Type text/xml and the raw response
body is returned to the caller for decoding. Any connection failure,
non-200 status or empty body is reported as a *TransportError so the
failover client can move on to the next endpoint.

# TLS Configuration

The package defaults to TLS 1.3 with fallback to TLS 1.2:

	config := transport.DefaultHTTPSConfig()
	// MinTLSVersion: TLS 1.2
	// MaxTLSVersion: TLS 1.3

For TLS 1.2, the following cipher suites are used:
  - TLS_ECDHE_ECDSA_WITH_AES_256_GCM_SHA384
  - TLS_ECDHE_ECDSA_WITH_AES_128_GCM_SHA256
  - TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384
  - TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256

# Client Usage

Create a client and post a document:

	client := transport.NewHTTPSClient(&transport.HTTPSConfig{
	    MinTLSVersion: transport.TLS12,
	    RootCAs:       certPool,
	})

	body, err := client.Send(ctx, "https://live.cardeasexml.com/generic.cex", document, 45*time.Second)

# Proxies

Outbound requests can be routed through an HTTP proxy, with optional
basic-auth credentials:

	config := transport.DefaultHTTPSConfig()
	config.ProxyHost = "proxy.internal"
	config.ProxyPort = 3128
*/
package transport

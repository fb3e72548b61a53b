// Copyright (c) 2024 BaseKit
// SPDX-License-Identifier: BSD-2-Clause

package cardease

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/basekit/cardease/pkg/message"
	"github.com/basekit/cardease/pkg/transport"
)

// ErrNoEndpoints is returned by Process when the client was built
// without any endpoints.
var ErrNoEndpoints = errors.New("cardease: no endpoints configured")

// Client submits CardEaseXML requests to an ordered list of redundant
// payment servers, failing over to the next endpoint when an exchange
// cannot complete.
type Client struct {
	endpoints  []Endpoint
	httpClient *transport.HTTPSClient
	logger     *slog.Logger
	attempts   attemptLog
}

// ClientConfig holds client configuration.
type ClientConfig struct {
	// Endpoints are tried in order. At least one is required to send.
	Endpoints []Endpoint

	// HTTPSConfig customizes TLS and proxy settings; nil selects
	// transport.DefaultHTTPSConfig.
	HTTPSConfig *transport.HTTPSConfig

	// Logger receives structured send diagnostics; nil selects
	// slog.Default.
	Logger *slog.Logger
}

// NewClient creates a new CardEaseXML client.
func NewClient(config *ClientConfig) (*Client, error) {
	if config == nil {
		return nil, fmt.Errorf("cardease: config is required")
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		endpoints:  config.Endpoints,
		httpClient: transport.NewHTTPSClient(config.HTTPSConfig),
		logger:     logger,
	}, nil
}

// Process validates the request, serializes it and posts it to each
// endpoint in turn until one exchange completes. A completed exchange
// is a 200 response with a non-empty body; its document is decoded and
// returned whatever the transaction outcome, so a declined payment is
// a successful call. Transport failures advance to the next endpoint;
// the last one is returned once every endpoint has been tried. Context
// cancellation aborts without trying further endpoints.
func (c *Client) Process(ctx context.Context, req *message.Request) (*message.Response, error) {
	if len(c.endpoints) == 0 {
		return nil, ErrNoEndpoints
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	c.attempts.reset()

	log := c.logger.With(
		slog.String("correlation_id", uuid.NewString()),
		slog.String("request_type", string(req.RequestType)))

	var lastErr error
	for i, ep := range c.endpoints {
		document, err := req.Serialize()
		if err != nil {
			return nil, fmt.Errorf("cardease: failed to serialize request: %w", err)
		}

		log.Debug("sending request",
			slog.String("endpoint", ep.URL),
			slog.Int("attempt", i+1))

		start := time.Now()
		body, err := c.httpClient.Send(ctx, ep.URL, []byte(document), ep.Timeout)
		c.attempts.record(Attempt{
			Endpoint:  ep.URL,
			StartedAt: start,
			Duration:  time.Since(start),
			Err:       err,
		})

		if err != nil {
			if ctx.Err() != nil {
				log.Warn("send aborted",
					slog.String("endpoint", ep.URL),
					slog.String("error", ctx.Err().Error()))
				return nil, fmt.Errorf("cardease: send aborted: %w", err)
			}

			log.Warn("endpoint failed",
				slog.String("endpoint", ep.URL),
				slog.Int("attempt", i+1),
				slog.String("error", err.Error()))
			lastErr = err
			continue
		}

		resp, err := message.Decode(body)
		if err != nil {
			return nil, fmt.Errorf("cardease: failed to decode response: %w", err)
		}

		log.Info("request processed",
			slog.String("endpoint", ep.URL),
			slog.String("result", string(resp.ResultCode)),
			slog.Duration("duration", time.Since(start)))

		return resp, nil
	}

	log.Error("all endpoints failed",
		slog.Int("endpoints", len(c.endpoints)),
		slog.String("error", lastErr.Error()))

	return nil, fmt.Errorf("cardease: all %d endpoints failed: %w", len(c.endpoints), lastErr)
}

// LastAttempts returns the per-endpoint outcomes of the most recent
// Process call, in the order the endpoints were tried.
func (c *Client) LastAttempts() []Attempt {
	return c.attempts.snapshot()
}

// Copyright (c) 2024 BaseKit
// SPDX-License-Identifier: BSD-2-Clause

/*
Package cardease provides the failover client for submitting
CardEaseXML requests to the payment servers.

A Client holds an ordered list of redundant endpoints. Process
validates the request once, then tries each endpoint in turn: a 200
response with a non-empty body is decoded and returned immediately,
whatever the transaction outcome; connection failures, error statuses
and empty bodies advance to the next endpoint.

# Usage

	client, err := cardease.NewClient(&cardease.ClientConfig{
	    Endpoints: []cardease.Endpoint{
	        cardease.MustEndpoint("https://live.cardeasexml.com/generic.cex", 0),
	        cardease.MustEndpoint("https://live2.cardeasexml.com/generic.cex", 0),
	    },
	})
	if err != nil {
	    log.Fatal(err)
	}

	req := message.NewRequest()
	req.TerminalID = "99999999"
	req.TransactionKey = os.Getenv("CARDEASE_KEY")
	// ... populate card and transaction details ...

	resp, err := client.Process(ctx, req)
	if err != nil {
	    log.Fatal(err)
	}
	if resp.ResultCode == message.ResultApproved {
	    fmt.Println("approved:", resp.AuthCode)
	}

# Configuration

Endpoints and proxy settings can also be loaded from a YAML file with
environment-variable expansion; see LoadConfig and Config.NewClient.

# Diagnostics

After a Process call, LastAttempts reports the outcome of every
endpoint exchange (URL, duration, error) for logging or alerting.
*/
package cardease

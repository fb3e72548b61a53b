// Copyright (c) 2024 BaseKit
// SPDX-License-Identifier: BSD-2-Clause

/*
Package cardease implements a client SDK for the CardEaseXML protocol,
a client-server framework for processing credit and debit card
transactions over an internet connection.

# Overview

CardEaseXML servers accept XML formatted messages describing card
transactions: authorisations, confirmations, offline transactions,
pre-authorisations, refunds, voids and ICC key management. This SDK
builds those messages, validates them against the protocol's business
rules, submits them to the redundant server estate, and decodes the XML
response into a typed result.

# Package Structure

	github.com/basekit/cardease/pkg/cardease   - Client, endpoints and configuration
	github.com/basekit/cardease/pkg/message    - Request/Response model and codec
	github.com/basekit/cardease/pkg/transport  - HTTP transport

# Basic Usage

	req := message.NewRequest()
	req.RequestType = message.RequestTypeAuth
	req.TerminalID = "99999999"
	req.TransactionKey = "DtsJ7FFs9Jw8N5Hk"
	req.SoftwareName = "ExampleTill"
	req.SoftwareVersion = "2.4"
	req.Amount = "1.23"
	req.AmountUnit = message.AmountUnitMajor
	req.CurrencyCode = "GBP"
	req.PAN = "4111111111111111"
	req.ExpiryDate = "2912"
	req.ExpiryDateFormat = "yyMM"

	client := cardease.NewClient(&cardease.ClientConfig{
		Endpoints: []cardease.Endpoint{
			cardease.MustEndpoint("https://test.cardeasexml.com/generic.cex", 45*time.Second),
		},
	})

	resp, err := client.Process(ctx, req)
	if err != nil {
		// validation, transport or decode failure
	}
	if resp.ResultCode == message.ResultApproved {
		// approved; resp.AuthCode and resp.CardEaseReference are set
	}

Each of the configured server endpoints is contacted in turn until a
successful exchange is made. A decoded decline is a successful exchange;
only transport-level failures advance to the next endpoint.
*/
package cardease

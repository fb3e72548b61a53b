// Copyright (c) 2024 BaseKit
// SPDX-License-Identifier: BSD-2-Clause

/*
Package message implements the CardEaseXML request and response model.

# Requests

A Request collects the fields of one transaction. NewRequest applies
the protocol defaults; the caller sets the terminal credentials, the
transaction fields and exactly one card-detail variant:

	req := message.NewRequest()
	req.RequestType = message.RequestTypeAuth
	req.TerminalID = "99999999"
	req.TransactionKey = "DtsJ7FFs9Jw8N5Hk"
	req.SoftwareName = "ExampleTill"
	req.SoftwareVersion = "2.4"
	req.Amount = "123"
	req.CurrencyCode = "GBP"
	req.PAN = "4111111111111111"
	req.ExpiryDate = "2912"

Validate checks the request against the protocol's business rules and
Serialize renders it as a CardEaseXML document. The client calls both;
they are exported so requests can be checked and inspected without a
network round trip.

# Responses

Decode parses a response document into a Response. The decoder
dispatches on the exact tag path and ignores elements it does not know,
so it tolerates server-side additions. It fails only on malformed XML
or on a code outside one of the protocol's closed enumerations.

# Enumerations

The protocol's closed code sets (request type, result code, error code,
verification result and the rest) are string-valued types with
case-insensitive Parse functions. An unrecognized code is reported as
an UnknownValueError, never mapped to a default.
*/
package message

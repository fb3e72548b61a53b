// Copyright (c) 2024 BaseKit
// SPDX-License-Identifier: BSD-2-Clause

package message

// Response is the decoded result of one CardEaseXML exchange. It is
// constructed by Decode and thereafter read-only. Which fields are
// populated depends on the request type and on what the merchant
// account is configured to return.
type Response struct {
	// ServerName and ServerVersion identify the responding server.
	ServerName    string
	ServerVersion string

	ResultCode ResultCode
	AuthCode   string
	// Duplicate reports that the server matched this transaction
	// against one it has already processed.
	Duplicate bool
	Errors    []Error

	CardEaseReference   string
	UserReference       string
	LocalDateTime       string
	LocalDateTimeFormat string

	// Issuer verification outcomes, with the raw acquirer data when
	// the account is configured to return it.
	AddressResult       VerificationResult
	AddressResponseData string
	CSCResult           VerificationResult
	CSCResponseData     string
	ZipCodeResult       VerificationResult
	ZipCodeResponseData string

	// Card details echoed back by the server, usually masked.
	CardScheme       string
	PAN              string
	ExpiryDate       string
	ExpiryDateFormat string
	StartDate        string
	StartDateFormat  string
	IssueNumber      string
	CardHash         string
	CardReference    string

	ICCType string
	ICCTags []ICCTag

	// ICC public keys delivered by an ICC management request.
	ICCPublicKeyType            string
	ICCPublicKeyContent         string
	ICCPublicKeyClearExisting   bool
	ICCPublicKeyReplaceExisting bool
	ICCCertificationAuthorities []CertificationAuthority

	// Geolocation of the originating IP address.
	GeoIPCity            string
	GeoIPContinent       string
	GeoIPContinentAlpha2 string
	GeoIPCountry         string
	GeoIPCountryAlpha2   string
	GeoIPCountryCode     string
	GeoIPRegion          string
	GeoIPRegionCode      string
	GeoIPZipCode         string
	GeoIPIsBlackListed   bool
	GeoIPIsKnownProxy    bool
}

func newResponse() *Response {
	return &Response{
		ResultCode:    ResultEmpty,
		AddressResult: VerificationEmpty,
		CSCResult:     VerificationEmpty,
		ZipCodeResult: VerificationEmpty,
	}
}

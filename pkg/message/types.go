// Copyright (c) 2024 BaseKit
// SPDX-License-Identifier: BSD-2-Clause

package message

// Address is a postal address attached to a card holder, delivery or
// invoice section of a request.
type Address struct {
	// Recipient lines name the person or company at the address.
	Recipient []string
	// Lines are the street address lines.
	Lines   []string
	City    string
	State   string
	ZipCode string
	Country string
}

// IsEmpty reports whether no part of the address is set.
func (a Address) IsEmpty() bool {
	return len(a.Recipient) == 0 && len(a.Lines) == 0 &&
		a.City == "" && a.State == "" && a.ZipCode == "" && a.Country == ""
}

// Name is a contact name split into its salutation parts.
type Name struct {
	Title     string
	FirstName string
	Initials  string
	LastName  string
}

// IsEmpty reports whether no part of the name is set.
func (n Name) IsEmpty() bool {
	return n.Title == "" && n.FirstName == "" && n.Initials == "" && n.LastName == ""
}

// PhoneNumber is a contact phone number with its classification.
type PhoneNumber struct {
	Number string
	Type   PhoneNumberType
}

// EmailAddress is a contact email address with its classification.
type EmailAddress struct {
	Address string
	Type    EmailAddressType
}

// ExtendedProperty is a free-form name/value pair forwarded to the
// server unchanged.
type ExtendedProperty struct {
	Name  string
	Value string
}

// Product is a single line item on the transaction.
type Product struct {
	Amount       string
	AmountUnit   AmountUnit
	Category     string
	Code         string
	CurrencyCode string
	Description  string
	Name         string
	Quantity     string
	Risk         ProductRisk
	Type         string
}

// NewProduct returns a Product with the protocol defaults applied.
func NewProduct() Product {
	return Product{
		AmountUnit: AmountUnitMinor,
		Risk:       ProductRiskMedium,
	}
}

// ICCTag is a single EMV tag presented by the chip, or returned to it.
// A nil Value is invalid on a request; an empty string is a legitimate
// tag value.
type ICCTag struct {
	ID    string
	Type  ICCTagValueType
	Value *string
}

// NewICCTag returns an ICCTag carrying an ASCII-hex encoded value.
func NewICCTag(id, value string) ICCTag {
	return ICCTag{ID: id, Type: ICCTagValueAsciiHex, Value: &value}
}

// PublicKey is one ICC certification authority public key delivered by
// an ICC management response.
type PublicKey struct {
	Index           string
	Hash            string
	HashAlgorithm   string
	Algorithm       string
	Exponent        string
	Modulus         string
	ValidFromDate   string
	ValidFromFormat string
	ValidToDate     string
	ValidToFormat   string
}

// CertificationAuthority groups the public keys issued under one
// registered application provider identifier.
type CertificationAuthority struct {
	Description string
	RID         string
	PublicKeys  []PublicKey
}

// Error is a single processing error reported by the server. A response
// can carry several.
type Error struct {
	Code    ErrorCode
	Message string
}

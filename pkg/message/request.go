// Copyright (c) 2024 BaseKit
// SPDX-License-Identifier: BSD-2-Clause

package message

// ProtocolVersion is the CardEaseXML protocol revision spoken by this
// SDK. It is carried in the version attribute of every request.
const ProtocolVersion = "1.1.0"

// Request is a single CardEaseXML transaction request. Construct it
// with NewRequest so the protocol defaults are in place, populate the
// fields the transaction needs, then hand it to the client.
//
// A Request supplies card details in exactly one of three ways: ICC
// tags read from a chip, magnetic stripe tracks, or a manually keyed
// PAN (or a CardReference/CardHash pair retained from an earlier
// transaction). Validate enforces that rule for the request types that
// carry card details.
type Request struct {
	RequestType RequestType
	// AutoConfirm asks the server to confirm an authorisation
	// immediately, removing the need for a follow-up Conf request.
	AutoConfirm bool

	// Terminal identification.
	TerminalID       string
	TransactionKey   string
	SoftwareName     string
	SoftwareVersion  string
	MachineReference string

	// Transaction details.
	Amount            string
	AmountUnit        AmountUnit
	CurrencyCode      string
	BatchReference    string
	CardEaseReference string
	UserReference     string
	VoidReason        VoidReason
	ICCFunction       string

	// OfflineDateTime is the local time at which an offline
	// transaction was captured, expressed in OfflineDateTimeFormat.
	OfflineDateTime       string
	OfflineDateTimeFormat string

	// OriginatingIPAddress is the IPv4 address of the card holder for
	// e-commerce transactions, used for geolocation checks.
	OriginatingIPAddress string

	// Manually keyed card details.
	PAN              string
	ExpiryDate       string
	ExpiryDateFormat string
	StartDate        string
	StartDateFormat  string
	IssueNumber      string
	CardReference    string
	CardHash         string
	ManualType       string

	// Magnetic stripe card details.
	Track1        string
	Track2        string
	Track3        string
	TrackFallback bool

	// ICC card details.
	ICCType string
	ICCTags []ICCTag

	// Additional verification values checked by the issuer.
	CSC                 string
	VerificationAddress string
	VerificationZipCode string

	// Card holder contact details.
	CardHolderAddress        Address
	CardHolderName           Name
	CardHolderEmailAddresses []EmailAddress
	CardHolderPhoneNumbers   []PhoneNumber

	// Delivery contact details.
	DeliveryAddress        Address
	DeliveryName           Name
	DeliveryEmailAddresses []EmailAddress
	DeliveryPhoneNumbers   []PhoneNumber

	// Invoice contact details.
	InvoiceAddress        Address
	InvoiceName           Name
	InvoiceEmailAddresses []EmailAddress
	InvoicePhoneNumbers   []PhoneNumber

	Products           []Product
	ExtendedProperties []ExtendedProperty

	// 3-D Secure authentication results obtained from an MPI.
	CardHolderEnrolled CardHolderEnrolled
	TransactionStatus  TransactionStatus
	ECI                string
	IAV                string
	IAVAlgorithm       string
	IAVFormat          IAVFormat
	XID                string
	XIDFormat          XIDFormat

	// Encoding selects the character encoding of the wire document.
	Encoding XMLEncoding

	version string
}

// NewRequest returns a Request with the protocol defaults applied: an
// Auth request with minor-unit amounts, yyMM card dates, EMV ICC data
// and a UTF-8 wire encoding.
func NewRequest() *Request {
	return &Request{
		RequestType:           RequestTypeAuth,
		AmountUnit:            AmountUnitMinor,
		ExpiryDateFormat:      "yyMM",
		StartDateFormat:       "yyMM",
		ICCType:               "EMV",
		ManualType:            "cnp",
		OfflineDateTimeFormat: "ddMMyy HHmmss",
		VoidReason:            VoidReasonEmpty,
		CardHolderEnrolled:    EnrolledEmpty,
		TransactionStatus:     TransactionStatusEmpty,
		IAVFormat:             IAVFormatBase64,
		XIDFormat:             XIDFormatAscii,
		Encoding:              EncodingUTF8,
		version:               ProtocolVersion,
	}
}

// Version returns the protocol revision the request will be sent as.
func (r *Request) Version() string {
	if r.version == "" {
		return ProtocolVersion
	}
	return r.version
}

// AddICCTag appends an ASCII-hex encoded EMV tag.
func (r *Request) AddICCTag(id, value string) {
	r.ICCTags = append(r.ICCTags, NewICCTag(id, value))
}

// AddProduct appends a line item.
func (r *Request) AddProduct(p Product) {
	r.Products = append(r.Products, p)
}

// AddExtendedProperty appends a free-form property forwarded to the
// server unchanged.
func (r *Request) AddExtendedProperty(name, value string) {
	r.ExtendedProperties = append(r.ExtendedProperties, ExtendedProperty{Name: name, Value: value})
}

// AddCardHolderEmailAddress appends a card holder email address.
func (r *Request) AddCardHolderEmailAddress(address string, typ EmailAddressType) {
	r.CardHolderEmailAddresses = append(r.CardHolderEmailAddresses, EmailAddress{Address: address, Type: typ})
}

// AddCardHolderPhoneNumber appends a card holder phone number.
func (r *Request) AddCardHolderPhoneNumber(number string, typ PhoneNumberType) {
	r.CardHolderPhoneNumbers = append(r.CardHolderPhoneNumbers, PhoneNumber{Number: number, Type: typ})
}

// AddDeliveryEmailAddress appends a delivery contact email address.
func (r *Request) AddDeliveryEmailAddress(address string, typ EmailAddressType) {
	r.DeliveryEmailAddresses = append(r.DeliveryEmailAddresses, EmailAddress{Address: address, Type: typ})
}

// AddDeliveryPhoneNumber appends a delivery contact phone number.
func (r *Request) AddDeliveryPhoneNumber(number string, typ PhoneNumberType) {
	r.DeliveryPhoneNumbers = append(r.DeliveryPhoneNumbers, PhoneNumber{Number: number, Type: typ})
}

// AddInvoiceEmailAddress appends an invoice contact email address.
func (r *Request) AddInvoiceEmailAddress(address string, typ EmailAddressType) {
	r.InvoiceEmailAddresses = append(r.InvoiceEmailAddresses, EmailAddress{Address: address, Type: typ})
}

// AddInvoicePhoneNumber appends an invoice contact phone number.
func (r *Request) AddInvoicePhoneNumber(number string, typ PhoneNumberType) {
	r.InvoicePhoneNumbers = append(r.InvoicePhoneNumbers, PhoneNumber{Number: number, Type: typ})
}

// hasICCDetails reports whether chip card details are present.
func (r *Request) hasICCDetails() bool {
	return len(r.ICCTags) > 0
}

// hasTrackDetails reports whether magnetic stripe details are present.
// Track 2 alone is sufficient for processing.
func (r *Request) hasTrackDetails() bool {
	return r.Track2 != ""
}

// hasManualDetails reports whether keyed or retained card details are
// present.
func (r *Request) hasManualDetails() bool {
	return r.PAN != "" || r.CardReference != "" || r.CardHash != ""
}

// hasCardDetails reports whether any card detail variant is present.
func (r *Request) hasCardDetails() bool {
	return r.hasICCDetails() || r.hasTrackDetails() || r.hasManualDetails()
}

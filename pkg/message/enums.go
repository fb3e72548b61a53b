// Copyright (c) 2024 BaseKit
// SPDX-License-Identifier: BSD-2-Clause

package message

import (
	"fmt"
	"strings"
)

// UnknownValueError reports a code outside one of the protocol's closed
// enumerations. It usually indicates a protocol version mismatch with
// the server.
type UnknownValueError struct {
	Kind string
	Code string
}

func (e *UnknownValueError) Error() string {
	return fmt.Sprintf("cardease: unknown %s code %q", e.Kind, e.Code)
}

// RequestType identifies the kind of transaction being requested.
type RequestType string

const (
	RequestTypeAuth          RequestType = "Auth"
	RequestTypeConf          RequestType = "Conf"
	RequestTypeICCManagement RequestType = "ICCManagement"
	RequestTypeOffline       RequestType = "Offline"
	RequestTypePreAuth       RequestType = "PreAuth"
	RequestTypeRefund        RequestType = "Refund"
	RequestTypeTest          RequestType = "Test"
	RequestTypeVoid          RequestType = "Void"
)

var requestTypes = []RequestType{
	RequestTypeAuth, RequestTypeConf, RequestTypeICCManagement,
	RequestTypeOffline, RequestTypePreAuth, RequestTypeRefund,
	RequestTypeTest, RequestTypeVoid,
}

// ParseRequestType parses a request type code case-insensitively.
func ParseRequestType(code string) (RequestType, error) {
	for _, v := range requestTypes {
		if strings.EqualFold(code, string(v)) {
			return v, nil
		}
	}
	return "", &UnknownValueError{Kind: "request type", Code: code}
}

// ResultCode is the overall outcome reported by the CardEase platform.
type ResultCode string

const (
	ResultEmpty    ResultCode = "-1"
	ResultApproved ResultCode = "0"
	ResultDeclined ResultCode = "1"
	ResultTestOK   ResultCode = "99"
)

var resultCodes = []ResultCode{ResultEmpty, ResultApproved, ResultDeclined, ResultTestOK}

// ParseResultCode parses a result code from a response.
func ParseResultCode(code string) (ResultCode, error) {
	for _, v := range resultCodes {
		if strings.EqualFold(code, string(v)) {
			return v, nil
		}
	}
	return "", &UnknownValueError{Kind: "result", Code: code}
}

// VerificationResult is the outcome of an address, CSC or zip check
// performed by the issuer.
type VerificationResult string

const (
	VerificationEmpty        VerificationResult = "-1"
	VerificationMatched      VerificationResult = "matched"
	VerificationNotChecked   VerificationResult = "notchecked"
	VerificationNotMatched   VerificationResult = "notmatched"
	VerificationNotSupplied  VerificationResult = "notsupplied"
	VerificationPartialMatch VerificationResult = "partialmatch"
)

var verificationResults = []VerificationResult{
	VerificationEmpty, VerificationMatched, VerificationNotChecked,
	VerificationNotMatched, VerificationNotSupplied, VerificationPartialMatch,
}

// ParseVerificationResult parses an issuer verification outcome.
func ParseVerificationResult(code string) (VerificationResult, error) {
	for _, v := range verificationResults {
		if strings.EqualFold(code, string(v)) {
			return v, nil
		}
	}
	return "", &UnknownValueError{Kind: "verification result", Code: code}
}

// AmountUnit says whether an amount is expressed in major units (1.23)
// or minor units (123).
type AmountUnit string

const (
	AmountUnitMajor AmountUnit = "major"
	AmountUnitMinor AmountUnit = "minor"
)

// ParseAmountUnit parses an amount unit.
func ParseAmountUnit(code string) (AmountUnit, error) {
	for _, v := range []AmountUnit{AmountUnitMajor, AmountUnitMinor} {
		if strings.EqualFold(code, string(v)) {
			return v, nil
		}
	}
	return "", &UnknownValueError{Kind: "amount unit", Code: code}
}

// ICCTagValueType describes how an ICC tag value is encoded.
type ICCTagValueType string

const (
	ICCTagValueAsciiHex ICCTagValueType = "asciihex"
	ICCTagValueString   ICCTagValueType = "string"
)

// ParseICCTagValueType parses an ICC tag value encoding.
func ParseICCTagValueType(code string) (ICCTagValueType, error) {
	for _, v := range []ICCTagValueType{ICCTagValueAsciiHex, ICCTagValueString} {
		if strings.EqualFold(code, string(v)) {
			return v, nil
		}
	}
	return "", &UnknownValueError{Kind: "ICC tag value type", Code: code}
}

// VoidReason is the reason a transaction is being made void.
type VoidReason string

const (
	VoidReasonEmpty                VoidReason = "-1"
	VoidReasonTransactionFailure   VoidReason = "01"
	VoidReasonPrintFailure         VoidReason = "02"
	VoidReasonVendFailure          VoidReason = "03"
	VoidReasonResetOrPowerFailure  VoidReason = "04"
	VoidReasonCommunicationFailure VoidReason = "05"
)

var voidReasons = []VoidReason{
	VoidReasonEmpty, VoidReasonTransactionFailure, VoidReasonPrintFailure,
	VoidReasonVendFailure, VoidReasonResetOrPowerFailure, VoidReasonCommunicationFailure,
}

// ParseVoidReason parses a void reason code.
func ParseVoidReason(code string) (VoidReason, error) {
	for _, v := range voidReasons {
		if strings.EqualFold(code, string(v)) {
			return v, nil
		}
	}
	return "", &UnknownValueError{Kind: "void reason", Code: code}
}

// CardHolderEnrolled is the 3-D Secure enrollment check outcome.
type CardHolderEnrolled string

const (
	EnrolledEmpty   CardHolderEnrolled = "-1"
	EnrolledNo      CardHolderEnrolled = "No"
	EnrolledNone    CardHolderEnrolled = "None"
	EnrolledUnknown CardHolderEnrolled = "Unknown"
	EnrolledYes     CardHolderEnrolled = "Yes"
)

var enrolledValues = []CardHolderEnrolled{
	EnrolledEmpty, EnrolledNo, EnrolledNone, EnrolledUnknown, EnrolledYes,
}

// ParseCardHolderEnrolled parses a 3-D Secure enrollment outcome.
func ParseCardHolderEnrolled(code string) (CardHolderEnrolled, error) {
	for _, v := range enrolledValues {
		if strings.EqualFold(code, string(v)) {
			return v, nil
		}
	}
	return "", &UnknownValueError{Kind: "3-D Secure enrollment", Code: code}
}

// TransactionStatus is the 3-D Secure authentication outcome.
type TransactionStatus string

const (
	TransactionStatusEmpty      TransactionStatus = "-1"
	TransactionStatusAttempted  TransactionStatus = "Attempted"
	TransactionStatusFailed     TransactionStatus = "Failed"
	TransactionStatusNone       TransactionStatus = "None"
	TransactionStatusSuccessful TransactionStatus = "Successful"
	TransactionStatusUnknown    TransactionStatus = "Unknown"
)

var transactionStatuses = []TransactionStatus{
	TransactionStatusEmpty, TransactionStatusAttempted, TransactionStatusFailed,
	TransactionStatusNone, TransactionStatusSuccessful, TransactionStatusUnknown,
}

// ParseTransactionStatus parses a 3-D Secure authentication outcome.
func ParseTransactionStatus(code string) (TransactionStatus, error) {
	for _, v := range transactionStatuses {
		if strings.EqualFold(code, string(v)) {
			return v, nil
		}
	}
	return "", &UnknownValueError{Kind: "3-D Secure transaction status", Code: code}
}

// IAVFormat is the encoding of the 3-D Secure authentication value.
type IAVFormat string

const (
	IAVFormatAsciiHex IAVFormat = "asciihex"
	IAVFormatBase64   IAVFormat = "base64"
)

// ParseIAVFormat parses an IAV encoding.
func ParseIAVFormat(code string) (IAVFormat, error) {
	for _, v := range []IAVFormat{IAVFormatAsciiHex, IAVFormatBase64} {
		if strings.EqualFold(code, string(v)) {
			return v, nil
		}
	}
	return "", &UnknownValueError{Kind: "IAV format", Code: code}
}

// XIDFormat is the encoding of the 3-D Secure transaction identifier.
type XIDFormat string

const (
	XIDFormatAscii    XIDFormat = "ascii"
	XIDFormatAsciiHex XIDFormat = "asciihex"
	XIDFormatBase64   XIDFormat = "base64"
)

// ParseXIDFormat parses an XID encoding.
func ParseXIDFormat(code string) (XIDFormat, error) {
	for _, v := range []XIDFormat{XIDFormatAscii, XIDFormatAsciiHex, XIDFormatBase64} {
		if strings.EqualFold(code, string(v)) {
			return v, nil
		}
	}
	return "", &UnknownValueError{Kind: "XID format", Code: code}
}

// XMLEncoding is the character encoding used on the wire.
type XMLEncoding string

const (
	EncodingUSASCII XMLEncoding = "US-ASCII"
	EncodingUTF16   XMLEncoding = "UTF-16"
	EncodingUTF8    XMLEncoding = "UTF-8"
)

// ParseXMLEncoding parses a wire encoding label.
func ParseXMLEncoding(code string) (XMLEncoding, error) {
	for _, v := range []XMLEncoding{EncodingUSASCII, EncodingUTF16, EncodingUTF8} {
		if strings.EqualFold(code, string(v)) {
			return v, nil
		}
	}
	return "", &UnknownValueError{Kind: "XML encoding", Code: code}
}

// EmailAddressType classifies a contact email address.
type EmailAddressType string

const (
	EmailTypeHome    EmailAddressType = "home"
	EmailTypeOther   EmailAddressType = "other"
	EmailTypeWork    EmailAddressType = "work"
	EmailTypeUnknown EmailAddressType = "unknown"
)

// ParseEmailAddressType parses an email address classification.
func ParseEmailAddressType(code string) (EmailAddressType, error) {
	for _, v := range []EmailAddressType{EmailTypeHome, EmailTypeOther, EmailTypeWork, EmailTypeUnknown} {
		if strings.EqualFold(code, string(v)) {
			return v, nil
		}
	}
	return "", &UnknownValueError{Kind: "email address type", Code: code}
}

// PhoneNumberType classifies a contact phone number.
type PhoneNumberType string

const (
	PhoneTypeHome    PhoneNumberType = "home"
	PhoneTypeMobile  PhoneNumberType = "mobile"
	PhoneTypeOther   PhoneNumberType = "other"
	PhoneTypeWork    PhoneNumberType = "work"
	PhoneTypeUnknown PhoneNumberType = "unknown"
)

// ParsePhoneNumberType parses a phone number classification.
func ParsePhoneNumberType(code string) (PhoneNumberType, error) {
	for _, v := range []PhoneNumberType{PhoneTypeHome, PhoneTypeMobile, PhoneTypeOther, PhoneTypeWork, PhoneTypeUnknown} {
		if strings.EqualFold(code, string(v)) {
			return v, nil
		}
	}
	return "", &UnknownValueError{Kind: "phone number type", Code: code}
}

// ProductRisk grades the chargeback risk of a product line item.
type ProductRisk string

const (
	ProductRiskVeryLow  ProductRisk = "verylow"
	ProductRiskLow      ProductRisk = "low"
	ProductRiskMedium   ProductRisk = "medium"
	ProductRiskHigh     ProductRisk = "high"
	ProductRiskVeryHigh ProductRisk = "veryhigh"
)

var productRisks = []ProductRisk{
	ProductRiskVeryLow, ProductRiskLow, ProductRiskMedium, ProductRiskHigh, ProductRiskVeryHigh,
}

// ParseProductRisk parses a product risk grade.
func ParseProductRisk(code string) (ProductRisk, error) {
	for _, v := range productRisks {
		if strings.EqualFold(code, string(v)) {
			return v, nil
		}
	}
	return "", &UnknownValueError{Kind: "product risk", Code: code}
}

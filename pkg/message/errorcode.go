// Copyright (c) 2024 BaseKit
// SPDX-License-Identifier: BSD-2-Clause

package message

import "strings"

// ErrorCode is a processing error reported by the CardEase platform.
// The numeric ranges group related failures: 1xxx card data, 2xxx
// terminal and transaction state, 7xxx availability, 8xxx request
// structure.
type ErrorCode string

const (
	ErrEmpty ErrorCode = "-1"

	ErrExpiredCard            ErrorCode = "1001"
	ErrPreValidCard           ErrorCode = "1002"
	ErrCardSchemeNotSupported ErrorCode = "1003"
	ErrCardUsageExceeded      ErrorCode = "1004"
	ErrCardBanned             ErrorCode = "1005"
	ErrNotAllowed             ErrorCode = "1006"

	ErrPANMissing           ErrorCode = "1200"
	ErrPANInvalid           ErrorCode = "1201"
	ErrPANTooLong           ErrorCode = "1202"
	ErrPANTooShort          ErrorCode = "1203"
	ErrPANFailsLuhn         ErrorCode = "1204"
	ErrExpiryDateMissing    ErrorCode = "1210"
	ErrExpiryDateInvalid    ErrorCode = "1211"
	ErrStartDateMissing     ErrorCode = "1220"
	ErrStartDateInvalid     ErrorCode = "1221"
	ErrIssueNoMissing       ErrorCode = "1230"
	ErrIssueNoInvalid       ErrorCode = "1231"
	ErrCardReferenceInvalid ErrorCode = "1235"
	ErrCardHashInvalid      ErrorCode = "1236"
	ErrAmountMissing        ErrorCode = "1240"
	ErrAmountInvalid        ErrorCode = "1241"
	ErrAmountTooSmall       ErrorCode = "1242"
	ErrAmountTooLarge       ErrorCode = "1243"
	ErrMessageTypeMissing   ErrorCode = "1250"
	ErrMessageTypeInvalid   ErrorCode = "1251"

	ErrTerminalIDMissing             ErrorCode = "2001"
	ErrTerminalIDUnknown             ErrorCode = "2002"
	ErrTerminalIDInvalid             ErrorCode = "2003"
	ErrTerminalIDDisabled            ErrorCode = "2004"
	ErrTerminalUsageExceeded         ErrorCode = "2005"
	ErrTransactionKeyMissing         ErrorCode = "2021"
	ErrTransactionKeyInvalid         ErrorCode = "2022"
	ErrTransactionKeyIncorrect       ErrorCode = "2023"
	ErrCardEaseReferenceMissing      ErrorCode = "2100"
	ErrCardEaseReferenceInvalid      ErrorCode = "2101"
	ErrCardDetailsUnavailable        ErrorCode = "2110"
	ErrCardDetailsNotFound           ErrorCode = "2111"
	ErrTransactionNotFound           ErrorCode = "2200"
	ErrTransactionAlreadySettled     ErrorCode = "2201"
	ErrTransactionAlreadyVoided      ErrorCode = "2202"
	ErrTransactionAlreadyRefunded    ErrorCode = "2203"
	ErrTransactionOriginallyDeclined ErrorCode = "2204"

	ErrTemporarilyUnavailable ErrorCode = "7000"

	ErrInvalidXMLRequest  ErrorCode = "8001"
	ErrInvalidMessageType ErrorCode = "8002"
	ErrXMLElementMissing  ErrorCode = "8003"
	ErrInvalidData        ErrorCode = "8004"
	ErrXMLDecryptionError ErrorCode = "8005"
)

var errorCodes = []ErrorCode{
	ErrEmpty,
	ErrExpiredCard, ErrPreValidCard, ErrCardSchemeNotSupported,
	ErrCardUsageExceeded, ErrCardBanned, ErrNotAllowed,
	ErrPANMissing, ErrPANInvalid, ErrPANTooLong, ErrPANTooShort, ErrPANFailsLuhn,
	ErrExpiryDateMissing, ErrExpiryDateInvalid,
	ErrStartDateMissing, ErrStartDateInvalid,
	ErrIssueNoMissing, ErrIssueNoInvalid,
	ErrCardReferenceInvalid, ErrCardHashInvalid,
	ErrAmountMissing, ErrAmountInvalid, ErrAmountTooSmall, ErrAmountTooLarge,
	ErrMessageTypeMissing, ErrMessageTypeInvalid,
	ErrTerminalIDMissing, ErrTerminalIDUnknown, ErrTerminalIDInvalid,
	ErrTerminalIDDisabled, ErrTerminalUsageExceeded,
	ErrTransactionKeyMissing, ErrTransactionKeyInvalid, ErrTransactionKeyIncorrect,
	ErrCardEaseReferenceMissing, ErrCardEaseReferenceInvalid,
	ErrCardDetailsUnavailable, ErrCardDetailsNotFound,
	ErrTransactionNotFound, ErrTransactionAlreadySettled,
	ErrTransactionAlreadyVoided, ErrTransactionAlreadyRefunded,
	ErrTransactionOriginallyDeclined,
	ErrTemporarilyUnavailable,
	ErrInvalidXMLRequest, ErrInvalidMessageType, ErrXMLElementMissing,
	ErrInvalidData, ErrXMLDecryptionError,
}

// ParseErrorCode parses a server error code. An unrecognized code
// returns an UnknownValueError so callers can tell a new server-side
// code apart from a corrupted response.
func ParseErrorCode(code string) (ErrorCode, error) {
	for _, v := range errorCodes {
		if strings.EqualFold(code, string(v)) {
			return v, nil
		}
	}
	return "", &UnknownValueError{Kind: "error", Code: code}
}

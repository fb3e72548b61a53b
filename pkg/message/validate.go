// Copyright (c) 2024 BaseKit
// SPDX-License-Identifier: BSD-2-Clause

package message

import (
	"fmt"
	"regexp"
)

// ValidationError reports a request field that fails the protocol's
// business rules. It is always raised before any network activity.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("cardease: invalid request: %s %s", e.Field, e.Reason)
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// Field bounds imposed by the CardEase platform.
const (
	terminalIDLength         = 8
	transactionKeyMaxLength  = 20
	softwareNameMaxLength    = 50
	softwareVersionMaxLength = 20
	currencyCodeLength       = 3
	panMinLength             = 13
	panMaxLength             = 19
	issueNumberMinLength     = 1
	issueNumberMaxLength     = 2
	dateFormatMaxLength      = 10
	cardEaseReferenceLength  = 36
	cardHashLength           = 28
	cardReferenceLength      = 36
	track1MaxLength          = 79
	track2MaxLength          = 40
	track2StartSentinel      = ';'
	track2EndSentinel        = '?'
	cscMinLength             = 3
	cscMaxLength             = 4
	eciMinLength             = 1
	eciMaxLength             = 2
)

var (
	amountPattern = regexp.MustCompile(`^(\d+|\d+\.\d+|\.\d+|\d+\.)$`)
	ipv4Pattern   = regexp.MustCompile(`^(25[0-5]|2[0-4]\d|[0-1]?\d?\d)(\.(25[0-5]|2[0-4]\d|[0-1]?\d?\d)){3}$`)

	// A conservative RFC 822 addr-spec grammar: dot-atoms and quoted
	// strings in the local part, dot-atoms and domain literals in the
	// domain. No Unicode.
	emailPattern = compileEmailPattern()
)

func compileEmailPattern() *regexp.Regexp {
	qtext := `[^\x0d\x22\x5c\x80-\xff]`
	dtext := `[^\x0d\x5b-\x5d\x80-\xff]`
	atom := `[^\x00-\x20\x22\x28\x29\x2c\x2e\x3a-\x3c\x3e\x40\x5b-\x5d\x7f-\xff]+`
	quotedPair := `\x5c[\x00-\x7f]`
	domainLiteral := `\x5b(` + dtext + `|` + quotedPair + `)*\x5d`
	quotedString := `\x22(` + qtext + `|` + quotedPair + `)*\x22`
	subDomain := `(` + atom + `|` + domainLiteral + `)`
	word := `(` + atom + `|` + quotedString + `)`
	domain := subDomain + `(\x2e` + subDomain + `)*`
	localPart := word + `(\x2e` + word + `)*`
	return regexp.MustCompile(`^` + localPart + `\x40` + domain + `$`)
}

// Validate checks the request against the protocol's business rules.
// It must pass before the request is serialized. Validation is a pure
// function of the field values and may be called repeatedly.
func (r *Request) Validate() error {
	if err := r.validateThreeDSecure(); err != nil {
		return err
	}

	if r.OriginatingIPAddress != "" && !ipv4Pattern.MatchString(r.OriginatingIPAddress) {
		return invalid("OriginatingIPAddress", "has an invalid format")
	}

	if r.SoftwareName == "" {
		return invalid("SoftwareName", fmt.Sprintf("must be specified for %s requests", r.RequestType))
	}
	if len(r.SoftwareName) > softwareNameMaxLength {
		return invalid("SoftwareName", "has an invalid length")
	}
	if r.SoftwareVersion == "" {
		return invalid("SoftwareVersion", fmt.Sprintf("must be specified for %s requests", r.RequestType))
	}
	if len(r.SoftwareVersion) > softwareVersionMaxLength {
		return invalid("SoftwareVersion", "has an invalid length")
	}

	if r.TerminalID == "" {
		return invalid("TerminalID", fmt.Sprintf("must be specified for %s requests", r.RequestType))
	}
	if len(r.TerminalID) != terminalIDLength || !isDigits(r.TerminalID) {
		return invalid("TerminalID", "has an invalid format")
	}

	if r.TransactionKey == "" {
		return invalid("TransactionKey", fmt.Sprintf("must be specified for %s requests", r.RequestType))
	}
	if len(r.TransactionKey) > transactionKeyMaxLength {
		return invalid("TransactionKey", "has an invalid length")
	}

	if r.CardEaseReference != "" && len(r.CardEaseReference) != cardEaseReferenceLength {
		return invalid("CardEaseReference", "has an invalid length")
	}
	if r.CardHash != "" && len(r.CardHash) != cardHashLength {
		return invalid("CardHash", "has an invalid length")
	}
	if r.CardReference != "" && len(r.CardReference) != cardReferenceLength {
		return invalid("CardReference", "has an invalid length")
	}

	if r.CurrencyCode != "" {
		if err := validateCurrencyCode("CurrencyCode", r.CurrencyCode); err != nil {
			return err
		}
	}

	if r.ExpiryDate != "" {
		if err := validateDate("ExpiryDate", r.ExpiryDate, "ExpiryDateFormat", r.ExpiryDateFormat); err != nil {
			return err
		}
	}

	// The offline timestamp is checked against the expiry date fields.
	// This matches the behaviour of the other CardEaseXML SDKs.
	if r.OfflineDateTime != "" {
		if r.OfflineDateTimeFormat == "" {
			return invalid("OfflineDateTime", "and OfflineDateTimeFormat must be specified")
		}
		if err := validateDate("ExpiryDate", r.ExpiryDate, "ExpiryDateFormat", r.ExpiryDateFormat); err != nil {
			return err
		}
	}

	if r.StartDate != "" {
		if err := validateDate("StartDate", r.StartDate, "StartDateFormat", r.StartDateFormat); err != nil {
			return err
		}
	}

	if err := validateEmailAddresses("CardHolderEmailAddress", r.CardHolderEmailAddresses); err != nil {
		return err
	}
	if err := validateEmailAddresses("DeliveryEmailAddress", r.DeliveryEmailAddresses); err != nil {
		return err
	}
	if err := validateEmailAddresses("InvoiceEmailAddress", r.InvoiceEmailAddresses); err != nil {
		return err
	}

	for _, p := range r.Products {
		if p.Amount != "" && !amountPattern.MatchString(p.Amount) {
			return invalid("Product Amount", "has an invalid format")
		}
		if p.CurrencyCode != "" {
			if err := validateCurrencyCode("Product CurrencyCode", p.CurrencyCode); err != nil {
				return err
			}
		}
	}

	if r.RequestType == RequestTypeVoid {
		if r.VoidReason == "" || r.VoidReason == VoidReasonEmpty {
			return invalid("VoidReason", fmt.Sprintf("must be specified for %s requests", r.RequestType))
		}
	}

	if r.RequestType == RequestTypeICCManagement && r.ICCFunction == "" {
		return invalid("ICCFunction", fmt.Sprintf("must be specified for %s requests", r.RequestType))
	}

	if r.RequestType == RequestTypeAuth || r.RequestType == RequestTypeOffline {
		if r.Amount == "" {
			return invalid("Amount", fmt.Sprintf("must be specified for %s requests", r.RequestType))
		}
		if !amountPattern.MatchString(r.Amount) {
			return invalid("Amount", "has an invalid format")
		}
	}

	if r.RequestType == RequestTypeConf || r.RequestType == RequestTypeRefund || r.RequestType == RequestTypeVoid {
		if r.CardEaseReference == "" {
			return invalid("CardEaseReference", fmt.Sprintf("must be specified for %s requests", r.RequestType))
		}
	}

	if r.RequestType == RequestTypeAuth || r.RequestType == RequestTypeOffline || r.RequestType == RequestTypePreAuth {
		if err := r.validateCardDetails(); err != nil {
			return err
		}
	}

	if r.CSC != "" {
		if len(r.CSC) < cscMinLength || len(r.CSC) > cscMaxLength || !isDigits(r.CSC) {
			return invalid("CSC", "has an invalid format")
		}
	}

	return nil
}

// validateCardDetails enforces that exactly one card-detail variant is
// present, then checks the rules of the variant in use.
func (r *Request) validateCardDetails() error {
	present := 0
	for _, ok := range []bool{r.hasICCDetails(), r.hasTrackDetails(), r.hasManualDetails()} {
		if ok {
			present++
		}
	}
	if present == 0 {
		return invalid("CardDetails", fmt.Sprintf("must be specified for %s requests (icc, track2 or pan)", r.RequestType))
	}
	if present > 1 {
		return invalid("CardDetails", "is ambiguous: multiple variants supplied")
	}

	switch {
	case r.hasManualDetails():
		hasReference := r.CardReference != ""
		hasHash := r.CardHash != ""
		if hasReference != hasHash {
			return invalid("CardReference", "and CardHash must both be specified if used")
		}
		if !hasReference {
			if r.PAN == "" {
				return invalid("PAN", "must be specified for manual card details")
			}
			if len(r.PAN) < panMinLength || len(r.PAN) > panMaxLength {
				return invalid("PAN", "has an invalid length")
			}
			if !luhnValid(r.PAN) {
				return invalid("PAN", "has an invalid format")
			}
			if r.ExpiryDate == "" {
				return invalid("ExpiryDate", "must be specified for manual card details")
			}
			if r.ExpiryDateFormat == "" {
				return invalid("ExpiryDateFormat", "must be specified for manual card details")
			}
			if r.IssueNumber != "" {
				if len(r.IssueNumber) < issueNumberMinLength || len(r.IssueNumber) > issueNumberMaxLength || !isDigits(r.IssueNumber) {
					return invalid("IssueNumber", "has an invalid format")
				}
			}
		}

	case r.hasICCDetails():
		if r.ICCType == "" {
			return invalid("ICCType", "must be specified for ICC card details")
		}
		for _, tag := range r.ICCTags {
			if tag.ID == "" {
				return invalid("ICCTag", "ID must be specified for ICC card details")
			}
			if tag.Value == nil {
				return invalid("ICCTag", "Value must be specified for ICC card details")
			}
		}

	case r.hasTrackDetails():
		if len(r.Track1) > track1MaxLength {
			return invalid("Track1", "has an invalid length")
		}
		if len(r.Track2) > track2MaxLength {
			return invalid("Track2", "has an invalid length")
		}
		if r.Track2[0] != track2StartSentinel || r.Track2[len(r.Track2)-1] != track2EndSentinel {
			return invalid("Track2", "has an invalid format")
		}
		// Track 3 is bounded by the track 1 maximum. This matches the
		// behaviour of the other CardEaseXML SDKs.
		if len(r.Track3) > track1MaxLength {
			return invalid("Track3", "has an invalid length")
		}
	}

	return nil
}

func (r *Request) validateThreeDSecure() error {
	enrolledSet := r.CardHolderEnrolled != "" && r.CardHolderEnrolled != EnrolledEmpty
	statusSet := r.TransactionStatus != "" && r.TransactionStatus != TransactionStatusEmpty

	if !enrolledSet && !statusSet {
		if r.ECI != "" || r.IAV != "" || r.IAVAlgorithm != "" || r.XID != "" {
			return invalid("ThreeDSecure", "data missing CardHolderEnrolled and TransactionStatus")
		}
		return nil
	}

	if !enrolledSet || !statusSet {
		return invalid("CardHolderEnrolled", "must be set with TransactionStatus")
	}

	// A failed authentication is never authorised.
	if r.CardHolderEnrolled == EnrolledYes && r.TransactionStatus == TransactionStatusFailed {
		return invalid("ThreeDSecure", "cannot authorise a failed authentication")
	}

	if r.ECI != "" {
		if len(r.ECI) < eciMinLength || len(r.ECI) > eciMaxLength {
			return invalid("ECI", "has an invalid length")
		}
		if !isDigits(r.ECI) {
			return invalid("ECI", "has an invalid format")
		}
	}

	if r.IAV != "" || r.IAVAlgorithm != "" {
		if r.IAV == "" || r.IAVAlgorithm == "" {
			return invalid("IAV", "must be set with IAVAlgorithm")
		}
		if !isDigits(r.IAVAlgorithm) {
			return invalid("IAVAlgorithm", "has an invalid format")
		}
	}

	return nil
}

func validateCurrencyCode(field, code string) error {
	if len(code) != currencyCodeLength {
		return invalid(field, "has an invalid length")
	}
	if !isDigits(code) && !isAlpha(code) {
		return invalid(field, "has an invalid format")
	}
	return nil
}

// validateDate checks a date against its format string: the format must
// be present, bounded, built only from the date pattern characters, and
// the date must be exactly as long as the format. There is no semantic
// calendar check.
func validateDate(dateField, date, formatField, format string) error {
	if format == "" {
		return invalid(dateField, "and "+formatField+" must be specified")
	}
	if len(format) > dateFormatMaxLength {
		return invalid(formatField, "has an invalid length")
	}
	for _, c := range format {
		if !isDateFormatChar(c) {
			return invalid(formatField, "has an invalid format")
		}
	}
	if len(date) != len(format) {
		return invalid(dateField, "does not conform to "+formatField)
	}
	return nil
}

func validateEmailAddresses(field string, addresses []EmailAddress) error {
	for _, a := range addresses {
		if !emailPattern.MatchString(a.Address) {
			return invalid(field, "has an invalid format")
		}
	}
	return nil
}

func isDateFormatChar(c rune) bool {
	switch c {
	case 'y', 'M', 'd', 'H', 'm', 's', '/', '-', ':', '.', ' ':
		return true
	}
	return false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if !('a' <= c && c <= 'z') && !('A' <= c && c <= 'Z') {
			return false
		}
	}
	return true
}

// luhnValid runs the Luhn checksum over a digit string. Any non-digit
// input fails immediately.
func luhnValid(pan string) bool {
	if !isDigits(pan) {
		return false
	}
	sum := 0
	double := false
	for i := len(pan) - 1; i >= 0; i-- {
		d := int(pan[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

// Copyright (c) 2024 BaseKit
// SPDX-License-Identifier: BSD-2-Clause

package message

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// DecodeError reports a structurally malformed response document. It is
// fatal: the document was already received, so there is nothing to
// retry.
type DecodeError struct {
	Path   string
	Reason string
}

func (e *DecodeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("cardease: decode response: %s", e.Reason)
	}
	return fmt.Sprintf("cardease: decode response at %s: %s", e.Path, e.Reason)
}

// Decode parses a CardEaseXML response document.
//
// Decoding is driven by the current tag path rather than by a grammar:
// element names are case-folded to uppercase, joined into a path, and
// looked up in fixed dispatch tables. Paths without a handler are
// skipped silently, so new server-side elements never break older
// clients. Decoding fails only on malformed XML, a mismatched end tag,
// empty input, or a code outside one of the protocol's closed
// enumerations.
func Decode(data []byte) (*Response, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &DecodeError{Reason: "empty document"}
	}

	d := &decoder{resp: newResponse()}
	dec := xml.NewDecoder(bytes.NewReader(data))
	// The platform labels documents US-ASCII or UTF-8; both are read
	// as-is.
	dec.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
		return input, nil
	}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &DecodeError{Path: d.key(), Reason: err.Error()}
		}

		switch t := tok.(type) {
		case xml.StartElement:
			d.path = append(d.path, strings.ToUpper(t.Name.Local))
			if h, ok := startHandlers[d.key()]; ok {
				if err := h(d, foldAttrs(t.Attr)); err != nil {
					return nil, err
				}
			}

		case xml.EndElement:
			name := strings.ToUpper(t.Name.Local)
			if len(d.path) == 0 || d.path[len(d.path)-1] != name {
				return nil, &DecodeError{Path: d.key(), Reason: fmt.Sprintf("unexpected end tag %s", name)}
			}
			d.path = d.path[:len(d.path)-1]

		case xml.CharData:
			text := strings.TrimSpace(string(t))
			if text == "" {
				continue
			}
			if h, ok := textHandlers[d.key()]; ok {
				if err := h(d, text); err != nil {
					return nil, err
				}
			}
		}
	}

	return d.resp, nil
}

type decoder struct {
	resp          *Response
	path          []string
	lastErrorCode ErrorCode
}

func (d *decoder) key() string {
	return strings.Join(d.path, "/")
}

// lastICCTag returns the most recently appended ICC tag.
func (d *decoder) lastICCTag() *ICCTag {
	if len(d.resp.ICCTags) == 0 {
		return nil
	}
	return &d.resp.ICCTags[len(d.resp.ICCTags)-1]
}

// lastPublicKey returns the most recently appended public key of the
// most recently appended certification authority.
func (d *decoder) lastPublicKey() *PublicKey {
	cas := d.resp.ICCCertificationAuthorities
	if len(cas) == 0 {
		return nil
	}
	keys := cas[len(cas)-1].PublicKeys
	if len(keys) == 0 {
		return nil
	}
	return &keys[len(keys)-1]
}

func foldAttrs(attrs []xml.Attr) map[string]string {
	m := make(map[string]string, len(attrs))
	for _, a := range attrs {
		m[strings.ToUpper(a.Name.Local)] = a.Value
	}
	return m
}

// attrBool reads an attribute flag. The servers emit "true"/"1".
func attrBool(attrs map[string]string, name string) bool {
	v := attrs[name]
	return strings.EqualFold(v, "true") || v == "1"
}

type startHandler func(d *decoder, attrs map[string]string) error
type textHandler func(d *decoder, text string) error

// startHandlers dispatches element-start events by exact tag path.
var startHandlers = map[string]startHandler{
	"RESPONSE": func(d *decoder, attrs map[string]string) error {
		d.resp.ServerName = attrs["TYPE"]
		d.resp.ServerVersion = attrs["VERSION"]
		return nil
	},

	"RESPONSE/CARDDETAILS/ADDITIONALVERIFICATION/ADDRESS": func(d *decoder, attrs map[string]string) error {
		d.resp.AddressResponseData = attrs["RAW"]
		return nil
	},
	"RESPONSE/CARDDETAILS/ADDITIONALVERIFICATION/CSC": func(d *decoder, attrs map[string]string) error {
		d.resp.CSCResponseData = attrs["RAW"]
		return nil
	},
	"RESPONSE/CARDDETAILS/ADDITIONALVERIFICATION/ZIP": func(d *decoder, attrs map[string]string) error {
		d.resp.ZipCodeResponseData = attrs["RAW"]
		return nil
	},

	"RESPONSE/RESULT": func(d *decoder, attrs map[string]string) error {
		if attrBool(attrs, "DUPLICATE") {
			d.resp.Duplicate = true
		}
		return nil
	},

	"RESPONSE/CARDDETAILS/ICC": func(d *decoder, attrs map[string]string) error {
		d.resp.ICCType = attrs["TYPE"]
		return nil
	},
	"RESPONSE/CARDDETAILS/ICC/ICCTAG": func(d *decoder, attrs map[string]string) error {
		tag := ICCTag{ID: attrs["TAGID"], Type: ICCTagValueAsciiHex}
		if t := attrs["TYPE"]; t != "" {
			parsed, err := ParseICCTagValueType(t)
			if err != nil {
				return err
			}
			tag.Type = parsed
		}
		d.resp.ICCTags = append(d.resp.ICCTags, tag)
		return nil
	},

	"RESPONSE/CARDDETAILS/EXPIRYDATE": func(d *decoder, attrs map[string]string) error {
		d.resp.ExpiryDateFormat = attrs["FORMAT"]
		return nil
	},
	"RESPONSE/CARDDETAILS/STARTDATE": func(d *decoder, attrs map[string]string) error {
		d.resp.StartDateFormat = attrs["FORMAT"]
		return nil
	},

	"RESPONSE/ICCPUBLICKEYS": func(d *decoder, attrs map[string]string) error {
		d.resp.ICCPublicKeyType = attrs["TYPE"]
		d.resp.ICCPublicKeyContent = attrs["CONTENT"]
		d.resp.ICCPublicKeyClearExisting = attrBool(attrs, "CLEAREXISTING")
		d.resp.ICCPublicKeyReplaceExisting = attrBool(attrs, "REPLACEEXISTING")
		return nil
	},
	"RESPONSE/ICCPUBLICKEYS/CERTIFICATIONAUTHORITY": func(d *decoder, attrs map[string]string) error {
		d.resp.ICCCertificationAuthorities = append(d.resp.ICCCertificationAuthorities, CertificationAuthority{
			Description: attrs["DESCRIPTION"],
			RID:         attrs["RID"],
		})
		return nil
	},
	"RESPONSE/ICCPUBLICKEYS/CERTIFICATIONAUTHORITY/PUBLICKEY": func(d *decoder, attrs map[string]string) error {
		cas := d.resp.ICCCertificationAuthorities
		if len(cas) == 0 {
			return nil
		}
		ca := &cas[len(cas)-1]
		ca.PublicKeys = append(ca.PublicKeys, PublicKey{
			Index:         attrs["INDEX"],
			Hash:          attrs["HASH"],
			HashAlgorithm: attrs["HASHALGORITHM"],
		})
		return nil
	},
	"RESPONSE/ICCPUBLICKEYS/CERTIFICATIONAUTHORITY/PUBLICKEY/VALIDFROM": func(d *decoder, attrs map[string]string) error {
		if key := d.lastPublicKey(); key != nil {
			key.ValidFromFormat = attrs["FORMAT"]
		}
		return nil
	},
	"RESPONSE/ICCPUBLICKEYS/CERTIFICATIONAUTHORITY/PUBLICKEY/VALIDTO": func(d *decoder, attrs map[string]string) error {
		if key := d.lastPublicKey(); key != nil {
			key.ValidToFormat = attrs["FORMAT"]
		}
		return nil
	},

	"RESPONSE/RESULT/ERRORS/ERROR": func(d *decoder, attrs map[string]string) error {
		d.lastErrorCode = ErrEmpty
		if code := attrs["CODE"]; code != "" {
			parsed, err := ParseErrorCode(code)
			if err != nil {
				return err
			}
			d.lastErrorCode = parsed
		}
		return nil
	},

	"RESPONSE/TRANSACTIONDETAILS/GEOIP": func(d *decoder, attrs map[string]string) error {
		d.resp.GeoIPIsBlackListed = attrBool(attrs, "ISBLACKLISTED")
		d.resp.GeoIPIsKnownProxy = attrBool(attrs, "ISKNOWNPROXY")
		return nil
	},
	"RESPONSE/TRANSACTIONDETAILS/GEOIP/CONTINENT": func(d *decoder, attrs map[string]string) error {
		d.resp.GeoIPContinentAlpha2 = attrs["ALPHA2"]
		return nil
	},
	"RESPONSE/TRANSACTIONDETAILS/GEOIP/COUNTRY": func(d *decoder, attrs map[string]string) error {
		d.resp.GeoIPCountryAlpha2 = attrs["ALPHA2"]
		d.resp.GeoIPCountryCode = attrs["CODE"]
		return nil
	},
	"RESPONSE/TRANSACTIONDETAILS/GEOIP/REGION": func(d *decoder, attrs map[string]string) error {
		d.resp.GeoIPRegionCode = attrs["CODE"]
		return nil
	},
	"RESPONSE/TRANSACTIONDETAILS/LOCALDATETIME": func(d *decoder, attrs map[string]string) error {
		d.resp.LocalDateTimeFormat = attrs["FORMAT"]
		return nil
	},
}

// textHandlers dispatches trimmed character data by exact tag path.
var textHandlers = map[string]textHandler{
	"RESPONSE/CARDDETAILS/ADDITIONALVERIFICATION/ADDRESS": func(d *decoder, text string) error {
		result, err := ParseVerificationResult(text)
		if err != nil {
			return err
		}
		d.resp.AddressResult = result
		return nil
	},
	"RESPONSE/CARDDETAILS/ADDITIONALVERIFICATION/CSC": func(d *decoder, text string) error {
		result, err := ParseVerificationResult(text)
		if err != nil {
			return err
		}
		d.resp.CSCResult = result
		return nil
	},
	"RESPONSE/CARDDETAILS/ADDITIONALVERIFICATION/ZIP": func(d *decoder, text string) error {
		result, err := ParseVerificationResult(text)
		if err != nil {
			return err
		}
		d.resp.ZipCodeResult = result
		return nil
	},

	"RESPONSE/CARDDETAILS/CARDSCHEME/DESCRIPTION": func(d *decoder, text string) error {
		d.resp.CardScheme = text
		return nil
	},
	"RESPONSE/CARDDETAILS/EXPIRYDATE": func(d *decoder, text string) error {
		d.resp.ExpiryDate = text
		return nil
	},
	"RESPONSE/CARDDETAILS/ISSUENUMBER": func(d *decoder, text string) error {
		d.resp.IssueNumber = text
		return nil
	},
	"RESPONSE/CARDDETAILS/ICC/ICCTAG": func(d *decoder, text string) error {
		if tag := d.lastICCTag(); tag != nil {
			value := text
			tag.Value = &value
		}
		return nil
	},
	"RESPONSE/CARDDETAILS/PAN": func(d *decoder, text string) error {
		d.resp.PAN = text
		return nil
	},
	"RESPONSE/CARDDETAILS/CARDHASH": func(d *decoder, text string) error {
		d.resp.CardHash = text
		return nil
	},
	"RESPONSE/CARDDETAILS/CARDREFERENCE": func(d *decoder, text string) error {
		d.resp.CardReference = text
		return nil
	},
	"RESPONSE/CARDDETAILS/STARTDATE": func(d *decoder, text string) error {
		d.resp.StartDate = text
		return nil
	},

	"RESPONSE/ICCPUBLICKEYS/CERTIFICATIONAUTHORITY/PUBLICKEY/ALGORITHM": func(d *decoder, text string) error {
		if key := d.lastPublicKey(); key != nil {
			key.Algorithm = text
		}
		return nil
	},
	"RESPONSE/ICCPUBLICKEYS/CERTIFICATIONAUTHORITY/PUBLICKEY/EXPONENT": func(d *decoder, text string) error {
		if key := d.lastPublicKey(); key != nil {
			key.Exponent = text
		}
		return nil
	},
	"RESPONSE/ICCPUBLICKEYS/CERTIFICATIONAUTHORITY/PUBLICKEY/MODULUS": func(d *decoder, text string) error {
		if key := d.lastPublicKey(); key != nil {
			key.Modulus = text
		}
		return nil
	},
	"RESPONSE/ICCPUBLICKEYS/CERTIFICATIONAUTHORITY/PUBLICKEY/VALIDFROM": func(d *decoder, text string) error {
		if key := d.lastPublicKey(); key != nil {
			key.ValidFromDate = text
		}
		return nil
	},
	"RESPONSE/ICCPUBLICKEYS/CERTIFICATIONAUTHORITY/PUBLICKEY/VALIDTO": func(d *decoder, text string) error {
		if key := d.lastPublicKey(); key != nil {
			key.ValidToDate = text
		}
		return nil
	},

	"RESPONSE/RESULT/AUTHCODE": func(d *decoder, text string) error {
		d.resp.AuthCode = text
		return nil
	},
	"RESPONSE/RESULT/ERRORS/ERROR": func(d *decoder, text string) error {
		d.resp.Errors = append(d.resp.Errors, Error{Code: d.lastErrorCode, Message: text})
		return nil
	},
	"RESPONSE/RESULT/LOCALRESULT": func(d *decoder, text string) error {
		result, err := ParseResultCode(text)
		if err != nil {
			return err
		}
		d.resp.ResultCode = result
		return nil
	},

	"RESPONSE/TRANSACTIONDETAILS/CARDEASEREFERENCE": func(d *decoder, text string) error {
		d.resp.CardEaseReference = text
		return nil
	},
	"RESPONSE/TRANSACTIONDETAILS/GEOIP/CITY": func(d *decoder, text string) error {
		d.resp.GeoIPCity = text
		return nil
	},
	"RESPONSE/TRANSACTIONDETAILS/GEOIP/CONTINENT": func(d *decoder, text string) error {
		d.resp.GeoIPContinent = text
		return nil
	},
	"RESPONSE/TRANSACTIONDETAILS/GEOIP/COUNTRY": func(d *decoder, text string) error {
		d.resp.GeoIPCountry = text
		return nil
	},
	"RESPONSE/TRANSACTIONDETAILS/GEOIP/REGION": func(d *decoder, text string) error {
		d.resp.GeoIPRegion = text
		return nil
	},
	"RESPONSE/TRANSACTIONDETAILS/GEOIP/ZIPCODE": func(d *decoder, text string) error {
		d.resp.GeoIPZipCode = text
		return nil
	},
	"RESPONSE/TRANSACTIONDETAILS/LOCALDATETIME": func(d *decoder, text string) error {
		d.resp.LocalDateTime = text
		return nil
	},
	"RESPONSE/TRANSACTIONDETAILS/REFERENCE": func(d *decoder, text string) error {
		d.resp.UserReference = text
		return nil
	},
}

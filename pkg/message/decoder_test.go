// Copyright (c) 2024 BaseKit
// SPDX-License-Identifier: BSD-2-Clause

package message

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const approvedResponse = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Response type="CardEaseXML" version="1.1.0">
  <TransactionDetails>
    <CardEaseReference>01234567-89ab-cdef-0123-456789abcdef</CardEaseReference>
    <Reference>order-1234</Reference>
    <LocalDateTime format="ddMMyyyy HHmmss">01022024 103000</LocalDateTime>
  </TransactionDetails>
  <CardDetails>
    <PAN>411111******1111</PAN>
    <ExpiryDate format="yyMM">2912</ExpiryDate>
    <CardScheme>
      <Description>Visa Credit</Description>
    </CardScheme>
    <AdditionalVerification>
      <Address raw="2">matched</Address>
      <CSC raw="1">notmatched</CSC>
      <Zip>notchecked</Zip>
    </AdditionalVerification>
  </CardDetails>
  <Result duplicate="true">
    <LocalResult>0</LocalResult>
    <AuthCode>AUTH1234</AuthCode>
  </Result>
</Response>`

func TestDecode_ApprovedResponse(t *testing.T) {
	resp, err := Decode([]byte(approvedResponse))
	require.NoError(t, err)

	assert.Equal(t, "CardEaseXML", resp.ServerName)
	assert.Equal(t, "1.1.0", resp.ServerVersion)
	assert.Equal(t, ResultApproved, resp.ResultCode)
	assert.Equal(t, "AUTH1234", resp.AuthCode)
	assert.True(t, resp.Duplicate)
	assert.Empty(t, resp.Errors)

	assert.Equal(t, "01234567-89ab-cdef-0123-456789abcdef", resp.CardEaseReference)
	assert.Equal(t, "order-1234", resp.UserReference)
	assert.Equal(t, "01022024 103000", resp.LocalDateTime)
	assert.Equal(t, "ddMMyyyy HHmmss", resp.LocalDateTimeFormat)

	assert.Equal(t, "411111******1111", resp.PAN)
	assert.Equal(t, "2912", resp.ExpiryDate)
	assert.Equal(t, "yyMM", resp.ExpiryDateFormat)
	assert.Equal(t, "Visa Credit", resp.CardScheme)

	assert.Equal(t, VerificationMatched, resp.AddressResult)
	assert.Equal(t, "2", resp.AddressResponseData)
	assert.Equal(t, VerificationNotMatched, resp.CSCResult)
	assert.Equal(t, "1", resp.CSCResponseData)
	assert.Equal(t, VerificationNotChecked, resp.ZipCodeResult)
	assert.Equal(t, "", resp.ZipCodeResponseData)
}

func TestDecode_DeclinedWithErrors(t *testing.T) {
	doc := `<Response type="CardEaseXML" version="1.1.0">
  <Result>
    <LocalResult>1</LocalResult>
    <Errors>
      <Error code="1001">The card has expired</Error>
      <Error code="1204">The PAN fails the Luhn check</Error>
    </Errors>
  </Result>
</Response>`

	resp, err := Decode([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, ResultDeclined, resp.ResultCode)
	assert.False(t, resp.Duplicate)
	require.Len(t, resp.Errors, 2)
	assert.Equal(t, ErrExpiredCard, resp.Errors[0].Code)
	assert.Equal(t, "The card has expired", resp.Errors[0].Message)
	assert.Equal(t, ErrPANFailsLuhn, resp.Errors[1].Code)
}

func TestDecode_UnknownErrorCodeFails(t *testing.T) {
	doc := `<Response><Result><Errors><Error code="9999">boom</Error></Errors></Result></Response>`

	_, err := Decode([]byte(doc))
	var unknown *UnknownValueError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "9999", unknown.Code)
}

func TestDecode_ICCTags(t *testing.T) {
	doc := `<Response>
  <CardDetails>
    <ICC type="EMV">
      <ICCTag tagid="9F02">000000000123</ICCTag>
      <ICCTag tagid="9F26" type="string">ABCD</ICCTag>
      <ICCTag tagid="9F03">000000000000</ICCTag>
    </ICC>
  </CardDetails>
</Response>`

	resp, err := Decode([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, "EMV", resp.ICCType)
	require.Len(t, resp.ICCTags, 3)
	assert.Equal(t, "9F02", resp.ICCTags[0].ID)
	assert.Equal(t, ICCTagValueAsciiHex, resp.ICCTags[0].Type)
	require.NotNil(t, resp.ICCTags[0].Value)
	assert.Equal(t, "000000000123", *resp.ICCTags[0].Value)
	assert.Equal(t, ICCTagValueString, resp.ICCTags[1].Type)
	assert.Equal(t, "ABCD", *resp.ICCTags[1].Value)
	assert.Equal(t, "000000000000", *resp.ICCTags[2].Value)
}

func TestDecode_ICCPublicKeys(t *testing.T) {
	doc := `<Response>
  <ICCPublicKeys type="test" content="full" clearexisting="true" replaceexisting="false">
    <CertificationAuthority description="Visa" rid="A000000003">
      <PublicKey index="01" hash="AABB" hashalgorithm="SHA-1">
        <Algorithm>RSA</Algorithm>
        <Exponent>03</Exponent>
        <Modulus>C1D2E3</Modulus>
        <ValidFrom format="ddMMyyyy">01012020</ValidFrom>
        <ValidTo format="ddMMyyyy">31122030</ValidTo>
      </PublicKey>
      <PublicKey index="02" hash="CCDD" hashalgorithm="SHA-1">
        <Modulus>F4A5B6</Modulus>
      </PublicKey>
    </CertificationAuthority>
    <CertificationAuthority description="Mastercard" rid="A000000004">
      <PublicKey index="05" hash="EEFF" hashalgorithm="SHA-1"/>
    </CertificationAuthority>
  </ICCPublicKeys>
</Response>`

	resp, err := Decode([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, "test", resp.ICCPublicKeyType)
	assert.Equal(t, "full", resp.ICCPublicKeyContent)
	assert.True(t, resp.ICCPublicKeyClearExisting)
	assert.False(t, resp.ICCPublicKeyReplaceExisting)

	require.Len(t, resp.ICCCertificationAuthorities, 2)
	visa := resp.ICCCertificationAuthorities[0]
	assert.Equal(t, "Visa", visa.Description)
	assert.Equal(t, "A000000003", visa.RID)
	require.Len(t, visa.PublicKeys, 2)

	key := visa.PublicKeys[0]
	assert.Equal(t, "01", key.Index)
	assert.Equal(t, "AABB", key.Hash)
	assert.Equal(t, "SHA-1", key.HashAlgorithm)
	assert.Equal(t, "RSA", key.Algorithm)
	assert.Equal(t, "03", key.Exponent)
	assert.Equal(t, "C1D2E3", key.Modulus)
	assert.Equal(t, "01012020", key.ValidFromDate)
	assert.Equal(t, "ddMMyyyy", key.ValidFromFormat)
	assert.Equal(t, "31122030", key.ValidToDate)
	assert.Equal(t, "ddMMyyyy", key.ValidToFormat)

	assert.Equal(t, "F4A5B6", visa.PublicKeys[1].Modulus)

	mc := resp.ICCCertificationAuthorities[1]
	require.Len(t, mc.PublicKeys, 1)
	assert.Equal(t, "05", mc.PublicKeys[0].Index)
}

func TestDecode_GeoIP(t *testing.T) {
	doc := `<Response>
  <TransactionDetails>
    <GeoIP isblacklisted="true" isknownproxy="1">
      <City>London</City>
      <Continent alpha2="EU">Europe</Continent>
      <Country alpha2="GB" code="826">United Kingdom</Country>
      <Region code="ENG">England</Region>
      <ZipCode>N1</ZipCode>
    </GeoIP>
  </TransactionDetails>
</Response>`

	resp, err := Decode([]byte(doc))
	require.NoError(t, err)

	assert.True(t, resp.GeoIPIsBlackListed)
	assert.True(t, resp.GeoIPIsKnownProxy)
	assert.Equal(t, "London", resp.GeoIPCity)
	assert.Equal(t, "Europe", resp.GeoIPContinent)
	assert.Equal(t, "EU", resp.GeoIPContinentAlpha2)
	assert.Equal(t, "United Kingdom", resp.GeoIPCountry)
	assert.Equal(t, "GB", resp.GeoIPCountryAlpha2)
	assert.Equal(t, "826", resp.GeoIPCountryCode)
	assert.Equal(t, "England", resp.GeoIPRegion)
	assert.Equal(t, "ENG", resp.GeoIPRegionCode)
	assert.Equal(t, "N1", resp.GeoIPZipCode)
}

// Unknown elements and attributes are skipped, never an error. New
// server-side additions must not break older clients.
func TestDecode_IgnoresUnknownElements(t *testing.T) {
	doc := `<Response>
  <FutureFeature mode="experimental"><Nested>data</Nested></FutureFeature>
  <Result>
    <LocalResult>0</LocalResult>
    <SomethingNew>ignored</SomethingNew>
  </Result>
</Response>`

	resp, err := Decode([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, ResultApproved, resp.ResultCode)
}

func TestDecode_CaseInsensitiveTags(t *testing.T) {
	doc := `<RESPONSE><result><localresult>0</localresult><authcode>AUTH</authcode></result></RESPONSE>`

	resp, err := Decode([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, ResultApproved, resp.ResultCode)
	assert.Equal(t, "AUTH", resp.AuthCode)
}

func TestDecode_EmptyInput(t *testing.T) {
	_, err := Decode(nil)
	var derr *DecodeError
	require.True(t, errors.As(err, &derr))

	_, err = Decode([]byte("   \n"))
	require.True(t, errors.As(err, &derr))
}

func TestDecode_MalformedDocument(t *testing.T) {
	_, err := Decode([]byte(`<Response><Result></Wrong></Response>`))
	var derr *DecodeError
	require.True(t, errors.As(err, &derr))
}

func TestDecode_UnknownResultCodeFails(t *testing.T) {
	_, err := Decode([]byte(`<Response><Result><LocalResult>42</LocalResult></Result></Response>`))
	var unknown *UnknownValueError
	require.True(t, errors.As(err, &unknown))
}

// A request's ICC tag list survives a server echo with its cardinality
// and values intact.
func TestDecode_RoundTripICCTagCardinality(t *testing.T) {
	req := validAuthRequest()
	req.PAN = ""
	req.ExpiryDate = ""
	req.AddICCTag("9F02", "000000000123")
	req.AddICCTag("9F03", "000000000000")
	req.AddICCTag("9F26", "0011223344556677")
	require.NoError(t, req.Validate())

	reqXML, err := req.Serialize()
	require.NoError(t, err)

	// The server echoes card details back inside a Response document.
	doc := parseDoc(t, reqXML)
	icc := doc.FindElement("//CardDetails/ICC")
	require.NotNil(t, icc)
	echo := `<Response type="CardEaseXML" version="1.1.0"><CardDetails><ICC type="EMV">`
	for _, tag := range icc.FindElements("ICCTag") {
		echo += `<ICCTag tagid="` + tag.SelectAttrValue("tagid", "") + `">` + tag.Text() + `</ICCTag>`
	}
	echo += `</ICC></CardDetails></Response>`

	resp, err := Decode([]byte(echo))
	require.NoError(t, err)

	require.Len(t, resp.ICCTags, len(req.ICCTags))
	for i, tag := range req.ICCTags {
		assert.Equal(t, tag.ID, resp.ICCTags[i].ID)
		require.NotNil(t, resp.ICCTags[i].Value)
		assert.Equal(t, *tag.Value, *resp.ICCTags[i].Value)
	}
}

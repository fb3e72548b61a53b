// Copyright (c) 2024 BaseKit
// SPDX-License-Identifier: BSD-2-Clause

package message

import (
	"strconv"

	"github.com/basekit/cardease/internal/xmlwriter"
)

// Identity reported to the server in the Component element of every
// request.
const (
	SDKName    = "CardEaseXMLClient-Go"
	SDKVersion = "1.0.0"
)

// Serialize renders the request as a CardEaseXML document. The server
// validates requests structurally, so element order is fixed and every
// optional element is emitted only when its field carries a value.
// Validate must have passed first; Serialize performs no rule checks of
// its own and fails only on an internal writer inconsistency.
func (r *Request) Serialize() (string, error) {
	w := xmlwriter.New(string(r.Encoding))

	w.StartDocument(true)
	w.StartElement("Request")
	w.Attribute("type", "CardEaseXML")
	w.Attribute("version", r.Version())

	r.writeTransactionDetails(w)
	r.writeTerminalDetails(w)
	r.writeCardDetails(w)

	w.EndElement() // Request
	return w.End()
}

func (r *Request) writeTransactionDetails(w *xmlwriter.Writer) {
	w.StartElement("TransactionDetails")

	w.StartElement("MessageType")
	if r.AutoConfirm {
		w.Attribute("autoconfirm", "true")
	}
	w.Text(string(r.RequestType))
	w.EndElement() // MessageType

	if r.ICCFunction != "" {
		w.Element("ManagementFunction", r.ICCFunction)
	}

	if r.OfflineDateTime != "" {
		w.StartElement("OfflineDateTime")
		if r.OfflineDateTimeFormat != "" {
			w.Attribute("format", r.OfflineDateTimeFormat)
		}
		w.Text(r.OfflineDateTime)
		w.EndElement() // OfflineDateTime
	}

	if r.OriginatingIPAddress != "" {
		w.Element("OriginatingIP", r.OriginatingIPAddress)
	}

	if r.UserReference != "" {
		w.Element("Reference", r.UserReference)
	}

	writeContactBlock(w, "Delivery", r.DeliveryAddress, r.DeliveryEmailAddresses, r.DeliveryName, r.DeliveryPhoneNumbers)

	if len(r.ExtendedProperties) > 0 {
		w.StartElement("ExtendedPropertyList")
		for _, p := range r.ExtendedProperties {
			w.StartElement("ExtendedProperty")
			w.Attribute("id", p.Name)
			w.Text(p.Value)
			w.EndElement() // ExtendedProperty
		}
		w.EndElement() // ExtendedPropertyList
	}

	writeContactBlock(w, "Invoice", r.InvoiceAddress, r.InvoiceEmailAddresses, r.InvoiceName, r.InvoicePhoneNumbers)

	if len(r.Products) > 0 {
		w.StartElement("ProductList")
		for i, p := range r.Products {
			w.StartElement("Product")
			w.Attribute("id", strconv.Itoa(i+1))
			if p.Amount != "" {
				w.StartElement("Amount")
				if p.AmountUnit == AmountUnitMajor {
					w.Attribute("unit", "major")
				}
				w.Text(p.Amount)
				w.EndElement() // Amount
			}
			writeOptional(w, "Category", p.Category)
			writeOptional(w, "Code", p.Code)
			writeOptional(w, "Description", p.Description)
			writeOptional(w, "CurrencyCode", p.CurrencyCode)
			writeOptional(w, "Name", p.Name)
			writeOptional(w, "Quantity", p.Quantity)
			writeOptional(w, "Risk", string(p.Risk))
			writeOptional(w, "Type", p.Type)
			w.EndElement() // Product
		}
		w.EndElement() // ProductList
	}

	writeOptional(w, "BatchReference", r.BatchReference)
	writeOptional(w, "CardEaseReference", r.CardEaseReference)

	if r.Amount != "" {
		w.StartElement("Amount")
		if r.AmountUnit == AmountUnitMajor {
			w.Attribute("unit", "major")
		}
		w.Text(r.Amount)
		w.EndElement() // Amount
	}

	writeOptional(w, "CurrencyCode", r.CurrencyCode)

	if r.VoidReason != "" && r.VoidReason != VoidReasonEmpty {
		w.Element("VoidReason", string(r.VoidReason))
	}

	w.EndElement() // TransactionDetails
}

func (r *Request) writeTerminalDetails(w *xmlwriter.Writer) {
	w.StartElement("TerminalDetails")

	writeOptional(w, "TerminalID", r.TerminalID)
	writeOptional(w, "TransactionKey", r.TransactionKey)
	writeOptional(w, "MachineReference", r.MachineReference)

	if r.SoftwareName != "" {
		w.StartElement("Software")
		if r.SoftwareVersion != "" {
			w.Attribute("version", r.SoftwareVersion)
		}
		w.Text(r.SoftwareName)
		w.EndElement() // Software
	}

	w.StartElement("Component")
	w.Attribute("version", SDKVersion)
	w.Text(SDKName)
	w.EndElement() // Component

	w.EndElement() // TerminalDetails
}

// writeCardDetails emits the CardDetails section for the request types
// that carry card data. Exactly one variant is emitted: ICC tags win
// over track data, track data over manual details.
func (r *Request) writeCardDetails(w *xmlwriter.Writer) {
	switch r.RequestType {
	case RequestTypeAuth, RequestTypeOffline, RequestTypePreAuth, RequestTypeRefund:
	default:
		return
	}
	if !r.hasCardDetails() {
		return
	}

	w.StartElement("CardDetails")

	switch {
	case r.hasICCDetails():
		w.StartElement("ICC")
		w.Attribute("type", r.ICCType)
		for _, tag := range r.ICCTags {
			w.StartElement("ICCTag")
			w.Attribute("tagid", tag.ID)
			if tag.Type == ICCTagValueString {
				w.Attribute("type", "string")
			}
			if tag.Value != nil {
				w.Text(*tag.Value)
			}
			w.EndElement() // ICCTag
		}
		w.EndElement() // ICC

	case r.hasTrackDetails():
		w.StartElement("CAT")
		if r.TrackFallback {
			w.Attribute("fallback", "true")
		}
		writeOptional(w, "Track1", r.Track1)
		writeOptional(w, "Track2", r.Track2)
		writeOptional(w, "Track3", r.Track3)
		w.EndElement() // CAT

	default:
		w.StartElement("Manual")
		if r.ManualType != "" {
			w.Attribute("type", r.ManualType)
		}
		writeOptional(w, "CardReference", r.CardReference)
		writeOptional(w, "CardHash", r.CardHash)
		writeOptional(w, "PAN", r.PAN)
		if r.ExpiryDate != "" {
			w.StartElement("ExpiryDate")
			if r.ExpiryDateFormat != "" {
				w.Attribute("format", r.ExpiryDateFormat)
			}
			w.Text(r.ExpiryDate)
			w.EndElement() // ExpiryDate
		}
		if r.StartDate != "" {
			w.StartElement("StartDate")
			if r.StartDateFormat != "" {
				w.Attribute("format", r.StartDateFormat)
			}
			w.Text(r.StartDate)
			w.EndElement() // StartDate
		}
		writeOptional(w, "IssueNumber", r.IssueNumber)
		w.EndElement() // Manual
	}

	if r.VerificationAddress != "" || r.CSC != "" || r.VerificationZipCode != "" {
		w.StartElement("AdditionalVerification")
		writeOptional(w, "Address", r.VerificationAddress)
		writeOptional(w, "CSC", r.CSC)
		writeOptional(w, "Zip", r.VerificationZipCode)
		w.EndElement() // AdditionalVerification
	}

	if !r.CardHolderAddress.IsEmpty() {
		writeAddress(w, r.CardHolderAddress)
	}
	writeContact(w, r.CardHolderEmailAddresses, r.CardHolderName, r.CardHolderPhoneNumbers)

	r.writeThreeDSecure(w)

	w.EndElement() // CardDetails
}

func (r *Request) writeThreeDSecure(w *xmlwriter.Writer) {
	enrolledSet := r.CardHolderEnrolled != "" && r.CardHolderEnrolled != EnrolledEmpty
	statusSet := r.TransactionStatus != "" && r.TransactionStatus != TransactionStatusEmpty
	if !enrolledSet && !statusSet {
		return
	}

	w.StartElement("ThreeDSecure")

	if enrolledSet {
		w.Element("CardHolderEnrolled", string(r.CardHolderEnrolled))
	}
	writeOptional(w, "ECI", r.ECI)

	if r.IAV != "" {
		w.StartElement("IAV")
		if r.IAVAlgorithm != "" {
			w.Attribute("algorithm", r.IAVAlgorithm)
		}
		w.Attribute("format", string(r.IAVFormat))
		w.Text(r.IAV)
		w.EndElement() // IAV
	}

	if statusSet {
		w.Element("TransactionStatus", string(r.TransactionStatus))
	}

	if r.XID != "" {
		w.StartElement("XID")
		w.Attribute("format", string(r.XIDFormat))
		w.Text(r.XID)
		w.EndElement() // XID
	}

	w.EndElement() // ThreeDSecure
}

// writeContactBlock emits a Delivery or Invoice element holding an
// Address and a Contact sub-tree. The whole block is suppressed when
// every constituent part is empty.
func writeContactBlock(w *xmlwriter.Writer, name string, addr Address, emails []EmailAddress, contactName Name, phones []PhoneNumber) {
	if addr.IsEmpty() && len(emails) == 0 && contactName.IsEmpty() && len(phones) == 0 {
		return
	}

	w.StartElement(name)
	if !addr.IsEmpty() {
		writeAddress(w, addr)
	}
	writeContact(w, emails, contactName, phones)
	w.EndElement()
}

func writeAddress(w *xmlwriter.Writer, addr Address) {
	w.StartElement("Address")
	w.Attribute("format", "standard")
	for i, recipient := range addr.Recipient {
		w.StartElement("Recipient")
		w.Attribute("id", strconv.Itoa(i+1))
		w.Text(recipient)
		w.EndElement() // Recipient
	}
	for i, line := range addr.Lines {
		w.StartElement("Line")
		w.Attribute("id", strconv.Itoa(i+1))
		w.Text(line)
		w.EndElement() // Line
	}
	writeOptional(w, "City", addr.City)
	writeOptional(w, "State", addr.State)
	writeOptional(w, "ZipCode", addr.ZipCode)
	writeOptional(w, "Country", addr.Country)
	w.EndElement() // Address
}

func writeContact(w *xmlwriter.Writer, emails []EmailAddress, name Name, phones []PhoneNumber) {
	if len(emails) == 0 && name.IsEmpty() && len(phones) == 0 {
		return
	}

	w.StartElement("Contact")

	if len(emails) > 0 {
		w.StartElement("EmailAddressList")
		for i, email := range emails {
			w.StartElement("EmailAddress")
			w.Attribute("id", strconv.Itoa(i+1))
			w.Attribute("type", string(email.Type))
			w.Text(email.Address)
			w.EndElement() // EmailAddress
		}
		w.EndElement() // EmailAddressList
	}

	if !name.IsEmpty() {
		w.StartElement("Name")
		writeOptional(w, "Title", name.Title)
		writeOptional(w, "FirstName", name.FirstName)
		writeOptional(w, "Initials", name.Initials)
		writeOptional(w, "LastName", name.LastName)
		w.EndElement() // Name
	}

	if len(phones) > 0 {
		w.StartElement("PhoneNumberList")
		for i, phone := range phones {
			w.StartElement("PhoneNumber")
			w.Attribute("id", strconv.Itoa(i+1))
			w.Attribute("type", string(phone.Type))
			w.Text(phone.Number)
			w.EndElement() // PhoneNumber
		}
		w.EndElement() // PhoneNumberList
	}

	w.EndElement() // Contact
}

func writeOptional(w *xmlwriter.Writer, name, value string) {
	if value != "" {
		w.Element(name, value)
	}
}

// Copyright (c) 2024 BaseKit
// SPDX-License-Identifier: BSD-2-Clause

// Package xmlwriter provides a forward-only XML emitter used to build
// CardEaseXML request documents.
//
// The CardEaseXML servers perform structural validation against a fixed
// schema, so the writer gives the serializer exact control over element
// ordering, attribute placement and self-closing of childless elements.
// It enforces well-formedness as it goes: attributes may only be written
// while a start tag is open, every element must be closed, and End fails
// if any tag remains open.
package xmlwriter

import (
	"fmt"
	"strings"
)

// Writer builds a single XML document in memory. Errors are sticky:
// the first misuse is retained and reported by End, so callers may
// chain writes and check the error once.
type Writer struct {
	buf       strings.Builder
	tagOpen   bool
	nodeEmpty bool
	tags      []string
	encoding  string
	err       error
}

// New creates a Writer for a document with the given encoding label.
// An empty encoding omits the declaration attribute.
func New(encoding string) *Writer {
	return &Writer{encoding: encoding}
}

// StartDocument writes the XML declaration.
func (w *Writer) StartDocument(standalone bool) {
	w.buf.WriteString(`<?xml version="1.0"`)
	if w.encoding != "" {
		w.buf.WriteString(` encoding="`)
		w.buf.WriteString(escape(w.encoding))
		w.buf.WriteString(`"`)
	}
	if standalone {
		w.buf.WriteString(` standalone="yes"`)
	}
	w.buf.WriteString("?>")
}

// StartElement opens a new element, closing any pending start tag first.
func (w *Writer) StartElement(name string) {
	w.closeTag()
	w.buf.WriteByte('<')
	w.buf.WriteString(name)
	w.tagOpen = true
	w.nodeEmpty = true
	w.tags = append(w.tags, name)
}

// Attribute writes an attribute on the currently open start tag.
func (w *Writer) Attribute(name, value string) error {
	if !w.tagOpen {
		err := fmt.Errorf("xmlwriter: attribute %q written with no open tag", name)
		w.setErr(err)
		return err
	}
	w.buf.WriteByte(' ')
	w.buf.WriteString(name)
	w.buf.WriteString(`="`)
	w.buf.WriteString(escape(value))
	w.buf.WriteByte('"')
	return nil
}

// Text writes escaped character data inside the current element.
func (w *Writer) Text(text string) {
	w.closeTag()
	w.buf.WriteString(escape(text))
	w.nodeEmpty = false
}

// Element writes a complete element with text content.
func (w *Writer) Element(name, text string) {
	w.StartElement(name)
	w.Text(text)
	w.EndElement() //nolint:errcheck // the element was just opened
}

// EndElement closes the most recently opened element. An element that
// received no text or children is emitted self-closed.
func (w *Writer) EndElement() error {
	if len(w.tags) == 0 {
		err := fmt.Errorf("xmlwriter: no open element to close")
		w.setErr(err)
		return err
	}
	tag := w.tags[len(w.tags)-1]
	w.tags = w.tags[:len(w.tags)-1]

	if w.nodeEmpty {
		w.buf.WriteString("/>")
	} else {
		w.buf.WriteString("</")
		w.buf.WriteString(tag)
		w.buf.WriteByte('>')
	}
	w.nodeEmpty = false
	w.tagOpen = false
	return nil
}

// End returns the document. It fails if any write was misused or any
// element is still open.
func (w *Writer) End() (string, error) {
	if w.err != nil {
		return "", w.err
	}
	if len(w.tags) != 0 {
		return "", fmt.Errorf("xmlwriter: unclosed element %q", w.tags[len(w.tags)-1])
	}
	return w.buf.String(), nil
}

func (w *Writer) setErr(err error) {
	if w.err == nil {
		w.err = err
	}
}

func (w *Writer) closeTag() {
	if w.tagOpen {
		w.buf.WriteByte('>')
		w.tagOpen = false
	}
}

var escaper = strings.NewReplacer(
	"&", "&amp;",
	`"`, "&quot;",
	"'", "&apos;",
	"<", "&lt;",
	">", "&gt;",
)

func escape(s string) string {
	return escaper.Replace(s)
}

// Copyright (c) 2024 BaseKit
// SPDX-License-Identifier: BSD-2-Clause

package xmlwriter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_Document(t *testing.T) {
	w := New("UTF-8")
	w.StartDocument(true)
	w.StartElement("Request")
	require.NoError(t, w.Attribute("type", "CardEaseXML"))
	w.StartElement("Amount")
	require.NoError(t, w.Attribute("unit", "major"))
	w.Text("1.23")
	require.NoError(t, w.EndElement())
	require.NoError(t, w.EndElement())

	doc, err := w.End()
	require.NoError(t, err)
	assert.Equal(t,
		`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`+
			`<Request type="CardEaseXML"><Amount unit="major">1.23</Amount></Request>`,
		doc)
}

func TestWriter_SelfClosesEmptyElement(t *testing.T) {
	w := New("")
	w.StartElement("Outer")
	w.StartElement("Empty")
	require.NoError(t, w.EndElement())
	require.NoError(t, w.EndElement())

	doc, err := w.End()
	require.NoError(t, err)
	assert.Equal(t, "<Outer><Empty/></Outer>", doc)
}

func TestWriter_EscapesSpecialCharacters(t *testing.T) {
	w := New("")
	w.StartElement("Name")
	require.NoError(t, w.Attribute("id", `a"b`))
	w.Text(`Fish & <Chips> 'plaice'`)
	require.NoError(t, w.EndElement())

	doc, err := w.End()
	require.NoError(t, err)
	assert.Equal(t, `<Name id="a&quot;b">Fish &amp; &lt;Chips&gt; &apos;plaice&apos;</Name>`, doc)
}

func TestWriter_AttributeWithoutOpenTag(t *testing.T) {
	w := New("")
	w.StartElement("A")
	w.Text("x")
	err := w.Attribute("late", "1")
	assert.Error(t, err)
}

func TestWriter_EndElementWithEmptyStack(t *testing.T) {
	w := New("")
	assert.Error(t, w.EndElement())
}

func TestWriter_EndWithUnclosedElement(t *testing.T) {
	w := New("")
	w.StartElement("Open")
	_, err := w.End()
	assert.ErrorContains(t, err, "unclosed")
}

func TestWriter_TextClosesPendingTag(t *testing.T) {
	w := New("")
	w.StartElement("A")
	w.Text("one")
	w.Text("two")
	require.NoError(t, w.EndElement())
	doc, err := w.End()
	require.NoError(t, err)
	assert.Equal(t, "<A>onetwo</A>", doc)
}

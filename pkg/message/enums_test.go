// Copyright (c) 2024 BaseKit
// SPDX-License-Identifier: BSD-2-Clause

package message

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRequestType(t *testing.T) {
	tests := []struct {
		code string
		want RequestType
	}{
		{"Auth", RequestTypeAuth},
		{"auth", RequestTypeAuth},
		{"PREAUTH", RequestTypePreAuth},
		{"IccManagement", RequestTypeICCManagement},
		{"void", RequestTypeVoid},
	}
	for _, tt := range tests {
		got, err := ParseRequestType(tt.code)
		require.NoError(t, err, tt.code)
		assert.Equal(t, tt.want, got)
	}
}

func TestParseRequestTypeUnknown(t *testing.T) {
	_, err := ParseRequestType("Settle")
	require.Error(t, err)

	var unknown *UnknownValueError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "Settle", unknown.Code)
}

func TestParseResultCode(t *testing.T) {
	got, err := ParseResultCode("0")
	require.NoError(t, err)
	assert.Equal(t, ResultApproved, got)

	got, err = ParseResultCode("99")
	require.NoError(t, err)
	assert.Equal(t, ResultTestOK, got)

	_, err = ParseResultCode("42")
	assert.Error(t, err)
}

func TestParseErrorCode(t *testing.T) {
	got, err := ParseErrorCode("1204")
	require.NoError(t, err)
	assert.Equal(t, ErrPANFailsLuhn, got)

	got, err = ParseErrorCode("7000")
	require.NoError(t, err)
	assert.Equal(t, ErrTemporarilyUnavailable, got)

	_, err = ParseErrorCode("9999")
	var unknown *UnknownValueError
	require.True(t, errors.As(err, &unknown))
}

func TestParseVerificationResult(t *testing.T) {
	got, err := ParseVerificationResult("PartialMatch")
	require.NoError(t, err)
	assert.Equal(t, VerificationPartialMatch, got)

	_, err = ParseVerificationResult("maybe")
	assert.Error(t, err)
}

func TestParseVoidReason(t *testing.T) {
	got, err := ParseVoidReason("03")
	require.NoError(t, err)
	assert.Equal(t, VoidReasonVendFailure, got)

	_, err = ParseVoidReason("06")
	assert.Error(t, err)
}

package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ticketrecon/ticketrecon-go/pkg/ticketrecon/models"
)

func TestDigitString(t *testing.T) {
	tests := []struct {
		name     string
		input    models.Cell
		expected string
	}{
		{"nil cell", nil, ""},
		{"empty string", "", ""},
		{"plain digits", "1234567", "1234567"},
		{"digits with symbols", "AB-12/34", "1234"},
		{"integer cell", int64(1234567), "1234567"},
		{"float truncated toward zero", 1234567.9, "1234567"},
		{"negative float", -42.7, "42"},
		{"scientific notation string", "1.23e6", "1230000"},
		{"uppercase exponent", "1.23E6", "1230000"},
		{"non numeric", "hello", ""},
		{"whitespace only", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DigitString(tt.input))
		})
	}
}

func TestNormalizeBarcode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		policy   TrimPolicy
		expected string
	}{
		{"long takes last seven", "123456789", TrimPolicy{}, "3456789"},
		{"exactly seven unchanged", "1234567", TrimPolicy{}, "1234567"},
		{"short left padded", "12345", TrimPolicy{}, "0012345"},
		{"trim leading then pad", "991234567", TrimPolicy{TrimLeading: 2}, "1234567"},
		{"trim consumes everything", "12", TrimPolicy{TrimLeading: 2}, ""},
		{"prefix applied when short", "345", TrimPolicy{DefaultPrefix: "12"}, "0012345"},
		{"prefix ignored when long", "12345678", TrimPolicy{DefaultPrefix: "99"}, "2345678"},
		{"empty input", "", TrimPolicy{}, ""},
		{"symbols stripped first", "10-00123", TrimPolicy{}, "1000123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeBarcode(tt.input, tt.policy))
		})
	}
}

// Round-trip property: with the zero policy, any digit string of
// length >= 7 normalizes to its last 7 digits, and shorter input
// yields a 7-digit result ending with the input.
func TestNormalizeBarcodeRoundTrip(t *testing.T) {
	long := []string{"1234567", "99912345678", "0001000123"}
	for _, d := range long {
		got := NormalizeBarcode(d, TrimPolicy{})
		assert.Equal(t, d[len(d)-7:], got, "input %q", d)
	}

	short := []string{"1", "42", "999999"}
	for _, d := range short {
		got := NormalizeBarcode(d, TrimPolicy{})
		assert.Len(t, got, 7, "input %q", d)
		assert.True(t, len(got) >= len(d) && got[len(got)-len(d):] == d, "input %q got %q", d, got)
	}
}

// Package parser implements the heuristic extraction and interval
// arithmetic for ticket-range reconciliation.
package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/ticketrecon/ticketrecon-go/pkg/ticketrecon/models"
)

// BarcodeLength is the canonical normalized barcode width.
const BarcodeLength = 7

// TrimPolicy controls how a raw scanned digit string is reduced to a
// canonical 7-digit barcode. Report formats disagree on this, so the
// policy is explicit per input mode and never unified silently.
type TrimPolicy struct {
	// TrimLeading drops the first N digits before normalization.
	TrimLeading int
	// DefaultPrefix is prepended when the trimmed string is shorter
	// than BarcodeLength (ERP exports omit the book prefix).
	DefaultPrefix string
}

// DigitString reduces a cell value to its digits. Numeric cells are
// truncated toward zero; string cells in scientific notation are parsed
// as floats first. Absence of digits is a valid, silent result.
func DigitString(cell models.Cell) string {
	switch v := cell.(type) {
	case nil:
		return ""
	case int64:
		if v < 0 {
			v = -v
		}
		return strconv.FormatInt(v, 10)
	case int:
		return DigitString(int64(v))
	case float64:
		return strconv.FormatInt(int64(math.Trunc(math.Abs(v))), 10)
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return ""
		}
		if strings.ContainsAny(s, "eE") {
			if f, err := strconv.ParseFloat(s, 64); err == nil {
				return strconv.FormatInt(int64(math.Trunc(math.Abs(f))), 10)
			}
		}
		return keepDigits(s)
	default:
		return ""
	}
}

// NormalizeBarcode applies the trim policy and produces exactly 7
// digits: the last 7 when the trimmed string is long enough, otherwise
// left-padded with zeros. Empty input after trimming yields empty
// output and the caller must treat it as "no barcode".
func NormalizeBarcode(rawDigits string, p TrimPolicy) string {
	d := keepDigits(rawDigits)
	if p.TrimLeading > 0 {
		if p.TrimLeading >= len(d) {
			d = ""
		} else {
			d = d[p.TrimLeading:]
		}
	}
	if d == "" {
		return ""
	}
	if len(d) < BarcodeLength && p.DefaultPrefix != "" {
		d = p.DefaultPrefix + d
	}
	if len(d) >= BarcodeLength {
		return d[len(d)-BarcodeLength:]
	}
	return strings.Repeat("0", BarcodeLength-len(d)) + d
}

// keepDigits strips everything but ASCII digits.
func keepDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// cellText renders a cell for token scanning. Numbers are rendered as
// plain decimal integers so digit runs survive excelize's typed parse.
func cellText(cell models.Cell) string {
	switch v := cell.(type) {
	case nil:
		return ""
	case string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	case int:
		return strconv.Itoa(v)
	case float64:
		if v == math.Trunc(v) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

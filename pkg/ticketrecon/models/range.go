package models

// Range is a dealer-attributed inclusive barcode interval.
// Invariant: From <= To.
type Range struct {
	// DealerCode is the canonical 6-digit dealer code.
	DealerCode string `json:"dealer_code"`
	// Game is the resolved game name (may be empty).
	Game string `json:"game,omitempty"`
	// Draw is the resolved draw date (may be empty).
	Draw string `json:"draw,omitempty"`
	// From is the first barcode of the range.
	From int64 `json:"from"`
	// To is the last barcode of the range (inclusive).
	To int64 `json:"to"`
	// Pos orders ranges by source row; gap ranges sort between
	// their trigger row and its neighbors.
	Pos int `json:"-"`
}

// Qty is the derived ticket count of the range, always >= 1 for a
// valid range.
func (r Range) Qty() int64 {
	return r.To - r.From + 1
}

// StructuredRow is the externally visible output record, derivable
// from a Range by dropping To.
type StructuredRow struct {
	DealerCode string `json:"dealer_code"`
	Game       string `json:"game,omitempty"`
	Draw       string `json:"draw,omitempty"`
	From       int64  `json:"from"`
	Qty        int64  `json:"qty"`
}

// Structured converts a Range to its output record.
func (r Range) Structured() StructuredRow {
	return StructuredRow{
		DealerCode: r.DealerCode,
		Game:       r.Game,
		Draw:       r.Draw,
		From:       r.From,
		Qty:        r.Qty(),
	}
}

// V1Row describes a ticket range already reported elsewhere. It is
// used only as an exclusion subtrahend, never emitted. Either To or
// Qty describes the extent; To wins when both are set.
type V1Row struct {
	DealerCode string `json:"dealer_code"`
	Game       string `json:"game,omitempty"`
	Draw       string `json:"draw,omitempty"`
	From       int64  `json:"from"`
	To         int64  `json:"to,omitempty"`
	Qty        int64  `json:"qty,omitempty"`
}

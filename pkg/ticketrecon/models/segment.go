package models

// Segment is an inclusive barcode interval declared by the caller as
// valid output territory (an availability block or a derived break).
type Segment struct {
	// Start is the first barcode of the segment.
	Start int64 `json:"start"`
	// End is the last barcode of the segment (inclusive).
	End int64 `json:"end"`
}

// BlockInput is a raw availability-block declaration as entered by the
// caller, before validation. From/To are kept as strings so one-sided
// and malformed entries survive long enough to be reported.
type BlockInput struct {
	From string `json:"from"`
	To   string `json:"to"`
}

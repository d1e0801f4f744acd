// Package ticketrecon reconciles lottery ticket-range spreadsheets
// into dealer-attributed structured records.
package ticketrecon

import (
	"github.com/ticketrecon/ticketrecon-go/pkg/ticketrecon/models"
	"github.com/ticketrecon/ticketrecon-go/pkg/ticketrecon/parser"
)

// Mode selects the report layout being processed.
type Mode string

const (
	// ModeERP processes ERP stock summaries: rows carry a From and a
	// To barcode.
	ModeERP Mode = "erp"
	// ModeReturns processes agent return/sales reports: rows carry a
	// From barcode and a trailing quantity.
	ModeReturns Mode = "returns"
)

// Options configures one processing run.
type Options struct {
	// Mode specifies the report layout (erp, returns).
	Mode Mode
	// Game overrides game-name detection when non-empty.
	Game string
	// Draw overrides draw-date detection when non-empty.
	Draw string
	// Trim is the barcode trim policy for this input format. Formats
	// disagree on leading-digit handling, so there is no cross-format
	// default; the zero policy keeps all digits and left-pads.
	Trim parser.TrimPolicy
	// Blocks declares availability blocks; empty means no filtering.
	Blocks []models.BlockInput
	// BreakStart and BreakSizes derive availability segments
	// mechanically instead of explicit blocks.
	BreakStart int64
	BreakSizes []int64
	// V1 lists previously reported ranges to subtract.
	V1 []models.V1Row
	// StrictV1 scopes exclusion by dealer+game+draw instead of
	// dealer only.
	StrictV1 bool
}

// DefaultOptions returns default processing options.
func DefaultOptions() Options {
	return Options{
		Mode: ModeERP,
	}
}

// Segments resolves the declared availability territory: explicit
// blocks when present, derived breaks otherwise, nil when neither is
// declared. Warnings cover malformed block declarations.
func (o Options) Segments() ([]models.Segment, []string) {
	if len(o.Blocks) > 0 {
		return parser.ValidateBlocks(o.Blocks)
	}
	if len(o.BreakSizes) > 0 {
		return parser.BreakSegments(o.BreakStart, o.BreakSizes), nil
	}
	return nil, nil
}

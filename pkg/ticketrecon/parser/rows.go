package parser

import (
	"regexp"
	"strings"

	"github.com/ticketrecon/ticketrecon-go/pkg/ticketrecon/models"
)

// Classified is the result of scanning one row. Barcode values are
// kept as raw digit runs; trim policy is applied by the range builder.
type Classified struct {
	// RowIndex is the 0-based position of the row in the grid.
	RowIndex int
	// Dealer is the resolved 6-digit dealer code.
	Dealer string
	// From is the first barcode-length digit run (raw, pre-trim).
	From string
	// To is the second barcode-length digit run, if any.
	To string
	// Qty is the trailing 1-5 digit run, if any.
	Qty string
	// Game is the first standalone 2-5 letter token, if any.
	Game string
	// Draw is the first dd/mm/yyyy token, if any.
	Draw string
	// HasHash reports a literal '#' marker somewhere in the row.
	HasHash bool
}

var (
	gameTokenRe = regexp.MustCompile(`[A-Za-z]+`)
	drawTokenRe = regexp.MustCompile(`\d{2}/\d{2}/\d{4}`)
)

// extractRule is one named extraction step. Rules run in the declared
// order so the tie-break policy stays visible and testable instead of
// being implicit in a scanning loop.
type extractRule struct {
	name  string
	apply func(row models.Row, cfg *models.DealerConfig, c *Classified)
}

var extractRules = []extractRule{
	{"dealer-first-5-or-6-run", extractDealer},
	{"dealer-question-sentinel", extractQuestionDealer},
	{"from-to-first-barcode-runs", extractBarcodes},
	{"qty-trailing-short-run", extractQty},
	{"game-first-alpha-token", extractGame},
	{"draw-first-date-token", extractDraw},
	{"hash-marker", extractHash},
}

// Classify scans one row with the ordered extraction rules. A row
// classifies only when a dealer code and a From barcode were both
// found; anything else is an expected miss, not an error.
func Classify(row models.Row, idx int, cfg *models.DealerConfig) (Classified, bool) {
	c := Classified{RowIndex: idx}
	if skippableRow(row) {
		return c, false
	}
	for _, rule := range extractRules {
		rule.apply(row, cfg, &c)
	}
	return c, c.Dealer != "" && c.From != ""
}

// skippableRow rejects blank rows and summary rows. "TOTAL" anywhere
// in a text cell marks a summary row, case-insensitive.
func skippableRow(row models.Row) bool {
	empty := true
	for _, cell := range row {
		text := cellText(cell)
		if strings.TrimSpace(text) != "" {
			empty = false
		}
		if s, ok := cell.(string); ok {
			if strings.Contains(strings.ToUpper(s), "TOTAL") {
				return true
			}
		}
	}
	return empty
}

// extractDealer takes the first digit run of length exactly 5 or 6,
// scanning cells left to right. Identifiers sit early in real layouts,
// so first match wins.
func extractDealer(row models.Row, cfg *models.DealerConfig, c *Classified) {
	for _, cell := range row {
		for _, run := range digitRuns(cellText(cell)) {
			if len(run) == 5 || len(run) == 6 {
				c.Dealer = ResolveDealer(run, cfg)
				return
			}
		}
	}
}

// extractQuestionDealer attributes rows marked with a literal '?' and
// no numeric dealer code to the master dealer. Paper forms use the
// question mark for illegible dealer fields.
func extractQuestionDealer(row models.Row, cfg *models.DealerConfig, c *Classified) {
	if c.Dealer != "" || cfg == nil || cfg.MasterDealerCode == "" {
		return
	}
	for _, cell := range row {
		if s, ok := cell.(string); ok && strings.Contains(s, "?") {
			c.Dealer = cfg.MasterDealerCode
			return
		}
	}
}

// extractBarcodes takes the first two digit runs of barcode length or
// longer: first = From, second = To.
func extractBarcodes(row models.Row, cfg *models.DealerConfig, c *Classified) {
	for _, cell := range row {
		for _, run := range digitRuns(cellText(cell)) {
			if len(run) < BarcodeLength {
				continue
			}
			if c.From == "" {
				c.From = run
			} else if c.To == "" {
				c.To = run
				return
			}
		}
	}
}

// extractQty scans right to left for the first digit run of length
// 1-5. The reversed scan favors trailing quantity columns over
// leading identifiers.
func extractQty(row models.Row, cfg *models.DealerConfig, c *Classified) {
	for i := len(row) - 1; i >= 0; i-- {
		runs := digitRuns(cellText(row[i]))
		for j := len(runs) - 1; j >= 0; j-- {
			if n := len(runs[j]); n >= 1 && n <= 5 {
				c.Qty = runs[j]
				return
			}
		}
	}
}

// extractGame takes the first standalone alphabetic token of length 2-5.
func extractGame(row models.Row, cfg *models.DealerConfig, c *Classified) {
	for _, cell := range row {
		s, ok := cell.(string)
		if !ok {
			continue
		}
		for _, tok := range gameTokenRe.FindAllString(s, -1) {
			if n := len(tok); n >= 2 && n <= 5 {
				c.Game = tok
				return
			}
		}
	}
}

// extractDraw takes the first dd/mm/yyyy token.
func extractDraw(row models.Row, cfg *models.DealerConfig, c *Classified) {
	for _, cell := range row {
		s, ok := cell.(string)
		if !ok {
			continue
		}
		if m := drawTokenRe.FindString(s); m != "" {
			c.Draw = m
			return
		}
	}
}

// extractHash flags rows carrying the '#' unassigned-region marker.
func extractHash(row models.Row, cfg *models.DealerConfig, c *Classified) {
	for _, cell := range row {
		if s, ok := cell.(string); ok && strings.Contains(s, "#") {
			c.HasHash = true
			return
		}
	}
}

// digitRuns returns the contiguous digit runs of s in order.
func digitRuns(s string) []string {
	var runs []string
	start := -1
	for i, r := range s {
		if r >= '0' && r <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			runs = append(runs, s[start:i])
			start = -1
		}
	}
	if start >= 0 {
		runs = append(runs, s[start:])
	}
	return runs
}

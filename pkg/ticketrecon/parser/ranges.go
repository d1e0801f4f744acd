package parser

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/ticketrecon/ticketrecon-go/pkg/ticketrecon/models"
)

const (
	gameMarker = "ITEM :"
	drawMarker = "DRAW DATE"
)

var drawDateRe = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)

// ResolveGameName returns the caller override when non-empty, else the
// text after the first "ITEM :" marker found in the grid, else "".
func ResolveGameName(grid *models.Grid, override string) string {
	if override != "" {
		return override
	}
	for _, row := range grid.Rows {
		for _, cell := range row {
			s, ok := cell.(string)
			if !ok {
				continue
			}
			if idx := strings.Index(s, gameMarker); idx >= 0 {
				return strings.TrimSpace(s[idx+len(gameMarker):])
			}
		}
	}
	return ""
}

// ResolveDrawDate returns the caller override when non-empty, else the
// yyyy-mm-dd substring of the first cell containing "DRAW DATE", else "".
func ResolveDrawDate(grid *models.Grid, override string) string {
	if override != "" {
		return override
	}
	for _, row := range grid.Rows {
		for _, cell := range row {
			s, ok := cell.(string)
			if !ok {
				continue
			}
			if strings.Contains(s, drawMarker) {
				if m := drawDateRe.FindString(s); m != "" {
					return m
				}
			}
		}
	}
	return ""
}

// BuildRanges reconstructs dealer ranges from an ERP summary grid:
// rows carrying two barcode runs become [From, To] ranges, and rows
// carrying a '#' marker turn the interval since the previous dealer
// range into a gap attributed to the master dealer. Malformed rows are
// skipped silently; hand-maintained source data must never abort a
// whole-file import.
func BuildRanges(grid *models.Grid, cfg *models.DealerConfig, policy TrimPolicy, gameOverride, drawOverride string) []models.Range {
	game := ResolveGameName(grid, gameOverride)
	draw := ResolveDrawDate(grid, drawOverride)

	// Row index doubling leaves an odd slot after every row so gap
	// ranges can sort immediately after their trigger.
	var ranges []models.Range
	type hashRow struct {
		rowIndex int
		from     int64
	}
	var hashRows []hashRow

	for idx, row := range grid.Rows {
		c, ok := Classify(row, idx, cfg)
		if c.HasHash && c.From != "" {
			if from, err := barcodeValue(c.From, policy); err == nil {
				hashRows = append(hashRows, hashRow{rowIndex: idx, from: from})
			}
			continue
		}
		if !ok || c.To == "" {
			continue
		}
		from, err := barcodeValue(c.From, policy)
		if err != nil {
			continue
		}
		to, err := barcodeValue(c.To, policy)
		if err != nil {
			continue
		}
		if to < from {
			continue
		}
		ranges = append(ranges, models.Range{
			DealerCode: c.Dealer,
			Game:       game,
			Draw:       draw,
			From:       from,
			To:         to,
			Pos:        idx * 2,
		})
	}

	// Gap pass. Latest prior dealer row strictly above wins; any other
	// tie-break would reattribute house-gap tickets to the wrong dealer.
	mainCount := len(ranges)
	for _, h := range hashRows {
		prev := -1
		for i, r := range ranges[:mainCount] {
			if r.Pos/2 < h.rowIndex && (prev < 0 || r.Pos > ranges[prev].Pos) {
				prev = i
			}
		}
		if prev < 0 {
			continue
		}
		gapFrom := ranges[prev].To + 1
		gapTo := h.from - 1
		if gapTo < gapFrom || cfg == nil || cfg.MasterDealerCode == "" {
			continue
		}
		ranges = append(ranges, models.Range{
			DealerCode: cfg.MasterDealerCode,
			Game:       game,
			Draw:       draw,
			From:       gapFrom,
			To:         gapTo,
			Pos:        h.rowIndex*2 + 1,
		})
	}

	sort.SliceStable(ranges, func(i, j int) bool {
		return ranges[i].Pos < ranges[j].Pos
	})
	return ranges
}

// BuildReturnRanges reconstructs dealer ranges from a return/sales
// grid: rows carrying one barcode run plus a trailing quantity become
// [From, From+Qty-1] ranges.
func BuildReturnRanges(grid *models.Grid, cfg *models.DealerConfig, policy TrimPolicy, gameOverride, drawOverride string) []models.Range {
	game := ResolveGameName(grid, gameOverride)
	draw := ResolveDrawDate(grid, drawOverride)

	var ranges []models.Range
	for idx, row := range grid.Rows {
		c, ok := Classify(row, idx, cfg)
		if !ok || c.Qty == "" {
			continue
		}
		from, err := barcodeValue(c.From, policy)
		if err != nil {
			continue
		}
		qty, err := strconv.ParseInt(c.Qty, 10, 64)
		if err != nil || qty <= 0 {
			continue
		}
		ranges = append(ranges, models.Range{
			DealerCode: c.Dealer,
			Game:       game,
			Draw:       draw,
			From:       from,
			To:         from + qty - 1,
			Pos:        idx * 2,
		})
	}
	return ranges
}

// barcodeValue normalizes a raw digit run and parses it as an integer
// barcode. An empty normalization means "no barcode".
func barcodeValue(raw string, policy TrimPolicy) (int64, error) {
	norm := NormalizeBarcode(raw, policy)
	if norm == "" {
		return 0, strconv.ErrSyntax
	}
	return strconv.ParseInt(norm, 10, 64)
}

package parser

import (
	"sort"
	"strings"

	"github.com/ticketrecon/ticketrecon-go/pkg/ticketrecon/models"
)

// interval is one exclusion span, from <= to.
type interval struct {
	from, to int64
}

// ExcludeV1 subtracts previously reported ranges from freshly parsed
// ones, per dealer. With strict scoping the exclusion key also carries
// game and draw, so identical dealer ranges of different draws do not
// cancel each other. A range fully covered by exclusions produces zero
// output rows: everything in it was already reported.
func ExcludeV1(ranges []models.Range, v1 []models.V1Row, strict bool) []models.Range {
	index := make(map[string][]interval)
	for _, row := range v1 {
		from, to, ok := v1Extent(row)
		if !ok {
			continue
		}
		key := excludeKey(PadDealerCode(row.DealerCode), row.Game, row.Draw, strict)
		index[key] = append(index[key], interval{from: from, to: to})
	}
	for key := range index {
		sort.Slice(index[key], func(i, j int) bool {
			return index[key][i].from < index[key][j].from
		})
	}

	var out []models.Range
	for _, r := range ranges {
		key := excludeKey(r.DealerCode, r.Game, r.Draw, strict)
		for _, rem := range subtract(interval{from: r.From, to: r.To}, index[key]) {
			piece := r
			piece.From = rem.from
			piece.To = rem.to
			out = append(out, piece)
		}
	}
	return out
}

// subtract removes every exclusion from the starting interval and
// returns the surviving remainders in order.
func subtract(start interval, exclusions []interval) []interval {
	remaining := []interval{start}
	for _, excl := range exclusions {
		var next []interval
		for _, seg := range remaining {
			if excl.to < seg.from || excl.from > seg.to {
				next = append(next, seg)
				continue
			}
			if excl.from > seg.from {
				next = append(next, interval{from: seg.from, to: excl.from - 1})
			}
			if excl.to < seg.to {
				next = append(next, interval{from: excl.to + 1, to: seg.to})
			}
		}
		remaining = next
		if len(remaining) == 0 {
			break
		}
	}
	return remaining
}

// v1Extent normalizes a V1 row to an inclusive interval. To wins over
// Qty when both are set; reversed bounds are swapped.
func v1Extent(row models.V1Row) (int64, int64, bool) {
	from := row.From
	to := row.To
	if to == 0 {
		if row.Qty > 0 {
			to = from + row.Qty - 1
		} else {
			// Single-ticket row: neither To nor Qty declared.
			to = from
		}
	}
	if to == 0 && from == 0 {
		return 0, 0, false
	}
	if to < from {
		from, to = to, from
	}
	return from, to, true
}

func excludeKey(dealer, game, draw string, strict bool) string {
	if !strict {
		return dealer
	}
	return dealer + "__" + strings.TrimSpace(game) + "__" + strings.TrimSpace(draw)
}

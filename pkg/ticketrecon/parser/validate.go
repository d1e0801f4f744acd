package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ticketrecon/ticketrecon-go/pkg/ticketrecon/models"
)

// ValidateBlocks converts raw availability-block declarations into
// segments and collects human-readable warnings for the malformed
// ones. Warnings never halt processing; the caller blocks the final
// export until they are resolved.
func ValidateBlocks(blocks []models.BlockInput) ([]models.Segment, []string) {
	var segs []models.Segment
	var warnings []string
	for i, b := range blocks {
		fromRaw := strings.TrimSpace(b.From)
		toRaw := strings.TrimSpace(b.To)
		if fromRaw == "" && toRaw == "" {
			continue
		}
		if fromRaw == "" || toRaw == "" {
			warnings = append(warnings, fmt.Sprintf("block %d: FROM and TO must both be set", i+1))
			continue
		}
		from, errFrom := strconv.ParseInt(keepDigits(fromRaw), 10, 64)
		to, errTo := strconv.ParseInt(keepDigits(toRaw), 10, 64)
		if errFrom != nil || errTo != nil {
			warnings = append(warnings, fmt.Sprintf("block %d: FROM/TO are not numeric", i+1))
			continue
		}
		if from > to {
			warnings = append(warnings, fmt.Sprintf("block %d: FROM %d is greater than TO %d", i+1, from, to))
			continue
		}
		segs = append(segs, models.Segment{Start: from, End: to})
	}
	return segs, warnings
}

// ValidateBreaks checks that the declared break sizes exactly cover
// the declared [from, to] span and returns a warning when they do not.
func ValidateBreaks(from, to int64, sizes []int64) string {
	var total int64
	for _, size := range sizes {
		if size > 0 {
			total += size
		}
	}
	if total == 0 {
		return "no break sizes declared"
	}
	if from+total-1 != to {
		return fmt.Sprintf("FROM %d + %d tickets ends at %d, declared TO is %d", from, total, from+total-1, to)
	}
	return ""
}

package parser

import (
	"sort"

	"github.com/ticketrecon/ticketrecon-go/pkg/ticketrecon/models"
)

// MergeSegments sorts segments by start and merges overlapping or
// adjacent ones. Callers must merge before intersecting so a barcode
// range spanning two overlapping declared blocks is not counted twice.
func MergeSegments(segs []models.Segment) []models.Segment {
	if len(segs) == 0 {
		return nil
	}
	sorted := make([]models.Segment, len(segs))
	copy(sorted, segs)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	merged := []models.Segment{sorted[0]}
	for _, s := range sorted[1:] {
		last := &merged[len(merged)-1]
		if s.Start <= last.End+1 {
			if s.End > last.End {
				last.End = s.End
			}
			continue
		}
		merged = append(merged, s)
	}
	return merged
}

// ApplySegments intersects a range with the declared availability
// segments. An empty segment list passes the range through unchanged;
// availability filtering is opt-in. With segments present, a range
// intersecting none of them is discarded entirely: blocks outside
// confirmed stock are not yet reportable.
func ApplySegments(r models.Range, segs []models.Segment) []models.Range {
	if len(segs) == 0 {
		return []models.Range{r}
	}
	var out []models.Range
	for _, seg := range MergeSegments(segs) {
		start := r.From
		if seg.Start > start {
			start = seg.Start
		}
		end := r.To
		if seg.End < end {
			end = seg.End
		}
		if start > end {
			continue
		}
		piece := r
		piece.From = start
		piece.To = end
		out = append(out, piece)
	}
	return out
}

// BreakSegments derives a segment list from a start barcode and a list
// of consecutive block sizes: each segment begins immediately after
// the previous one ends. Non-positive sizes are skipped.
func BreakSegments(start int64, sizes []int64) []models.Segment {
	var segs []models.Segment
	next := start
	for _, size := range sizes {
		if size <= 0 {
			continue
		}
		segs = append(segs, models.Segment{Start: next, End: next + size - 1})
		next += size
	}
	return segs
}

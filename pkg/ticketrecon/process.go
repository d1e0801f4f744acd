package ticketrecon

import (
	"fmt"
	"os"

	"github.com/ticketrecon/ticketrecon-go/pkg/ticketrecon/models"
	"github.com/ticketrecon/ticketrecon-go/pkg/ticketrecon/parser"
)

// Result holds the outcome of processing one file. An empty Rows slice
// with a nil error is a legitimate state: everything was filtered by
// availability or already reported in V1.
type Result struct {
	// File is the processed file name.
	File string `json:"file"`
	// Game is the resolved game name.
	Game string `json:"game,omitempty"`
	// Draw is the resolved draw date.
	Draw string `json:"draw,omitempty"`
	// Rows contains the final structured records.
	Rows []models.StructuredRow `json:"rows"`
	// Warnings lists validation problems that did not halt the run.
	Warnings []string `json:"warnings,omitempty"`
}

// ProcessFile runs the full reconciliation pipeline on one workbook:
// decode, classify, build ranges, segment, exclude.
func ProcessFile(path string, opts Options, cfg *models.DealerConfig) (*Result, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, NewProcessError(path, "decode", ErrFileNotFound)
	}

	grid, err := parser.DecodeGrid(path)
	if err != nil {
		return nil, NewProcessError(path, "decode", err)
	}

	var ranges []models.Range
	switch opts.Mode {
	case ModeERP:
		ranges = parser.BuildRanges(grid, cfg, opts.Trim, opts.Game, opts.Draw)
	case ModeReturns:
		ranges = parser.BuildReturnRanges(grid, cfg, opts.Trim, opts.Game, opts.Draw)
	default:
		return nil, NewProcessError(path, "build", fmt.Errorf("%w: %q", ErrUnknownMode, opts.Mode))
	}

	segments, warnings := opts.Segments()
	if len(segments) > 0 {
		var segmented []models.Range
		for _, r := range ranges {
			segmented = append(segmented, parser.ApplySegments(r, segments)...)
		}
		ranges = segmented
	}

	if len(opts.V1) > 0 {
		ranges = parser.ExcludeV1(ranges, opts.V1, opts.StrictV1)
	}

	result := &Result{
		File:     grid.BookName,
		Game:     parser.ResolveGameName(grid, opts.Game),
		Draw:     parser.ResolveDrawDate(grid, opts.Draw),
		Rows:     make([]models.StructuredRow, 0, len(ranges)),
		Warnings: warnings,
	}
	for _, r := range ranges {
		result.Rows = append(result.Rows, r.Structured())
	}
	return result, nil
}

// ProcessBatch processes files strictly in order. Errors are additive:
// one undecodable file does not stop the rest of the batch. The
// returned results hold one entry per successful file.
func ProcessBatch(paths []string, opts Options, cfg *models.DealerConfig) ([]*Result, []error) {
	var results []*Result
	var errs []error
	for _, path := range paths {
		res, err := ProcessFile(path, opts, cfg)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		results = append(results, res)
	}
	return results, errs
}

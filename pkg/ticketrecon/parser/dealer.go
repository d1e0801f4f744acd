package parser

import (
	"strings"

	"github.com/ticketrecon/ticketrecon-go/pkg/ticketrecon/models"
)

// DealerCodeLength is the canonical dealer code width.
const DealerCodeLength = 6

// PadDealerCode strips non-digits and left-pads to 6 digits. Codes
// longer than 6 digits are kept as-is; the scanners never produce them.
func PadDealerCode(raw string) string {
	d := keepDigits(raw)
	if d == "" {
		return ""
	}
	if len(d) < DealerCodeLength {
		return strings.Repeat("0", DealerCodeLength-len(d)) + d
	}
	return d
}

// ResolveDealer normalizes a raw dealer code to canonical 6-digit form
// and resolves it through the alias table. Resolving an already
// resolved or non-aliased code is a no-op.
func ResolveDealer(raw string, cfg *models.DealerConfig) string {
	code := PadDealerCode(raw)
	if code == "" {
		return ""
	}
	if cfg != nil {
		if target, ok := cfg.Aliases[code]; ok && target != "" {
			return target
		}
	}
	return code
}

package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ticketrecon/ticketrecon-go/pkg/ticketrecon/models"
)

func TestPadDealerCode(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"30520", "030520"},
		{"030520", "030520"},
		{"1", "000001"},
		{"AG-30520", "030520"},
		{"", ""},
		{"no digits", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, PadDealerCode(tt.input), "input %q", tt.input)
	}
}

func TestResolveDealer(t *testing.T) {
	cfg := &models.DealerConfig{
		MasterDealerCode: "999999",
		Aliases: map[string]string{
			"030520": "111111",
		},
	}

	assert.Equal(t, "111111", ResolveDealer("30520", cfg), "alias resolves through padding")
	assert.Equal(t, "045678", ResolveDealer("45678", cfg), "non-aliased code padded unchanged")
	assert.Equal(t, "045678", ResolveDealer("045678", nil), "nil config still pads")
}

// Resolving an already-resolved code must be a no-op.
func TestResolveDealerIdempotent(t *testing.T) {
	cfg := &models.DealerConfig{
		Aliases: map[string]string{"030520": "111111"},
	}

	for _, raw := range []string{"30520", "030520", "111111", "45678"} {
		once := ResolveDealer(raw, cfg)
		assert.Equal(t, once, ResolveDealer(once, cfg), "input %q", raw)
	}
}

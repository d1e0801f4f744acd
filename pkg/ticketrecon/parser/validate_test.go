package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ticketrecon/ticketrecon-go/pkg/ticketrecon/models"
)

func TestValidateBlocks(t *testing.T) {
	blocks := []models.BlockInput{
		{From: "1000", To: "1999"},
		{From: "", To: ""},
		{From: "3000", To: ""},
		{From: "5000", To: "4000"},
		{From: "abc", To: "def"},
		{From: " 6000 ", To: " 6999 "},
	}

	segs, warnings := ValidateBlocks(blocks)

	require.Len(t, segs, 2)
	assert.Equal(t, models.Segment{Start: 1000, End: 1999}, segs[0])
	assert.Equal(t, models.Segment{Start: 6000, End: 6999}, segs[1])

	require.Len(t, warnings, 3)
	assert.Contains(t, warnings[0], "block 3")
	assert.Contains(t, warnings[1], "block 4")
	assert.Contains(t, warnings[2], "block 5")
}

func TestValidateBreaks(t *testing.T) {
	assert.Empty(t, ValidateBreaks(1000, 1349, []int64{100, 50, 200}))
	assert.NotEmpty(t, ValidateBreaks(1000, 1350, []int64{100, 50, 200}))
	assert.Equal(t, "no break sizes declared", ValidateBreaks(1000, 1999, nil))
}

package ticketrecon

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ticketrecon/ticketrecon-go/pkg/ticketrecon/models"
)

func writeWorkbook(t *testing.T, name string, rows [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, f.SaveAs(path))
	return path
}

func testConfig() *models.DealerConfig {
	return &models.DealerConfig{
		MasterDealerCode: "999999",
		Aliases:          map[string]string{"030520": "111111"},
	}
}

func erpWorkbook(t *testing.T) string {
	return writeWorkbook(t, "erp.xlsx", [][]interface{}{
		{"ITEM : LUCKY SEVEN"},
		{"DRAW DATE 2024-05-12"},
		{"45678", 1000100, 1000150},
		{"#", 1000160},
		{"TOTAL", 101},
	})
}

func TestProcessFileERP(t *testing.T) {
	res, err := ProcessFile(erpWorkbook(t), DefaultOptions(), testConfig())
	require.NoError(t, err)

	assert.Equal(t, "erp.xlsx", res.File)
	assert.Equal(t, "LUCKY SEVEN", res.Game)
	assert.Equal(t, "2024-05-12", res.Draw)
	require.Len(t, res.Rows, 2)

	assert.Equal(t, "045678", res.Rows[0].DealerCode)
	assert.Equal(t, int64(1000100), res.Rows[0].From)
	assert.Equal(t, int64(51), res.Rows[0].Qty)

	assert.Equal(t, "999999", res.Rows[1].DealerCode, "gap goes to the master dealer")
	assert.Equal(t, int64(1000151), res.Rows[1].From)
	assert.Equal(t, int64(9), res.Rows[1].Qty)
}

func TestProcessFileReturnsWithExclusion(t *testing.T) {
	path := writeWorkbook(t, "returns.xlsx", [][]interface{}{
		{"30520", 1000000, 100},
	})

	opts := DefaultOptions()
	opts.Mode = ModeReturns
	opts.V1 = []models.V1Row{
		{DealerCode: "111111", From: 1000050, To: 1000059},
	}

	res, err := ProcessFile(path, opts, testConfig())
	require.NoError(t, err)
	require.Len(t, res.Rows, 2)

	assert.Equal(t, "111111", res.Rows[0].DealerCode, "alias resolved before exclusion")
	assert.Equal(t, int64(50), res.Rows[0].Qty)
	assert.Equal(t, int64(40), res.Rows[1].Qty)
}

func TestProcessFileAvailabilityBlocks(t *testing.T) {
	path := writeWorkbook(t, "erp.xlsx", [][]interface{}{
		{"45678", 1000100, 1000199},
	})

	opts := DefaultOptions()
	opts.Blocks = []models.BlockInput{
		{From: "1000100", To: "1000149"},
		{From: "2000000", To: ""},
	}

	res, err := ProcessFile(path, opts, testConfig())
	require.NoError(t, err)

	require.Len(t, res.Rows, 1, "range clipped to the declared block")
	assert.Equal(t, int64(50), res.Rows[0].Qty)
	require.Len(t, res.Warnings, 1, "one-sided block reported, not fatal")
}

func TestProcessFileZeroResult(t *testing.T) {
	path := writeWorkbook(t, "erp.xlsx", [][]interface{}{
		{"45678", 1000100, 1000199},
	})

	opts := DefaultOptions()
	opts.Blocks = []models.BlockInput{{From: "5000000", To: "5999999"}}

	res, err := ProcessFile(path, opts, testConfig())
	require.NoError(t, err, "no rows produced is informational, not a failure")
	assert.Empty(t, res.Rows)
}

func TestProcessFileMissing(t *testing.T) {
	_, err := ProcessFile(filepath.Join(t.TempDir(), "missing.xlsx"), DefaultOptions(), testConfig())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFileNotFound)

	var procErr *ProcessError
	require.ErrorAs(t, err, &procErr)
	assert.Equal(t, "decode", procErr.Stage)
}

func TestProcessFileUnknownMode(t *testing.T) {
	opts := DefaultOptions()
	opts.Mode = Mode("bogus")

	_, err := ProcessFile(erpWorkbook(t), opts, testConfig())
	assert.ErrorIs(t, err, ErrUnknownMode)
}

// One bad file must not stop the rest of the batch.
func TestProcessBatchAdditiveErrors(t *testing.T) {
	good := erpWorkbook(t)
	missing := filepath.Join(t.TempDir(), "missing.xlsx")

	results, errs := ProcessBatch([]string{good, missing}, DefaultOptions(), testConfig())
	assert.Len(t, results, 1)
	require.Len(t, errs, 1)
	assert.True(t, errors.Is(errs[0], ErrFileNotFound))
}

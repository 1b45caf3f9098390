package importer

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func uploadRequest(t *testing.T, workbook []byte) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	fw, err := mw.CreateFormFile("file", "lots.xlsx")
	require.NoError(t, err)
	_, err = fw.Write(workbook)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/tools/massbalance/import", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestHandler_Calc_SkipsBadRows(t *testing.T) {
	workbook := buildWorkbook(t, [][]interface{}{
		{"initial_mass_kg", "initial_brix_pct", "final_brix_pct"},
		{50, 7, 10},
		{"not", "a", "number"},
		{10, 7, 7}, // domain rule violation
		{100, 0, 50},
	})

	rec := httptest.NewRecorder()
	h := &Handler{}
	h.Calc(rec, uploadRequest(t, workbook))

	require.Equal(t, http.StatusOK, rec.Code)
	var out ImportResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	require.Equal(t, 2, out.Count)
	assert.InDelta(t, 51.666666666666664, out.Results[0].FinalMassKg, 1e-9)
	assert.InDelta(t, 200, out.Results[1].FinalMassKg, 1e-9)
}

func TestHandler_Calc_MissingFile(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/tools/massbalance/import", nil)
	rec := httptest.NewRecorder()

	h := &Handler{}
	h.Calc(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Calc_EmptySheet(t *testing.T) {
	workbook := buildWorkbook(t, [][]interface{}{
		{"initial_mass_kg", "initial_brix_pct", "final_brix_pct"},
	})

	rec := httptest.NewRecorder()
	h := &Handler{}
	h.Calc(rec, uploadRequest(t, workbook))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

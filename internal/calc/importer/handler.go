package importer

import (
	"encoding/json"
	"fmt"
	"net/http"

	massbalance "Brix/internal/calc/massbalance"
	"github.com/xuri/excelize/v2"
)

type Handler struct{}

type ImportResult struct {
	Count   int                  `json:"count"`
	Results []massbalance.Result `json:"results"`
}

// Calc reads lots from the first sheet of an uploaded workbook. Expected
// columns: initial_mass_kg, initial_brix_pct, final_brix_pct; the header row
// and any row that fails to parse or compute are skipped.
func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	var results []massbalance.Result
	for i := 1; i < len(rows); i++ {
		input, err := parseRow(rows[i])
		if err != nil {
			continue
		}
		if err := massbalance.CheckDomainRule(input); err != nil {
			continue
		}
		res, err := massbalance.Calculate(input)
		if err != nil {
			continue
		}
		results = append(results, res)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ImportResult{Count: len(results), Results: results})
}

func parseRow(row []string) (massbalance.Input, error) {
	if len(row) < 3 {
		return massbalance.Input{}, fmt.Errorf("bad row")
	}
	mass, err := toFloat(row[0])
	if err != nil {
		return massbalance.Input{}, err
	}
	x1, err := toFloat(row[1])
	if err != nil {
		return massbalance.Input{}, err
	}
	x3, err := toFloat(row[2])
	if err != nil {
		return massbalance.Input{}, err
	}
	return massbalance.Input{
		InitialMassKg:  mass,
		InitialBrixPct: x1,
		FinalBrixPct:   x3,
	}, nil
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%f", &v)
	return v, err
}

package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	massbalance "Brix/internal/calc/massbalance"
	"github.com/phpdave11/gofpdf"
)

type Input struct {
	Project string            `json:"project"`
	Author  string            `json:"author"`
	Title   string            `json:"title"`
	Calc    massbalance.Input `json:"calc"`
}

type Handler struct{}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Title == "" {
		input.Title = "Mass Balance Report"
	}

	if err := massbalance.CheckDomainRule(input.Calc); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	res, err := massbalance.Calculate(input.Calc)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, input.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", input.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", input.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Inputs")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Initial pulp mass (M1): %.2f kg", input.Calc.InitialMassKg))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Initial solids concentration (X1): %.1f %%", input.Calc.InitialBrixPct))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Final solids concentration (X3): %.1f %%", input.Calc.FinalBrixPct))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Results")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Final pulp mass (M3): %.2f kg", res.FinalMassKg))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Sugar to add (M2): %.2f kg", res.SugarMassKg))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Derivation")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	for _, step := range massbalance.Derivation(input.Calc, res) {
		pdf.MultiCell(0, 6, step, "", "L", false)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"mass_balance_report.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}

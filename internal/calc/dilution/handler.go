package dilution

import (
	"encoding/json"
	"net/http"

	massbalance "Brix/internal/calc/massbalance"
)

type Outcome struct {
	Status  string  `json:"status"`
	Message string  `json:"message,omitempty"`
	Result  *Result `json:"result,omitempty"`
}

type Handler struct{}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := CheckDomainRule(input); err != nil {
		json.NewEncoder(w).Encode(Outcome{Status: massbalance.StatusWarning, Message: err.Error()})
		return
	}

	res, err := Calculate(input)
	if err != nil {
		json.NewEncoder(w).Encode(Outcome{Status: massbalance.StatusError, Message: err.Error()})
		return
	}

	json.NewEncoder(w).Encode(Outcome{Status: massbalance.StatusOK, Result: &res})
}

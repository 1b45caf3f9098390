package massbalance

import (
	"encoding/json"
	"log"
	"net/http"

	repo "Brix/internal/repo"
)

const (
	StatusOK      = "ok"
	StatusWarning = "warning"
	StatusError   = "error"
)

// Outcome is the envelope every calc endpoint returns: warnings and formula
// errors are user-correctable, so they travel in the body rather than as
// HTTP errors.
type Outcome struct {
	Status  string   `json:"status"`
	Message string   `json:"message,omitempty"`
	Result  *Result  `json:"result,omitempty"`
	Steps   []string `json:"steps,omitempty"`
}

type Field struct {
	Default float64 `json:"default"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max,omitempty"`
	Step    float64 `json:"step"`
}

// FormDefaults is the input-form contract: defaults, ranges and steps for
// the three fields.
type FormDefaults struct {
	InitialMassKg  Field `json:"initial_mass_kg"`
	InitialBrixPct Field `json:"initial_brix_pct"`
	FinalBrixPct   Field `json:"final_brix_pct"`
}

type Handler struct {
	Repo repo.Repository // optional, saves history when set
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := CheckDomainRule(input); err != nil {
		json.NewEncoder(w).Encode(Outcome{Status: StatusWarning, Message: err.Error()})
		return
	}

	res, err := Calculate(input)
	if err != nil {
		json.NewEncoder(w).Encode(Outcome{Status: StatusError, Message: err.Error()})
		return
	}

	h.save(r, input, res)

	json.NewEncoder(w).Encode(Outcome{
		Status: StatusOK,
		Result: &res,
		Steps:  Derivation(input, res),
	})
}

func (h *Handler) Defaults(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(FormDefaults{
		InitialMassKg:  Field{Default: 50.0, Min: 0.0, Step: 0.5},
		InitialBrixPct: Field{Default: 7.0, Min: 0.0, Max: 99.9, Step: 0.1},
		FinalBrixPct:   Field{Default: 10.0, Min: 0.0, Max: 99.9, Step: 0.1},
	})
}

func (h *Handler) save(r *http.Request, in Input, res Result) {
	if h.Repo == nil {
		return
	}
	userID, ok := r.Context().Value("userID").(int)
	if !ok || userID == 0 {
		return
	}
	calc := repo.Calculation{
		InitialMassKg:  in.InitialMassKg,
		InitialBrixPct: in.InitialBrixPct,
		FinalBrixPct:   in.FinalBrixPct,
		FinalMassKg:    res.FinalMassKg,
		SugarMassKg:    res.SugarMassKg,
	}
	if _, err := h.Repo.SaveCalculation(r.Context(), userID, calc); err != nil {
		log.Printf("SaveCalculation error: %v", err)
	}
}

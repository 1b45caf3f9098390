package dilution

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConcentration is returned when the requested final
	// concentration is 0%: reaching pure water would take an infinite amount
	// of added water.
	ErrInvalidConcentration = errors.New("final concentration cannot be 0% because the pulp contains solids")

	// ErrConcentrationNotLowered rejects requests that do not lower the
	// solids content. Checked by callers, not by Calculate.
	ErrConcentrationNotLowered = errors.New("final concentration must be lower than the initial concentration to add water")
)

type Input struct {
	InitialMassKg  float64 `json:"initial_mass_kg"`
	InitialBrixPct float64 `json:"initial_brix_pct"`
	FinalBrixPct   float64 `json:"final_brix_pct"`
}

type Result struct {
	FinalMassKg float64 `json:"final_mass_kg"`
	WaterMassKg float64 `json:"water_mass_kg"`
	Notes       string  `json:"notes"`
}

func CheckDomainRule(in Input) error {
	if in.FinalBrixPct >= in.InitialBrixPct {
		return ErrConcentrationNotLowered
	}
	return nil
}

// Calculate derives the water to add from the solids balance M1*X1 = M3*X3
// (added water carries no solids) and the total mass balance M1 + Mw = M3.
func Calculate(in Input) (Result, error) {
	if in.InitialMassKg < 0 {
		return Result{}, fmt.Errorf("invalid input")
	}
	if in.InitialBrixPct <= 0 || in.InitialBrixPct >= 100 {
		return Result{}, fmt.Errorf("invalid input")
	}
	if in.FinalBrixPct < 0 || in.FinalBrixPct >= 100 {
		return Result{}, fmt.Errorf("invalid input")
	}
	if in.FinalBrixPct == 0 {
		return Result{}, ErrInvalidConcentration
	}

	m3 := in.InitialMassKg * in.InitialBrixPct / in.FinalBrixPct
	mw := m3 - in.InitialMassKg

	return Result{
		FinalMassKg: m3,
		WaterMassKg: mw,
		Notes:       "Water addition from solids and total mass balances.",
	}, nil
}

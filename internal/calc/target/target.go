package target

import (
	"fmt"

	massbalance "Brix/internal/calc/massbalance"
)

type Input struct {
	InitialMassKg  float64 `json:"initial_mass_kg"`
	InitialBrixPct float64 `json:"initial_brix_pct"`
	SugarMassKg    float64 `json:"sugar_mass_kg"`
}

type Result struct {
	FinalBrixPct float64 `json:"final_brix_pct"`
	FinalMassKg  float64 `json:"final_mass_kg"`
	Notes        string  `json:"notes"`
}

// Calculate inverts the concentration problem: given the sugar on hand, it
// derives the reachable final concentration and runs the core calc with it.
func Calculate(in Input) (Result, error) {
	if in.InitialMassKg <= 0 || in.SugarMassKg <= 0 {
		return Result{}, fmt.Errorf("invalid input")
	}
	if in.InitialBrixPct < 0 || in.InitialBrixPct >= 100 {
		return Result{}, fmt.Errorf("invalid input")
	}

	m3 := in.InitialMassKg + in.SugarMassKg
	y1 := 1 - in.InitialBrixPct/100.0
	x3 := 100.0 * (1.0 - in.InitialMassKg*y1/m3)

	res, err := massbalance.Calculate(massbalance.Input{
		InitialMassKg:  in.InitialMassKg,
		InitialBrixPct: in.InitialBrixPct,
		FinalBrixPct:   x3,
	})
	if err != nil {
		return Result{}, err
	}
	return Result{
		FinalBrixPct: x3,
		FinalMassKg:  res.FinalMassKg,
		Notes:        "Reachable concentration for the sugar on hand.",
	}, nil
}

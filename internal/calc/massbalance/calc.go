package massbalance

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConcentration is returned when the requested final
	// concentration is 100% solids: the initial pulp contains water, so the
	// water balance has no solution.
	ErrInvalidConcentration = errors.New("final concentration cannot be 100% because the initial pulp contains water")

	// ErrConcentrationNotRaised rejects requests that do not raise the
	// solids content. Checked by callers, not by Calculate.
	ErrConcentrationNotRaised = errors.New("final concentration must be greater than the initial concentration to add sugar")
)

type Input struct {
	InitialMassKg  float64 `json:"initial_mass_kg"`
	InitialBrixPct float64 `json:"initial_brix_pct"`
	FinalBrixPct   float64 `json:"final_brix_pct"`
}

type Result struct {
	FinalMassKg          float64 `json:"final_mass_kg"`
	SugarMassKg          float64 `json:"sugar_mass_kg"`
	InitialWaterFraction float64 `json:"initial_water_fraction"`
	FinalWaterFraction   float64 `json:"final_water_fraction"`
	Notes                string  `json:"notes"`
}

// CheckDomainRule enforces the business rule that concentrating requires
// raising the solids content. The formula itself is still defined for
// FinalBrixPct <= InitialBrixPct (it yields zero or negative sugar), so the
// rule belongs to the caller rather than to Calculate.
func CheckDomainRule(in Input) error {
	if in.FinalBrixPct <= in.InitialBrixPct {
		return ErrConcentrationNotRaised
	}
	return nil
}

// Calculate derives the final pulp mass and the sugar to add from the water
// balance M1*Y1 = M3*Y3 and the total mass balance M1 + M2 = M3.
func Calculate(in Input) (Result, error) {
	if in.InitialMassKg < 0 {
		return Result{}, fmt.Errorf("invalid input")
	}
	if in.InitialBrixPct < 0 || in.InitialBrixPct >= 100 {
		return Result{}, fmt.Errorf("invalid input")
	}
	if in.FinalBrixPct < 0 || in.FinalBrixPct > 100 {
		return Result{}, fmt.Errorf("invalid input")
	}

	y1 := 1 - in.InitialBrixPct/100.0
	y3 := 1 - in.FinalBrixPct/100.0
	if y3 == 0 {
		return Result{}, ErrInvalidConcentration
	}

	m3 := in.InitialMassKg * y1 / y3
	m2 := m3 - in.InitialMassKg

	return Result{
		FinalMassKg:          m3,
		SugarMassKg:          m2,
		InitialWaterFraction: y1,
		FinalWaterFraction:   y3,
		Notes:                "Sugar addition from water and total mass balances.",
	}, nil
}

// Derivation renders the substituted formulas for display. Values are
// rounded to two decimals here only; Result keeps full precision.
func Derivation(in Input, res Result) []string {
	return []string{
		fmt.Sprintf("Y1 = 1 - %.1f/100 = %.2f", in.InitialBrixPct, res.InitialWaterFraction),
		fmt.Sprintf("Y3 = 1 - %.1f/100 = %.2f", in.FinalBrixPct, res.FinalWaterFraction),
		fmt.Sprintf("M3 = M1*Y1/Y3 = %.2f kg * %.2f / %.2f = %.2f kg",
			in.InitialMassKg, res.InitialWaterFraction, res.FinalWaterFraction, res.FinalMassKg),
		fmt.Sprintf("M2 = M3 - M1 = %.2f kg - %.2f kg = %.2f kg",
			res.FinalMassKg, in.InitialMassKg, res.SugarMassKg),
	}
}

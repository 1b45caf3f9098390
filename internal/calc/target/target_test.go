package target

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	massbalance "Brix/internal/calc/massbalance"
)

func TestCalculate_RecoversConcentration(t *testing.T) {
	// 5/3 kg of sugar is exactly what raising 50 kg from 7% to 10% takes.
	res, err := Calculate(Input{InitialMassKg: 50, InitialBrixPct: 7, SugarMassKg: 5.0 / 3.0})
	require.NoError(t, err)

	assert.InDelta(t, 10, res.FinalBrixPct, 1e-9)
	assert.InDelta(t, 50+5.0/3.0, res.FinalMassKg, 1e-9)
}

func TestCalculate_RoundTripsThroughCore(t *testing.T) {
	in := Input{InitialMassKg: 80, InitialBrixPct: 9, SugarMassKg: 4}
	res, err := Calculate(in)
	require.NoError(t, err)

	core, err := massbalance.Calculate(massbalance.Input{
		InitialMassKg:  in.InitialMassKg,
		InitialBrixPct: in.InitialBrixPct,
		FinalBrixPct:   res.FinalBrixPct,
	})
	require.NoError(t, err)
	assert.InDelta(t, in.SugarMassKg, core.SugarMassKg, 1e-9)
}

func TestCalculate_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		in   Input
	}{
		{"no pulp", Input{0, 7, 1}},
		{"no sugar", Input{50, 7, 0}},
		{"initial concentration at 100", Input{50, 100, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Calculate(tt.in)
			require.Error(t, err)
		})
	}
}

func TestHandler_Calc(t *testing.T) {
	h := &Handler{}

	req := httptest.NewRequest(http.MethodPost, "/tools/target/calc",
		strings.NewReader(`{"initial_mass_kg":50,"initial_brix_pct":7,"sugar_mass_kg":1.6666666666666667}`))
	rec := httptest.NewRecorder()
	h.Calc(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/tools/target/calc",
		strings.NewReader(`{"initial_mass_kg":0,"initial_brix_pct":7,"sugar_mass_kg":1}`))
	rec = httptest.NewRecorder()
	h.Calc(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

package main

import (
	"flag"
	"fmt"
	"os"

	massbalance "Brix/internal/calc/massbalance"
)

func main() {
	mass := flag.Float64("mass", 50.0, "initial pulp mass, kg")
	from := flag.Float64("from", 7.0, "initial solids concentration, % (deg Brix)")
	to := flag.Float64("to", 10.0, "final solids concentration, % (deg Brix)")
	flag.Parse()

	in := massbalance.Input{
		InitialMassKg:  *mass,
		InitialBrixPct: *from,
		FinalBrixPct:   *to,
	}

	if err := massbalance.CheckDomainRule(in); err != nil {
		fmt.Fprintln(os.Stderr, "warning:", err)
		os.Exit(1)
	}
	res, err := massbalance.Calculate(in)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	fmt.Printf("Final pulp mass (M3): %.2f kg\n", res.FinalMassKg)
	fmt.Printf("Sugar to add (M2):    %.2f kg\n", res.SugarMassKg)
	fmt.Println()
	for _, step := range massbalance.Derivation(in, res) {
		fmt.Println(step)
	}
}

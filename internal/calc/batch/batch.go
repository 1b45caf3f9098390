package batch

import (
	"fmt"

	massbalance "Brix/internal/calc/massbalance"
)

type BatchInput struct {
	Items []massbalance.Input `json:"items"`
}

type BatchResult struct {
	Results []massbalance.Result `json:"results"`
}

// Calculate evaluates every lot in order. The first item that violates the
// domain rule or fails the formula aborts the whole batch with its index.
func Calculate(in BatchInput) (BatchResult, error) {
	if len(in.Items) == 0 {
		return BatchResult{}, fmt.Errorf("no items")
	}
	out := BatchResult{Results: make([]massbalance.Result, 0, len(in.Items))}
	for i, item := range in.Items {
		if err := massbalance.CheckDomainRule(item); err != nil {
			return BatchResult{}, fmt.Errorf("item %d: %w", i, err)
		}
		res, err := massbalance.Calculate(item)
		if err != nil {
			return BatchResult{}, fmt.Errorf("item %d: %w", i, err)
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}

package core

import (
	"strings"
	"testing"
)

func TestBudgetPercentAndStatus(t *testing.T) {
	cases := []struct {
		limit, spent int64
		percent      int
		status       BudgetStatus
	}{
		{50000, 0, 0, BudgetStatusOK},
		{50000, 25000, 50, BudgetStatusOK},
		{50000, 40000, 80, BudgetStatusWarning},
		{50000, 50000, 100, BudgetStatusExceeded},
		{50000, 65000, 130, BudgetStatusExceeded},
		{0, 1000, 0, BudgetStatusOK}, // no limit set
	}
	for i, tc := range cases {
		b := Budget{Category: CategoryFood, Limit: Money{Cents: tc.limit}, Spent: Money{Cents: tc.spent}}
		if got := b.Percent(); got != tc.percent {
			t.Fatalf("case %d: percent = %d, want %d", i, got, tc.percent)
		}
		if got := b.Status(); got != tc.status {
			t.Fatalf("case %d: status = %q, want %q", i, got, tc.status)
		}
	}
}

func TestBudgetRemaining(t *testing.T) {
	b := Budget{Limit: Money{Cents: 10000}, Spent: Money{Cents: 12500}}
	if got := b.Remaining().Cents; got != -2500 {
		t.Fatalf("remaining = %d, want -2500", got)
	}
}

func TestAdvice(t *testing.T) {
	if !strings.Contains(Advice(120), "exceeded") {
		t.Fatalf("advice at 120%% should mention exceeding the budget")
	}
	if !strings.Contains(Advice(10), "well within") {
		t.Fatalf("advice at 10%% should be positive")
	}
}

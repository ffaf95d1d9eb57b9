package chat

import (
	"testing"

	"aiwealth/internal/core"
)

func TestParseExpenseCommand(t *testing.T) {
	cases := []struct {
		msg      string
		ok       bool
		cents    int64
		desc     string
		category core.Category
	}{
		{"Add $45 for groceries", true, 4500, "groceries", core.CategoryFood},
		{"spent $12.50 on lunch", true, 1250, "lunch", core.CategoryFood},
		{"I paid $1,200 for rent", true, 120000, "rent", core.CategoryHousing},
		{"bought $30 at the pharmacy", true, 3000, "the pharmacy", core.CategoryHealthcare},
		{"purchased $5 for something odd", true, 500, "something odd", core.CategoryOther},
		{"add $45 groceries", false, 0, "", ""},     // no connector
		{"add 45 for groceries", false, 0, "", ""},  // no dollar sign
		{"hello there", false, 0, "", ""},           // no trigger
		{"add $zero for groceries", false, 0, "", ""},
		{"add $-5 for groceries", false, 0, "", ""},
	}
	for i, tc := range cases {
		cmd, ok := ParseExpenseCommand(tc.msg)
		if ok != tc.ok {
			t.Fatalf("case %d (%q): ok = %v, want %v", i, tc.msg, ok, tc.ok)
		}
		if !ok {
			continue
		}
		if cmd.Amount.Cents != tc.cents {
			t.Fatalf("case %d: cents = %d, want %d", i, cmd.Amount.Cents, tc.cents)
		}
		if cmd.Description != tc.desc {
			t.Fatalf("case %d: desc = %q, want %q", i, cmd.Description, tc.desc)
		}
		if cmd.Category != tc.category {
			t.Fatalf("case %d: category = %q, want %q", i, cmd.Category, tc.category)
		}
	}
}

func TestParseBudgetCommand(t *testing.T) {
	cases := []struct {
		msg      string
		ok       bool
		category core.Category
		cents    int64
	}{
		{"set budget for food to $500", true, core.CategoryFood, 50000},
		{"Set a budget for transport to 250.50", true, core.CategoryTransport, 25050},
		{"set budget for groceries to $100", true, core.CategoryOther, 10000}, // not a category name
		{"set budget for food", false, "", 0},        // missing "to"
		{"set budget to $500", false, "", 0},         // missing "for"
		{"budget food $500", false, "", 0},           // missing trigger
		{"set budget for food to $x", false, "", 0},  // bad amount
	}
	for i, tc := range cases {
		cmd, ok := ParseBudgetCommand(tc.msg)
		if ok != tc.ok {
			t.Fatalf("case %d (%q): ok = %v, want %v", i, tc.msg, ok, tc.ok)
		}
		if !ok {
			continue
		}
		if cmd.Category != tc.category || cmd.Limit.Cents != tc.cents {
			t.Fatalf("case %d: got %+v", i, cmd)
		}
	}
}

// Package chat implements the AIWealth assistant: command parsing for expense
// and budget messages, per-session history, and the AI passthrough for
// everything else.
package chat

import (
	"strings"

	"aiwealth/internal/core"
)

type (
	// ExpenseCommand is a parsed "add $45 for groceries" style message.
	ExpenseCommand struct {
		Amount      core.Money
		Description string
		Category    core.Category
	}

	// BudgetCommand is a parsed "set budget for food to $500" message.
	BudgetCommand struct {
		Category core.Category
		Limit    core.Money
	}
)

var expenseTriggers = []string{"add", "spent", "paid", "bought", "purchased"}

// ParseExpenseCommand extracts an expense from messages like
// "Add $45 for groceries" or "spent $12.50 on lunch". The description is
// auto-categorized via keyword matching. Returns false when the message does
// not look like an expense command.
func ParseExpenseCommand(message string) (ExpenseCommand, bool) {
	msg := strings.ToLower(strings.TrimSpace(message))

	hasTrigger := false
	for _, t := range expenseTriggers {
		if strings.Contains(msg, t) {
			hasTrigger = true
			break
		}
	}
	if !hasTrigger || !strings.Contains(msg, "$") {
		return ExpenseCommand{}, false
	}

	// Amount follows the dollar sign.
	after := msg[strings.Index(msg, "$")+1:]
	fields := strings.Fields(after)
	if len(fields) == 0 {
		return ExpenseCommand{}, false
	}
	cents, err := core.ParseDecimalToCents(fields[0])
	if err != nil {
		return ExpenseCommand{}, false
	}

	// Description is everything after the first connector.
	var desc string
	for _, connector := range []string{" for ", " on ", " at "} {
		if idx := strings.Index(msg, connector); idx >= 0 {
			desc = strings.TrimSpace(msg[idx+len(connector):])
			break
		}
	}
	if desc == "" {
		return ExpenseCommand{}, false
	}

	return ExpenseCommand{
		Amount:      core.Money{Cents: cents},
		Description: desc,
		Category:    core.Categorize(desc),
	}, true
}

// ParseBudgetCommand extracts a budget update from messages like
// "set budget for food to $500". Returns false when the message does not
// match or the amount is unparseable.
func ParseBudgetCommand(message string) (BudgetCommand, bool) {
	msg := strings.ToLower(strings.TrimSpace(message))
	if !strings.Contains(msg, "set budget") && !strings.Contains(msg, "set a budget") {
		return BudgetCommand{}, false
	}

	forIdx := strings.Index(msg, " for ")
	if forIdx < 0 {
		return BudgetCommand{}, false
	}
	rest := msg[forIdx+len(" for "):]
	toIdx := strings.Index(rest, " to ")
	if toIdx < 0 {
		return BudgetCommand{}, false
	}

	categoryPart := strings.TrimSpace(rest[:toIdx])
	amountPart := strings.TrimSpace(rest[toIdx+len(" to "):])
	if categoryPart == "" || amountPart == "" {
		return BudgetCommand{}, false
	}

	cents, err := core.ParseDecimalToCents(amountPart)
	if err != nil {
		return BudgetCommand{}, false
	}

	return BudgetCommand{
		Category: core.ParseCategory(categoryPart),
		Limit:    core.Money{Cents: cents},
	}, true
}

package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"aiwealth/internal/core"
	"aiwealth/internal/store"
)

// BudgetAlerter checks a category budget after spending and records a
// notification once the limit is blown: warning above 100%, alert above 120%.
type BudgetAlerter struct {
	budgets       store.BudgetStore
	notifications store.NotificationStore
}

func NewBudgetAlerter(budgets store.BudgetStore, notifications store.NotificationStore) *BudgetAlerter {
	return &BudgetAlerter{budgets: budgets, notifications: notifications}
}

// Evaluate inspects the budget for the category and raises a notification
// when spending exceeds the limit. Categories without a budget are ignored.
func (a *BudgetAlerter) Evaluate(ctx context.Context, category core.Category) error {
	b, err := a.budgets.Get(ctx, category)
	if errors.Is(err, core.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("get budget: %w", err)
	}
	if b.Limit.Cents <= 0 || b.Spent.Cents <= b.Limit.Cents {
		return nil
	}

	percent := b.Percent()
	kind := core.NotificationWarning
	if percent > 120 {
		kind = core.NotificationAlert
	}

	n := core.Notification{
		Message: fmt.Sprintf("Alert: You've exceeded your %s budget of %s (currently at %d%%)!",
			category, b.Limit.Format(), percent),
		Kind: kind,
	}
	if err := a.notifications.Notify(ctx, n); err != nil {
		return fmt.Errorf("record notification: %w", err)
	}

	slog.InfoContext(ctx, "Budget alert raised",
		"category", category,
		"percent", percent,
		"kind", kind)
	return nil
}

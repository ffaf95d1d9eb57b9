// Package store defines the ports the HTTP handlers and services depend on.
package store

import (
	"context"

	"aiwealth/internal/core"
)

type (
	// ExpenseStore is an ordered collection of expense records. Records keep
	// insertion order; the position in that order is the (unstable) handle
	// used for deletion.
	ExpenseStore interface {
		// Add appends the expense and returns a reference for logging.
		Add(ctx context.Context, e core.Expense) (ref string, err error)
		// DeleteAt removes and returns the record at the given position.
		// Out-of-range indices return core.ErrNotFound.
		DeleteAt(ctx context.Context, index int) (core.Expense, error)
		// List returns all records in insertion order.
		List(ctx context.Context) ([]core.Expense, error)
		// IsEmpty reports whether any records exist.
		IsEmpty(ctx context.Context) (bool, error)
	}

	// BudgetStore tracks per-category limits and running spend.
	BudgetStore interface {
		// Set creates or replaces the limit for a category.
		Set(ctx context.Context, category core.Category, limit core.Money) error
		// Apply adds an expense amount to the category's running spend.
		Apply(ctx context.Context, category core.Category, amount core.Money) error
		// Release subtracts a deleted expense's amount, flooring at zero.
		Release(ctx context.Context, category core.Category, amount core.Money) error
		// Get returns the budget for one category, core.ErrNotFound if unset.
		Get(ctx context.Context, category core.Category) (core.Budget, error)
		// Overview returns all budgets ordered by percentage spent, descending.
		Overview(ctx context.Context) ([]core.Budget, error)
	}

	// NotificationStore records and lists budget alerts.
	NotificationStore interface {
		Notify(ctx context.Context, n core.Notification) error
		ListUnread(ctx context.Context, limit int) ([]core.Notification, error)
	}

	// Backend is the full surface a storage backend provides.
	Backend interface {
		ExpenseStore
		BudgetStore
		NotificationStore
	}
)

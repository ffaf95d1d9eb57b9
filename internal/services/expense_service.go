// Package services orchestrates expense operations across the store, the
// budget tracker and the event pipeline.
package services

import (
	"context"
	"fmt"
	"log/slog"

	"aiwealth/internal/core"
	"aiwealth/internal/events"
	"aiwealth/internal/store"
)

// EventPublisher abstracts the AMQP client so tests can capture events.
type EventPublisher interface {
	PublishExpenseLogged(ctx context.Context, msg *events.ExpenseLoggedMessage) error
}

// ExpenseService couples expense writes with budget bookkeeping. When an
// event publisher is configured, budget evaluation moves to the alert worker;
// otherwise it runs inline so alerts still fire in single-process mode.
type ExpenseService struct {
	expenses  store.ExpenseStore
	budgets   store.BudgetStore
	alerter   *BudgetAlerter
	publisher EventPublisher
}

func NewExpenseService(expenses store.ExpenseStore, budgets store.BudgetStore, alerter *BudgetAlerter, publisher EventPublisher) *ExpenseService {
	return &ExpenseService{
		expenses:  expenses,
		budgets:   budgets,
		alerter:   alerter,
		publisher: publisher,
	}
}

// Log stores the expense, applies it to the category budget and hands the
// budget check to the worker or runs it inline.
func (s *ExpenseService) Log(ctx context.Context, e core.Expense) (string, error) {
	ref, err := s.expenses.Add(ctx, e)
	if err != nil {
		return "", fmt.Errorf("save expense: %w", err)
	}

	if err := s.budgets.Apply(ctx, e.Category, e.Amount); err != nil {
		// The expense is saved; budget bookkeeping must not fail the request.
		slog.ErrorContext(ctx, "Failed to apply expense to budget",
			"ref", ref, "category", e.Category, "error", err)
		return ref, nil
	}

	if s.publisher != nil {
		msg := events.NewExpenseLoggedMessage(ref, e.Category, e.Amount.Cents)
		if err := s.publisher.PublishExpenseLogged(ctx, msg); err != nil {
			slog.ErrorContext(ctx, "Failed to publish expense event",
				"ref", ref, "error", err)
			// Fall back to the inline check rather than losing the alert.
			s.evaluateInline(ctx, e.Category)
		}
		return ref, nil
	}

	s.evaluateInline(ctx, e.Category)
	return ref, nil
}

func (s *ExpenseService) evaluateInline(ctx context.Context, category core.Category) {
	if s.alerter == nil {
		return
	}
	if err := s.alerter.Evaluate(ctx, category); err != nil {
		slog.ErrorContext(ctx, "Budget evaluation failed", "category", category, "error", err)
	}
}

// Delete removes the expense at the given position and releases its amount
// from the category budget.
func (s *ExpenseService) Delete(ctx context.Context, index int) error {
	removed, err := s.expenses.DeleteAt(ctx, index)
	if err != nil {
		return err
	}

	if err := s.budgets.Release(ctx, removed.Category, removed.Amount); err != nil {
		slog.ErrorContext(ctx, "Failed to release budget after delete",
			"index", index, "category", removed.Category, "error", err)
	}
	return nil
}

// SetBudget creates or replaces a category limit.
func (s *ExpenseService) SetBudget(ctx context.Context, category core.Category, limit core.Money) error {
	if limit.Cents < 0 {
		return core.ErrInvalidAmount
	}
	return s.budgets.Set(ctx, category, limit)
}

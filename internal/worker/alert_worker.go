// Package worker evaluates budgets for expense events consumed from AMQP and
// periodically re-checks every budget so missed events still surface.
package worker

import (
	"context"
	"fmt"
	"log/slog"

	"aiwealth/internal/events"
	"aiwealth/internal/services"
	"aiwealth/internal/store"
)

// AlertWorker turns expense-logged events into budget notifications.
type AlertWorker struct {
	alerter *services.BudgetAlerter
	budgets store.BudgetStore
}

func NewAlertWorker(alerter *services.BudgetAlerter, budgets store.BudgetStore) *AlertWorker {
	return &AlertWorker{alerter: alerter, budgets: budgets}
}

// HandleExpenseLogged processes a single expense event from the queue.
func (w *AlertWorker) HandleExpenseLogged(ctx context.Context, msg *events.ExpenseLoggedMessage) error {
	slog.InfoContext(ctx, "Processing expense event",
		"ref", msg.Ref,
		"category", msg.Category,
		"amount_cents", msg.AmountCents)

	if err := w.alerter.Evaluate(ctx, msg.Category); err != nil {
		return fmt.Errorf("evaluate budget for %s: %w", msg.Category, err)
	}
	return nil
}

// ScanAllBudgets re-evaluates every budget. Runs on a ticker as a safety net
// for events lost while the worker was down.
func (w *AlertWorker) ScanAllBudgets(ctx context.Context) error {
	budgets, err := w.budgets.Overview(ctx)
	if err != nil {
		return fmt.Errorf("load budgets: %w", err)
	}

	var failed int
	for _, b := range budgets {
		if err := w.alerter.Evaluate(ctx, b.Category); err != nil {
			slog.ErrorContext(ctx, "Budget scan failed for category",
				"category", b.Category, "error", err)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("budget scan: %d of %d categories failed", failed, len(budgets))
	}
	return nil
}

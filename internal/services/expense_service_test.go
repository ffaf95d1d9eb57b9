package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"aiwealth/internal/core"
	"aiwealth/internal/events"
	"aiwealth/internal/store/memory"
)

type capturePublisher struct {
	published []*events.ExpenseLoggedMessage
	fail      bool
}

func (p *capturePublisher) PublishExpenseLogged(_ context.Context, msg *events.ExpenseLoggedMessage) error {
	if p.fail {
		return errors.New("broker down")
	}
	p.published = append(p.published, msg)
	return nil
}

func testExpense(cat core.Category, cents int64) core.Expense {
	return core.Expense{
		Date:        time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		Category:    cat,
		Description: "test",
		Amount:      core.Money{Cents: cents},
	}
}

func TestLogAppliesBudget(t *testing.T) {
	st := memory.New()
	svc := NewExpenseService(st, st, NewBudgetAlerter(st, st), nil)
	ctx := context.Background()

	ref, err := svc.Log(ctx, testExpense(core.CategoryFood, 2000))
	if err != nil {
		t.Fatalf("log: %v", err)
	}
	if ref == "" {
		t.Fatalf("expected a reference")
	}

	b, err := st.Get(ctx, core.CategoryFood)
	if err != nil {
		t.Fatalf("get budget: %v", err)
	}
	if b.Spent.Cents != 2000 {
		t.Fatalf("budget spent = %d, want 2000", b.Spent.Cents)
	}
}

func TestLogInlineAlertWithoutPublisher(t *testing.T) {
	st := memory.New()
	svc := NewExpenseService(st, st, NewBudgetAlerter(st, st), nil)
	ctx := context.Background()

	// Food budget seeds at $500; blow it in one expense.
	if _, err := svc.Log(ctx, testExpense(core.CategoryFood, 60000)); err != nil {
		t.Fatalf("log: %v", err)
	}

	notes, err := st.ListUnread(ctx, 5)
	if err != nil {
		t.Fatalf("list unread: %v", err)
	}
	if len(notes) != 1 {
		t.Fatalf("expected one notification, got %d", len(notes))
	}
	if notes[0].Kind != core.NotificationWarning {
		t.Fatalf("kind = %q, want warning at 120%%", notes[0].Kind)
	}
}

func TestLogPublishesEventInsteadOfInlineCheck(t *testing.T) {
	st := memory.New()
	pub := &capturePublisher{}
	svc := NewExpenseService(st, st, NewBudgetAlerter(st, st), pub)
	ctx := context.Background()

	if _, err := svc.Log(ctx, testExpense(core.CategoryFood, 60000)); err != nil {
		t.Fatalf("log: %v", err)
	}

	if len(pub.published) != 1 {
		t.Fatalf("expected one published event, got %d", len(pub.published))
	}
	if pub.published[0].Category != core.CategoryFood || pub.published[0].AmountCents != 60000 {
		t.Fatalf("unexpected event: %+v", pub.published[0])
	}
	// The worker owns the budget check now; no inline notification.
	notes, _ := st.ListUnread(ctx, 5)
	if len(notes) != 0 {
		t.Fatalf("expected no inline notifications, got %d", len(notes))
	}
}

func TestLogFallsBackWhenPublishFails(t *testing.T) {
	st := memory.New()
	svc := NewExpenseService(st, st, NewBudgetAlerter(st, st), &capturePublisher{fail: true})
	ctx := context.Background()

	if _, err := svc.Log(ctx, testExpense(core.CategoryFood, 60000)); err != nil {
		t.Fatalf("log should not fail on publish error: %v", err)
	}
	notes, _ := st.ListUnread(ctx, 5)
	if len(notes) != 1 {
		t.Fatalf("expected inline fallback notification, got %d", len(notes))
	}
}

func TestDeleteReleasesBudget(t *testing.T) {
	st := memory.New()
	svc := NewExpenseService(st, st, NewBudgetAlerter(st, st), nil)
	ctx := context.Background()

	if _, err := svc.Log(ctx, testExpense(core.CategoryFood, 3000)); err != nil {
		t.Fatalf("log: %v", err)
	}
	if err := svc.Delete(ctx, 0); err != nil {
		t.Fatalf("delete: %v", err)
	}

	b, _ := st.Get(ctx, core.CategoryFood)
	if b.Spent.Cents != 0 {
		t.Fatalf("budget spent after delete = %d, want 0", b.Spent.Cents)
	}

	if err := svc.Delete(ctx, 0); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("delete empty = %v, want ErrNotFound", err)
	}
}

func TestSetBudget(t *testing.T) {
	st := memory.New()
	svc := NewExpenseService(st, st, nil, nil)
	ctx := context.Background()

	if err := svc.SetBudget(ctx, core.CategoryEducation, core.Money{Cents: 15000}); err != nil {
		t.Fatalf("set budget: %v", err)
	}
	b, err := st.Get(ctx, core.CategoryEducation)
	if err != nil || b.Limit.Cents != 15000 {
		t.Fatalf("budget = %+v, %v", b, err)
	}

	if err := svc.SetBudget(ctx, core.CategoryFood, core.Money{Cents: -1}); err == nil {
		t.Fatalf("expected error for negative limit")
	}
}

func TestAlerterKinds(t *testing.T) {
	st := memory.New()
	alerter := NewBudgetAlerter(st, st)
	ctx := context.Background()

	if err := st.Set(ctx, core.CategoryShopping, core.Money{Cents: 10000}); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := st.Apply(ctx, core.CategoryShopping, core.Money{Cents: 13000}); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if err := alerter.Evaluate(ctx, core.CategoryShopping); err != nil {
		t.Fatalf("evaluate: %v", err)
	}

	notes, _ := st.ListUnread(ctx, 1)
	if len(notes) != 1 || notes[0].Kind != core.NotificationAlert {
		t.Fatalf("expected alert kind above 120%%, got %v", notes)
	}
}

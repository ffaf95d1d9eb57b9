package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"aiwealth/internal/core"
)

func testExpense(desc string, cat core.Category, cents int64) core.Expense {
	return core.Expense{
		Date:        time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		Category:    cat,
		Description: desc,
		Amount:      core.Money{Cents: cents},
	}
}

func TestAddKeepsInsertionOrder(t *testing.T) {
	s := New()
	ctx := context.Background()

	for _, desc := range []string{"first", "second", "third"} {
		if _, err := s.Add(ctx, testExpense(desc, core.CategoryFood, 100)); err != nil {
			t.Fatalf("add %q: %v", desc, err)
		}
	}

	items, err := s.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("len = %d, want 3", len(items))
	}
	for i, want := range []string{"first", "second", "third"} {
		if items[i].Description != want {
			t.Fatalf("items[%d] = %q, want %q", i, items[i].Description, want)
		}
	}
}

func TestAddRejectsInvalid(t *testing.T) {
	s := New()
	if _, err := s.Add(context.Background(), testExpense("bad", core.CategoryFood, 0)); err == nil {
		t.Fatalf("expected validation error for zero amount")
	}
}

func TestDeleteAtShiftsIndices(t *testing.T) {
	s := New()
	ctx := context.Background()
	for _, desc := range []string{"a", "b", "c"} {
		if _, err := s.Add(ctx, testExpense(desc, core.CategoryFood, 100)); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	removed, err := s.DeleteAt(ctx, 1)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if removed.Description != "b" {
		t.Fatalf("removed %q, want b", removed.Description)
	}
	items, _ := s.List(ctx)
	if len(items) != 2 || items[0].Description != "a" || items[1].Description != "c" {
		t.Fatalf("after delete: %v", items)
	}

	// Repeated deletion at the same index removes successive records.
	if _, err := s.DeleteAt(ctx, 0); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.DeleteAt(ctx, 0); err != nil {
		t.Fatalf("delete: %v", err)
	}
	empty, _ := s.IsEmpty(ctx)
	if !empty {
		t.Fatalf("expected empty store")
	}
}

func TestDeleteAtOutOfRange(t *testing.T) {
	s := New()
	ctx := context.Background()
	if _, err := s.Add(ctx, testExpense("only", core.CategoryFood, 100)); err != nil {
		t.Fatalf("add: %v", err)
	}
	for _, idx := range []int{-1, 1, 100} {
		if _, err := s.DeleteAt(ctx, idx); !errors.Is(err, core.ErrNotFound) {
			t.Fatalf("DeleteAt(%d) = %v, want ErrNotFound", idx, err)
		}
	}
}

func TestIsEmpty(t *testing.T) {
	s := New()
	ctx := context.Background()
	empty, err := s.IsEmpty(ctx)
	if err != nil || !empty {
		t.Fatalf("new store IsEmpty = %v, %v", empty, err)
	}
	if _, err := s.Add(ctx, testExpense("x", core.CategoryFood, 100)); err != nil {
		t.Fatalf("add: %v", err)
	}
	empty, _ = s.IsEmpty(ctx)
	if empty {
		t.Fatalf("store with one record reported empty")
	}
}

func TestBudgetApplyAndRelease(t *testing.T) {
	s := New()
	ctx := context.Background()

	if err := s.Apply(ctx, core.CategoryFood, core.Money{Cents: 2000}); err != nil {
		t.Fatalf("apply: %v", err)
	}
	b, err := s.Get(ctx, core.CategoryFood)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if b.Spent.Cents != 2000 {
		t.Fatalf("spent = %d, want 2000", b.Spent.Cents)
	}

	// Releasing more than was spent floors at zero.
	if err := s.Release(ctx, core.CategoryFood, core.Money{Cents: 5000}); err != nil {
		t.Fatalf("release: %v", err)
	}
	b, _ = s.Get(ctx, core.CategoryFood)
	if b.Spent.Cents != 0 {
		t.Fatalf("spent after release = %d, want 0", b.Spent.Cents)
	}
}

func TestBudgetSetAndOverview(t *testing.T) {
	s := New()
	ctx := context.Background()

	if err := s.Set(ctx, core.CategoryFood, core.Money{Cents: 10000}); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Apply(ctx, core.CategoryFood, core.Money{Cents: 9000}); err != nil {
		t.Fatalf("apply: %v", err)
	}

	overview, err := s.Overview(ctx)
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if len(overview) == 0 {
		t.Fatalf("expected seeded budgets in overview")
	}
	// Ordered by percentage spent: food at 90% should lead.
	if overview[0].Category != core.CategoryFood {
		t.Fatalf("overview[0] = %q, want food", overview[0].Category)
	}
}

func TestNotifications(t *testing.T) {
	s := New()
	ctx := context.Background()

	for _, msg := range []string{"one", "two", "three"} {
		if err := s.Notify(ctx, core.Notification{Message: msg, Kind: core.NotificationWarning}); err != nil {
			t.Fatalf("notify: %v", err)
		}
	}
	got, err := s.ListUnread(ctx, 2)
	if err != nil {
		t.Fatalf("list unread: %v", err)
	}
	if len(got) != 2 || got[0].Message != "three" || got[1].Message != "two" {
		t.Fatalf("unexpected notifications: %v", got)
	}
}

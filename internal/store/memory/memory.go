// Package memory is the in-process backend: an ordered slice of expenses plus
// budget and notification maps behind a single mutex. It is the default
// backend for single-user deployments and the workhorse of the handler tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"aiwealth/internal/core"
	"aiwealth/internal/store"
)

var _ store.Backend = (*Store)(nil)

type Store struct {
	mu            sync.Mutex
	items         []core.Expense
	budgets       map[core.Category]*core.Budget
	budgetOrder   []core.Category
	notifications []notification
}

type notification struct {
	core.Notification
	read bool
}

func New() *Store {
	s := &Store{budgets: make(map[core.Category]*core.Budget)}
	for _, cat := range core.Categories {
		limit, ok := core.DefaultBudgets[cat]
		if !ok {
			continue
		}
		s.budgets[cat] = &core.Budget{Category: cat, Limit: limit}
		s.budgetOrder = append(s.budgetOrder, cat)
	}
	return s
}

// Add appends the expense and returns a synthetic reference.
func (s *Store) Add(_ context.Context, e core.Expense) (string, error) {
	if err := e.Validate(); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, e)
	return fmt.Sprintf("mem:%d", len(s.items)), nil
}

// DeleteAt removes the record at the given position; later records shift down.
func (s *Store) DeleteAt(_ context.Context, index int) (core.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.items) {
		return core.Expense{}, core.ErrNotFound
	}
	removed := s.items[index]
	s.items = append(s.items[:index], s.items[index+1:]...)
	return removed, nil
}

// List returns a copy of all records in insertion order.
func (s *Store) List(_ context.Context) ([]core.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Expense, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *Store) IsEmpty(_ context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items) == 0, nil
}

func (s *Store) Set(_ context.Context, category core.Category, limit core.Money) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b, ok := s.budgets[category]; ok {
		b.Limit = limit
		return nil
	}
	s.budgets[category] = &core.Budget{Category: category, Limit: limit}
	s.budgetOrder = append(s.budgetOrder, category)
	return nil
}

func (s *Store) Apply(_ context.Context, category core.Category, amount core.Money) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.budgets[category]
	if !ok {
		// Unbudgeted category starts tracking with a default limit.
		b = &core.Budget{Category: category, Limit: core.Money{Cents: 30000}}
		s.budgets[category] = b
		s.budgetOrder = append(s.budgetOrder, category)
	}
	b.Spent.Cents += amount.Cents
	return nil
}

func (s *Store) Release(_ context.Context, category core.Category, amount core.Money) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.budgets[category]
	if !ok {
		return nil
	}
	b.Spent.Cents -= amount.Cents
	if b.Spent.Cents < 0 {
		b.Spent.Cents = 0
	}
	return nil
}

func (s *Store) Get(_ context.Context, category core.Category) (core.Budget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.budgets[category]
	if !ok {
		return core.Budget{}, core.ErrNotFound
	}
	return *b, nil
}

// Overview returns all budgets sorted by percentage spent, descending.
func (s *Store) Overview(_ context.Context) ([]core.Budget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Budget, 0, len(s.budgetOrder))
	for _, cat := range s.budgetOrder {
		out = append(out, *s.budgets[cat])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Percent() > out[j].Percent()
	})
	return out, nil
}

func (s *Store) Notify(_ context.Context, n core.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = append(s.notifications, notification{Notification: n})
	return nil
}

// ListUnread returns the newest unread notifications first.
func (s *Store) ListUnread(_ context.Context, limit int) ([]core.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []core.Notification
	for i := len(s.notifications) - 1; i >= 0 && len(out) < limit; i-- {
		if s.notifications[i].read {
			continue
		}
		out = append(out, s.notifications[i].Notification)
	}
	return out, nil
}

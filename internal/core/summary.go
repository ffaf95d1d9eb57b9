package core

import (
	"sort"
	"time"
)

// CategorySum is a per-category subtotal.
type CategorySum struct {
	Category Category
	Amount   Money
}

// Summary is the aggregate view the dashboard renders. It is derived from the
// full expense list on every render and never persisted.
type Summary struct {
	HasData    bool
	Total      Money
	MonthlyAvg Money
	// ByCategory is sorted descending by amount; ties keep the order in
	// which the category first appeared in the expense list.
	ByCategory  []CategorySum
	TopCategory Category
}

// Summarize computes the dashboard aggregates from expenses in insertion order.
func Summarize(expenses []Expense) Summary {
	if len(expenses) == 0 {
		return Summary{}
	}

	s := Summary{HasData: true}
	totals := make(map[Category]int64)
	firstSeen := make(map[Category]int)

	first, last := expenses[0].Date, expenses[0].Date
	for _, e := range expenses {
		s.Total.Cents += e.Amount.Cents
		if _, ok := firstSeen[e.Category]; !ok {
			firstSeen[e.Category] = len(firstSeen)
		}
		totals[e.Category] += e.Amount.Cents
		if e.Date.Before(first) {
			first = e.Date
		}
		if e.Date.After(last) {
			last = e.Date
		}
	}

	s.ByCategory = make([]CategorySum, 0, len(totals))
	for cat, cents := range totals {
		s.ByCategory = append(s.ByCategory, CategorySum{Category: cat, Amount: Money{Cents: cents}})
	}
	sort.SliceStable(s.ByCategory, func(i, j int) bool {
		a, b := s.ByCategory[i], s.ByCategory[j]
		if a.Amount.Cents != b.Amount.Cents {
			return a.Amount.Cents > b.Amount.Cents
		}
		return firstSeen[a.Category] < firstSeen[b.Category]
	})
	s.TopCategory = s.ByCategory[0].Category

	s.MonthlyAvg = Money{Cents: s.Total.Cents / int64(monthSpan(first, last))}
	return s
}

// TopCategories returns the first n entries of ByCategory.
func (s Summary) TopCategories(n int) []CategorySum {
	if n > len(s.ByCategory) {
		n = len(s.ByCategory)
	}
	return s.ByCategory[:n]
}

// monthSpan counts the calendar months spanned inclusively between two dates,
// never less than 1. January through March is 3 regardless of the days.
func monthSpan(first, last time.Time) int {
	span := (last.Year()-first.Year())*12 + int(last.Month()) - int(first.Month()) + 1
	if span < 1 {
		return 1
	}
	return span
}

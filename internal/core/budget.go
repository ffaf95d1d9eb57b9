package core

const (
	BudgetStatusOK       BudgetStatus = "ok"
	BudgetStatusWarning  BudgetStatus = "warning"
	BudgetStatusExceeded BudgetStatus = "exceeded"

	NotificationInfo    NotificationKind = "info"
	NotificationWarning NotificationKind = "warning"
	NotificationAlert   NotificationKind = "alert"
)

type (
	BudgetStatus     string
	NotificationKind string

	// Budget is a per-category spending limit with the amount spent so far.
	Budget struct {
		Category Category
		Limit    Money
		Spent    Money
	}

	// Notification is a user-facing message raised when a budget is blown.
	Notification struct {
		Message string
		Kind    NotificationKind
	}
)

// DefaultBudgets mirror the limits seeded on first run.
var DefaultBudgets = map[Category]Money{
	CategoryFood:          {Cents: 50000},
	CategoryHousing:       {Cents: 150000},
	CategoryTransport:     {Cents: 30000},
	CategoryEntertainment: {Cents: 20000},
	CategoryShopping:      {Cents: 30000},
	CategoryHealthcare:    {Cents: 30000},
	CategoryOther:         {Cents: 20000},
}

// Percent returns how much of the limit has been spent, in whole percent.
func (b Budget) Percent() int {
	if b.Limit.Cents <= 0 {
		return 0
	}
	return int((b.Spent.Cents*100 + b.Limit.Cents/2) / b.Limit.Cents)
}

// Remaining returns the unspent part of the limit; negative when exceeded.
func (b Budget) Remaining() Money {
	return Money{Cents: b.Limit.Cents - b.Spent.Cents}
}

// Status classifies the budget: warning from 80%, exceeded from 100%.
func (b Budget) Status() BudgetStatus {
	switch p := b.Percent(); {
	case p >= 100:
		return BudgetStatusExceeded
	case p >= 80:
		return BudgetStatusWarning
	default:
		return BudgetStatusOK
	}
}

// Advice returns spending guidance keyed on the percentage of budget used.
func Advice(percent int) string {
	switch {
	case percent >= 100:
		return "You've exceeded your budget in this category. Consider reducing your spending or adjusting your budget if needed."
	case percent >= 90:
		return "You're very close to reaching your budget limit. Be careful with additional expenses in this category."
	case percent >= 75:
		return "You've used most of your budget. Plan carefully for remaining expenses this period."
	case percent >= 50:
		return "You're using your budget at a moderate pace. Continue monitoring your spending."
	default:
		return "You're well within your budget. Great job managing your finances!"
	}
}

package events

import (
	"encoding/json"
	"time"

	"aiwealth/internal/core"
)

// ExpenseLoggedMessage announces a newly logged expense so the alert worker
// can evaluate the category budget. It carries just enough to run the check
// without another database read.
type ExpenseLoggedMessage struct {
	Ref         string        `json:"ref"`
	Category    core.Category `json:"category"`
	AmountCents int64         `json:"amount_cents"`
	Timestamp   time.Time     `json:"timestamp"`
}

// NewExpenseLoggedMessage creates a message for a stored expense.
func NewExpenseLoggedMessage(ref string, category core.Category, amountCents int64) *ExpenseLoggedMessage {
	return &ExpenseLoggedMessage{
		Ref:         ref,
		Category:    category,
		AmountCents: amountCents,
		Timestamp:   time.Now(),
	}
}

// ToJSON converts the message to JSON bytes.
func (m *ExpenseLoggedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// ExpenseLoggedMessageFromJSON creates a message from JSON bytes.
func ExpenseLoggedMessageFromJSON(data []byte) (*ExpenseLoggedMessage, error) {
	var msg ExpenseLoggedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

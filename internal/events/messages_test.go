package events

import (
	"testing"
	"time"

	"aiwealth/internal/core"
)

func TestExpenseLoggedMessageRoundTrip(t *testing.T) {
	msg := NewExpenseLoggedMessage("42", core.CategoryFood, 4500)
	if msg.Timestamp.IsZero() {
		t.Fatalf("timestamp not set")
	}

	data, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("to json: %v", err)
	}

	got, err := ExpenseLoggedMessageFromJSON(data)
	if err != nil {
		t.Fatalf("from json: %v", err)
	}
	if got.Ref != "42" || got.Category != core.CategoryFood || got.AmountCents != 4500 {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if !got.Timestamp.Truncate(time.Second).Equal(msg.Timestamp.Truncate(time.Second)) {
		t.Fatalf("timestamp mismatch: %v vs %v", got.Timestamp, msg.Timestamp)
	}
}

func TestExpenseLoggedMessageFromInvalidJSON(t *testing.T) {
	if _, err := ExpenseLoggedMessageFromJSON([]byte("{not json")); err == nil {
		t.Fatalf("expected decode error")
	}
}

package chat

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"aiwealth/internal/ai"
	"aiwealth/internal/core"
	"aiwealth/internal/services"
)

const maxHistoryTurns = 40

// Turn is one message in a session's chat history.
type Turn struct {
	Role string // "user" or "model"
	Text string
}

// Assistant answers chat messages: expense and budget commands mutate state
// directly, everything else goes to the generator with session history.
type Assistant struct {
	expenses *services.ExpenseService
	gen      ai.Generator // nil means limited mode

	mu        sync.Mutex
	histories map[string][]Turn
}

func NewAssistant(expenses *services.ExpenseService, gen ai.Generator) *Assistant {
	return &Assistant{
		expenses:  expenses,
		gen:       gen,
		histories: make(map[string][]Turn),
	}
}

// Reply handles one chat message for a session and returns the assistant's
// response. Command failures come back as chat text, not errors; only
// unexpected internal failures return an error.
func (a *Assistant) Reply(ctx context.Context, sessionID, message string) (string, error) {
	if message == "" {
		return "No message provided", nil
	}

	if cmd, ok := ParseExpenseCommand(message); ok {
		return a.handleExpense(ctx, sessionID, message, cmd)
	}
	if cmd, ok := ParseBudgetCommand(message); ok {
		return a.handleBudget(ctx, sessionID, message, cmd)
	}
	return a.handleFreeform(ctx, sessionID, message)
}

func (a *Assistant) handleExpense(ctx context.Context, sessionID, message string, cmd ExpenseCommand) (string, error) {
	e := core.Expense{
		Date:        time.Now(),
		Category:    cmd.Category,
		Description: cmd.Description,
		Amount:      cmd.Amount,
	}
	if _, err := a.expenses.Log(ctx, e); err != nil {
		slog.ErrorContext(ctx, "Chat expense log failed", "error", err)
		return "I couldn't save that expense. Please check the amount and try again.", nil
	}

	response := fmt.Sprintf(
		"I've added your expense of %s for %s in the %s category. You can view your spending breakdown in the dashboard.",
		cmd.Amount.Format(), cmd.Description, cmd.Category.Label())
	a.remember(sessionID, message, response)
	return response, nil
}

func (a *Assistant) handleBudget(ctx context.Context, sessionID, message string, cmd BudgetCommand) (string, error) {
	if err := a.expenses.SetBudget(ctx, cmd.Category, cmd.Limit); err != nil {
		slog.ErrorContext(ctx, "Chat budget set failed", "error", err)
		return "I couldn't set that budget. Please try again.", nil
	}

	response := fmt.Sprintf("I've set your budget for %s to %s.", cmd.Category, cmd.Limit.Format())
	a.remember(sessionID, message, response)
	return response, nil
}

func (a *Assistant) handleFreeform(ctx context.Context, sessionID, message string) (string, error) {
	if a.gen == nil {
		a.remember(sessionID, message, ai.LimitedModeResponse)
		return ai.LimitedModeResponse, nil
	}

	parts := []string{ai.SystemPrompt}
	for _, turn := range a.history(sessionID) {
		parts = append(parts, fmt.Sprintf("%s: %s", turn.Role, turn.Text))
	}
	parts = append(parts, message)

	response, err := a.gen.Generate(ctx, parts...)
	if err != nil {
		slog.ErrorContext(ctx, "Chat generation failed", "error", err)
		return "I'm sorry, I encountered an error processing your request.", nil
	}

	a.remember(sessionID, message, response)
	return response, nil
}

func (a *Assistant) history(sessionID string) []Turn {
	a.mu.Lock()
	defer a.mu.Unlock()
	h := a.histories[sessionID]
	out := make([]Turn, len(h))
	copy(out, h)
	return out
}

func (a *Assistant) remember(sessionID, userMsg, modelMsg string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	h := append(a.histories[sessionID], Turn{Role: "user", Text: userMsg}, Turn{Role: "model", Text: modelMsg})
	if len(h) > maxHistoryTurns {
		h = h[len(h)-maxHistoryTurns:]
	}
	a.histories[sessionID] = h
}

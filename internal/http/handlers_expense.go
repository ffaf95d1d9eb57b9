package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"aiwealth/internal/core"
)

func (s *Server) handleAddExpense(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	cents, err := core.ParseDecimalToCents(r.FormValue("amount"))
	if err != nil {
		http.Error(w, "Invalid amount value", http.StatusBadRequest)
		return
	}

	description := sanitizeInput(r.FormValue("description"))
	category := core.ParseCategory(r.FormValue("category"))

	expense := core.Expense{
		Date:        time.Now(),
		Category:    category,
		Description: description,
		Amount:      core.Money{Cents: cents},
	}
	if err := expense.Validate(); err != nil {
		http.Error(w, "Invalid expense: "+err.Error(), http.StatusBadRequest)
		return
	}

	ref, err := s.expenses.Log(ctx, expense)
	if err != nil {
		slog.ErrorContext(ctx, "Failed logging expense", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	slog.InfoContext(ctx, "Expense added", "ref", ref, "category", category, "amount", expense.Amount.Format())

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (s *Server) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	ctx := r.Context()

	raw := strings.TrimPrefix(r.URL.Path, "/delete_expense/")
	index, err := strconv.Atoi(raw)
	if err != nil || index < 0 {
		http.Error(w, "Invalid expense index", http.StatusBadRequest)
		return
	}

	if err := s.expenses.Delete(ctx, index); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			http.Error(w, "Expense not found", http.StatusNotFound)
			return
		}
		slog.ErrorContext(ctx, "Failed deleting expense", "index", index, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	slog.InfoContext(ctx, "Expense deleted", "index", index)

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// Package storage persists expenses, budgets and notifications in SQLite.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"aiwealth/internal/core"
	"aiwealth/internal/store"

	_ "modernc.org/sqlite"
)

var _ store.Backend = (*SQLiteRepository)(nil)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	// Run migrations
	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Add implements store.ExpenseStore.
func (r *SQLiteRepository) Add(ctx context.Context, e core.Expense) (string, error) {
	if err := e.Validate(); err != nil {
		return "", err
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO expenses (amount_cents, description, category, spent_at) VALUES (?, ?, ?, ?)`,
		e.Amount.Cents, e.Description, string(e.Category), e.Date.UTC().Format(time.RFC3339))
	if err != nil {
		return "", fmt.Errorf("insert expense: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return "", fmt.Errorf("last insert id: %w", err)
	}

	slog.InfoContext(ctx, "Expense saved to SQLite",
		"id", id,
		"description", e.Description,
		"amount_cents", e.Amount.Cents,
		"category", e.Category)

	return strconv.FormatInt(id, 10), nil
}

// DeleteAt implements store.ExpenseStore. The index addresses the N-th row in
// insertion order; the whole lookup+delete runs in one transaction so a
// concurrent insert cannot shift the target row under us.
func (r *SQLiteRepository) DeleteAt(ctx context.Context, index int) (core.Expense, error) {
	if index < 0 {
		return core.Expense{}, core.ErrNotFound
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return core.Expense{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var (
		id       int64
		cents    int64
		desc     string
		category string
		spentAt  string
	)
	err = tx.QueryRowContext(ctx,
		`SELECT id, amount_cents, description, category, spent_at FROM expenses ORDER BY id LIMIT 1 OFFSET ?`,
		index).Scan(&id, &cents, &desc, &category, &spentAt)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Expense{}, core.ErrNotFound
	}
	if err != nil {
		return core.Expense{}, fmt.Errorf("select expense at index %d: %w", index, err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM expenses WHERE id = ?`, id); err != nil {
		return core.Expense{}, fmt.Errorf("delete expense %d: %w", id, err)
	}
	if err := tx.Commit(); err != nil {
		return core.Expense{}, fmt.Errorf("commit delete: %w", err)
	}

	removed := core.Expense{
		Date:        parseTimestamp(spentAt),
		Category:    core.Category(category),
		Description: desc,
		Amount:      core.Money{Cents: cents},
	}

	slog.InfoContext(ctx, "Expense deleted", "id", id, "index", index)
	return removed, nil
}

// List implements store.ExpenseStore, returning rows in insertion order.
func (r *SQLiteRepository) List(ctx context.Context) ([]core.Expense, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT amount_cents, description, category, spent_at FROM expenses ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()

	var out []core.Expense
	for rows.Next() {
		var (
			cents    int64
			desc     string
			category string
			spentAt  string
		)
		if err := rows.Scan(&cents, &desc, &category, &spentAt); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		out = append(out, core.Expense{
			Date:        parseTimestamp(spentAt),
			Category:    core.Category(category),
			Description: desc,
			Amount:      core.Money{Cents: cents},
		})
	}
	return out, rows.Err()
}

// IsEmpty implements store.ExpenseStore.
func (r *SQLiteRepository) IsEmpty(ctx context.Context) (bool, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM expenses`).Scan(&n); err != nil {
		return false, fmt.Errorf("count expenses: %w", err)
	}
	return n == 0, nil
}

// Set implements store.BudgetStore with an upsert.
func (r *SQLiteRepository) Set(ctx context.Context, category core.Category, limit core.Money) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO budgets (category, limit_cents) VALUES (?, ?)
		 ON CONFLICT(category) DO UPDATE SET limit_cents = excluded.limit_cents`,
		string(category), limit.Cents)
	if err != nil {
		return fmt.Errorf("set budget %s: %w", category, err)
	}
	slog.InfoContext(ctx, "Budget set", "category", category, "limit_cents", limit.Cents)
	return nil
}

// Apply implements store.BudgetStore. Unbudgeted categories start tracking
// with a default limit, matching the memory backend.
func (r *SQLiteRepository) Apply(ctx context.Context, category core.Category, amount core.Money) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO budgets (category, limit_cents, spent_cents) VALUES (?, 30000, ?)
		 ON CONFLICT(category) DO UPDATE SET spent_cents = spent_cents + excluded.spent_cents`,
		string(category), amount.Cents)
	if err != nil {
		return fmt.Errorf("apply to budget %s: %w", category, err)
	}
	return nil
}

// Release implements store.BudgetStore, flooring spent at zero.
func (r *SQLiteRepository) Release(ctx context.Context, category core.Category, amount core.Money) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE budgets SET spent_cents = MAX(0, spent_cents - ?) WHERE category = ?`,
		amount.Cents, string(category))
	if err != nil {
		return fmt.Errorf("release from budget %s: %w", category, err)
	}
	return nil
}

// Get implements store.BudgetStore.
func (r *SQLiteRepository) Get(ctx context.Context, category core.Category) (core.Budget, error) {
	var limit, spent int64
	err := r.db.QueryRowContext(ctx,
		`SELECT limit_cents, spent_cents FROM budgets WHERE category = ?`,
		string(category)).Scan(&limit, &spent)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Budget{}, core.ErrNotFound
	}
	if err != nil {
		return core.Budget{}, fmt.Errorf("get budget %s: %w", category, err)
	}
	return core.Budget{
		Category: category,
		Limit:    core.Money{Cents: limit},
		Spent:    core.Money{Cents: spent},
	}, nil
}

// Overview implements store.BudgetStore, ordered by percentage spent.
func (r *SQLiteRepository) Overview(ctx context.Context) ([]core.Budget, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT category, limit_cents, spent_cents FROM budgets
		 ORDER BY CASE WHEN limit_cents > 0 THEN CAST(spent_cents AS REAL) / limit_cents ELSE 0 END DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("budget overview: %w", err)
	}
	defer rows.Close()

	var out []core.Budget
	for rows.Next() {
		var (
			category     string
			limit, spent int64
		)
		if err := rows.Scan(&category, &limit, &spent); err != nil {
			return nil, fmt.Errorf("scan budget: %w", err)
		}
		out = append(out, core.Budget{
			Category: core.Category(category),
			Limit:    core.Money{Cents: limit},
			Spent:    core.Money{Cents: spent},
		})
	}
	return out, rows.Err()
}

// Notify implements store.NotificationStore.
func (r *SQLiteRepository) Notify(ctx context.Context, n core.Notification) error {
	kind := n.Kind
	if kind == "" {
		kind = core.NotificationInfo
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO notifications (message, kind) VALUES (?, ?)`,
		n.Message, string(kind))
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

// ListUnread implements store.NotificationStore, newest first.
func (r *SQLiteRepository) ListUnread(ctx context.Context, limit int) ([]core.Notification, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT message, kind FROM notifications WHERE status = 'unread' ORDER BY id DESC LIMIT ?`,
		limit)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	var out []core.Notification
	for rows.Next() {
		var msg, kind string
		if err := rows.Scan(&msg, &kind); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		out = append(out, core.Notification{Message: msg, Kind: core.NotificationKind(kind)})
	}
	return out, rows.Err()
}

// parseTimestamp tolerates both RFC3339 and the SQLite default format.
func parseTimestamp(s string) time.Time {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02 15:04:05", s); err == nil {
		return t
	}
	return time.Time{}
}

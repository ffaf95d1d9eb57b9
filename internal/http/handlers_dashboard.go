package http

import (
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"

	"aiwealth/internal/core"
)

type dashboardView struct {
	HasData       bool
	Total         string
	MonthlyAvg    string
	TopCategories []topCategoryView
	Expenses      []expenseRowView
	Chart         chartView
	AllCategories []categoryOption
	Budgets       []budgetRowView
	Notifications []notificationView
}

type topCategoryView struct {
	Label  string
	Amount string
}

type expenseRowView struct {
	Index       int
	Date        string
	Category    string
	Description string
	Amount      string
}

type chartView struct {
	Labels  template.JS
	Amounts template.JS
	Colors  template.JS
}

type categoryOption struct {
	Value string
	Label string
}

type budgetRowView struct {
	Label     string
	Spent     string
	Limit     string
	Percent   int
	Status    core.BudgetStatus
	Remaining string
	Advice    string
}

type notificationView struct {
	Message string
	Kind    core.NotificationKind
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	ctx := r.Context()

	expenses, err := s.backend.List(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "Failed listing expenses", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	view := dashboardView{AllCategories: categoryOptions()}

	summary := core.Summarize(expenses)
	view.HasData = summary.HasData
	if summary.HasData {
		view.Total = summary.Total.Format()
		view.MonthlyAvg = summary.MonthlyAvg.Format()
		for _, c := range summary.TopCategories(3) {
			view.TopCategories = append(view.TopCategories, topCategoryView{
				Label:  c.Category.Label(),
				Amount: c.Amount.Format(),
			})
		}
		for i, e := range expenses {
			view.Expenses = append(view.Expenses, expenseRowView{
				Index:       i,
				Date:        e.Date.Format("2006-01-02"),
				Category:    e.Category.Label(),
				Description: e.Description,
				Amount:      e.Amount.Format(),
			})
		}
		view.Chart = buildChart(summary)
	}

	budgets, err := s.backend.Overview(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "Failed loading budgets", "error", err)
	}
	for _, b := range budgets {
		view.Budgets = append(view.Budgets, budgetRowView{
			Label:     b.Category.Label(),
			Spent:     b.Spent.Format(),
			Limit:     b.Limit.Format(),
			Percent:   b.Percent(),
			Status:    b.Status(),
			Remaining: b.Remaining().Format(),
			Advice:    core.Advice(b.Percent()),
		})
	}

	notifications, err := s.backend.ListUnread(ctx, 10)
	if err != nil {
		slog.ErrorContext(ctx, "Failed loading notifications", "error", err)
	}
	for _, n := range notifications {
		view.Notifications = append(view.Notifications, notificationView{Message: n.Message, Kind: n.Kind})
	}

	if err := s.templates.ExecuteTemplate(w, "dashboard.html", view); err != nil {
		slog.ErrorContext(ctx, "Failed rendering dashboard", "error", err)
	}
}

func buildChart(summary core.Summary) chartView {
	labels := make([]string, 0, len(summary.ByCategory))
	amounts := make([]float64, 0, len(summary.ByCategory))
	colors := make([]string, 0, len(summary.ByCategory))
	for _, c := range summary.ByCategory {
		labels = append(labels, c.Category.Label())
		amounts = append(amounts, c.Amount.Dollars())
		colors = append(colors, c.Category.Color())
	}
	return chartView{
		Labels:  mustJSON(labels),
		Amounts: mustJSON(amounts),
		Colors:  mustJSON(colors),
	}
}

// mustJSON serializes chart data for inline script use. The inputs are
// server-generated labels and numbers, never raw user text.
func mustJSON(v any) template.JS {
	b, err := json.Marshal(v)
	if err != nil {
		return template.JS("[]")
	}
	return template.JS(b)
}

func categoryOptions() []categoryOption {
	opts := make([]categoryOption, 0, len(core.Categories))
	for _, c := range core.Categories {
		opts = append(opts, categoryOption{Value: string(c), Label: c.Label()})
	}
	return opts
}

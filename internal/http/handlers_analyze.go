package http

import (
	"log/slog"
	"net/http"

	"aiwealth/internal/ai"
	"aiwealth/internal/core"
)

type analyzeResponse struct {
	Response string `json:"response"`
}

func (s *Server) handleAnalyzeExpenses(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	ctx := r.Context()

	expenses, err := s.backend.List(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "Failed listing expenses for analysis", "error", err)
		writeJSON(w, http.StatusOK, analyzeResponse{Response: "I'm sorry, I encountered an error while analyzing your expenses."})
		return
	}
	if len(expenses) == 0 {
		writeJSON(w, http.StatusOK, analyzeResponse{Response: "No expense data available to analyze"})
		return
	}

	if s.generator == nil {
		writeJSON(w, http.StatusOK, analyzeResponse{Response: ai.LimitedModeResponse})
		return
	}

	summary := core.Summarize(expenses)
	text, err := s.generator.Generate(ctx, ai.AnalysisPrompt, ai.BuildExpenseSummary(summary))
	if err != nil {
		slog.ErrorContext(ctx, "Expense analysis failed", "error", err)
		writeJSON(w, http.StatusOK, analyzeResponse{Response: "I'm sorry, I encountered an error while analyzing your expenses."})
		return
	}

	writeJSON(w, http.StatusOK, analyzeResponse{Response: text})
}

package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Response string `json:"response"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := s.templates.ExecuteTemplate(w, "index.html", nil); err != nil {
		slog.ErrorContext(r.Context(), "Failed rendering index", "error", err)
	}
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	ctx := r.Context()

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, chatResponse{Response: "Invalid request body"})
		return
	}

	session := sessionID(w, r)
	reply, err := s.assistant.Reply(ctx, session, req.Message)
	if err != nil {
		slog.ErrorContext(ctx, "Chat reply failed", "error", err)
		writeJSON(w, http.StatusOK, chatResponse{Response: "I'm sorry, I encountered an error processing your request."})
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{Response: reply})
}

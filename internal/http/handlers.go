package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Wichuda1723/expense-tracker2/internal/core"
	"github.com/Wichuda1723/expense-tracker2/internal/services"
)

// handleCreateTransaction accepts a candidate transaction, validates it,
// appends it to the ledger and synchronously persists before answering.
func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	tx, err := parseTransaction(NewRequestBodyParser(r))
	if err != nil {
		slog.ErrorContext(r.Context(), "Transaction parse error", "error", err, "url", r.URL.Path)
		writeError(w, http.StatusUnprocessableEntity, "invalid transaction payload")
		return
	}

	position, err := s.ledger.Record(r.Context(), tx)
	switch {
	case err == nil:
	case errors.Is(err, core.ErrEmptyDescription),
		errors.Is(err, core.ErrInvalidAmount),
		errors.Is(err, core.ErrUnknownType):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	default:
		// Persist failure: the only durability mechanism failed, surface it
		slog.ErrorContext(r.Context(), "Transaction record error",
			"error", err, "description", tx.Description, "amount_cents", tx.Amount.Cents)
		writeError(w, http.StatusInternalServerError, "failed to save transaction")
		return
	}

	s.dashboardCache.Delete(dashboardCacheKey)

	writeJSON(w, http.StatusCreated, createdResponse{
		Position: position,
		Message:  "transaction recorded",
	})
}

// handleDashboard returns the full view-model, recomputed from the ledger
// and cached until the next append or TTL expiry.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if resp, found := s.dashboardCache.Get(dashboardCacheKey); found {
		slog.DebugContext(r.Context(), "Dashboard cache hit")
		writeJSON(w, http.StatusOK, resp)
		return
	}

	resp := buildDashboardResponse(services.BuildDashboard(s.ledger.Current()))
	s.dashboardCache.Set(dashboardCacheKey, resp)
	slog.DebugContext(r.Context(), "Dashboard rebuilt",
		"income_rows", len(resp.Income.Rows), "expense_rows", len(resp.Expense.Rows))
	writeJSON(w, http.StatusOK, resp)
}

type categoriesResponse struct {
	Type    string   `json:"type"`
	Options []string `json:"options"`
	Default string   `json:"default"`
}

// handleCategories serves the option list and default for one type. The
// renderer calls it on every type-changed event to reset the selection.
func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	typ := core.TransactionType(r.URL.Query().Get("type"))
	if !typ.IsValid() {
		writeError(w, http.StatusBadRequest, "unknown transaction type")
		return
	}

	writeJSON(w, http.StatusOK, categoriesResponse{
		Type:    typ.String(),
		Options: core.Options(typ),
		Default: core.DefaultCategory(typ),
	})
}

// This file shapes the JSON view-model the renderer consumes: the two
// per-type tables, the totals and the chart series.
package http

import (
	"encoding/json"
	"net/http"

	"github.com/Wichuda1723/expense-tracker2/internal/core"
	"github.com/Wichuda1723/expense-tracker2/internal/services"
)

type transactionRow struct {
	Date        string `json:"date"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
}

type tableResponse struct {
	Rows  []transactionRow `json:"rows"`
	Total string           `json:"total"`
}

type chartBar struct {
	Category     string  `json:"category"`
	Center       float64 `json:"center"`
	IncomeX      float64 `json:"income_x"`
	ExpenseX     float64 `json:"expense_x"`
	Income       float64 `json:"income"`
	Expense      float64 `json:"expense"`
	IncomeLabel  string  `json:"income_label,omitempty"`
	ExpenseLabel string  `json:"expense_label,omitempty"`
}

type chartResponse struct {
	// SufficientData is false when there is nothing to plot; the renderer
	// shows a placeholder instead of an empty chart.
	SufficientData bool       `json:"sufficient_data"`
	BarWidth       float64    `json:"bar_width"`
	Categories     []string   `json:"categories"`
	Bars           []chartBar `json:"bars"`
}

type dashboardResponse struct {
	Income  tableResponse `json:"income"`
	Expense tableResponse `json:"expense"`
	Balance string        `json:"balance"`
	Chart   chartResponse `json:"chart"`
}

type createdResponse struct {
	Position int    `json:"position"`
	Message  string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func buildDashboardResponse(d services.Dashboard) dashboardResponse {
	resp := dashboardResponse{
		Income:  buildTable(d.Income, d.TotalIncome),
		Expense: buildTable(d.Expense, d.TotalExpense),
		Balance: formatAmount(d.Balance),
		Chart: chartResponse{
			SufficientData: !d.Series.Empty(),
			BarWidth:       core.BarWidth,
			Categories:     d.Series.Categories,
		},
	}
	for _, b := range d.Series.Bars() {
		resp.Chart.Bars = append(resp.Chart.Bars, chartBar{
			Category:     b.Category,
			Center:       b.Center,
			IncomeX:      b.IncomeX,
			ExpenseX:     b.ExpenseX,
			Income:       float64(b.Income.Cents) / 100.0,
			Expense:      float64(b.Expense.Cents) / 100.0,
			IncomeLabel:  b.IncomeLabel,
			ExpenseLabel: b.ExpenseLabel,
		})
	}
	return resp
}

func buildTable(records []core.Transaction, total core.Money) tableResponse {
	t := tableResponse{Total: formatAmount(total)}
	for _, tx := range records {
		t.Rows = append(t.Rows, transactionRow{
			Date:        tx.Date.String(),
			Category:    tx.Category,
			Description: tx.Description,
			Amount:      formatAmount(tx.Amount),
		})
	}
	return t
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

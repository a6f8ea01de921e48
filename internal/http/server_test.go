package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Wichuda1723/expense-tracker2/internal/ledger/memory"
	"github.com/Wichuda1723/expense-tracker2/internal/services"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	svc, err := services.NewLedgerService(context.Background(), memory.New(), nil)
	if err != nil {
		t.Fatalf("ledger service: %v", err)
	}
	s := NewServer(":0", svc, time.Minute)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = s.Shutdown(ctx)
	})
	return s
}

func do(s *Server, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	s.Server.Handler.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoints(t *testing.T) {
	s := newTestServer(t)
	if rec := do(s, http.MethodGet, "/healthz", ""); rec.Code != http.StatusOK {
		t.Fatalf("healthz: %d", rec.Code)
	}
	if rec := do(s, http.MethodGet, "/readyz", ""); rec.Code != http.StatusOK {
		t.Fatalf("readyz: %d", rec.Code)
	}
}

func TestCreateTransaction(t *testing.T) {
	s := newTestServer(t)

	rec := do(s, http.MethodPost, "/transactions",
		"date=15%2F01%2F2025&type=expense&category=food&description=lunch&amount=85.50")
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var created createdResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.Position != 0 {
		t.Fatalf("expected position 0, got %d", created.Position)
	}
}

func TestCreateTransactionJSON(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/transactions",
		strings.NewReader(`{"date":"16/01/2025","type":"income","category":"daily income","description":"wage","amount":"300"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Server.Handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestCreateTransactionRejectsInvalid(t *testing.T) {
	s := newTestServer(t)

	cases := []struct {
		name string
		body string
	}{
		{"empty description", "type=expense&category=food&description=&amount=10"},
		{"zero amount", "type=expense&category=food&description=x&amount=0"},
		{"negative amount", "type=expense&category=food&description=x&amount=-5"},
		{"unknown type", "type=transfer&category=food&description=x&amount=10"},
	}
	for _, tc := range cases {
		rec := do(s, http.MethodPost, "/transactions", tc.body)
		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("%s: expected 422, got %d", tc.name, rec.Code)
		}
	}
}

func TestCreateTransactionMethodNotAllowed(t *testing.T) {
	s := newTestServer(t)
	if rec := do(s, http.MethodGet, "/transactions", ""); rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}

func TestDashboardEmpty(t *testing.T) {
	s := newTestServer(t)

	rec := do(s, http.MethodGet, "/dashboard", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var d dashboardResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &d); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if d.Chart.SufficientData {
		t.Fatalf("empty ledger must report insufficient chart data")
	}
	if d.Balance != "0.00 ฿" {
		t.Fatalf("expected zero balance, got %q", d.Balance)
	}
}

func TestDashboardReflectsAppends(t *testing.T) {
	s := newTestServer(t)

	// Warm the cache with the empty dashboard first
	do(s, http.MethodGet, "/dashboard", "")

	if rec := do(s, http.MethodPost, "/transactions",
		"date=15%2F01%2F2025&type=income&category=daily+income&description=wage&amount=1500"); rec.Code != http.StatusCreated {
		t.Fatalf("append failed: %d", rec.Code)
	}
	if rec := do(s, http.MethodPost, "/transactions",
		"date=16%2F01%2F2025&type=expense&category=food&description=lunch&amount=500"); rec.Code != http.StatusCreated {
		t.Fatalf("append failed: %d", rec.Code)
	}

	rec := do(s, http.MethodGet, "/dashboard", "")
	var d dashboardResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &d); err != nil {
		t.Fatalf("decode: %v", err)
	}

	// Append must have invalidated the cached empty dashboard
	if len(d.Income.Rows) != 1 || len(d.Expense.Rows) != 1 {
		t.Fatalf("tables wrong: %+v", d)
	}
	if d.Income.Total != "1,500.00 ฿" || d.Expense.Total != "500.00 ฿" {
		t.Fatalf("totals wrong: income=%q expense=%q", d.Income.Total, d.Expense.Total)
	}
	if d.Balance != "1,000.00 ฿" {
		t.Fatalf("balance wrong: %q", d.Balance)
	}
	if !d.Chart.SufficientData || len(d.Chart.Bars) != 2 {
		t.Fatalf("chart wrong: %+v", d.Chart)
	}
	if d.Chart.BarWidth != 0.35 {
		t.Fatalf("bar width wrong: %f", d.Chart.BarWidth)
	}
}

func TestCategoriesEndpoint(t *testing.T) {
	s := newTestServer(t)

	rec := do(s, http.MethodGet, "/categories?type=income", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp categoriesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Options) != 2 || resp.Default != resp.Options[0] {
		t.Fatalf("income catalog wrong: %+v", resp)
	}

	if rec := do(s, http.MethodGet, "/categories?type=loan", ""); rec.Code != http.StatusBadRequest {
		t.Fatalf("unknown type must be rejected, got %d", rec.Code)
	}
}

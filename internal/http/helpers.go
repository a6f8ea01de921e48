package http

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/Wichuda1723/expense-tracker2/internal/core"
)

// currencySuffix trails every displayed amount, as in "1,234.50 ฿".
const currencySuffix = "฿"

// formatAmount renders an amount for table and totals display: thousands
// separators, two decimals, currency suffix.
func formatAmount(m core.Money) string {
	return m.Grouped() + " " + currencySuffix
}

// sanitizeInput removes potentially dangerous characters and trims whitespace.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	result := strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
	return result
}

// generateRequestID creates a unique request ID for tracing.
func generateRequestID() string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		return fmt.Sprintf("req_%d", time.Now().UnixNano())
	}
	return "req_" + hex.EncodeToString(bytes)
}

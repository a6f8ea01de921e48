// This file parses transaction submissions. Both JSON and form-encoded
// bodies are accepted; the renderer decides which it sends.
package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Wichuda1723/expense-tracker2/internal/core"
)

// RequestBodyParser handles different content types for request body parsing.
type RequestBodyParser struct {
	body     []byte
	jsonData map[string]interface{}
	formData url.Values
	parsed   bool
	err      error
}

// NewRequestBodyParser reads the body once and stores it for parsing.
func NewRequestBodyParser(r *http.Request) *RequestBodyParser {
	p := &RequestBodyParser{}
	p.body, p.err = io.ReadAll(r.Body)
	return p
}

// Parse attempts to parse the body as JSON or form data.
func (p *RequestBodyParser) Parse() error {
	if p.parsed {
		return p.err
	}
	p.parsed = true

	if p.err != nil {
		return p.err
	}
	if len(p.body) == 0 {
		p.formData = url.Values{}
		return nil
	}

	// Try JSON first if content looks like JSON
	if p.body[0] == '{' || p.body[0] == '[' {
		p.jsonData = make(map[string]interface{})
		if err := json.Unmarshal(p.body, &p.jsonData); err != nil {
			p.err = err
			return err
		}
		return nil
	}

	p.formData, p.err = url.ParseQuery(string(p.body))
	return p.err
}

// Get returns a sanitized string value from the parsed data (JSON or form).
func (p *RequestBodyParser) Get(key string) string {
	if p.jsonData != nil {
		if val, ok := p.jsonData[key]; ok {
			return strings.TrimSpace(sanitizeInput(stringValue(val)))
		}
	}
	if p.formData != nil {
		return strings.TrimSpace(sanitizeInput(p.formData.Get(key)))
	}
	return ""
}

// stringValue converts an interface{} to string.
func stringValue(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case bool:
		return strconv.FormatBool(val)
	default:
		return ""
	}
}

// parseTransaction builds the candidate transaction from a submission.
// The date defaults to today when omitted; an omitted category falls back
// to the default for the submitted type, mirroring the form's reset on
// type change. Validation itself happens in the service.
func parseTransaction(p *RequestBodyParser) (core.Transaction, error) {
	if err := p.Parse(); err != nil {
		return core.Transaction{}, err
	}

	typ := core.TransactionType(p.Get("type"))

	date := core.ParseDate(p.Get("date"))
	if p.Get("date") == "" {
		now := time.Now()
		date = core.NewDate(now.Year(), int(now.Month()), now.Day())
	}

	category := p.Get("category")
	if category == "" {
		category = core.DefaultCategory(typ)
	}

	var amount core.Money
	if raw := p.Get("amount"); raw != "" {
		cents, err := core.ParseDecimalToCents(raw)
		if err != nil {
			return core.Transaction{}, err
		}
		amount = core.Money{Cents: cents}
	}

	return core.Transaction{
		Date:        date,
		Type:        typ,
		Category:    category,
		Description: p.Get("description"),
		Amount:      amount,
	}, nil
}

package amqp

import (
	"encoding/json"
	"time"

	"github.com/Wichuda1723/expense-tracker2/internal/core"
)

// TransactionRecordedMessage carries one recorded transaction to the
// archive worker. The flat ledger file has no row IDs, so the message
// carries the full record plus its position in the ledger.
type TransactionRecordedMessage struct {
	Position    int       `json:"position"`
	Date        string    `json:"date"` // DateLayout, empty for the invalid sentinel
	Type        string    `json:"type"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	AmountCents int64     `json:"amount_cents"`
	Timestamp   time.Time `json:"timestamp"`
}

// NewTransactionRecordedMessage builds a message from a recorded
// transaction and its zero-based ledger position.
func NewTransactionRecordedMessage(position int, tx core.Transaction) *TransactionRecordedMessage {
	return &TransactionRecordedMessage{
		Position:    position,
		Date:        tx.Date.String(),
		Type:        tx.Type.String(),
		Category:    tx.Category,
		Description: tx.Description,
		AmountCents: tx.Amount.Cents,
		Timestamp:   time.Now(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *TransactionRecordedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// TransactionRecordedMessageFromJSON creates a message from JSON bytes
func TransactionRecordedMessageFromJSON(data []byte) (*TransactionRecordedMessage, error) {
	var msg TransactionRecordedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

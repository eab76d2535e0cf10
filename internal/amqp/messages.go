package amqp

import (
	"encoding/json"
	"time"

	"tavola/internal/core"
)

// ExpenseRecordedMessage mirrors a freshly recorded expense to the ledger
// worker. The store is in-memory only, so the message carries the full
// record instead of an id for the consumer to look up.
type ExpenseRecordedMessage struct {
	ID            string    `json:"id"`
	Date          string    `json:"date"` // YYYY-MM-DD
	Department    string    `json:"department"`
	Category      string    `json:"category"`
	Item          string    `json:"item"`
	AmountCents   int64     `json:"amount_cents"`
	Supplier      string    `json:"supplier"`
	PaymentMethod string    `json:"payment_method"`
	Notes         string    `json:"notes,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

// NewExpenseRecordedMessage builds a message from a stored record.
func NewExpenseRecordedMessage(e core.Expense) *ExpenseRecordedMessage {
	return &ExpenseRecordedMessage{
		ID:            e.ID,
		Date:          e.Date.Format("2006-01-02"),
		Department:    string(e.Department),
		Category:      string(e.Category),
		Item:          e.Item,
		AmountCents:   e.Amount.Cents,
		Supplier:      e.Supplier,
		PaymentMethod: string(e.PaymentMethod),
		Notes:         e.Notes,
		Timestamp:     time.Now(),
	}
}

// Expense reconstructs the record carried by the message.
func (m *ExpenseRecordedMessage) Expense() (core.Expense, error) {
	date, err := core.ParseDate(m.Date)
	if err != nil {
		return core.Expense{}, err
	}
	return core.Expense{
		ID:            m.ID,
		Date:          date,
		Department:    core.Department(m.Department),
		Category:      core.Category(m.Category),
		Item:          m.Item,
		Amount:        core.Money{Cents: m.AmountCents},
		Supplier:      m.Supplier,
		PaymentMethod: core.PaymentMethod(m.PaymentMethod),
		Notes:         m.Notes,
	}, nil
}

// ToJSON converts the message to JSON bytes.
func (m *ExpenseRecordedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// ExpenseRecordedMessageFromJSON creates a message from JSON bytes.
func ExpenseRecordedMessageFromJSON(data []byte) (*ExpenseRecordedMessage, error) {
	var msg ExpenseRecordedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

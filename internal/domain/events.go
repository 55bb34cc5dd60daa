package domain

import "time"

// TransactionEvent is pushed on every committed status change. Subscribers
// use it to refresh dashboards only; correctness never depends on delivery.
type TransactionEvent struct {
	TransactionID string            `json:"transaction_id"`
	BuyerID       string            `json:"buyer_id"`
	SellerID      string            `json:"seller_id,omitempty"`
	Status        TransactionStatus `json:"status"`
	StatusLabel   string            `json:"status_label"`
	Price         float64           `json:"price,omitempty"`
	OccurredAt    time.Time         `json:"occurred_at"`
}

type EventPublisher interface {
	PublishTransactionEvent(event TransactionEvent) error
}

package domain

import "time"

// StatusTransition describes one conditional single-row status update
// together with the side records that must land in the same storage
// transaction. The update applies only while the row's current status is
// still one of From; otherwise the store reports ErrInvalidState and
// writes nothing.
type StatusTransition struct {
	TransactionID string
	From          []TransactionStatus
	To            TransactionStatus
	SetPrice      *float64
	SetReason     *string
	Submission    *ProductSubmission
	Images        []*ProductImage
	PaymentProof  *PaymentProof
	Receipt       *DispatchReceipt
}

// TransactionFilter narrows listings. Search matches case-insensitively
// against the transaction title and the submitted product name.
type TransactionFilter struct {
	Status TransactionStatus
	Search string
	Page   int64
	Limit  int64
}

type TransactionStats struct {
	Total       int64
	ByStatus    map[TransactionStatus]int64
	TotalAmount float64
	ThisMonth   int64
}

type TransactionRepository interface {
	CreateTransaction(tx *Transaction) error
	GetTransactionByID(txID string) (*Transaction, error)

	// ClaimSeller sets seller_id once, only while it is still unset.
	// Returns ErrConflict when the slot is already taken.
	ClaimSeller(txID, sellerID string) error

	ApplyTransition(tr *StatusTransition) error
	SetDeliveryDetails(txID, method, branch string) error

	ListByParticipant(userID string, filter TransactionFilter) ([]*Transaction, int64, error)
	ListAll(filter TransactionFilter) ([]*Transaction, int64, error)
	GetSubmission(txID string) (*ProductSubmission, []*ProductImage, error)
	GetLatestPaymentProof(txID string) (*PaymentProof, error)
	GetDispatchReceipt(txID string) (*DispatchReceipt, error)
	GetTransactionStats(userID string, now time.Time) (*TransactionStats, error)
	FindStaleTransactions(olderThan time.Time) ([]*Transaction, error)

	AddMessage(msg *TransactionMessage) error
	ListMessages(txID string) ([]*TransactionMessage, error)
}

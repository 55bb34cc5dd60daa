package domain

import "time"

type TransactionStatus string

const (
	StatusCreated          TransactionStatus = "created"
	StatusProductSubmitted TransactionStatus = "product_submitted"
	StatusProductApproved  TransactionStatus = "product_approved"
	StatusRejected         TransactionStatus = "rejected"
	StatusPaymentUploaded  TransactionStatus = "payment_uploaded"
	StatusPaymentVerified  TransactionStatus = "payment_verified"
	StatusPaymentRejected  TransactionStatus = "payment_rejected"
	StatusDispatched       TransactionStatus = "dispatched"
	StatusProductDelivered TransactionStatus = "product_delivered"
	StatusInspectionPassed TransactionStatus = "inspection_passed"
	StatusInspectionFailed TransactionStatus = "inspection_failed"
	StatusFundsReleased    TransactionStatus = "funds_released"
)

// transitions is the closed set of legal status edges. Seller presence is a
// separate axis (SellerID on the row) and is checked per operation, not here.
var transitions = map[TransactionStatus][]TransactionStatus{
	StatusCreated:          {StatusProductSubmitted},
	StatusProductSubmitted: {StatusProductApproved, StatusRejected},
	StatusProductApproved:  {StatusPaymentUploaded},
	StatusPaymentUploaded:  {StatusPaymentVerified, StatusPaymentRejected},
	StatusPaymentRejected:  {StatusPaymentUploaded},
	StatusPaymentVerified:  {StatusDispatched},
	StatusDispatched:       {StatusProductDelivered},
	StatusProductDelivered: {StatusInspectionPassed, StatusInspectionFailed},
	StatusInspectionPassed: {StatusFundsReleased},
}

var allStatuses = []TransactionStatus{
	StatusCreated, StatusProductSubmitted, StatusProductApproved,
	StatusRejected, StatusPaymentUploaded, StatusPaymentVerified,
	StatusPaymentRejected, StatusDispatched, StatusProductDelivered,
	StatusInspectionPassed, StatusInspectionFailed, StatusFundsReleased,
}

func (s TransactionStatus) Valid() bool {
	for _, known := range allStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// TerminalStatuses lists every status with no outgoing transition, derived
// from the transition table so queries over terminal rows cannot drift from
// the lifecycle graph.
func TerminalStatuses() []TransactionStatus {
	var out []TransactionStatus
	for _, s := range allStatuses {
		if s.Terminal() {
			out = append(out, s)
		}
	}
	return out
}

// Terminal reports whether no further transition leaves s.
func (s TransactionStatus) Terminal() bool {
	return s.Valid() && len(transitions[s]) == 0
}

// CanTransition reports whether from -> to is an edge of the lifecycle graph.
func CanTransition(from, to TransactionStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type Transaction struct {
	ID              string
	Title           string
	Description     string
	BuyerID         string
	SellerID        string
	Price           float64
	Status          TransactionStatus
	DeliveryMethod  string
	DeliveryBranch  string
	RejectionReason string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (t *Transaction) HasSeller() bool {
	return t.SellerID != ""
}

func (t *Transaction) IsBuyer(actorID string) bool {
	return t.BuyerID == actorID
}

func (t *Transaction) IsSeller(actorID string) bool {
	return t.SellerID != "" && t.SellerID == actorID
}

func (t *Transaction) IsParticipant(actorID string) bool {
	return t.IsBuyer(actorID) || t.IsSeller(actorID)
}

type ProductSubmission struct {
	ID            string
	TransactionID string
	ProductName   string
	Description   string
	Price         float64
	CreatedAt     time.Time
}

type ProductImage struct {
	ID            string
	TransactionID string
	ImageURL      string
	CreatedAt     time.Time
}

type PaymentProof struct {
	ID            string
	TransactionID string
	ProofURL      string
	Amount        float64
	CreatedAt     time.Time
}

type DispatchReceipt struct {
	ID            string
	TransactionID string
	ReceiptURL    string
	CreatedAt     time.Time
}

type TransactionMessage struct {
	ID            string
	TransactionID string
	UserID        string
	Message       string
	CreatedAt     time.Time
}

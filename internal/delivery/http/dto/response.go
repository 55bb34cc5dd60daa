package dto

import (
	"time"

	"github.com/sogolo/sogolo-escrow-service/internal/domain"
)

type TransactionResponse struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	BuyerID         string    `json:"buyer_id"`
	SellerID        string    `json:"seller_id,omitempty"`
	Price           float64   `json:"price,omitempty"`
	Status          string    `json:"status"`
	StatusLabel     string    `json:"status_label"`
	DeliveryMethod  string    `json:"delivery_method,omitempty"`
	DeliveryBranch  string    `json:"delivery_branch,omitempty"`
	RejectionReason string    `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int64                 `json:"total"`
}

type ProductDetailsResponse struct {
	ProductName        string   `json:"product_name"`
	ProductDescription string   `json:"product_description,omitempty"`
	Price              float64  `json:"price"`
	ImageURLs          []string `json:"image_urls"`
}

type PaymentProofResponse struct {
	ProofURL  string    `json:"proof_url"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

type MessageResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type StatsResponse struct {
	Total       int64            `json:"total"`
	ByStatus    map[string]int64 `json:"by_status"`
	TotalAmount float64          `json:"total_amount"`
	ThisMonth   int64            `json:"this_month"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func NewTransactionResponse(tx *domain.Transaction, statusLabel string) TransactionResponse {
	return TransactionResponse{
		ID:              tx.ID,
		Title:           tx.Title,
		Description:     tx.Description,
		BuyerID:         tx.BuyerID,
		SellerID:        tx.SellerID,
		Price:           tx.Price,
		Status:          string(tx.Status),
		StatusLabel:     statusLabel,
		DeliveryMethod:  tx.DeliveryMethod,
		DeliveryBranch:  tx.DeliveryBranch,
		RejectionReason: tx.RejectionReason,
		CreatedAt:       tx.CreatedAt,
		UpdatedAt:       tx.UpdatedAt,
	}
}

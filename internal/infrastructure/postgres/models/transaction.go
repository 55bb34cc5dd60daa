package models

import (
	"time"

	"github.com/sogolo/sogolo-escrow-service/internal/domain"
)

type TransactionModel struct {
	ID              string `gorm:"primaryKey;type:uuid"`
	Title           string `gorm:"not null"`
	Description     string
	BuyerID         string `gorm:"type:uuid;not null;index:idx_buyer"`
	SellerID        string `gorm:"type:uuid;index:idx_seller"`
	Price           float64
	Status          domain.TransactionStatus `gorm:"index:idx_status"`
	DeliveryMethod  string
	DeliveryBranch  string
	RejectionReason string
	CreatedAt       time.Time `gorm:"index:idx_created_at"`
	UpdatedAt       time.Time
}

type ProductSubmissionModel struct {
	ID                 string           `gorm:"primaryKey;type:uuid"`
	TransactionID      string           `gorm:"type:uuid;not null;uniqueIndex"`
	Transaction        TransactionModel `gorm:"foreignKey:TransactionID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	ProductName        string           `gorm:"not null"`
	ProductDescription string
	Price              float64 `gorm:"not null"`
	CreatedAt          time.Time
}

type ProductImageModel struct {
	ID            string `gorm:"primaryKey;type:uuid"`
	TransactionID string `gorm:"type:uuid;not null;index"`
	ImageURL      string `gorm:"not null"`
	CreatedAt     time.Time
}

type PaymentProofModel struct {
	ID            string  `gorm:"primaryKey;type:uuid"`
	TransactionID string  `gorm:"type:uuid;not null;index"`
	ProofURL      string  `gorm:"not null"`
	Amount        float64 `gorm:"not null"`
	CreatedAt     time.Time
}

type DispatchReceiptModel struct {
	ID            string `gorm:"primaryKey;type:uuid"`
	TransactionID string `gorm:"type:uuid;not null;uniqueIndex"`
	ReceiptURL    string `gorm:"not null"`
	CreatedAt     time.Time
}

type TransactionMessageModel struct {
	ID            string `gorm:"primaryKey"`
	TransactionID string `gorm:"type:uuid;not null;index"`
	UserID        string `gorm:"type:uuid;not null"`
	Message       string `gorm:"not null"`
	CreatedAt     time.Time
}

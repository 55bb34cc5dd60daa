package mappers

import (
	"github.com/sogolo/sogolo-escrow-service/internal/domain"
	"github.com/sogolo/sogolo-escrow-service/internal/infrastructure/postgres/models"
)

func ToGORMTransaction(tx *domain.Transaction) *models.TransactionModel {
	return &models.TransactionModel{
		ID:              tx.ID,
		Title:           tx.Title,
		Description:     tx.Description,
		BuyerID:         tx.BuyerID,
		SellerID:        tx.SellerID,
		Price:           tx.Price,
		Status:          tx.Status,
		DeliveryMethod:  tx.DeliveryMethod,
		DeliveryBranch:  tx.DeliveryBranch,
		RejectionReason: tx.RejectionReason,
		CreatedAt:       tx.CreatedAt,
		UpdatedAt:       tx.UpdatedAt,
	}
}

func ToDomainTransaction(model *models.TransactionModel) *domain.Transaction {
	return &domain.Transaction{
		ID:              model.ID,
		Title:           model.Title,
		Description:     model.Description,
		BuyerID:         model.BuyerID,
		SellerID:        model.SellerID,
		Price:           model.Price,
		Status:          model.Status,
		DeliveryMethod:  model.DeliveryMethod,
		DeliveryBranch:  model.DeliveryBranch,
		RejectionReason: model.RejectionReason,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
}

func ToGORMSubmission(sub *domain.ProductSubmission) *models.ProductSubmissionModel {
	return &models.ProductSubmissionModel{
		ID:                 sub.ID,
		TransactionID:      sub.TransactionID,
		ProductName:        sub.ProductName,
		ProductDescription: sub.Description,
		Price:              sub.Price,
		CreatedAt:          sub.CreatedAt,
	}
}

func ToDomainSubmission(model *models.ProductSubmissionModel) *domain.ProductSubmission {
	return &domain.ProductSubmission{
		ID:            model.ID,
		TransactionID: model.TransactionID,
		ProductName:   model.ProductName,
		Description:   model.ProductDescription,
		Price:         model.Price,
		CreatedAt:     model.CreatedAt,
	}
}

func ToGORMImage(img *domain.ProductImage) *models.ProductImageModel {
	return &models.ProductImageModel{
		ID:            img.ID,
		TransactionID: img.TransactionID,
		ImageURL:      img.ImageURL,
		CreatedAt:     img.CreatedAt,
	}
}

func ToDomainImage(model *models.ProductImageModel) *domain.ProductImage {
	return &domain.ProductImage{
		ID:            model.ID,
		TransactionID: model.TransactionID,
		ImageURL:      model.ImageURL,
		CreatedAt:     model.CreatedAt,
	}
}

func ToGORMPaymentProof(proof *domain.PaymentProof) *models.PaymentProofModel {
	return &models.PaymentProofModel{
		ID:            proof.ID,
		TransactionID: proof.TransactionID,
		ProofURL:      proof.ProofURL,
		Amount:        proof.Amount,
		CreatedAt:     proof.CreatedAt,
	}
}

func ToDomainPaymentProof(model *models.PaymentProofModel) *domain.PaymentProof {
	return &domain.PaymentProof{
		ID:            model.ID,
		TransactionID: model.TransactionID,
		ProofURL:      model.ProofURL,
		Amount:        model.Amount,
		CreatedAt:     model.CreatedAt,
	}
}

func ToGORMReceipt(receipt *domain.DispatchReceipt) *models.DispatchReceiptModel {
	return &models.DispatchReceiptModel{
		ID:            receipt.ID,
		TransactionID: receipt.TransactionID,
		ReceiptURL:    receipt.ReceiptURL,
		CreatedAt:     receipt.CreatedAt,
	}
}

func ToDomainReceipt(model *models.DispatchReceiptModel) *domain.DispatchReceipt {
	return &domain.DispatchReceipt{
		ID:            model.ID,
		TransactionID: model.TransactionID,
		ReceiptURL:    model.ReceiptURL,
		CreatedAt:     model.CreatedAt,
	}
}

func ToGORMMessage(msg *domain.TransactionMessage) *models.TransactionMessageModel {
	return &models.TransactionMessageModel{
		ID:            msg.ID,
		TransactionID: msg.TransactionID,
		UserID:        msg.UserID,
		Message:       msg.Message,
		CreatedAt:     msg.CreatedAt,
	}
}

func ToDomainMessage(model *models.TransactionMessageModel) *domain.TransactionMessage {
	return &domain.TransactionMessage{
		ID:            model.ID,
		TransactionID: model.TransactionID,
		UserID:        model.UserID,
		Message:       model.Message,
		CreatedAt:     model.CreatedAt,
	}
}

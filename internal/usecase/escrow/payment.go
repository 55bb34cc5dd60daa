package escrow

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sogolo/sogolo-escrow-service/internal/domain"
	escrowdto "github.com/sogolo/sogolo-escrow-service/internal/usecase/dto/escrow"
)

// UploadPaymentProof stores the buyer's proof file and flips the status to
// payment_uploaded. Allowed from product_approved and from payment_rejected,
// so a rejected payment can be retried with a fresh proof.
func (uc *DefaultEscrowUsecase) UploadPaymentProof(actor domain.Actor, input *escrowdto.UploadPaymentProofInput) error {
	tx, err := uc.loadTransaction(input.TransactionID)
	if err != nil {
		return err
	}

	if !tx.IsBuyer(actor.ID) {
		return domain.ErrForbidden
	}
	if input.Amount <= 0 || len(input.Proof.Data) == 0 {
		return domain.ErrValidationFailed
	}

	url, err := uc.Files.Upload(
		BucketTransactionImages,
		objectPath("payments", tx.ID, input.Proof.Name),
		input.Proof.Data,
		input.Proof.ContentType,
	)
	if err != nil {
		return fmt.Errorf("upload payment proof: %w", err)
	}

	transition := &domain.StatusTransition{
		TransactionID: tx.ID,
		From: []domain.TransactionStatus{
			domain.StatusProductApproved,
			domain.StatusPaymentRejected,
		},
		To: domain.StatusPaymentUploaded,
		PaymentProof: &domain.PaymentProof{
			ID:            uuid.NewString(),
			TransactionID: tx.ID,
			ProofURL:      url,
			Amount:        input.Amount,
			CreatedAt:     time.Now(),
		},
	}
	if err := uc.TxRepo.ApplyTransition(transition); err != nil {
		uc.recordTransitionOutcome("upload_payment_proof", err)
		return err
	}

	uc.recordTransitionOutcome("upload_payment_proof", nil)
	uc.publishStatusEvent(tx, domain.StatusPaymentUploaded)

	return nil
}

func (uc *DefaultEscrowUsecase) VerifyPayment(actor domain.Actor, txID string) error {
	return uc.reviewPayment(actor, txID, domain.StatusPaymentVerified, "verify_payment")
}

func (uc *DefaultEscrowUsecase) RejectPayment(actor domain.Actor, txID string) error {
	return uc.reviewPayment(actor, txID, domain.StatusPaymentRejected, "reject_payment")
}

func (uc *DefaultEscrowUsecase) reviewPayment(actor domain.Actor, txID string, to domain.TransactionStatus, operation string) error {
	tx, err := uc.loadTransaction(txID)
	if err != nil {
		return err
	}

	if !actor.IsAdmin() {
		return domain.ErrForbidden
	}

	transition := &domain.StatusTransition{
		TransactionID: tx.ID,
		From:          []domain.TransactionStatus{domain.StatusPaymentUploaded},
		To:            to,
	}
	if err := uc.TxRepo.ApplyTransition(transition); err != nil {
		uc.recordTransitionOutcome(operation, err)
		return err
	}

	uc.recordTransitionOutcome(operation, nil)
	uc.publishStatusEvent(tx, to)

	return nil
}

package escrow

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sogolo/sogolo-escrow-service/internal/domain"
	escrowdto "github.com/sogolo/sogolo-escrow-service/internal/usecase/dto/escrow"
)

// SetDeliveryDetails records how the product will travel. Status-independent:
// delivery fields may be set or corrected at any point before dispatch.
func (uc *DefaultEscrowUsecase) SetDeliveryDetails(actor domain.Actor, input *escrowdto.SetDeliveryDetailsInput) error {
	tx, err := uc.loadTransaction(input.TransactionID)
	if err != nil {
		return err
	}

	if !actor.IsAdmin() && !tx.IsSeller(actor.ID) {
		return domain.ErrForbidden
	}
	if strings.TrimSpace(input.DeliveryMethod) == "" {
		return domain.ErrValidationFailed
	}

	return uc.TxRepo.SetDeliveryDetails(tx.ID, input.DeliveryMethod, input.DeliveryBranch)
}

// Dispatch uploads the receipt, records it and moves the transaction to
// dispatched, conditional on the payment having been verified.
func (uc *DefaultEscrowUsecase) Dispatch(actor domain.Actor, input *escrowdto.DispatchInput) error {
	tx, err := uc.loadTransaction(input.TransactionID)
	if err != nil {
		return err
	}

	if !actor.IsAdmin() && !tx.IsSeller(actor.ID) {
		return domain.ErrForbidden
	}
	if len(input.Receipt.Data) == 0 {
		return domain.ErrValidationFailed
	}

	url, err := uc.Files.Upload(
		BucketTransactionReceipts,
		objectPath("", tx.ID, input.Receipt.Name),
		input.Receipt.Data,
		input.Receipt.ContentType,
	)
	if err != nil {
		return fmt.Errorf("upload dispatch receipt: %w", err)
	}

	transition := &domain.StatusTransition{
		TransactionID: tx.ID,
		From:          []domain.TransactionStatus{domain.StatusPaymentVerified},
		To:            domain.StatusDispatched,
		Receipt: &domain.DispatchReceipt{
			ID:            uuid.NewString(),
			TransactionID: tx.ID,
			ReceiptURL:    url,
			CreatedAt:     time.Now(),
		},
	}
	if err := uc.TxRepo.ApplyTransition(transition); err != nil {
		uc.recordTransitionOutcome("dispatch", err)
		return err
	}

	uc.recordTransitionOutcome("dispatch", nil)
	uc.publishStatusEvent(tx, domain.StatusDispatched)

	return nil
}

func (uc *DefaultEscrowUsecase) MarkDelivered(actor domain.Actor, txID string) error {
	tx, err := uc.loadTransaction(txID)
	if err != nil {
		return err
	}

	if !actor.IsAdmin() && !tx.IsSeller(actor.ID) {
		return domain.ErrForbidden
	}

	transition := &domain.StatusTransition{
		TransactionID: tx.ID,
		From:          []domain.TransactionStatus{domain.StatusDispatched},
		To:            domain.StatusProductDelivered,
	}
	if err := uc.TxRepo.ApplyTransition(transition); err != nil {
		uc.recordTransitionOutcome("mark_delivered", err)
		return err
	}

	uc.recordTransitionOutcome("mark_delivered", nil)
	uc.publishStatusEvent(tx, domain.StatusProductDelivered)

	return nil
}

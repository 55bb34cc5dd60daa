package escrow

import (
	"github.com/sogolo/sogolo-escrow-service/internal/domain"
)

func (uc *DefaultEscrowUsecase) ApproveProduct(actor domain.Actor, txID string) error {
	tx, err := uc.loadTransaction(txID)
	if err != nil {
		return err
	}

	if !tx.IsBuyer(actor.ID) {
		return domain.ErrForbidden
	}

	transition := &domain.StatusTransition{
		TransactionID: tx.ID,
		From:          []domain.TransactionStatus{domain.StatusProductSubmitted},
		To:            domain.StatusProductApproved,
	}
	if err := uc.TxRepo.ApplyTransition(transition); err != nil {
		uc.recordTransitionOutcome("approve_product", err)
		return err
	}

	uc.recordTransitionOutcome("approve_product", nil)
	uc.publishStatusEvent(tx, domain.StatusProductApproved)

	return nil
}

// RejectProduct is terminal: the buyer declined the offer and the
// transaction does not reset to created.
func (uc *DefaultEscrowUsecase) RejectProduct(actor domain.Actor, txID, reason string) error {
	tx, err := uc.loadTransaction(txID)
	if err != nil {
		return err
	}

	if !tx.IsBuyer(actor.ID) {
		return domain.ErrForbidden
	}

	transition := &domain.StatusTransition{
		TransactionID: tx.ID,
		From:          []domain.TransactionStatus{domain.StatusProductSubmitted},
		To:            domain.StatusRejected,
		SetReason:     &reason,
	}
	if err := uc.TxRepo.ApplyTransition(transition); err != nil {
		uc.recordTransitionOutcome("reject_product", err)
		return err
	}

	uc.recordTransitionOutcome("reject_product", nil)
	uc.publishStatusEvent(tx, domain.StatusRejected)

	return nil
}

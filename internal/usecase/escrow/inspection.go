package escrow

import (
	"github.com/sogolo/sogolo-escrow-service/internal/domain"
)

func (uc *DefaultEscrowUsecase) PassInspection(actor domain.Actor, txID string) error {
	return uc.inspect(actor, txID, domain.StatusInspectionPassed, "pass_inspection")
}

func (uc *DefaultEscrowUsecase) FailInspection(actor domain.Actor, txID string) error {
	return uc.inspect(actor, txID, domain.StatusInspectionFailed, "fail_inspection")
}

func (uc *DefaultEscrowUsecase) inspect(actor domain.Actor, txID string, to domain.TransactionStatus, operation string) error {
	tx, err := uc.loadTransaction(txID)
	if err != nil {
		return err
	}

	if !actor.IsAdmin() && !tx.IsBuyer(actor.ID) {
		return domain.ErrForbidden
	}

	transition := &domain.StatusTransition{
		TransactionID: tx.ID,
		From:          []domain.TransactionStatus{domain.StatusProductDelivered},
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

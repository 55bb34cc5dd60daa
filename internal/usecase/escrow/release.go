package escrow

import (
	"github.com/sogolo/sogolo-escrow-service/internal/domain"
)

// ReleaseFunds is the final transition. Reachable only after the inspection
// passed, which in turn requires the full delivery path; the conditional
// update makes skipping any predecessor impossible.
func (uc *DefaultEscrowUsecase) ReleaseFunds(actor domain.Actor, txID string) error {
	tx, err := uc.loadTransaction(txID)
	if err != nil {
		return err
	}

	if !actor.IsAdmin() {
		return domain.ErrForbidden
	}

	transition := &domain.StatusTransition{
		TransactionID: tx.ID,
		From:          []domain.TransactionStatus{domain.StatusInspectionPassed},
		To:            domain.StatusFundsReleased,
	}
	if err := uc.TxRepo.ApplyTransition(transition); err != nil {
		uc.recordTransitionOutcome("release_funds", err)
		return err
	}

	uc.recordTransitionOutcome("release_funds", nil)
	uc.recordFundsReleased(tx)
	uc.publishStatusEvent(tx, domain.StatusFundsReleased)

	return nil
}

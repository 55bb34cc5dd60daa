package escrow

import (
	"github.com/sogolo/sogolo-escrow-service/internal/domain"
)

// JoinTransaction claims the seller slot. The slot is claimed at most once:
// the conditional write in the repository guarantees that two concurrent
// joins cannot both succeed, and the loser observes ErrConflict.
func (uc *DefaultEscrowUsecase) JoinTransaction(actor domain.Actor, txID string) error {
	tx, err := uc.loadTransaction(txID)
	if err != nil {
		return err
	}

	// A buyer cannot take the seller side of their own transaction.
	if tx.IsBuyer(actor.ID) {
		return domain.ErrForbidden
	}

	if err := uc.TxRepo.ClaimSeller(txID, actor.ID); err != nil {
		uc.recordTransitionOutcome("join", err)
		return err
	}

	tx.SellerID = actor.ID
	uc.recordTransitionOutcome("join", nil)
	uc.publishStatusEvent(tx, tx.Status)

	return nil
}

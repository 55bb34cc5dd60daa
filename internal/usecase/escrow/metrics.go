package escrow

import (
	"errors"

	"github.com/sogolo/sogolo-escrow-service/internal/domain"
)

func (uc *DefaultEscrowUsecase) recordTransactionCreated() {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.TransactionsCreatedTotal.Inc()
}

func (uc *DefaultEscrowUsecase) recordTransitionOutcome(operation string, err error) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.TransitionsTotal.WithLabelValues(operation, transitionOutcome(err)).Inc()
}

func (uc *DefaultEscrowUsecase) recordFundsReleased(tx *domain.Transaction) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.FundsReleasedTotal.Inc()
	uc.Metrics.FundsReleasedAmountTotal.Add(tx.Price)
}

func (uc *DefaultEscrowUsecase) recordStuckTransactions(count int) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.StuckTransactionsGauge.Set(float64(count))
}

func transitionOutcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrForbidden):
		return "forbidden"
	case errors.Is(err, domain.ErrInvalidState):
		return "invalid_state"
	case errors.Is(err, domain.ErrConflict):
		return "conflict"
	default:
		return "error"
	}
}

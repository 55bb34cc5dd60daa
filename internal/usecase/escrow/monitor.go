package escrow

import (
	"context"
	"log/slog"
	"time"
)

const (
	stuckCheckInterval = 10 * time.Minute
	stuckThreshold     = 72 * time.Hour
)

// StartStuckTransactionsMonitor periodically logs non-terminal transactions
// that have not moved in a long time, so support can chase the blocking
// party. It never mutates anything: the engine has no auto-cancel.
func (uc *DefaultEscrowUsecase) StartStuckTransactionsMonitor(ctx context.Context) {
	ticker := time.NewTicker(stuckCheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			stale, err := uc.TxRepo.FindStaleTransactions(time.Now().Add(-stuckThreshold))
			if err != nil {
				slog.Error("stuck transactions check failed", "error", err.Error())
				continue
			}
			for _, tx := range stale {
				slog.Warn("transaction stuck",
					"transaction_id", tx.ID,
					"status", tx.Status,
					"updated_at", tx.UpdatedAt,
				)
			}
			uc.recordStuckTransactions(len(stale))
		}
	}
}

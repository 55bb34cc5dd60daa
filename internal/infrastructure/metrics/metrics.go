package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// EscrowMetrics holds the prometheus instruments for the transaction engine.
type EscrowMetrics struct {
	TransactionsCreatedTotal prometheus.Counter

	// One series per lifecycle operation, labeled by outcome
	// (ok, forbidden, invalid_state, conflict, error).
	TransitionsTotal prometheus.CounterVec

	FundsReleasedTotal       prometheus.Counter
	FundsReleasedAmountTotal prometheus.Counter

	StuckTransactionsGauge prometheus.Gauge
}

func NewEscrowMetrics() *EscrowMetrics {
	return &EscrowMetrics{
		TransactionsCreatedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "escrow_transactions_created_total",
				Help: "Total number of escrow transactions created",
			},
		),

		TransitionsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "escrow_transitions_total",
				Help: "Lifecycle transition attempts by operation and outcome",
			},
			[]string{"operation", "outcome"},
		),

		FundsReleasedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "escrow_funds_released_total",
				Help: "Total number of transactions whose funds were released",
			},
		),

		FundsReleasedAmountTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "escrow_funds_released_amount_total",
				Help: "Total amount released to sellers",
			},
		),

		StuckTransactionsGauge: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "escrow_stuck_transactions",
				Help: "Non-terminal transactions with no movement past the stuck threshold",
			},
		),
	}
}

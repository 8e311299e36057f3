package reconcile

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels
const (
	outcomeSettled          = "settled"
	outcomeAlreadyProcessed = "already_processed"
	outcomeNotConfirmed     = "not_confirmed"
	outcomeOracleDown       = "oracle_unavailable"
	outcomeConflict         = "conflict"
	outcomeInvariant        = "invariant_violation"
	outcomeRejected         = "rejected"
	outcomeError            = "error"
)

var (
	reconciliationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dreambox_reconciliations_total",
		Help: "Reconciliation attempts, labeled by outcome and target account kind",
	}, []string{"outcome", "target_kind"})

	amountMismatchTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dreambox_oracle_amount_mismatch_total",
		Help: "Verified payments whose oracle amount differs from the recorded deposit amount",
	})

	settleAttempts = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "dreambox_settlement_attempts",
		Help:    "Transaction attempts needed per settlement",
		Buckets: []float64{1, 2, 3, 5, 8},
	})
)

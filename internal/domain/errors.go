package domain

import "errors"

// Validation errors. These surface directly to the caller and never touch the ledger.
var (
	ErrInvalidAmount            = errors.New("invalid amount: must be positive")
	ErrInvalidAccountKind       = errors.New("invalid account type: must be 'flexi', 'emergency', or 'safelock'")
	ErrInvalidGoal              = errors.New("invalid goal")
	ErrGoalNotFound             = errors.New("goal not found")
	ErrEmergencySplitNotEnabled = errors.New("this goal does not have emergency fund enabled")
	ErrCheckoutRejected         = errors.New("failed to initialize payment")
)

// Lookup errors
var (
	ErrIntentNotFound     = errors.New("transaction not found")
	ErrAccountNotFound    = errors.New("account not found")
	ErrDuplicateReference = errors.New("deposit reference already exists")
)

// Reconciliation errors. The first three are retryable: the intent is left
// untouched and the caller may try again later.
var (
	ErrPaymentNotConfirmed  = errors.New("transaction not successful yet")
	ErrOracleUnavailable    = errors.New("payment verification unavailable")
	ErrConcurrentSettlement = errors.New("concurrent settlement conflict")
	ErrAmountMismatch       = errors.New("verified amount does not match deposit amount")

	// ErrInvariantViolation signals that a uniqueness or atomicity guarantee
	// of the ledger has been broken. It is never recoverable.
	ErrInvariantViolation = errors.New("ledger invariant violation")
)

// IsRetryable reports whether err leaves the intent pending and may succeed on a later attempt.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrPaymentNotConfirmed) ||
		errors.Is(err, ErrOracleUnavailable) ||
		errors.Is(err, ErrConcurrentSettlement)
}

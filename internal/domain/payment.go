package domain

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentStatus is the oracle's verdict on an external payment
type PaymentStatus string

const (
	PaymentStatusSuccess PaymentStatus = "success"
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// Verification is the oracle's answer for one reference.
// Status is ground truth; Amount is informational.
type Verification struct {
	Reference string
	Status    PaymentStatus
	Amount    decimal.Decimal
}

// CheckoutMetadata travels with the checkout so the provider can echo it back
type CheckoutMetadata struct {
	TargetKind AccountKind `json:"account_type"`
	GoalID     *uuid.UUID  `json:"goal_id,omitempty"`
	OwnerID    uuid.UUID   `json:"user_id"`
}

// CheckoutRequest asks the provider to open a checkout for a deposit
type CheckoutRequest struct {
	Email     string
	Amount    decimal.Decimal
	Reference string
	Metadata  CheckoutMetadata
}

// CheckoutSession is the provider's answer to a checkout request
type CheckoutSession struct {
	CheckoutURL string
	Reference   string
}

// PaymentVerifier is the verification oracle
type PaymentVerifier interface {
	// Verify returns the payment status for reference.
	// Transport failures and timeouts are reported as ErrOracleUnavailable.
	Verify(ctx context.Context, reference string) (*Verification, error)
}

// CheckoutInitiator opens external checkouts
type CheckoutInitiator interface {
	Initiate(ctx context.Context, req CheckoutRequest) (*CheckoutSession, error)
}

package postgres

import (
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/simaogato/dreambox-backend/internal/domain"
)

// PostgreSQL error codes the ledger reacts to
const (
	codeUniqueViolation      = "23505"
	codeCheckViolation       = "23514"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	codeLockNotAvailable     = "55P03" // lock_timeout expired
)

// mapError translates driver errors into domain errors, keeping the original in the chain
func mapError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}

	switch pqErr.Code {
	case codeSerializationFailure, codeDeadlockDetected, codeLockNotAvailable:
		return fmt.Errorf("%w: %w", domain.ErrConcurrentSettlement, err)
	case codeUniqueViolation:
		return fmt.Errorf("%w: %w", domain.ErrDuplicateReference, err)
	case codeCheckViolation:
		return fmt.Errorf("%w: constraint %s: %w", domain.ErrInvariantViolation, pqErr.Constraint, err)
	default:
		return err
	}
}

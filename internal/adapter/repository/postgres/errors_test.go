package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"github.com/simaogato/dreambox-backend/internal/domain"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		code pq.ErrorCode
		want error
	}{
		{name: "Deadlock", code: "40P01", want: domain.ErrConcurrentSettlement},
		{name: "Serialization failure", code: "40001", want: domain.ErrConcurrentSettlement},
		{name: "Lock timeout", code: "55P03", want: domain.ErrConcurrentSettlement},
		{name: "Unique violation", code: "23505", want: domain.ErrDuplicateReference},
		{name: "Check violation", code: "23514", want: domain.ErrInvariantViolation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pqErr := &pq.Error{Code: tt.code}
			err := mapError(fmt.Errorf("failed to credit: %w", pqErr))

			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, pqErr, "driver error must stay in the chain")
		})
	}
}

func TestMapError_PassesThroughOtherErrors(t *testing.T) {
	plain := errors.New("connection refused")
	assert.Same(t, plain, mapError(plain))

	other := &pq.Error{Code: "42P01"}
	assert.Equal(t, error(other), mapError(other))
	assert.False(t, domain.IsRetryable(mapError(other)))
}

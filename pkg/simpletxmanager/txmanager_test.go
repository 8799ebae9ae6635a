package simpletxmanager

import (
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

// Ошибка commit оборачивается так же, как в run: цепочка должна
// сохранять исходную ошибку Postgres, иначе повтор по 40001 не сработает
func TestIsRetryable_WrappedCommitError(t *testing.T) {
	tests := []struct {
		name string
		code pq.ErrorCode
		want bool
	}{
		{name: "serialization failure", code: "40001", want: true},
		{name: "deadlock detected", code: "40P01", want: true},
		{name: "unique violation", code: "23505", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := fmt.Errorf("%w: commit: %w", ErrTxFailed, &pq.Error{Code: tt.code})
			assert.Equal(t, tt.want, isRetryable(err))
			assert.ErrorIs(t, err, ErrTxFailed)
		})
	}
}

func TestIsRetryable_NonPqError(t *testing.T) {
	err := fmt.Errorf("%w: commit: %w", ErrTxFailed, fmt.Errorf("driver: bad connection"))
	assert.False(t, isRetryable(err))
}

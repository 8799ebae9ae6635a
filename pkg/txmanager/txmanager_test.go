package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/UKC-FacilityService/pkg/dbmetrics"
)

// fakeTx управляемый TxExecutor: ошибки commit задаются очередью
type fakeTx struct {
	commitErrs *[]error
	rollbacks  *int
}

func (t *fakeTx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return nil
}

func (t *fakeTx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (t *fakeTx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return nil, nil
}

func (t *fakeTx) Commit() error {
	if len(*t.commitErrs) == 0 {
		return nil
	}
	err := (*t.commitErrs)[0]
	*t.commitErrs = (*t.commitErrs)[1:]
	return err
}

func (t *fakeTx) Rollback() error {
	*t.rollbacks++
	return nil
}

type fakeTxBeginner struct {
	commitErrs []error
	begins     int
	rollbacks  int
	beginErr   error
}

func (b *fakeTxBeginner) BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	b.begins++
	if b.beginErr != nil {
		return nil, b.beginErr
	}
	return &fakeTx{commitErrs: &b.commitErrs, rollbacks: &b.rollbacks}, nil
}

func serializationFailure() *pq.Error {
	return &pq.Error{Code: "40001", Message: "could not serialize access"}
}

func TestDoSerializable_RetriesCommitTimeSerializationFailure(t *testing.T) {
	db := &fakeTxBeginner{
		commitErrs: []error{serializationFailure(), serializationFailure()},
	}
	m := NewTransactionManager(db)

	calls := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, db.begins)
	assert.Equal(t, 3, calls)
}

func TestDoSerializable_RetriesDeadlockAtCommit(t *testing.T) {
	db := &fakeTxBeginner{
		commitErrs: []error{&pq.Error{Code: "40P01", Message: "deadlock detected"}},
	}
	m := NewTransactionManager(db)

	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 2, db.begins)
}

func TestDoSerializable_GivesUpAfterMaxRetries(t *testing.T) {
	db := &fakeTxBeginner{
		commitErrs: []error{serializationFailure(), serializationFailure(), serializationFailure()},
	}
	m := NewTransactionManager(db)

	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		return nil
	})

	assert.Error(t, err)
	assert.Equal(t, maxSerializableRetries, db.begins)
	assert.ErrorIs(t, err, ErrTxFailed)

	// Исходная ошибка Postgres остается доступной через цепочку
	var pqErr *pq.Error
	assert.ErrorAs(t, err, &pqErr)
	assert.Equal(t, pq.ErrorCode("40001"), pqErr.Code)
}

func TestDoSerializable_NonRetryableCommitErrorReturnsImmediately(t *testing.T) {
	db := &fakeTxBeginner{
		commitErrs: []error{&pq.Error{Code: "23505", Message: "duplicate key"}},
	}
	m := NewTransactionManager(db)

	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		return nil
	})

	assert.ErrorIs(t, err, ErrTxFailed)
	assert.Equal(t, 1, db.begins)
}

func TestDoSerializable_RetriesFnSerializationFailure(t *testing.T) {
	db := &fakeTxBeginner{}
	m := NewTransactionManager(db)

	calls := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		if calls == 1 {
			return serializationFailure()
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, 1, db.rollbacks)
}

func TestDoSerializable_FnErrorNotRetried(t *testing.T) {
	db := &fakeTxBeginner{}
	m := NewTransactionManager(db)

	wantErr := errors.New("business rule violated")
	calls := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		return wantErr
	})

	assert.ErrorIs(t, err, wantErr)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, db.rollbacks)
}

func TestDo_BeginErrorWrapped(t *testing.T) {
	db := &fakeTxBeginner{beginErr: errors.New("connection refused")}
	m := NewTransactionManager(db)

	err := m.Do(context.Background(), func(ctx context.Context) error {
		t.Fatal("fn must not run when begin fails")
		return nil
	})

	assert.ErrorIs(t, err, ErrTxFailed)
}

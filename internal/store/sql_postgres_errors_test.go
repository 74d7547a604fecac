// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: NonRetryable},
		{name: "plain error", err: errors.New("boom"), want: NonRetryable},
		{name: "connection failure", err: &pgconn.PgError{Code: pgerrcode.ConnectionFailure}, want: Retryable},
		{name: "serialization failure", err: &pgconn.PgError{Code: pgerrcode.SerializationFailure}, want: Retryable},
		{name: "deadlock", err: &pgconn.PgError{Code: pgerrcode.DeadlockDetected}, want: Retryable},
		{name: "cannot connect now", err: &pgconn.PgError{Code: pgerrcode.CannotConnectNow}, want: Retryable},
		{name: "not null violation", err: &pgconn.PgError{Code: pgerrcode.NotNullViolation}, want: NonRetryable},
		{name: "undefined function", err: &pgconn.PgError{Code: pgerrcode.UndefinedFunction}, want: NonRetryable},
		{name: "raise exception", err: &pgconn.PgError{Code: pgerrcode.RaiseException}, want: NonRetryable},
		{name: "wrapped pg error", err: fmt.Errorf("ctx: %w", &pgconn.PgError{Code: pgerrcode.DeadlockDetected}), want: Retryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestNewFailure(t *testing.T) {
	pgErr := &pgconn.PgError{
		Severity: "ERROR",
		Code:     pgerrcode.RaiseException,
		Message:  "Trail name must not be empty",
	}

	f := newFailure(pgErr, NewPostgresErrorClassifier())

	assert.Equal(t, pgerrcode.RaiseException, f.Code)
	assert.Contains(t, f.Detail, "Trail name must not be empty")
	assert.False(t, f.Retryable)
	assert.ErrorIs(t, f, ErrDatabaseFailure)
	assert.ErrorIs(t, f, pgErr)
	assert.Equal(t, "database failure: "+f.Detail, f.Error())
}

func TestAsFailure(t *testing.T) {
	_, ok := AsFailure(errors.New("x"))
	assert.False(t, ok)

	wrapped := fmt.Errorf("repo: %w", newFailure(errors.New("boom"), NewPostgresErrorClassifier()))
	f, ok := AsFailure(wrapped)
	assert.True(t, ok)
	assert.Equal(t, "boom", f.Detail)
}

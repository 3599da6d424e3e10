package errors

import (
	"context"
	stderrs "errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE values the stores react to
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
	pgInvalidText         = "22P02"
	pgSerialization       = "40001"
	pgDeadlock            = "40P01"
	pgCannotConnectNow    = "57P03"
)

// PgError returns the *pgconn.PgError somewhere in err's chain
func PgError(err error) (*pgconn.PgError, bool) {
	var pe *pgconn.PgError
	if stderrs.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// IsDuplicateKey reports a unique constraint violation
func IsDuplicateKey(err error) bool { return sqlState(err) == pgUniqueViolation }

func sqlState(err error) string {
	if pe, ok := PgError(err); ok {
		return pe.Code
	}
	return ""
}

// dbCode classifies a database error. pgx.ErrNoRows maps to NotFound.
func dbCode(err error) ErrorCode {
	if stderrs.Is(err, pgx.ErrNoRows) {
		return ErrorCodeNotFound
	}
	switch sqlState(err) {
	case pgUniqueViolation:
		return ErrorCodeDuplicateKey
	case pgForeignKeyViolation, pgInvalidText:
		return ErrorCodeInvalidArgument
	case pgNotNullViolation, pgCheckViolation:
		return ErrorCodeValidation
	case pgCannotConnectNow:
		return ErrorCodeUnavailable
	default:
		return ErrorCodeDB
	}
}

// FromPostgres wraps a driver error with a mapped code and the constraint column as field; nil stays nil
func FromPostgres(err error, msg string) error {
	if err == nil {
		return nil
	}
	e := &Error{code: dbCode(err), msg: msg, orig: err}
	if pe, ok := PgError(err); ok {
		e.field = pe.ColumnName
	}
	return e
}

// FromPostgresf is FromPostgres with a formatted message
func FromPostgresf(err error, format string, a ...any) error {
	return FromPostgres(err, fmt.Sprintf(format, a...))
}

// IsRetryable reports contention errors worth one more attempt. Context errors never are.
func IsRetryable(err error) bool {
	if err == nil || stderrs.Is(err, context.Canceled) || stderrs.Is(err, context.DeadlineExceeded) {
		return false
	}
	switch sqlState(err) {
	case pgSerialization, pgDeadlock:
		return true
	}
	return false
}

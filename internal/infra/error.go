package infra

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"storefront-engine/internal/pkg/errs"
)

type CallErrorKind string

// CallError is a classified failure of a call to the remote storefront API.
type CallError struct {
	Kind   CallErrorKind
	Status int
	Code   string
	msg    string
	err    error // wrapped low-level error
}

func (e CallError) Error() string {
	s := string(e.Kind) + ": " + e.msg
	if e.Status != 0 {
		s += fmt.Sprintf(" (status %d)", e.Status)
	}
	if e.err != nil {
		s += ": " + e.err.Error()
	}
	return s
}

func (e CallError) Unwrap() error {
	return e.err
}

// WrapCallErr logs the failure and returns a CallError marked with the errs
// sentinel for its kind, so callers outside infra can classify it with errs.Is.
func WrapCallErr(slogger *slog.Logger, kind CallErrorKind, status int, code, msg string, err error) error {
	logArgs := []any{
		slog.String("kind", string(kind)),
	}
	if status != 0 {
		logArgs = append(logArgs, slog.Int("status", status))
	}
	if code != "" {
		logArgs = append(logArgs, slog.String("code", code))
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("error", err.Error()))
	}

	level := slog.LevelWarn
	if kind == KindNetwork || kind == KindServiceUnavailable {
		level = slog.LevelError
	}
	slogger.Log(context.Background(), level, "Store API error: "+msg, logArgs...)

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return errs.Mark(CallError{Kind: kind, Status: status, Code: code, msg: msg, err: err}, kind.Sentinel())
}

func IsKind(err error, kind CallErrorKind) bool {
	var e CallError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Sentinel maps a kind to the errs marker the use case layer matches on.
func (k CallErrorKind) Sentinel() error {
	switch k {
	case KindInsufficientStock:
		return errs.ErrInsufficientStock
	case KindUnauthorized:
		return errs.ErrUnauthorized
	case KindNotFound:
		return errs.ErrItemNotFound
	case KindRejected:
		return errs.ErrRequestRejected
	case KindNetwork:
		return errs.ErrNetwork
	default:
		return errs.ErrServiceUnavailable
	}
}

// Client-visible failure kinds
const (
	KindInsufficientStock  CallErrorKind = "INSUFFICIENT_STOCK"
	KindUnauthorized       CallErrorKind = "UNAUTHORIZED"
	KindNotFound           CallErrorKind = "NOT_FOUND"
	KindRejected           CallErrorKind = "REJECTED"
	KindServiceUnavailable CallErrorKind = "SERVICE_UNAVAILABLE"
	KindNetwork            CallErrorKind = "NETWORK"
)

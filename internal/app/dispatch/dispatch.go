// Package dispatch runs the validate, call, wrap sequence shared by every
// server action.
package dispatch

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"lexiq/internal/app/envelope"
	"lexiq/internal/app/ports"
	"lexiq/internal/app/validation"
)

type Deps struct {
	Logger    *zap.Logger
	Metrics   ports.DispatchMetrics
	Validator *validation.Validator
}

// Operation names a dispatcher and the user-facing texts for its outcomes.
type Operation struct {
	Name     string
	Success  string
	Failure  string
	NotFound string
	Conflict string
	// ExposeErrorText puts the collaborator's error text in the envelope
	// instead of Failure.
	ExposeErrorText bool
}

// Run validates in, then calls call exactly once when validation passes.
func Run[In, Out any](ctx context.Context, d Deps, op Operation, in In, call func(context.Context, In) (Out, error)) envelope.State[Out] {
	if errs := d.Validate(in); len(errs) > 0 {
		d.recordInvalid(op)
		return envelope.Invalid[Out](errs)
	}
	out, err := call(ctx, in)
	if err != nil {
		return Failure[Out](d, op, err)
	}
	return Success(d, op, out)
}

var (
	fallbackOnce      sync.Once
	fallbackValidator *validation.Validator
)

// Validate checks in with d.Validator, or with a shared default validator
// when none is configured. Input is never passed through unchecked.
func (d Deps) Validate(in any) map[string][]string {
	v := d.Validator
	if v == nil {
		fallbackOnce.Do(func() { fallbackValidator = validation.MustNew() })
		v = fallbackValidator
	}
	return v.Validate(in)
}

// Invalid records a validation failure for op and returns its envelope.
func Invalid[Out any](d Deps, op Operation, errs map[string][]string) envelope.State[Out] {
	d.recordInvalid(op)
	return envelope.Invalid[Out](errs)
}

func Success[Out any](d Deps, op Operation, out Out) envelope.State[Out] {
	if d.Metrics != nil {
		d.Metrics.RecordSuccess(op.Name)
	}
	return envelope.OK(out, op.Success)
}

// Failure logs err and maps it onto the envelope codes.
func Failure[Out any](d Deps, op Operation, err error) envelope.State[Out] {
	d.logger().Error("dispatch failed", zap.String("operation", op.Name), zap.Error(err))
	if d.Metrics != nil {
		d.Metrics.RecordFailure(op.Name)
	}

	switch {
	case errors.Is(err, ports.ErrPermissionDenied):
		return envelope.Unauthenticated[Out]()
	case errors.Is(err, ports.ErrNotFound) && op.NotFound != "":
		return envelope.Fail[Out](envelope.CodeNotFound, op.NotFound)
	case errors.Is(err, ports.ErrConflict) && op.Conflict != "":
		return envelope.Fail[Out](envelope.CodeConflict, op.Conflict)
	case op.ExposeErrorText:
		return envelope.Fail[Out](envelope.CodeFailed, err.Error())
	default:
		return envelope.Fail[Out](envelope.CodeFailed, op.Failure)
	}
}

func (d Deps) recordInvalid(op Operation) {
	if d.Metrics != nil {
		d.Metrics.RecordInvalid(op.Name)
	}
}

func (d Deps) logger() *zap.Logger {
	if d.Logger == nil {
		return zap.NewNop()
	}
	return d.Logger
}

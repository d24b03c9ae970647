package errors

import (
	"errors"
	"fmt"
	"time"
)

// MalformedRequestError is returned when a request body cannot be used.
type MalformedRequestError struct {
	Reason string
}

func NewMalformedRequestError(reason string) *MalformedRequestError {
	return &MalformedRequestError{Reason: reason}
}

func (e *MalformedRequestError) Error() string {
	return e.Reason
}

func IsMalformedRequestError(err error) bool {
	var e *MalformedRequestError
	return errors.As(err, &e)
}

// UpstreamError is returned when a third-party API answers with a non-success status.
type UpstreamError struct {
	Upstream   string
	StatusCode int
	Body       string
}

func NewUpstreamError(upstream string, statusCode int, body string) *UpstreamError {
	return &UpstreamError{Upstream: upstream, StatusCode: statusCode, Body: body}
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s API error: %d", e.Upstream, e.StatusCode)
}

func IsUpstreamError(err error) bool {
	var e *UpstreamError
	return errors.As(err, &e)
}

// NoRatesError is returned when the rates API answered but offered nothing.
type NoRatesError struct{}

func NewNoRatesError() *NoRatesError {
	return &NoRatesError{}
}

func (e *NoRatesError) Error() string {
	return "No shipping rates available"
}

func IsNoRatesError(err error) bool {
	var e *NoRatesError
	return errors.As(err, &e)
}

// ServiceNotReadyError names the first service whose health endpoint never succeeded.
type ServiceNotReadyError struct {
	Service  string
	Attempts int
	Elapsed  time.Duration
	Err      error
}

func NewServiceNotReadyError(service string, attempts int, elapsed time.Duration, err error) *ServiceNotReadyError {
	return &ServiceNotReadyError{Service: service, Attempts: attempts, Elapsed: elapsed, Err: err}
}

func (e *ServiceNotReadyError) Error() string {
	return fmt.Sprintf("%s service failed to become healthy after %d attempts (%s): %v", e.Service, e.Attempts, e.Elapsed.Round(time.Millisecond), e.Err)
}

func (e *ServiceNotReadyError) Unwrap() error {
	return e.Err
}

func IsServiceNotReadyError(err error) bool {
	var e *ServiceNotReadyError
	return errors.As(err, &e)
}

// UnexpectedStatusError is returned by a verification step whose status code is
// outside the step's acceptable set.
type UnexpectedStatusError struct {
	Step string
	Got  int
	Want string
}

func NewUnexpectedStatusError(step string, got int, want string) *UnexpectedStatusError {
	return &UnexpectedStatusError{Step: step, Got: got, Want: want}
}

func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d, want one of %s", e.Step, e.Got, e.Want)
}

func IsUnexpectedStatusError(err error) bool {
	var e *UnexpectedStatusError
	return errors.As(err, &e)
}

// MissingTokenError is returned when a login response carries no usable token field.
type MissingTokenError struct {
	Fields []string
}

func NewMissingTokenError(fields ...string) *MissingTokenError {
	return &MissingTokenError{Fields: fields}
}

func (e *MissingTokenError) Error() string {
	return fmt.Sprintf("login response has none of the token fields %v", e.Fields)
}

func IsMissingTokenError(err error) bool {
	var e *MissingTokenError
	return errors.As(err, &e)
}

// SmokeStepError wraps the failure of one step of the catalog smoke test.
type SmokeStepError struct {
	Step string
	Err  error
}

func NewSmokeStepError(step string, err error) *SmokeStepError {
	return &SmokeStepError{Step: step, Err: err}
}

func (e *SmokeStepError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Step, e.Err)
}

func (e *SmokeStepError) Unwrap() error {
	return e.Err
}

func IsSmokeStepError(err error) bool {
	var e *SmokeStepError
	return errors.As(err, &e)
}

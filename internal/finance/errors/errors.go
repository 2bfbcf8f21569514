package errors

import (
	"errors"
)

type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func NewValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}

func IsValidationError(err error) bool {
	var validationError *ValidationError
	ok := errors.As(err, &validationError)
	return ok
}

type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string {
	return e.Msg
}

func NewNotFoundError(msg string) error {
	return &NotFoundError{Msg: msg}
}

func IsNotFoundError(err error) bool {
	var notFoundError *NotFoundError
	ok := errors.As(err, &notFoundError)
	return ok
}

type UnauthorizedError struct {
	Msg string
}

func (e *UnauthorizedError) Error() string {
	return e.Msg
}

func NewUnauthorizedError(msg string) error {
	return &UnauthorizedError{Msg: msg}
}

func IsUnauthorizedError(err error) bool {
	var unauthorizedError *UnauthorizedError
	ok := errors.As(err, &unauthorizedError)
	return ok
}

type ExternalServiceError struct {
	Msg string
	Err error
}

func (e *ExternalServiceError) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *ExternalServiceError) Unwrap() error {
	return e.Err
}

func NewExternalServiceError(msg string, err error) error {
	return &ExternalServiceError{Msg: msg, Err: err}
}

func IsExternalServiceError(err error) bool {
	var externalServiceError *ExternalServiceError
	ok := errors.As(err, &externalServiceError)
	return ok
}

var ErrAccountNotFound = NewNotFoundError("Account not found")
var ErrTransactionNotFound = NewNotFoundError("Transaction not found")
var ErrBudgetNotFound = NewNotFoundError("Budget not found")
var ErrTransactionAccessDenied = NewUnauthorizedError("Unauthorized access")

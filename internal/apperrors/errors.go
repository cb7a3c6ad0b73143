package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInsufficientBalance indicates that a ledger row no longer carries enough
// outstanding balance to absorb a payment. Raised by the conditional decrement
// inside the payment transaction when a concurrent payment won the race.
var ErrInsufficientBalance = errors.New("insufficient outstanding balance")

package apperrors

import "errors"

// ErrUnsupportedUnit indicates that a unit label is not among a converter's supported units.
var ErrUnsupportedUnit = errors.New("unsupported unit")

// ErrInvalidParameter indicates that a parameterized converter received a structurally
// invalid parameter value (e.g. non-positive voltage).
var ErrInvalidParameter = errors.New("invalid parameter")

// ErrExchangeRateUnavailable indicates that a usable, complete exchange rate table
// could not be obtained, for whatever transport or payload reason.
var ErrExchangeRateUnavailable = errors.New("exchange rate unavailable")

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

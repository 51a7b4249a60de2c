package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates that the caller is not authenticated or the credentials are invalid.
var ErrUnauthorized = errors.New("unauthorized")

// ErrInvalidAmount indicates a conversion amount that is zero or negative.
var ErrInvalidAmount = errors.New("amount must be greater than 0")

// ErrInvalidCurrencyPair indicates a malformed currency pair (identical or non 3-letter codes).
var ErrInvalidCurrencyPair = errors.New("invalid currency pair")

// ErrRateNotFound indicates the provider responded but lacks the requested quote currency.
var ErrRateNotFound = errors.New("exchange rate not found")

// ErrProviderUnavailable indicates a network error, timeout, or non-2xx response from a rate provider.
var ErrProviderUnavailable = errors.New("rate provider unavailable")

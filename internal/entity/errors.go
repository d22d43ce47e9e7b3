package entity

import "errors"

var (
	// ErrInvalidPrice is returned when a price is constructed from a negative amount.
	ErrInvalidPrice = errors.New("price must be zero or positive")

	// ErrInvalidAlertCondition is returned when an alert condition does not match its alert type.
	ErrInvalidAlertCondition = errors.New("invalid alert condition")

	// ErrStockNotFound is returned when a stock lookup by code or id misses.
	ErrStockNotFound = errors.New("stock not found")

	// ErrAlertNotFound is returned when an alert lookup misses.
	ErrAlertNotFound = errors.New("alert not found")

	// ErrPriceFetchFailed is returned when the upstream source has no price for a requested code.
	ErrPriceFetchFailed = errors.New("failed to fetch price")

	// ErrUnauthorizedAlertAccess is returned when an alert operation targets an alert owned by another user.
	ErrUnauthorizedAlertAccess = errors.New("unauthorized alert access")

	// ErrUserNotFound is returned when a user lookup misses.
	ErrUserNotFound = errors.New("user not found")
)

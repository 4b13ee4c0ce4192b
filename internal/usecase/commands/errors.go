package commands

import "oasis-backend/internal/pkg/errs"

var (
	// Booking
	ErrInvalidInterval   = errs.New("invalid time interval")
	ErrInvalidGuestCount = errs.New("invalid guest count")
	ErrBookingConflict   = errs.New("booking conflict")
	ErrBookingNotFound   = errs.New("booking not found")

	// Tab
	ErrTabAlreadyOpen  = errs.New("tab already open")
	ErrNoOpenTab       = errs.New("no open tab")
	ErrItemNotFound    = errs.New("menu item not found")
	ErrInvalidQuantity = errs.New("invalid quantity")

	// Wallet
	ErrInvalidAmount     = errs.New("invalid amount")
	ErrInsufficientFunds = errs.New("insufficient wallet balance")

	// Auth
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrTokenGeneration    = errs.New("token generation failed")

	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

package utils

// Application constants
const (
	// Application name
	AppName = "OrderLadder"

	// Default pagination limit
	DefaultPaginationLimit = 10

	// Maximum pagination limit
	MaxPaginationLimit = 100

	// Provider amounts are in minor units (paise)
	MinorUnitsPerUnit = 100
)

// Error messages
const (
	ErrInvalidCredentials = "Invalid credentials"
	ErrLoginRequired      = "Please login for access"
	ErrInvalidBody        = "Invalid request body"
	ErrInvalidSignature   = "Invalid payment signature"
	ErrInternalServer     = "Internal server error"
)

// Success messages
const (
	MsgLoginSuccess      = "Login successful"
	MsgLogoutSuccess     = "Logged out successfully"
	MsgPaymentsRetrieved = "Payments retrieved successfully"
	MsgPaymentRetrieved  = "Payment retrieved successfully"
	MsgLedgerAudited     = "Ledger audit completed"
	MsgPaymentSimulated  = "Payment simulation completed successfully"
)

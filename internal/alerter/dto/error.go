package dto

// Stable client-facing error codes.
const (
	CodeStockNotFound         = "STOCK-1001"
	CodePriceFetchFailed      = "STOCK-1002"
	CodeAlertNotFound         = "ALERT-2001"
	CodeUnauthorizedAlert     = "ALERT-2002"
	CodeInvalidAlertCondition = "ALERT-2003"
	CodeUserNotFound          = "USER-3001"
	CodeInvalidRequest        = "COMMON-4000"
	CodeInternalError         = "COMMON-5000"
)

// ErrorResponse represents a generic error response body.
type ErrorResponse struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

package apperror

// Code represents a unique error code for the application
type Code string

// General error codes
const (
	// General validation
	CodeRequiredField   Code = "REQUIRED_FIELD"
	CodeInvalidInput    Code = "INVALID_INPUT"
	CodeInvalidFormat   Code = "INVALID_FORMAT"
	CodeNotFound        Code = "NOT_FOUND"
	CodeValidationError Code = "VALIDATION_ERROR"

	// Configuration
	CodeConfigurationError Code = "CONFIGURATION_ERROR"

	// External service errors
	CodeExternalServiceError Code = "EXTERNAL_SERVICE_ERROR"
	CodeServiceTimeout       Code = "SERVICE_TIMEOUT"
	CodeServiceUnavailable   Code = "SERVICE_UNAVAILABLE"
	CodeRateLimitExceeded    Code = "RATE_LIMIT_EXCEEDED"

	// System errors
	CodeInternalError Code = "INTERNAL_ERROR"
	CodeUnknownError  Code = "UNKNOWN_ERROR"
)

// Dashboard-specific error codes
const (
	// Listing service errors
	CodeAnnouncementFetchFailed Code = "ANNOUNCEMENT_FETCH_FAILED"
	CodeAnnouncementNotFound    Code = "ANNOUNCEMENT_NOT_FOUND"
	CodeAnnouncementAPIError    Code = "ANNOUNCEMENT_API_ERROR"
	CodeInvalidListingPayload   Code = "INVALID_LISTING_PAYLOAD"
	CodeInvalidPageNumber       Code = "INVALID_PAGE_NUMBER"
	CodeTotalCountMissing       Code = "TOTAL_COUNT_MISSING"

	// Aggregation errors
	CodeInvalidMonetaryValue Code = "INVALID_MONETARY_VALUE"

	// Report/export errors
	CodeReportExportFailed Code = "REPORT_EXPORT_FAILED"

	// Circuit breaker errors
	CodeCircuitOpen Code = "CIRCUIT_OPEN"
)

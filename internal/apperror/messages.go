package apperror

// messages maps error codes to human-readable messages
var messages = map[Code]string{
	// General validation
	CodeRequiredField:   "Required field is missing",
	CodeInvalidInput:    "Invalid input provided",
	CodeInvalidFormat:   "Invalid data format",
	CodeNotFound:        "Resource not found",
	CodeValidationError: "Validation error",

	// Configuration
	CodeConfigurationError: "Configuration error",

	// External service errors
	CodeExternalServiceError: "External service error",
	CodeServiceTimeout:       "Service request timeout",
	CodeServiceUnavailable:   "Service temporarily unavailable",
	CodeRateLimitExceeded:    "Rate limit exceeded",

	// System errors
	CodeInternalError: "Internal server error",
	CodeUnknownError:  "An unknown error occurred",

	// Listing service errors
	CodeAnnouncementFetchFailed: "Failed to fetch announcements",
	CodeAnnouncementNotFound:    "No announcements matched the request",
	CodeAnnouncementAPIError:    "Announcement API error",
	CodeInvalidListingPayload:   "Announcement payload could not be decoded",
	CodeInvalidPageNumber:       "Page number out of range",
	CodeTotalCountMissing:       "Response is missing the x-total-count header",

	// Aggregation errors
	CodeInvalidMonetaryValue: "Monetary value could not be parsed",

	// Report/export errors
	CodeReportExportFailed: "Failed to export report",

	// Circuit breaker errors
	CodeCircuitOpen: "Circuit breaker is open",
}

package dto

import "net/http"

// Normalized error codes carried in the response envelope. The ERR_ codes
// cover cross-cutting failures; domain services emit their own codes which
// pass through unchanged.
const (
	ErrCodeUnknown  = "ERR_UNKNOWN"
	ErrCodeInternal = "ERR_INTERNAL"

	ErrCodeValidation         = "ERR_VALIDATION"
	ErrCodeValidationRequired = "ERR_VALIDATION_REQUIRED"
	ErrCodeValidationFormat   = "ERR_VALIDATION_FORMAT"

	ErrCodeUnauthorized = "ERR_UNAUTHORIZED"
	ErrCodeForbidden    = "ERR_FORBIDDEN"
	ErrCodeTokenExpired = "ERR_TOKEN_EXPIRED"
	ErrCodeTokenInvalid = "ERR_TOKEN_INVALID"

	ErrCodeNotFound            = "ERR_NOT_FOUND"
	ErrCodeAlreadyExists       = "ERR_ALREADY_EXISTS"
	ErrCodeConflict            = "ERR_CONFLICT"
	ErrCodeConcurrencyConflict = "ERR_CONCURRENCY_CONFLICT"
	ErrCodeGone                = "ERR_GONE"

	ErrCodeInvalidState = "ERR_INVALID_STATE"
	ErrCodeBusinessRule = "ERR_BUSINESS_RULE"

	ErrCodeBadRequest   = "ERR_BAD_REQUEST"
	ErrCodeInvalidInput = "ERR_INVALID_INPUT"
	ErrCodeInvalidJSON  = "ERR_INVALID_JSON"

	ErrCodeRateLimited = "ERR_RATE_LIMITED"
)

// ErrorCodeHTTPStatus maps the normalized codes to HTTP statuses.
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeUnknown:  http.StatusInternalServerError,
	ErrCodeInternal: http.StatusInternalServerError,

	ErrCodeValidation:         http.StatusBadRequest,
	ErrCodeValidationRequired: http.StatusBadRequest,
	ErrCodeValidationFormat:   http.StatusBadRequest,
	ErrCodeBadRequest:         http.StatusBadRequest,
	ErrCodeInvalidInput:       http.StatusBadRequest,
	ErrCodeInvalidJSON:        http.StatusBadRequest,

	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeTokenExpired: http.StatusUnauthorized,
	ErrCodeTokenInvalid: http.StatusUnauthorized,
	ErrCodeForbidden:    http.StatusForbidden,

	ErrCodeNotFound:            http.StatusNotFound,
	ErrCodeAlreadyExists:       http.StatusConflict,
	ErrCodeConflict:            http.StatusConflict,
	ErrCodeConcurrencyConflict: http.StatusConflict,
	ErrCodeGone:                http.StatusGone,

	ErrCodeInvalidState: http.StatusUnprocessableEntity,
	ErrCodeBusinessRule: http.StatusUnprocessableEntity,

	ErrCodeRateLimited: http.StatusTooManyRequests,
}

// DomainErrorHTTPStatus maps domain error codes to HTTP statuses. Domain
// codes reach clients as-is, only the status is derived here, so every code
// a service can emit needs an entry.
var DomainErrorHTTPStatus = map[string]int{
	// auth
	"INVALID_CREDENTIALS": http.StatusUnauthorized,
	"ACCOUNT_LOCKED":      http.StatusForbidden,
	"ACCOUNT_DEACTIVATED": http.StatusForbidden,
	"ACCOUNT_INACTIVE":    http.StatusForbidden,
	"INVALID_PASSWORD":    http.StatusUnauthorized,
	"TOKEN_EXPIRED":       http.StatusUnauthorized,
	"TOKEN_INVALID":       http.StatusUnauthorized,
	"TOKEN_REVOKED":       http.StatusUnauthorized,
	"TOKEN_MAX_REFRESH":   http.StatusUnauthorized,
	"TOKEN_ERROR":         http.StatusUnauthorized,

	// users
	"USER_NOT_FOUND":  http.StatusNotFound,
	"USERNAME_EXISTS": http.StatusConflict,
	"EMAIL_EXISTS":    http.StatusConflict,
	"SELF_DELETE":     http.StatusBadRequest,

	// students
	"STUDENT_NOT_FOUND":   http.StatusNotFound,
	"ROLL_NUMBER_EXISTS":  http.StatusConflict,
	"INVALID_NAME":        http.StatusBadRequest,
	"INVALID_ROLL_NUMBER": http.StatusBadRequest,
	"INVALID_EMAIL":       http.StatusBadRequest,

	// companies and years
	"COMPANY_NOT_FOUND":    http.StatusNotFound,
	"INVALID_COMPANY_NAME": http.StatusBadRequest,
	"INVALID_YEAR":         http.StatusBadRequest,
	"GONE":                 http.StatusGone,

	"INTERNAL_ERROR": http.StatusInternalServerError,
}

// GetHTTPStatus resolves a code to its HTTP status, defaulting to 500 for
// codes no table knows about.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	if status, ok := DomainErrorHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// SharedErrorCodeMapping rewrites the generic shared error codes into the
// normalized ERR_ form. Domain-specific codes are deliberately absent.
var SharedErrorCodeMapping = map[string]string{
	"NOT_FOUND":            ErrCodeNotFound,
	"ALREADY_EXISTS":       ErrCodeAlreadyExists,
	"INVALID_INPUT":        ErrCodeInvalidInput,
	"INVALID_STATE":        ErrCodeInvalidState,
	"UNAUTHORIZED":         ErrCodeUnauthorized,
	"FORBIDDEN":            ErrCodeForbidden,
	"CONCURRENCY_CONFLICT": ErrCodeConcurrencyConflict,
	"BAD_REQUEST":          ErrCodeBadRequest,
}

// NormalizeErrorCode rewrites a generic shared code into its ERR_ form and
// returns any other code unchanged.
func NormalizeErrorCode(code string) string {
	if normalized, ok := SharedErrorCodeMapping[code]; ok {
		return normalized
	}
	return code
}

// Package errors defines the application error taxonomy. Every error that
// can reach a user carries an HTTP status, a business error code, and a
// user-facing message in both supported locales.
package errors

import (
	"net/http"

	"mazraa/internal/i18n"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int                  // HTTP status code
	ErrorCode() string              // Business error code
	Message(loc i18n.Locale) string // User-friendly, localized error message
	Details() string                // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   i18n.Text
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode string, message i18n.Text, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface. The canonical locale is used so log
// lines stay consistent regardless of the request that raised the error.
func (e *BaseError) Error() string {
	return e.message.In(i18n.DefaultLocale)
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message for the given locale
func (e *BaseError) Message(loc i18n.Locale) string {
	return e.message.In(loc)
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Account-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		i18n.Text{Ar: "اسم المستخدم أو كلمة المرور غير صحيحة!", En: "Invalid username or password!"},
		"",
	)

	ErrUsernameTaken = NewBaseError(
		http.StatusConflict,
		"USERNAME_TAKEN",
		i18n.Text{Ar: "اسم المستخدم موجود بالفعل!", En: "Username already exists!"},
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		i18n.Text{Ar: "المستخدم غير موجود.", En: "User not found."},
		"",
	)

	ErrWrongCurrentPassword = NewBaseError(
		http.StatusBadRequest,
		"WRONG_CURRENT_PASSWORD",
		i18n.Text{Ar: "كلمة المرور الحالية غير صحيحة.", En: "Incorrect current password."},
		"",
	)

	// ErrGuestForbidden covers profile mutations attempted by a guest or an
	// absent identity, reported as an invalid action rather than a crash.
	ErrGuestForbidden = NewBaseError(
		http.StatusForbidden,
		"GUEST_FORBIDDEN",
		i18n.Text{Ar: "هذه الميزة متاحة للمستخدمين المسجلين فقط.", En: "This feature is available to registered users only."},
		"",
	)

	// Authorization errors
	ErrFarmerOnly = NewBaseError(
		http.StatusForbidden,
		"FARMER_ONLY",
		i18n.Text{Ar: "هذه العملية متاحة للمزارعين فقط.", En: "Only farmers may perform this action."},
		"",
	)

	ErrMerchantOnly = NewBaseError(
		http.StatusForbidden,
		"MERCHANT_ONLY",
		i18n.Text{Ar: "هذه العملية متاحة للتجار فقط.", En: "Only merchants may perform this action."},
		"",
	)

	ErrNotProductOwner = NewBaseError(
		http.StatusForbidden,
		"NOT_PRODUCT_OWNER",
		i18n.Text{Ar: "لا يمكنك تعديل منتج لا تملكه.", En: "You cannot modify a product you do not own."},
		"",
	)

	// Catalog/order errors
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		i18n.Text{Ar: "المنتج غير موجود.", En: "Product not found."},
		"",
	)

	ErrInvalidQuantity = NewBaseError(
		http.StatusBadRequest,
		"INVALID_QUANTITY",
		i18n.Text{Ar: "الكمية يجب أن تكون ١ على الأقل.", En: "Quantity must be at least 1."},
		"",
	)

	ErrInvalidPrice = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PRICE",
		i18n.Text{Ar: "السعر لا يمكن أن يكون سالبًا.", En: "Price cannot be negative."},
		"",
	)

	// Validation
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		i18n.Text{Ar: "الرجاء التحقق من الحقول المدخلة.", En: "Please check the submitted fields."},
		"",
	)

	// External AI collaborator failures surface as one generic message; the
	// caller is never exposed to provider details and nothing is retried.
	ErrDiagnosisFailed = NewBaseError(
		http.StatusBadGateway,
		"DIAGNOSIS_FAILED",
		i18n.Text{Ar: "فشل تحليل الصورة. الرجاء المحاولة مرة أخرى.", En: "Image analysis failed. Please try again."},
		"",
	)

	// Infrastructure
	ErrDatabaseExecute = NewBaseError(
		http.StatusInternalServerError,
		"DATABASE_ERROR",
		i18n.Text{Ar: "حدث خطأ داخلي. الرجاء المحاولة لاحقًا.", En: "An internal error occurred. Please try again later."},
		"",
	)
)

// NewDatabaseExecuteError wraps a low-level database error with the generic
// database AppError while keeping the cause in the details chain.
func NewDatabaseExecuteError(err error, context string) error {
	return errors.Wrap(ErrDatabaseExecute.WithDetails(err.Error()), context)
}

package failure

import (
	"errors"
	"net/http"

	"github.com/shopspring/decimal"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var InvalidPageParam = &Failure{Code: http.StatusBadRequest, Message: "invalid page parameter"}
var InvalidLimitParam = &Failure{Code: http.StatusBadRequest, Message: "invalid limit parameter"}
var ForbiddenError = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}
var ResourceRestrictedError = &Failure{Code: http.StatusForbidden, Message: "You don't have permission to access this resource"}

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// Unimplemented returns a new Failure with code for unimplemented method.
func Unimplemented(methodName string) error {
	return &Failure{
		Code:    http.StatusNotImplemented,
		Message: methodName,
	}
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
	}
}

func Forbidden(msg string) error {
	return &Failure{
		Code:    http.StatusForbidden,
		Message: msg,
	}
}

// Configuration returns a new Failure for missing or invalid pricing/menu
// setup. These are operator errors and must not be auto-retried.
func Configuration(msg string) error {
	return &Failure{
		Code:    http.StatusUnprocessableEntity,
		Message: msg,
	}
}

// DuplicateInvoice is the Failure returned when an invoice already exists
// for a booking and billing period.
type DuplicateInvoice struct {
	Failure
}

func DuplicateInvoiceForPeriod(bookingID, periodStart string) error {
	return &DuplicateInvoice{
		Failure: Failure{
			Code:    http.StatusConflict,
			Message: "invoice already exists for booking " + bookingID + " and period " + periodStart,
		},
	}
}

// OutstandingDues is the Failure returned when a refund computation yields a
// shortfall: the tenant owes more than the held deposit. The shortfall must
// be invoiced by a billing workflow, never written as a negative refund.
type OutstandingDues struct {
	Failure
	Shortfall decimal.Decimal `json:"shortfall"`
}

func OutstandingDuesShortfall(shortfall decimal.Decimal) error {
	return &OutstandingDues{
		Failure: Failure{
			Code:    http.StatusConflict,
			Message: "outstanding dues exceed deposit by " + shortfall.StringFixed(2),
		},
		Shortfall: shortfall,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var dup *DuplicateInvoice
	if errors.As(err, &dup) {
		return dup.Code
	}

	var dues *OutstandingDues
	if errors.As(err, &dues) {
		return dues.Code
	}

	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

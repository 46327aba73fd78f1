package errs

import (
	"fmt"
	"net/http"
)

// ErrCode represents an error code in the system.
type ErrCode struct {
	value int
}

// Value returns the integer value of the error code.
func (ec ErrCode) Value() int {
	return ec.value
}

// String returns the string representation of the error code.
func (ec ErrCode) String() string {
	return codeNames[ec]
}

// UnmarshalText implement the unmarshal interface for JSON conversions.
func (ec *ErrCode) UnmarshalText(data []byte) error {
	errName := string(data)

	v, exists := codeNumbers[errName]
	if !exists {
		return fmt.Errorf("err code %q does not exist", errName)
	}

	*ec = v

	return nil
}

// MarshalText implement the marshal interface for JSON conversions.
func (ec ErrCode) MarshalText() ([]byte, error) {
	return []byte(ec.String()), nil
}

// Set of error codes for handling client requests.
var (
	OK                 = ErrCode{value: 0}
	Canceled           = ErrCode{value: 1}
	Unknown            = ErrCode{value: 2}
	InvalidArgument    = ErrCode{value: 3}
	DeadlineExceeded   = ErrCode{value: 4}
	NotFound           = ErrCode{value: 5}
	AlreadyExists      = ErrCode{value: 6}
	PermissionDenied   = ErrCode{value: 7}
	Aborted            = ErrCode{value: 10}
	FailedPrecondition = ErrCode{value: 9}
	Internal           = ErrCode{value: 13}
	Unavailable        = ErrCode{value: 14}
	Unauthenticated    = ErrCode{value: 16}
	InternalOnlyLog    = ErrCode{value: 17}
)

var codeNames = map[ErrCode]string{
	OK:                 "ok",
	Canceled:           "canceled",
	Unknown:            "unknown",
	InvalidArgument:    "invalid_argument",
	DeadlineExceeded:   "deadline_exceeded",
	NotFound:           "not_found",
	AlreadyExists:      "already_exists",
	PermissionDenied:   "permission_denied",
	Aborted:            "aborted",
	FailedPrecondition: "failed_precondition",
	Internal:           "internal",
	Unavailable:        "unavailable",
	Unauthenticated:    "unauthenticated",
	InternalOnlyLog:    "internal",
}

var codeNumbers = map[string]ErrCode{
	"ok":                 OK,
	"canceled":           Canceled,
	"unknown":            Unknown,
	"invalid_argument":   InvalidArgument,
	"deadline_exceeded":  DeadlineExceeded,
	"not_found":          NotFound,
	"already_exists":     AlreadyExists,
	"permission_denied":  PermissionDenied,
	"aborted":            Aborted,
	"failed_precondition": FailedPrecondition,
	"internal":           Internal,
	"unavailable":        Unavailable,
	"unauthenticated":    Unauthenticated,
}

var httpStatus = map[int]int{
	OK.value:                 http.StatusOK,
	Canceled.value:           http.StatusGatewayTimeout,
	Unknown.value:            http.StatusInternalServerError,
	InvalidArgument.value:    http.StatusBadRequest,
	DeadlineExceeded.value:   http.StatusGatewayTimeout,
	NotFound.value:           http.StatusNotFound,
	AlreadyExists.value:      http.StatusConflict,
	PermissionDenied.value:   http.StatusForbidden,
	Aborted.value:            http.StatusConflict,
	FailedPrecondition.value: http.StatusBadRequest,
	Internal.value:           http.StatusInternalServerError,
	Unavailable.value:        http.StatusServiceUnavailable,
	Unauthenticated.value:    http.StatusUnauthorized,
	InternalOnlyLog.value:    http.StatusInternalServerError,
}

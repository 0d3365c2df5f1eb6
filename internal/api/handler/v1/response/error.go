package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Err is the error body every endpoint renders: a stable machine code
// plus a human message. Internal detail never leaves the server.
type Err struct {
	StatusCode int    `json:"-"`
	ErrorCode  string `json:"error_code"`
	Message    string `json:"message"`

	cause error
}

func (e *Err) Error() string {
	if e.cause != nil {
		return e.cause.Error()
	}

	return e.Message
}

func RenderErr(ctx *gin.Context, err *Err) {
	if err.StatusCode >= http.StatusInternalServerError {
		zap.L().Error("request failed",
			zap.String("path", ctx.FullPath()),
			zap.String("error_code", err.ErrorCode),
			zap.Error(err))
	}

	ctx.JSON(err.StatusCode, err)
}

func AbortErr(ctx *gin.Context, err *Err) {
	ctx.AbortWithStatusJSON(err.StatusCode, err)
}

func ErrBadRequest(err error) *Err {
	return &Err{
		StatusCode: http.StatusBadRequest,
		ErrorCode:  "INVALID_REQUEST",
		Message:    err.Error(),
		cause:      err,
	}
}

func ErrBarcodeRequired() *Err {
	return &Err{
		StatusCode: http.StatusBadRequest,
		ErrorCode:  "BARCODE_REQUIRED",
		Message:    "Barcode must not be empty",
	}
}

func ErrWrongCredentials() *Err {
	return &Err{
		StatusCode: http.StatusUnauthorized,
		ErrorCode:  "INVALID_CREDENTIALS",
		Message:    "Invalid username or password",
	}
}

func ErrMissingToken() *Err {
	return &Err{
		StatusCode: http.StatusUnauthorized,
		ErrorCode:  "NO_TOKEN",
		Message:    "No token provided",
	}
}

func ErrInvalidToken(err error) *Err {
	return &Err{
		StatusCode: http.StatusForbidden,
		ErrorCode:  "INVALID_TOKEN",
		Message:    "Invalid token",
		cause:      err,
	}
}

func ErrInvalidPosition() *Err {
	return &Err{
		StatusCode: http.StatusForbidden,
		ErrorCode:  "INVALID_POSITION",
		Message:    "Position does not allow scanning this direction",
	}
}

func ErrInsufficientPermissions() *Err {
	return &Err{
		StatusCode: http.StatusForbidden,
		ErrorCode:  "INSUFFICIENT_PERMISSIONS",
		Message:    "Insufficient permissions",
	}
}

func ErrBarcodeNotFound() *Err {
	return &Err{
		StatusCode: http.StatusNotFound,
		ErrorCode:  "BARCODE_NOT_FOUND",
		Message:    "Barcode not found in master catalog",
	}
}

func ErrNotFound(message string) *Err {
	return &Err{
		StatusCode: http.StatusNotFound,
		ErrorCode:  "NOT_FOUND",
		Message:    message,
	}
}

func ErrSystemMaintenance() *Err {
	return &Err{
		StatusCode: http.StatusServiceUnavailable,
		ErrorCode:  "SYSTEM_MAINTENANCE",
		Message:    "Scans are blocked while batch data migration runs, try again shortly",
	}
}

func ErrScanFailed() *Err {
	return &Err{
		StatusCode: http.StatusInternalServerError,
		ErrorCode:  "SCAN_FAILED",
		Message:    "Failed to record the scan",
	}
}

func ErrInternalServerError(err error) *Err {
	return &Err{
		StatusCode: http.StatusInternalServerError,
		ErrorCode:  "INTERNAL_ERROR",
		Message:    "Something went wrong",
		cause:      err,
	}
}

// ErrConflict maps duplicate-resource failures such as an existing
// username.
func ErrConflict(err error) *Err {
	return &Err{
		StatusCode: http.StatusConflict,
		ErrorCode:  "ALREADY_EXISTS",
		Message:    err.Error(),
		cause:      err,
	}
}

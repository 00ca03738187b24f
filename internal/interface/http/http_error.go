package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/forest-watch/internal/domain/forest"
	apperrors "github.com/yanqian/forest-watch/pkg/errors"
)

// HTTPError carries the status and code rendered by the error middleware.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// NewHTTPError is a helper to build an HTTPError instance.
func NewHTTPError(status int, code, message string, err error) *HTTPError {
	return &HTTPError{Status: status, Code: code, Message: message, Err: err}
}

func asHTTPError(err error) *HTTPError {
	if err == nil {
		return nil
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	return &HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    "internal_error",
		Message: "something went wrong",
		Err:     err,
	}
}

func abortWithError(c *gin.Context, err *HTTPError) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

// fromDomainError maps AppError codes onto HTTP statuses.
func fromDomainError(err error, fallback string) *HTTPError {
	code := apperrors.Code(err)
	switch code {
	case forest.CodeInvalidRange, "invalid_input":
		return NewHTTPError(http.StatusBadRequest, code, errMessage(err), err)
	case forest.CodeNotFound:
		return NewHTTPError(http.StatusNotFound, code, errMessage(err), err)
	case forest.CodeSeriesError:
		return NewHTTPError(http.StatusBadGateway, code, "no yearly loss data available", err)
	default:
		return NewHTTPError(http.StatusInternalServerError, fallback, errMessage(err), err)
	}
}

// Package apperrors defines the application error taxonomy and its mapping to
// HTTP status codes and stable application codes.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Jonathan-dev2002/minishop-api/models"
)

type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindValidation
	KindAuth
	KindDatabase
	KindSearchIndex
)

type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

func NotFound(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

func Validation(message string) *AppError {
	return &AppError{Kind: KindValidation, Message: message}
}

func Auth(message string) *AppError {
	return &AppError{Kind: KindAuth, Message: message}
}

func Database(err error) *AppError {
	return &AppError{Kind: KindDatabase, Message: "Database error", Err: err}
}

func SearchIndex(err error) *AppError {
	return &AppError{Kind: KindSearchIndex, Message: "Search index error", Err: err}
}

func Internal(message string, err error) *AppError {
	return &AppError{Kind: KindInternal, Message: message, Err: err}
}

// FromDB maps a storage error to the taxonomy: record-not-found becomes
// NotFound with the given message, anything else is a DatabaseError.
func FromDB(err error, notFoundMessage string) *AppError {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound(notFoundMessage)
	}
	return Database(err)
}

// StatusCode is the HTTP status the error surfaces with.
func (e *AppError) StatusCode() int {
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindValidation:
		return http.StatusBadRequest
	case KindAuth:
		return http.StatusUnauthorized
	case KindSearchIndex:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// AppCode is the stable application-level code for the error kind.
func (e *AppError) AppCode() string {
	switch e.Kind {
	case KindNotFound:
		return "4004"
	case KindValidation:
		return "4000"
	case KindAuth:
		return "4001"
	case KindDatabase:
		return "5001"
	case KindSearchIndex:
		return "5002"
	default:
		return "5000"
	}
}

// Respond writes the error as the uniform response envelope. Only the message
// is exposed; wrapped causes stay server-side.
func Respond(c *gin.Context, err error) {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		appErr = Internal("Internal server error", err)
	}
	c.JSON(appErr.StatusCode(), models.ErrorResponse(appErr.AppCode(), appErr.Message))
}

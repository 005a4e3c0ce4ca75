// Package response implements the uniform JSON envelope. Every error body has
// the shape {"error": {"kind": ..., "message": ...}} with a fixed kind
// taxonomy, replacing the per-endpoint ad-hoc key names of the legacy API.
package response

import (
	"net/http"
	"reflect"

	"github.com/gin-gonic/gin"
)

// Error kinds.
const (
	KindValidation      = "validation"
	KindNotFound        = "not_found"
	KindUnauthenticated = "unauthenticated"
	KindForbidden       = "forbidden"
	KindConflict        = "conflict"
	KindInternal        = "internal"
)

type errorBody struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// OK sends a 200 response. Slices are wrapped in {data: [...]}.
func OK(c *gin.Context, data interface{}) {
	if data != nil {
		v := reflect.ValueOf(data)
		if v.Kind() == reflect.Slice {
			c.JSON(http.StatusOK, gin.H{"data": data})
			return
		}
	}
	c.JSON(http.StatusOK, data)
}

// Created sends a 201 response.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// NoContent sends a 204 response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Validation sends a 400 error for a malformed or incomplete request.
func Validation(c *gin.Context, message string) {
	fail(c, http.StatusBadRequest, KindValidation, message)
}

// Unauthenticated sends a 401 error.
func Unauthenticated(c *gin.Context, message string) {
	fail(c, http.StatusUnauthorized, KindUnauthenticated, message)
}

// Forbidden sends a 403 error.
func Forbidden(c *gin.Context, message string) {
	fail(c, http.StatusForbidden, KindForbidden, message)
}

// NotFound sends a 404 error.
func NotFound(c *gin.Context, message string) {
	fail(c, http.StatusNotFound, KindNotFound, message)
}

// Conflict sends a conflict error. The legacy API reports username conflicts
// as 400, kept as-is.
func Conflict(c *gin.Context, message string) {
	fail(c, http.StatusBadRequest, KindConflict, message)
}

// Internal sends a 500 error echoing the underlying message.
func Internal(c *gin.Context, err error) {
	fail(c, http.StatusInternalServerError, KindInternal, err.Error())
}

func fail(c *gin.Context, status int, kind, message string) {
	c.AbortWithStatusJSON(status, gin.H{"error": errorBody{Kind: kind, Message: message}})
}

// Package response owns the JSON envelope and the mapping from error kind
// to HTTP status, so every resource controller reports failures the same
// way instead of repeating per-handler status logic.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ErrorKind int

const (
	KindNotFound ErrorKind = iota
	KindValidation
	KindConflict
	KindInternal
)

var statusByKind = map[ErrorKind]int{
	KindNotFound:   http.StatusNotFound,
	KindValidation: http.StatusUnprocessableEntity,
	KindConflict:   http.StatusUnprocessableEntity,
	KindInternal:   http.StatusInternalServerError,
}

// Status returns the HTTP status code for an error kind.
func Status(kind ErrorKind) int {
	return statusByKind[kind]
}

// OK writes a 200 envelope. Pass nil data for message-only responses
// (delete confirmations).
func OK(c *gin.Context, message string, data any) {
	write(c, http.StatusOK, message, data)
}

// Created writes a 201 envelope.
func Created(c *gin.Context, message string, data any) {
	write(c, http.StatusCreated, message, data)
}

// Fail writes a message-only error envelope for kind.
func Fail(c *gin.Context, kind ErrorKind, message string) {
	c.JSON(Status(kind), gin.H{"message": message})
}

// FailValidation writes the 422 field-error envelope.
func FailValidation(c *gin.Context, errs map[string][]string) {
	c.JSON(Status(KindValidation), gin.H{
		"message": "Data tidak valid.",
		"errors":  errs,
	})
}

// FailInternal writes a generic 500 and logs the underlying error. The raw
// error string stays out of the response body.
func FailInternal(c *gin.Context, message string, err error) {
	logrus.WithFields(logrus.Fields{
		"method": c.Request.Method,
		"path":   c.FullPath(),
	}).WithError(err).Error(message)
	c.JSON(Status(KindInternal), gin.H{"message": message})
}

// BadRequest rejects a body that could not be parsed at all.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"message": message})
}

func write(c *gin.Context, status int, message string, data any) {
	body := gin.H{"message": message}
	if data != nil {
		body["data"] = data
	}
	c.JSON(status, body)
}

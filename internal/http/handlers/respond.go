package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// All error bodies share the original wire shape: {"message": ...} with an
// optional "errors" list on validation failures.

func RespondMessage(ctx *gin.Context, status int, message string) {
	ctx.JSON(status, gin.H{"message": message})
}

func RespondBadRequest(ctx *gin.Context, message string) {
	RespondMessage(ctx, http.StatusBadRequest, message)
}

func RespondValidation(ctx *gin.Context, errors []FieldError) {
	ctx.JSON(http.StatusBadRequest, gin.H{
		"message": "Invalid input",
		"errors":  errors,
	})
}

func RespondUnauthorized(ctx *gin.Context, message string) {
	RespondMessage(ctx, http.StatusUnauthorized, message)
}

func RespondForbidden(ctx *gin.Context, message string) {
	RespondMessage(ctx, http.StatusForbidden, message)
}

func RespondNotFound(ctx *gin.Context, message string) {
	RespondMessage(ctx, http.StatusNotFound, message)
}

// RespondInternal keeps the body generic; the real error belongs in logs,
// not on the wire.
func RespondInternal(ctx *gin.Context, message string) {
	RespondMessage(ctx, http.StatusInternalServerError, message)
}

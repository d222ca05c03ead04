package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/lastiz/calorizator/models"
	"github.com/lastiz/calorizator/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// RespondAppError renders a service error as the uniform envelope:
// {"error": {"status_code": ..., "fields": [...], "message": ...}}.
// Errors without a typed mapping surface as a generic 500 without detail.
func RespondAppError(c *gin.Context, err error) {
	var appErr *utils.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.StatusCode, gin.H{"error": appErr})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{
		"status_code": http.StatusInternalServerError,
		"fields":      []string{},
		"message":     "Internal server error",
	}})
}

// RespondValidationError maps binding failures onto the envelope, naming the
// offending fields when the validator reports them.
func RespondValidationError(c *gin.Context, err error) {
	fields := []string{}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			fields = append(fields, strings.ToLower(fe.Field()))
		}
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{
		"status_code": http.StatusBadRequest,
		"fields":      fields,
		"message":     err.Error(),
	}})
}

// CurrentUser pulls the user resolved by the auth middleware.
func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get("user")
	if !ok {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}

package controllers

import (
	"net/http"

	"github.com/lastiz/calorizator/services"

	"github.com/gin-gonic/gin"
)

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterInput struct {
	Username string `json:"username" binding:"required,min=4,max=32"`
	Email    string `json:"email" binding:"required,email,max=320"`
	Password string `json:"password" binding:"required,min=8,max=32"`
}

func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondValidationError(c, err)
		return
	}

	token, err := services.NewAuthService().Login(input.Username, input.Password)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

func Logout(c *gin.Context) {
	user := CurrentUser(c)
	if err := services.NewAuthService().Logout(user); err != nil {
		RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status_code": http.StatusOK, "msg": "Successfully logout"})
}

func Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondValidationError(c, err)
		return
	}

	user, err := services.NewAuthService().Register(input.Username, input.Password, input.Email)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	// never echo anything credential-shaped back
	c.JSON(http.StatusCreated, gin.H{"username": user.Username, "email": user.Email})
}

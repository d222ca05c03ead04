package controllers

import (
	"net/http"

	"github.com/lastiz/calorizator/services"

	"github.com/gin-gonic/gin"
)

func GetProfile(c *gin.Context) {
	user := CurrentUser(c)
	c.JSON(http.StatusOK, services.NewProfileService().GetProfile(user))
}

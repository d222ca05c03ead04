package middlewares

import (
	"net/http"
	"time"

	"github.com/lastiz/calorizator/config"
	"github.com/lastiz/calorizator/models"
	"github.com/lastiz/calorizator/utils"

	"github.com/gin-gonic/gin"
)

const AuthHeader = "X-Auth"

// AuthMiddleware resolves the X-Auth opaque token to its user by exact match
// against the stored token column. A missing or unknown token yields the
// uniform 401 envelope.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(AuthHeader)
		if token == "" {
			abortUnauthorized(c)
			return
		}

		var user models.User
		if err := config.DB.Where("token = ?", token).First(&user).Error; err != nil {
			abortUnauthorized(c)
			return
		}

		// last-seen bookkeeping; UpdateColumn leaves updated_at alone
		config.DB.Model(&user).UpdateColumn("online_at", time.Now())

		c.Set("user", &user)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context) {
	appErr := utils.NewAppError(http.StatusUnauthorized, "Invalid authorization token", "token")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": appErr})
}

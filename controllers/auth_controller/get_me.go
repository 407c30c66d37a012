package auth_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/canghafiz/xsell-bff/middleware"
	"github.com/canghafiz/xsell-bff/utils"
)

// GetMe godoc
// @Summary Current session user
// @Description Unpack the login_data cookie into a user profile. Always 200: a missing or unreadable token yields {"user": null} so the header can render logged-out state without an error path.
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]any
// @Router /auth/me [get]
func GetMe(c *gin.Context) {
	token, err := c.Cookie(middleware.LoginCookie)
	if err != nil || token == "" {
		c.JSON(http.StatusOK, gin.H{"user": nil})
		return
	}

	user, err := utils.DecodeLoginToken(token)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"user": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

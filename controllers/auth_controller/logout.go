package auth_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/canghafiz/xsell-bff/middleware"
	"github.com/canghafiz/xsell-bff/models"
)

// Logout godoc
// @Summary Log out
// @Description Expire the login_data cookie. The upstream token itself stays valid until expiry; the BFF only drops the session cookie.
// @Tags Auth
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /auth/logout [post]
func Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.LoginCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, models.SuccessResponse(http.StatusOK, "Logged out"))
}

package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/canghafiz/xsell-bff/models"
	"github.com/canghafiz/xsell-bff/utils"
)

// LoginCookie is the session cookie set by the login proxy and read by the
// auth check endpoint. Its value is the upstream-issued JWT.
const LoginCookie = "login_data"

// AuthRequired guards member-only routes. It accepts the login_data cookie
// or a Bearer Authorization header, unpacks the user claims and stashes both
// the identity and the raw token (for upstream forwarding) in the context.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		if cookieToken, err := c.Cookie(LoginCookie); err == nil && cookieToken != "" {
			token = cookieToken
		} else {
			bearer, err := utils.ExtractBearerToken(c.GetHeader("Authorization"))
			if err != nil {
				c.JSON(http.StatusUnauthorized, models.ErrorResponse(http.StatusUnauthorized, "Authentication required"))
				c.Abort()
				return
			}
			token = bearer
		}

		user, err := utils.DecodeLoginToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(http.StatusUnauthorized, "Invalid or expired token"))
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Set("userID", user.UserID)
		c.Set("userToken", token)

		c.Next()
	}
}

// UserFromContext returns the authenticated user set by AuthRequired.
func UserFromContext(c *gin.Context) (*models.User, bool) {
	v, exists := c.Get("user")
	if !exists {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}

// TokenFromContext returns the raw JWT for forwarding upstream.
func TokenFromContext(c *gin.Context) (string, bool) {
	v, exists := c.Get("userToken")
	if !exists {
		return "", false
	}
	token, ok := v.(string)
	return token, ok
}

package user_controller

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/canghafiz/xsell-bff/config"
	"github.com/canghafiz/xsell-bff/middleware"
	"github.com/canghafiz/xsell-bff/models"
	"github.com/canghafiz/xsell-bff/services"
)

const loginCookieMaxAge = 7 * 24 * 60 * 60 // matches upstream token lifetime

// Login godoc
// @Summary Log in
// @Description Forward credentials to the backend. On success the returned JWT is set as the login_data session cookie and echoed in the envelope.
// @Tags User
// @Accept json
// @Produce json
// @Param payload body models.LoginPayload true "Credentials"
// @Success 200 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Router /user/login [post]
func Login(c *gin.Context) {
	var payload models.LoginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(http.StatusBadRequest, "Invalid request body"))
		return
	}

	body, _ := json.Marshal(payload)
	res, err := services.Forward(c.Request.Context(), services.ForwardOptions{
		Method: http.MethodPost,
		Path:   "member/user/login",
		Body:   body,
	})
	if err != nil {
		if errors.Is(err, config.ErrBackendNotConfigured) {
			c.JSON(http.StatusInternalServerError,
				models.ErrorResponse(http.StatusInternalServerError, "Server configuration error"))
			return
		}
		log.Printf("❌ login proxy error: %v", err)
		c.JSON(http.StatusInternalServerError,
			models.ErrorResponse(http.StatusInternalServerError, "Network error"))
		return
	}

	var envelope models.Envelope[string]
	if jsonErr := json.Unmarshal(res.Body, &envelope); jsonErr != nil {
		c.JSON(http.StatusBadGateway, models.ErrorResponse(http.StatusBadGateway, "Invalid upstream response"))
		return
	}

	status := envelope.Code
	if status == 0 {
		status = res.Status
	}

	if envelope.Success && envelope.Data != "" {
		// envelope.Data carries the upstream-issued JWT.
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(middleware.LoginCookie, envelope.Data, loginCookieMaxAge, "/", "", false, true)
	}

	c.JSON(status, envelope)
}

package user_controller

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/canghafiz/xsell-bff/config"
	"github.com/canghafiz/xsell-bff/models"
	"github.com/canghafiz/xsell-bff/services"
)

// Register godoc
// @Summary Register a new account
// @Description Forward a registration to the backend; the account stays pending until the email OTP is validated.
// @Tags User
// @Accept json
// @Produce json
// @Param payload body models.RegisterPayload true "New account"
// @Success 200 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Router /user/register [post]
func Register(c *gin.Context) {
	var payload models.RegisterPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(http.StatusBadRequest, "Invalid request body"))
		return
	}

	body, _ := json.Marshal(payload)
	forwardAuthEnvelope(c, "member/user/register", body)
}

// forwardAuthEnvelope posts a JSON body upstream and relays the auth
// envelope, preferring the envelope's own code over the HTTP status.
func forwardAuthEnvelope(c *gin.Context, path string, body []byte) {
	res, err := services.Forward(c.Request.Context(), services.ForwardOptions{
		Method: http.MethodPost,
		Path:   path,
		Body:   body,
	})
	if err != nil {
		if errors.Is(err, config.ErrBackendNotConfigured) {
			c.JSON(http.StatusInternalServerError,
				models.ErrorResponse(http.StatusInternalServerError, "Server configuration error"))
			return
		}
		log.Printf("❌ %s proxy error: %v", path, err)
		c.JSON(http.StatusInternalServerError,
			models.ErrorResponse(http.StatusInternalServerError, "Network error"))
		return
	}

	var envelope models.ApiResponse
	if jsonErr := json.Unmarshal(res.Body, &envelope); jsonErr != nil {
		c.JSON(http.StatusBadGateway, models.ErrorResponse(http.StatusBadGateway, "Invalid upstream response"))
		return
	}

	status := envelope.Code
	if status == 0 {
		status = res.Status
	}
	c.JSON(status, envelope)
}

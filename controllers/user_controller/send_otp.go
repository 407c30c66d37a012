package user_controller

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/canghafiz/xsell-bff/models"
)

// SendOtp godoc
// @Summary Send a verification OTP
// @Description Ask the backend to email a one-time code for account validation.
// @Tags User
// @Accept json
// @Produce json
// @Param payload body models.SendOtpPayload true "Target email"
// @Success 200 {object} models.ApiResponse
// @Router /user/otp [post]
func SendOtp(c *gin.Context) {
	var payload models.SendOtpPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(http.StatusBadRequest, "Invalid request body"))
		return
	}

	body, _ := json.Marshal(payload)
	forwardAuthEnvelope(c, "member/user/otp", body)
}

package user_controller

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/canghafiz/xsell-bff/config"
	"github.com/canghafiz/xsell-bff/middleware"
	"github.com/canghafiz/xsell-bff/models"
	"github.com/canghafiz/xsell-bff/services"
)

// UpdateUser godoc
// @Summary Update a user profile
// @Description Forward a profile update to the backend with the caller's token. Members may only update their own profile.
// @Tags User
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userId query int true "User ID"
// @Success 200 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Failure 403 {object} models.ApiResponse
// @Router /user [put]
func UpdateUser(c *gin.Context) {
	token, ok := middleware.TokenFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized,
			models.ErrorResponse(http.StatusUnauthorized, "Invalid or missing Authorization header"))
		return
	}

	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest,
			models.ErrorResponse(http.StatusBadRequest, "userId query param is required"))
		return
	}

	if user, ok := middleware.UserFromContext(c); ok {
		if id, err := strconv.ParseInt(userID, 10, 64); err != nil || id != user.UserID {
			c.JSON(http.StatusForbidden,
				models.ErrorResponse(http.StatusForbidden, "Cannot update another user's profile"))
			return
		}
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(http.StatusBadRequest, "Invalid request body"))
		return
	}

	res, err := services.Forward(c.Request.Context(), services.ForwardOptions{
		Method:  http.MethodPut,
		Path:    "member/user/" + url.PathEscape(userID),
		Body:    body,
		Headers: map[string]string{"Authorization": "Bearer " + token},
	})
	if err != nil {
		if errors.Is(err, config.ErrBackendNotConfigured) {
			c.JSON(http.StatusInternalServerError,
				models.ErrorResponse(http.StatusInternalServerError, "Server configuration error"))
			return
		}
		log.Printf("❌ user update proxy error: %v", err)
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

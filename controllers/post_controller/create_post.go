package post_controller

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/canghafiz/xsell-bff/config"
	"github.com/canghafiz/xsell-bff/middleware"
	"github.com/canghafiz/xsell-bff/models"
	"github.com/canghafiz/xsell-bff/services"
)

// CreatePost godoc
// @Summary Post an ad
// @Description Forward a completed listing to the backend under the caller's token. Images must already be uploaded; the payload carries their URLs.
// @Tags Post
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.ProductListingPayload true "Listing"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Router /post [post]
func CreatePost(c *gin.Context) {
	token, ok := middleware.TokenFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(http.StatusUnauthorized, "Authentication required"))
		return
	}

	var payload models.ProductListingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(http.StatusBadRequest, "Invalid request body"))
		return
	}

	if strings.TrimSpace(payload.Title) == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(http.StatusBadRequest, "Title is required"))
		return
	}
	if strings.TrimSpace(payload.CategorySlug) == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(http.StatusBadRequest, "Category is required"))
		return
	}
	if payload.Price < 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(http.StatusBadRequest, "Price cannot be negative"))
		return
	}
	if len(payload.Images) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(http.StatusBadRequest, "At least one image is required"))
		return
	}

	body, _ := json.Marshal(payload)
	res, err := services.Forward(c.Request.Context(), services.ForwardOptions{
		Method:  http.MethodPost,
		Path:    "member/post/",
		Body:    body,
		Headers: map[string]string{"Authorization": "Bearer " + token},
	})
	if err != nil {
		if errors.Is(err, config.ErrBackendNotConfigured) {
			c.JSON(http.StatusInternalServerError,
				models.ErrorResponse(http.StatusInternalServerError, "Server configuration error"))
			return
		}
		log.Printf("❌ create post proxy error: %v", err)
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

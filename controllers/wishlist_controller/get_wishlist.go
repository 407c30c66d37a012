package wishlist_controller

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

// GetWishlist godoc
// @Summary List wishlisted products
// @Description Forward the caller's wishlist lookup to the backend.
// @Tags Wishlist
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Router /wishlist [get]
func GetWishlist(c *gin.Context) {
	token, ok := middleware.TokenFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(http.StatusUnauthorized, "Authentication required"))
		return
	}

	res, err := services.Forward(c.Request.Context(), services.ForwardOptions{
		Method:  http.MethodGet,
		Path:    "member/wishlist",
		Headers: map[string]string{"Authorization": "Bearer " + token},
	})
	if err != nil {
		if errors.Is(err, config.ErrBackendNotConfigured) {
			c.JSON(http.StatusInternalServerError,
				models.ErrorResponse(http.StatusInternalServerError, "Server configuration error"))
			return
		}
		log.Printf("❌ wishlist proxy error: %v", err)
		c.JSON(http.StatusInternalServerError,
			models.ErrorResponse(http.StatusInternalServerError, "Network error"))
		return
	}

	if res.Status < 200 || res.Status > 299 {
		var envelope models.ApiResponse
		if jsonErr := json.Unmarshal(res.Body, &envelope); jsonErr == nil && envelope.Error != "" {
			c.JSON(res.Status, envelope)
			return
		}
		c.JSON(res.Status, models.ErrorResponse(res.Status, "Failed to fetch wishlist"))
		return
	}

	c.Data(res.Status, "application/json; charset=utf-8", res.Body)
}

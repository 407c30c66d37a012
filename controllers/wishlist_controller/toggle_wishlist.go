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

type togglePayload struct {
	ProductID int64 `json:"product_id"`
}

// ToggleWishlist godoc
// @Summary Toggle a product on the wishlist
// @Description Add the product if absent, remove it if present. The backend owns the membership state.
// @Tags Wishlist
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body togglePayload true "Product"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Router /wishlist [post]
func ToggleWishlist(c *gin.Context) {
	token, ok := middleware.TokenFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(http.StatusUnauthorized, "Authentication required"))
		return
	}

	var payload togglePayload
	if err := c.ShouldBindJSON(&payload); err != nil || payload.ProductID <= 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(http.StatusBadRequest, "A positive product_id is required"))
		return
	}

	body, _ := json.Marshal(payload)
	res, err := services.Forward(c.Request.Context(), services.ForwardOptions{
		Method:  http.MethodPost,
		Path:    "member/wishlist",
		Body:    body,
		Headers: map[string]string{"Authorization": "Bearer " + token},
	})
	if err != nil {
		if errors.Is(err, config.ErrBackendNotConfigured) {
			c.JSON(http.StatusInternalServerError,
				models.ErrorResponse(http.StatusInternalServerError, "Server configuration error"))
			return
		}
		log.Printf("❌ wishlist toggle proxy error: %v", err)
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

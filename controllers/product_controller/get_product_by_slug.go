package product_controller

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/canghafiz/xsell-bff/config"
	"github.com/canghafiz/xsell-bff/models"
	"github.com/canghafiz/xsell-bff/services"
)

// GetProductBySlug godoc
// @Summary Get product detail
// @Description Forward a product detail lookup by slug to the backend.
// @Tags Storefront - Products
// @Produce json
// @Param slug path string true "Product slug"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /product/{slug} [get]
func GetProductBySlug(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))
	if slug == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(http.StatusBadRequest, "Slug is required"))
		return
	}

	res, err := services.Forward(c.Request.Context(), services.ForwardOptions{
		Method: http.MethodGet,
		Path:   "member/product/" + url.PathEscape(slug),
	})
	if err != nil {
		if errors.Is(err, config.ErrBackendNotConfigured) {
			c.JSON(http.StatusInternalServerError,
				models.ErrorResponse(http.StatusInternalServerError, "Backend API not configured"))
			return
		}
		log.Printf("❌ product detail proxy error: %v", err)
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
		c.JSON(res.Status, models.ErrorResponse(res.Status, "Failed to fetch product"))
		return
	}

	c.Data(res.Status, "application/json; charset=utf-8", res.Body)
}

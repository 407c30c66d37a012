package category_controller

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/canghafiz/xsell-bff/cache"
	"github.com/canghafiz/xsell-bff/config"
	"github.com/canghafiz/xsell-bff/models"
	"github.com/canghafiz/xsell-bff/services"
)

// GetCategories godoc
// @Summary List categories with subcategories
// @Description Return the category tree for the filter sidebar, cached for an hour.
// @Tags Storefront - Categories
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 502 {object} models.ApiResponse
// @Router /categories [get]
func GetCategories(c *gin.Context) {
	if data, ok := category_cache.Get(); ok {
		c.JSON(http.StatusOK, models.SuccessResponse(http.StatusOK, data))
		return
	}

	res, err := services.Forward(c.Request.Context(), services.ForwardOptions{
		Method: http.MethodGet,
		Path:   "categories/",
	})
	if err != nil {
		if errors.Is(err, config.ErrBackendNotConfigured) {
			c.JSON(http.StatusInternalServerError,
				models.ErrorResponse(http.StatusInternalServerError, "Backend API not configured"))
			return
		}
		log.Printf("❌ categories proxy error: %v", err)
		c.JSON(http.StatusBadGateway,
			models.ErrorResponse(http.StatusBadGateway, "Failed to fetch categories"))
		return
	}

	var envelope models.Envelope[[]models.CategoryWithSubCategory]
	if res.Status < 200 || res.Status > 299 ||
		json.Unmarshal(res.Body, &envelope) != nil || envelope.Data == nil {
		log.Printf("❌ invalid categories response, status %d", res.Status)
		c.JSON(http.StatusBadGateway,
			models.ErrorResponse(http.StatusBadGateway, "Failed to fetch categories"))
		return
	}

	category_cache.Set(envelope.Data)
	c.JSON(http.StatusOK, models.SuccessResponse(http.StatusOK, envelope.Data))
}

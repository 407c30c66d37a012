package product_controller

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/canghafiz/xsell-bff/config"
	"github.com/canghafiz/xsell-bff/models"
	"github.com/canghafiz/xsell-bff/services"
)

// GetProductsByCategory godoc
// @Summary List products for a category
// @Description Forward a category listing query to the backend. Results are never cached; stale pages behind a moving offset would surface as duplicates or gaps.
// @Tags Storefront - Products
// @Produce json
// @Param categoryIds query []string false "Numeric category IDs (repeatable)"
// @Param categorySlug query string false "Category slug (alternative to categoryIds)"
// @Param subCategorySlug query []string false "Subcategory slugs (repeatable)"
// @Param sortBy query string false "Sort key (default | latest | oldest | price_asc | price_desc)"
// @Param minPrice query int false "Minimum price"
// @Param maxPrice query int false "Maximum price"
// @Param limit query int false "Page size" default(21)
// @Param offset query int false "Pagination cursor" default(0)
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /product/category [get]
func GetProductsByCategory(c *gin.Context) {
	categoryIDs := c.QueryArray("categoryIds")
	categorySlug := c.Query("categorySlug")

	if len(categoryIDs) == 0 && categorySlug == "" {
		c.JSON(http.StatusBadRequest,
			models.ErrorResponse(http.StatusBadRequest, "At least one categoryId or a categorySlug is required"))
		return
	}

	query := url.Values{}
	for _, id := range categoryIDs {
		query.Add("categoryIds", id)
	}
	if categorySlug != "" {
		query.Set("categorySlug", categorySlug)
	}
	for _, slug := range c.QueryArray("subCategorySlug") {
		query.Add("subCategorySlug", slug)
	}
	for _, key := range []string{"sortBy", "minPrice", "maxPrice", "limit"} {
		if v := c.Query(key); v != "" {
			query.Set(key, v)
		}
	}
	query.Set("offset", c.DefaultQuery("offset", "0"))

	res, err := services.Forward(c.Request.Context(), services.ForwardOptions{
		Method: http.MethodGet,
		Path:   "member/product/category",
		Query:  query,
	})
	if err != nil {
		if errors.Is(err, config.ErrBackendNotConfigured) {
			c.JSON(http.StatusInternalServerError,
				models.ErrorResponse(http.StatusInternalServerError, "Backend API not configured"))
			return
		}
		log.Printf("❌ product category proxy error: %v", err)
		c.JSON(http.StatusInternalServerError,
			models.ErrorResponse(http.StatusInternalServerError, "Internal server error"))
		return
	}

	if res.Status < 200 || res.Status > 299 {
		// Pass a structured upstream error through; synthesize one otherwise.
		var envelope models.ApiResponse
		if jsonErr := json.Unmarshal(res.Body, &envelope); jsonErr == nil && envelope.Error != "" {
			c.JSON(res.Status, envelope)
			return
		}
		c.JSON(res.Status, models.ErrorResponse(res.Status, "Products not found or unavailable"))
		return
	}

	c.Data(res.Status, "application/json; charset=utf-8", res.Body)
}

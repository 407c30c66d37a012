package page_controller

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/canghafiz/xsell-bff/config"
	"github.com/canghafiz/xsell-bff/models"
	"github.com/canghafiz/xsell-bff/services"
)

var positiveIntPattern = regexp.MustCompile(`^\d+$`)

// GetPageSections godoc
// @Summary Get landing page sections
// @Description Forward a landing page lookup (home, promos, ...) to the backend members page endpoint.
// @Tags Storefront - Pages
// @Produce json
// @Param slug query string true "Page key"
// @Param except_id query int false "Product ID to exclude from the sections"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /page [get]
func GetPageSections(c *gin.Context) {
	slug := strings.TrimSpace(c.Query("slug"))
	if slug == "" {
		c.JSON(http.StatusBadRequest,
			models.ErrorResponse(http.StatusBadRequest, "Missing 'slug' query parameter"))
		return
	}

	path := "member/page/" + url.PathEscape(slug)
	if exceptID := strings.TrimSpace(c.Query("except_id")); exceptID != "" {
		if !positiveIntPattern.MatchString(exceptID) {
			c.JSON(http.StatusBadRequest,
				models.ErrorResponse(http.StatusBadRequest, "'except_id' must be a positive integer"))
			return
		}
		path += "/" + exceptID
	}

	// Forward any remaining query parameters untouched.
	query := url.Values{}
	for key, values := range c.Request.URL.Query() {
		if key == "slug" || key == "except_id" {
			continue
		}
		for _, v := range values {
			query.Add(key, v)
		}
	}

	res, err := services.Forward(c.Request.Context(), services.ForwardOptions{
		Method: http.MethodGet,
		Path:   path,
		Query:  query,
	})
	if err != nil {
		if errors.Is(err, config.ErrBackendNotConfigured) {
			c.JSON(http.StatusInternalServerError,
				models.ErrorResponse(http.StatusInternalServerError, "Backend API not configured"))
			return
		}
		log.Printf("❌ page proxy error: %v", err)
		c.JSON(http.StatusInternalServerError,
			models.ErrorResponse(http.StatusInternalServerError, "Internal server error"))
		return
	}

	if res.Status < 200 || res.Status > 299 {
		var envelope models.ApiResponse
		if jsonErr := json.Unmarshal(res.Body, &envelope); jsonErr == nil && envelope.Error != "" {
			c.JSON(res.Status, envelope)
			return
		}
		c.JSON(res.Status, models.ErrorResponse(res.Status, "Page not found or unavailable"))
		return
	}

	c.Data(res.Status, "application/json; charset=utf-8", res.Body)
}

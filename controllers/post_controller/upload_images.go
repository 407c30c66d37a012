package post_controller

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/canghafiz/xsell-bff/middleware"
	"github.com/canghafiz/xsell-bff/models"
	"github.com/canghafiz/xsell-bff/services"
)

var cloudinaryService *services.CloudinaryService

// InitCloudinary wires the image storage used by the upload endpoint.
func InitCloudinary(cloudName, apiKey, apiSecret string) error {
	svc, err := services.NewCloudinaryService(cloudName, apiKey, apiSecret)
	if err != nil {
		return err
	}
	cloudinaryService = svc
	return nil
}

// UploadImages godoc
// @Summary Upload listing images
// @Description Upload up to 5 photos for a new ad and return their URLs for the listing payload.
// @Tags Post
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param images formData file true "Image files (repeatable, max 5)"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 503 {object} models.ApiResponse
// @Router /post/images [post]
func UploadImages(c *gin.Context) {
	if cloudinaryService == nil {
		c.JSON(http.StatusServiceUnavailable,
			models.ErrorResponse(http.StatusServiceUnavailable, "Image storage not configured"))
		return
	}

	user, ok := middleware.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(http.StatusUnauthorized, "Authentication required"))
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(http.StatusBadRequest, "Invalid multipart form"))
		return
	}

	files := form.File["images"]
	folder := fmt.Sprintf("listings/%d", user.UserID)

	urls, err := cloudinaryService.UploadListingImages(c.Request.Context(), files, folder)
	if err != nil {
		log.Printf("❌ image upload failed for user %d: %v", user.UserID, err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(http.StatusOK, urls))
}

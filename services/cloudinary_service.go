package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// MaxListingImages caps how many photos one ad may carry.
const MaxListingImages = 5

// CloudinaryService stores listing photos. Uploaded URLs go into the listing
// payload forwarded to the upstream; the upstream never sees raw files.
type CloudinaryService struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryService(cloudName, apiKey, apiSecret string) (*CloudinaryService, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	return &CloudinaryService{cld: cld}, nil
}

// UploadImage uploads a single image and returns its secure URL.
func (s *CloudinaryService) UploadImage(ctx context.Context, file multipart.File, folder string) (string, error) {
	unique := true
	overwrite := false
	result, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID:       uuid.NewString(),
		Folder:         folder,
		ResourceType:   "image",
		UniqueFilename: &unique,
		Overwrite:      &overwrite,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("upload succeeded but no URL returned")
	}
	return result.SecureURL, nil
}

// UploadListingImages uploads the photos of one ad and returns their URLs in
// submission order.
func (s *CloudinaryService) UploadListingImages(ctx context.Context, files []*multipart.FileHeader, folder string) ([]string, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("no images provided")
	}
	if len(files) > MaxListingImages {
		return nil, fmt.Errorf("at most %d images per listing", MaxListingImages)
	}

	urls := make([]string, 0, len(files))
	for _, fileHeader := range files {
		file, err := fileHeader.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open file %s: %w", fileHeader.Filename, err)
		}

		url, err := s.UploadImage(ctx, file, folder)
		file.Close()
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}

	return urls, nil
}

// DeleteImage removes an uploaded image by its public ID.
func (s *CloudinaryService) DeleteImage(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID: publicID,
	})
	return err
}

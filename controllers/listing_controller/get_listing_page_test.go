package listing_controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canghafiz/xsell-bff/listing"
	"github.com/canghafiz/xsell-bff/models"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/listing", GetListingPage)
	return r
}

func stubFetch(t *testing.T, res listing.PageResult, capture *listing.Filter) {
	t.Helper()
	orig := fetchPage
	fetchPage = func() listing.PageFetcher {
		return func(ctx context.Context, f listing.Filter, limit, offset int) listing.PageResult {
			if capture != nil {
				*capture = f
			}
			assert.Equal(t, listing.PageSize, limit)
			assert.Equal(t, 0, offset)
			return res
		}
	}
	t.Cleanup(func() { fetchPage = orig })
}

func fullPage() listing.PageResult {
	items := make([]models.ProductItem, listing.PageSize)
	for i := range items {
		items[i] = models.ProductItem{ProductID: int64(i + 1)}
	}
	return listing.PageResult{Items: items, RequestedLimit: listing.PageSize, Success: true, Code: 200}
}

func TestGetListingPageSeedsState(t *testing.T) {
	var gotFilter listing.Filter
	stubFetch(t, fullPage(), &gotFilter)

	w := httptest.NewRecorder()
	setupRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet,
		"/api/listing?categorySlug=electronics&subCategorySlug=laptops&sortBy=price_desc", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body models.Envelope[listingPage]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.Equal(t, "electronics", gotFilter.CategorySlug)
	assert.Equal(t, []string{"laptops"}, gotFilter.SubCategorySlugs)
	assert.Equal(t, listing.SortPriceDesc, gotFilter.SortBy)

	assert.Len(t, body.Data.Items, listing.PageSize)
	assert.Equal(t, listing.PageSize, body.Data.Offset)
	assert.True(t, body.Data.HasMore)
	assert.Contains(t, body.Data.Query, "categorySlug=electronics")
}

func TestGetListingPageShortSeedHasNoMore(t *testing.T) {
	short := listing.PageResult{
		Items:          []models.ProductItem{{ProductID: 1}, {ProductID: 2}},
		RequestedLimit: listing.PageSize,
		Success:        true,
		Code:           200,
	}
	stubFetch(t, short, nil)

	w := httptest.NewRecorder()
	setupRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/listing", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body models.Envelope[listingPage]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Data.Items, 2)
	assert.False(t, body.Data.HasMore)
}

func TestGetListingPageFailedSeedCarriesError(t *testing.T) {
	failed := listing.PageResult{RequestedLimit: listing.PageSize, Code: 502, Err: "upstream unavailable"}
	stubFetch(t, failed, nil)

	w := httptest.NewRecorder()
	setupRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/listing", nil))

	require.Equal(t, http.StatusOK, w.Code, "a failed seed renders inline, not as an HTTP error")
	var body models.Envelope[listingPage]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Empty(t, body.Data.Items)
	assert.False(t, body.Data.HasMore)
	assert.Equal(t, "upstream unavailable", body.Data.Error)
}

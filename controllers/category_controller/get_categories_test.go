package category_controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canghafiz/xsell-bff/cache"
	"github.com/canghafiz/xsell-bff/models"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/categories", GetCategories)
	return r
}

func categoriesBody() string {
	return `{"success":true,"code":200,"data":[
		{"category_id":1,"category_name":"Electronics","category_slug":"electronics","description":"","icon":"cpu",
		 "sub_categories":[{"sub_category_id":10,"sub_category_name":"Laptops","sub_category_slug":"laptops"}]}
	]}`
}

func TestGetCategoriesFetchesOnceThenServesFromCache(t *testing.T) {
	category_cache.Invalidate()
	t.Cleanup(category_cache.Invalidate)

	var calls int32
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, "/categories/", r.URL.Path)
		w.Write([]byte(categoriesBody()))
	}))
	defer upstream.Close()
	t.Setenv("BE_API", upstream.URL)

	router := setupRouter()
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/categories", nil))
		require.Equal(t, http.StatusOK, w.Code)

		var body models.Envelope[[]models.CategoryWithSubCategory]
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Len(t, body.Data, 1)
		assert.Equal(t, "electronics", body.Data[0].CategorySlug)
		require.Len(t, body.Data[0].SubCategories, 1)
		assert.Equal(t, "laptops", body.Data[0].SubCategories[0].SubCategorySlug)
	}

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "repeat requests must hit the cache")
}

func TestGetCategoriesUpstreamFailure(t *testing.T) {
	category_cache.Invalidate()
	t.Cleanup(category_cache.Invalidate)

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer upstream.Close()
	t.Setenv("BE_API", upstream.URL)

	w := httptest.NewRecorder()
	setupRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/categories", nil))

	require.Equal(t, http.StatusBadGateway, w.Code)
	var body models.ApiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Failed to fetch categories", body.Error)
}

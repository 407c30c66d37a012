package listing_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/canghafiz/xsell-bff/config"
	"github.com/canghafiz/xsell-bff/listing"
	"github.com/canghafiz/xsell-bff/models"
)

// fetchPage is swappable in tests; defaults to the same-origin HTTP fetcher
// the browser uses for load-more, so the first page and every later page go
// through an identical code path.
var fetchPage = func() listing.PageFetcher {
	return listing.NewHTTPFetcher(config.SiteURL(), config.HTTPClient)
}

// listingPage is the bootstrap payload for a server-rendered category page.
type listingPage struct {
	Query   string               `json:"query"`
	Items   []models.ProductItem `json:"items"`
	Offset  int                  `json:"offset"`
	HasMore bool                 `json:"has_more"`
	Error   string               `json:"error,omitempty"`
}

// GetListingPage godoc
// @Summary Bootstrap a category listing page
// @Description Derive the active filter from the query string, fetch the first page through the listing fetch client and return the seeded pagination state (normalized query, items, offset, has_more).
// @Tags Storefront - Products
// @Produce json
// @Param categorySlug query string false "Category slug" default(all)
// @Param subCategorySlug query []string false "Subcategory slugs (repeatable)"
// @Param sortBy query string false "Sort key"
// @Param minPrice query int false "Minimum price"
// @Param maxPrice query int false "Maximum price"
// @Success 200 {object} models.ApiResponse
// @Router /listing [get]
func GetListingPage(c *gin.Context) {
	filter := listing.FilterFromQuery(c.Request.URL.Query())

	seed := fetchPage()(c.Request.Context(), filter, listing.PageSize, 0)
	acc := listing.NewAccumulator(filter, nil, seed)

	page := listingPage{
		Query:   filter.Encode(),
		Items:   acc.Items(),
		Offset:  acc.Offset(),
		HasMore: acc.HasMore(),
	}
	if !seed.Success {
		page.Error = seed.Err
	}

	c.JSON(http.StatusOK, models.SuccessResponse(http.StatusOK, page))
}

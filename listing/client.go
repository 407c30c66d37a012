package listing

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/canghafiz/xsell-bff/models"
)

// NewHTTPFetcher returns a PageFetcher that calls the same-origin
// /api/product/category proxy. It is the swappable seam between server-side
// and browser-side fetching: pagination logic never changes, only baseURL.
//
// Caching is disabled on every request; a stale page behind a moving offset
// would surface as visible duplicates or gaps.
func NewHTTPFetcher(baseURL string, client *http.Client) PageFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	baseURL = strings.TrimSuffix(baseURL, "/")

	return func(ctx context.Context, f Filter, limit, offset int) PageResult {
		if strings.TrimSpace(f.CategorySlug) == "" {
			return failedPage(limit, http.StatusBadRequest, "categorySlug is required")
		}
		if limit <= 0 {
			return failedPage(limit, http.StatusBadRequest, "limit must be a positive integer")
		}
		if offset < 0 {
			return failedPage(limit, http.StatusBadRequest, "offset must be a non-negative integer")
		}

		q := url.Values{}
		q.Set("categorySlug", f.CategorySlug)
		if !f.SubAll() {
			for _, slug := range f.SubCategorySlugs {
				if slug == SubCategoryAll {
					continue
				}
				q.Add("subCategorySlug", slug)
			}
		}
		q.Set("sortBy", string(f.SortBy))
		q.Set("minPrice", strconv.FormatInt(f.MinPrice, 10))
		q.Set("maxPrice", strconv.FormatInt(f.MaxPrice, 10))
		q.Set("limit", strconv.Itoa(limit))
		q.Set("offset", strconv.Itoa(offset))

		reqURL := baseURL + "/api/product/category?" + q.Encode()

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return failedPage(limit, http.StatusInternalServerError, "failed to build request: "+err.Error())
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("Cache-Control", "no-store")

		res, err := client.Do(req)
		if err != nil {
			return failedPage(limit, http.StatusInternalServerError, "network error: "+err.Error())
		}
		defer res.Body.Close()

		body, err := io.ReadAll(res.Body)
		if err != nil {
			return failedPage(limit, http.StatusInternalServerError, "failed to read response: "+err.Error())
		}

		var env models.Envelope[[]models.ProductItem]

		if res.StatusCode < 200 || res.StatusCode > 299 {
			// Prefer the structured error body; otherwise synthesize a
			// message keyed by the HTTP status.
			if jsonErr := json.Unmarshal(body, &env); jsonErr == nil && env.Error != "" {
				code := env.Code
				if code == 0 {
					code = res.StatusCode
				}
				return failedPage(limit, code, env.Error)
			}
			return failedPage(limit, res.StatusCode,
				fmt.Sprintf("request failed with status %d", res.StatusCode))
		}

		if err := json.Unmarshal(body, &env); err != nil {
			return failedPage(limit, http.StatusInternalServerError, "malformed response body")
		}
		if !env.Success {
			code := env.Code
			if code == 0 {
				code = res.StatusCode
			}
			msg := env.Error
			if msg == "" {
				msg = "request failed"
			}
			return failedPage(limit, code, msg)
		}

		return PageResult{
			Items:          env.Data,
			RequestedLimit: limit,
			Success:        true,
			Code:           env.Code,
		}
	}
}

func failedPage(limit, code int, msg string) PageResult {
	return PageResult{
		RequestedLimit: limit,
		Code:           code,
		Err:            msg,
	}
}

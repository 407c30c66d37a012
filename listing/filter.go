// Package listing implements the category listing controller: the filter/URL
// codec, the load-more accumulator, and the page fetch client that together
// keep URL state, the server-rendered first page, and client-fetched pages
// consistent without duplicate or missing items.
package listing

import (
	"net/url"
	"strconv"
)

type SortBy string

const (
	SortDefault   SortBy = "default"
	SortLatest    SortBy = "latest"
	SortOldest    SortBy = "oldest"
	SortPriceAsc  SortBy = "price_asc"
	SortPriceDesc SortBy = "price_desc"
)

const (
	// SubCategoryAll marks an unrestricted subcategory selection.
	SubCategoryAll = "all"

	DefaultCategorySlug = "all"
	DefaultSortBy       = SortLatest
	DefaultMinPrice     = int64(0)
	DefaultMaxPrice     = int64(9_999_999_999)
)

// Filter is the active listing query. It is fully determined by, and
// round-trips through, its query-string encoding.
//
// MinPrice <= MaxPrice is intentionally not enforced here; swapped bounds
// pass through to the backend as-is (open product question, see DESIGN.md).
type Filter struct {
	CategorySlug     string
	SubCategorySlugs []string
	SortBy           SortBy
	MinPrice         int64
	MaxPrice         int64
}

func DefaultFilter() Filter {
	return Filter{
		CategorySlug:     DefaultCategorySlug,
		SubCategorySlugs: []string{SubCategoryAll},
		SortBy:           DefaultSortBy,
		MinPrice:         DefaultMinPrice,
		MaxPrice:         DefaultMaxPrice,
	}
}

// FilterFromQuery derives a Filter from URL query parameters. Missing keys
// take their defaults and malformed values fail closed to the default; it
// never returns an error.
func FilterFromQuery(q url.Values) Filter {
	f := DefaultFilter()

	if slug := q.Get("categorySlug"); slug != "" {
		f.CategorySlug = slug
	}

	subs := q["subCategorySlug"]
	if len(subs) > 0 && !(len(subs) == 1 && subs[0] == SubCategoryAll) {
		f.SubCategorySlugs = append([]string(nil), subs...)
	}

	switch s := SortBy(q.Get("sortBy")); s {
	case SortDefault, SortLatest, SortOldest, SortPriceAsc, SortPriceDesc:
		f.SortBy = s
	}

	f.MinPrice = parsePrice(q.Get("minPrice"), DefaultMinPrice)
	f.MaxPrice = parsePrice(q.Get("maxPrice"), DefaultMaxPrice)

	return f
}

func parsePrice(raw string, fallback int64) int64 {
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 0 {
		return fallback
	}
	return v
}

// SubAll reports whether the subcategory selection is unrestricted.
func (f Filter) SubAll() bool {
	return len(f.SubCategorySlugs) == 0 ||
		(len(f.SubCategorySlugs) == 1 && f.SubCategorySlugs[0] == SubCategoryAll)
}

// Query encodes the filter. categorySlug and subCategorySlug are always
// emitted; sortBy, minPrice and maxPrice only when they differ from the
// defaults. An unrestricted selection becomes a single subCategorySlug=all,
// otherwise one repeated parameter per selected slug.
func (f Filter) Query() url.Values {
	q := url.Values{}

	q.Set("categorySlug", f.CategorySlug)

	if f.SubAll() {
		q.Set("subCategorySlug", SubCategoryAll)
	} else {
		for _, slug := range f.SubCategorySlugs {
			if slug == SubCategoryAll {
				continue
			}
			q.Add("subCategorySlug", slug)
		}
	}

	if f.SortBy != DefaultSortBy {
		q.Set("sortBy", string(f.SortBy))
	}
	if f.MinPrice != DefaultMinPrice {
		q.Set("minPrice", strconv.FormatInt(f.MinPrice, 10))
	}
	if f.MaxPrice != DefaultMaxPrice {
		q.Set("maxPrice", strconv.FormatInt(f.MaxPrice, 10))
	}

	return q
}

func (f Filter) Encode() string {
	return f.Query().Encode()
}

// SelectCategory switches the top-level category and resets the subcategory
// selection to unrestricted.
func (f Filter) SelectCategory(slug string) Filter {
	f.CategorySlug = slug
	f.SubCategorySlugs = []string{SubCategoryAll}
	return f
}

// ToggleSubCategory adds or removes one subcategory slug. Toggling while
// unrestricted replaces the selection wholesale; removing the last explicit
// slug falls back to unrestricted.
func (f Filter) ToggleSubCategory(slug string) Filter {
	if f.SubAll() {
		f.SubCategorySlugs = []string{slug}
		return f
	}

	kept := make([]string, 0, len(f.SubCategorySlugs))
	found := false
	for _, s := range f.SubCategorySlugs {
		if s == slug {
			found = true
			continue
		}
		kept = append(kept, s)
	}
	if !found {
		kept = append(kept, slug)
	}
	if len(kept) == 0 {
		kept = []string{SubCategoryAll}
	}
	f.SubCategorySlugs = kept
	return f
}

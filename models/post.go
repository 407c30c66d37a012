package models

// ProductListingPayload is the "post an ad" submission forwarded to the
// upstream. Image URLs come from the upload endpoint, not raw files.
type ProductListingPayload struct {
	Title        string           `json:"title"`
	Description  string           `json:"description"`
	Price        float64          `json:"price"`
	Condition    string           `json:"condition"`
	CategorySlug string           `json:"category_slug"`
	Tags         []string         `json:"tags,omitempty"`
	Images       []string         `json:"images"`
	Location     *ProductLocation `json:"location,omitempty"`
}

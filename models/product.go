package models

// ProductItem is a single listing as served by the storefront endpoints.
// The listing package only ever inspects ProductID; everything else passes
// through to presentation untouched.
type ProductItem struct {
	ProductID int64           `json:"product_id"`
	Title     string          `json:"title"`
	Price     float64         `json:"price"`
	Condition string          `json:"condition"`
	Images    []ProductImage  `json:"images"`
	Location  ProductLocation `json:"location"`
	Listing   ProductListing  `json:"listing"`
}

type ProductImage struct {
	ImageID   int64  `json:"image_id"`
	URL       string `json:"url"`
	IsPrimary bool   `json:"is_primary"`
	OrderSeq  int    `json:"order_seq"`
}

type ProductLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ProductListing identifies the member who posted the ad.
type ProductListing struct {
	UserID       int64   `json:"user_id"`
	Email        string  `json:"email"`
	FirstName    string  `json:"first_name"`
	LastName     *string `json:"last_name"`
	PhotoProfile *string `json:"photo_profile"`
}

package models

// CategoryItem is a top-level storefront category.
type CategoryItem struct {
	CategoryID   int64  `json:"category_id"`
	CategoryName string `json:"category_name"`
	CategorySlug string `json:"category_slug"`
	Description  string `json:"description"`
	Icon         string `json:"icon"`
}

// CategoryWithSubCategory is the sidebar tree: a parent category plus its
// selectable subcategories.
type CategoryWithSubCategory struct {
	CategoryItem
	SubCategories []SubCategoryItem `json:"sub_categories"`
}

type SubCategoryItem struct {
	SubCategoryID   int64  `json:"sub_category_id"`
	SubCategoryName string `json:"sub_category_name"`
	SubCategorySlug string `json:"sub_category_slug"`
}

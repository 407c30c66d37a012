package models

// PageSectionItem is one CMS-driven landing page: a page key plus its
// product sections, served by the upstream member/page endpoint.
type PageSectionItem struct {
	PageKey string               `json:"page_key"`
	Data    []ProductPageSection `json:"data"`
}

type ProductPageSection struct {
	SectionID  int64         `json:"section_id"`
	SectionKey string        `json:"section_key"`
	Title      string        `json:"title"`
	Subtitle   string        `json:"subtitle"`
	Products   []ProductItem `json:"products"`
}

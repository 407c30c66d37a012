package listing

// URLSync receives the encoded query string whenever the active filter
// changes. The browser-facing implementation replaces the current URL in
// place (no history entry, no scroll reset); tests use a recorder.
type URLSync interface {
	Replace(rawQuery string)
}

// URLSyncFunc adapts a function to the URLSync interface.
type URLSyncFunc func(rawQuery string)

func (fn URLSyncFunc) Replace(rawQuery string) { fn(rawQuery) }

// FilterUpdate is a partial filter edit; nil fields are left untouched.
type FilterUpdate struct {
	CategorySlug     *string
	SubCategorySlugs []string
	SortBy           *SortBy
	MinPrice         *int64
	MaxPrice         *int64
}

// FilterState owns the active filter and mirrors every edit back into the
// URL. Each setter performs exactly one Replace, however many fields the
// edit touched. Filter changes never trigger a fetch from here; the
// surrounding page reloads with a fresh server-rendered first page.
type FilterState struct {
	filter   Filter
	sync     URLSync
	expanded map[string]bool
}

func NewFilterState(initial Filter, sync URLSync) *FilterState {
	s := &FilterState{
		filter:   initial,
		sync:     sync,
		expanded: make(map[string]bool),
	}
	if initial.CategorySlug != DefaultCategorySlug {
		s.expanded[initial.CategorySlug] = true
	}
	return s
}

func (s *FilterState) Filter() Filter { return s.filter }

// IsExpanded reports the sidebar expand/collapse flag for a category. Purely
// presentational; carries no filtering semantics.
func (s *FilterState) IsExpanded(slug string) bool { return s.expanded[slug] }

// Apply shallow-merges a partial update into the active filter.
func (s *FilterState) Apply(u FilterUpdate) {
	if u.CategorySlug != nil {
		s.filter.CategorySlug = *u.CategorySlug
	}
	if u.SubCategorySlugs != nil {
		s.filter.SubCategorySlugs = append([]string(nil), u.SubCategorySlugs...)
	}
	if u.SortBy != nil {
		s.filter.SortBy = *u.SortBy
	}
	if u.MinPrice != nil {
		s.filter.MinPrice = *u.MinPrice
	}
	if u.MaxPrice != nil {
		s.filter.MaxPrice = *u.MaxPrice
	}
	s.replaceURL()
}

// SelectCategory activates a top-level category, resets the subcategory
// selection and toggles the category's expanded flag.
func (s *FilterState) SelectCategory(slug string) {
	s.filter = s.filter.SelectCategory(slug)
	s.expanded[slug] = !s.expanded[slug]
	s.replaceURL()
}

func (s *FilterState) ToggleSubCategory(slug string) {
	s.filter = s.filter.ToggleSubCategory(slug)
	s.replaceURL()
}

func (s *FilterState) Reset() {
	s.filter = DefaultFilter()
	s.replaceURL()
}

func (s *FilterState) replaceURL() {
	if s.sync != nil {
		s.sync.Replace(s.filter.Encode())
	}
}

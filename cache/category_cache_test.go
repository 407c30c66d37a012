package category_cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canghafiz/xsell-bff/models"
)

func sampleTree() []models.CategoryWithSubCategory {
	return []models.CategoryWithSubCategory{
		{
			CategoryItem: models.CategoryItem{CategoryID: 1, CategoryName: "Electronics", CategorySlug: "electronics"},
			SubCategories: []models.SubCategoryItem{
				{SubCategoryID: 10, SubCategoryName: "Laptops", SubCategorySlug: "laptops"},
			},
		},
	}
}

func TestCacheHitAfterSet(t *testing.T) {
	Invalidate()
	t.Cleanup(Invalidate)

	_, ok := Get()
	require.False(t, ok)

	Set(sampleTree())
	data, ok := Get()
	require.True(t, ok)
	assert.Equal(t, sampleTree(), data)
}

func TestInvalidateDropsEntry(t *testing.T) {
	Set(sampleTree())
	Invalidate()

	_, ok := Get()
	assert.False(t, ok)
}

func TestExpiredEntryMisses(t *testing.T) {
	Invalidate()
	t.Cleanup(Invalidate)

	setLocal(sampleTree())
	treeMu.Lock()
	treeCache.fetchedAt = time.Now().Add(-TTL - time.Minute)
	treeMu.Unlock()

	_, ok := Get()
	assert.False(t, ok)
}

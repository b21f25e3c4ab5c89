package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"estatehub_backend/internal/model"
	"estatehub_backend/internal/testutil"
	"estatehub_backend/pkg/errs"
)

func TestCreateCategoryLevels(t *testing.T) {
	store := NewStore(testutil.NewTestDB(t))

	root, err := store.CreateCategory("property_types", nil, false)
	require.NoError(t, err)
	assert.Equal(t, model.CategoryLevelRoot, root.Level)

	sub, err := store.CreateCategory("residential", &root.ID, false)
	require.NoError(t, err)
	assert.Equal(t, model.CategoryLevelSub, sub.Level)
	require.NotNil(t, sub.ParentID)
	assert.Equal(t, root.ID, *sub.ParentID)
}

func TestRootCategoryNameIndexBlocksDuplicates(t *testing.T) {
	store := NewStore(testutil.NewTestDB(t))

	_, err := store.CreateCategory("cities", nil, false)
	require.NoError(t, err)

	// Root categories have a NULL parent, which the composite index treats as
	// distinct; the root-only partial index must block the duplicate instead.
	dup := model.Category{Name: "cities", Level: model.CategoryLevelRoot, IsActive: true}
	err = store.db.Create(&dup).Error
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestCreateCategoryDuplicateInsertMapsToConflict(t *testing.T) {
	store := NewStore(testutil.NewTestDB(t))

	first, err := store.CreateCategory("departments", nil, false)
	require.NoError(t, err)

	// Soft-delete hides the row from the pre-check, but it still holds the
	// unique index, so the insert itself collides.
	require.NoError(t, store.db.Delete(first).Error)

	_, err = store.CreateCategory("departments", nil, false)
	require.Error(t, err)
	assert.True(t, errs.IsConflict(err))
}

func TestCreateCategoryRejectsDeepNesting(t *testing.T) {
	store := NewStore(testutil.NewTestDB(t))

	root, err := store.CreateCategory("property_types", nil, false)
	require.NoError(t, err)
	sub, err := store.CreateCategory("residential", &root.ID, false)
	require.NoError(t, err)

	// A level-1 parent would push the child to level 2.
	_, err = store.CreateCategory("too-deep", &sub.ID, false)
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
}

func TestCreateCategoryRejectsMissingParent(t *testing.T) {
	store := NewStore(testutil.NewTestDB(t))

	missing := uint(999)
	_, err := store.CreateCategory("orphan", &missing, false)
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
}

func TestCreateCategoryRejectsInactiveParent(t *testing.T) {
	store := NewStore(testutil.NewTestDB(t))

	root, err := store.CreateCategory("property_types", nil, false)
	require.NoError(t, err)
	require.NoError(t, store.DeactivateCategory(root.ID, false))

	_, err = store.CreateCategory("residential", &root.ID, false)
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
}

func TestCreateCategoryDuplicateName(t *testing.T) {
	store := NewStore(testutil.NewTestDB(t))

	_, err := store.CreateCategory("amenities", nil, true)
	require.NoError(t, err)

	_, err = store.CreateCategory("amenities", nil, true)
	require.Error(t, err)
	assert.True(t, errs.IsConflict(err))
}

func TestCreateCategorySameNameDifferentParent(t *testing.T) {
	store := NewStore(testutil.NewTestDB(t))

	rootA, err := store.CreateCategory("city", nil, false)
	require.NoError(t, err)
	rootB, err := store.CreateCategory("region", nil, false)
	require.NoError(t, err)

	_, err = store.CreateCategory("north", &rootA.ID, false)
	require.NoError(t, err)
	_, err = store.CreateCategory("north", &rootB.ID, false)
	require.NoError(t, err)
}

func TestListCategoriesOrdering(t *testing.T) {
	db := testutil.NewTestDB(t)
	store := NewStore(db)

	for _, name := range []string{"zeta", "alpha", "mid"} {
		_, err := store.CreateCategory(name, nil, false)
		require.NoError(t, err)
	}
	require.NoError(t, db.Model(&model.Category{}).Where("name = ?", "zeta").Update("sort_order", -1).Error)

	categories, err := store.ListCategories(CategoryFilter{ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, categories, 3)
	assert.Equal(t, "zeta", categories[0].Name) // lowest sort_order first
	assert.Equal(t, "alpha", categories[1].Name)
	assert.Equal(t, "mid", categories[2].Name)
}

func TestDeactivateCategoryBlockedByValues(t *testing.T) {
	store := NewStore(testutil.NewTestDB(t))

	category, err := store.CreateCategory("amenities", nil, true)
	require.NoError(t, err)
	_, err = store.CreateValue(category.ID, nil, nil, "Swimming Pool")
	require.NoError(t, err)

	err = store.DeactivateCategory(category.ID, false)
	require.Error(t, err)
	assert.True(t, errs.IsConflict(err))
}

func TestDeactivateCategoryCascades(t *testing.T) {
	db := testutil.NewTestDB(t)
	store := NewStore(db)

	category, err := store.CreateCategory("amenities", nil, true)
	require.NoError(t, err)
	value, err := store.CreateValue(category.ID, nil, nil, "Swimming Pool")
	require.NoError(t, err)

	require.NoError(t, store.DeactivateCategory(category.ID, true))

	reloaded, err := store.GetCategory(category.ID)
	require.NoError(t, err)
	assert.False(t, reloaded.IsActive)

	reloadedValue, err := store.GetValue(value.ID)
	require.NoError(t, err)
	assert.False(t, reloadedValue.IsActive)
}

func TestDeactivateCategoryNotFound(t *testing.T) {
	store := NewStore(testutil.NewTestDB(t))

	err := store.DeactivateCategory(12345, false)
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))
}

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

func newStoreWithCategory(t *testing.T, name string, customizable bool) (*Store, *model.Category) {
	t.Helper()
	store := NewStore(testutil.NewTestDB(t))
	category, err := store.CreateCategory(name, nil, customizable)
	require.NoError(t, err)
	return store, category
}

func TestCreateValueSlugSuffixes(t *testing.T) {
	store, category := newStoreWithCategory(t, "property_types", false)

	first, err := store.CreateValue(category.ID, nil, nil, "Studio Apartment")
	require.NoError(t, err)
	assert.Equal(t, "studio-apartment", first.Slug)

	// Same text (modulo punctuation) in the same scope takes the next counter.
	second, err := store.CreateValue(category.ID, nil, nil, "Studio Apartment!!")
	require.NoError(t, err)
	assert.Equal(t, "studio-apartment-1", second.Slug)

	third, err := store.CreateValue(category.ID, nil, nil, "Studio Apartment?")
	require.NoError(t, err)
	assert.Equal(t, "studio-apartment-2", third.Slug)
}

func TestSharedScopeSlugIndexBlocksDuplicates(t *testing.T) {
	store, category := newStoreWithCategory(t, "property_types", false)

	// Insert behind the store's back, bypassing the resolver's pre-check. The
	// shared scope has a NULL tenant, so its own partial index must hold.
	first := model.DropdownValue{CategoryID: category.ID, Value: "Villa", Slug: "villa", IsActive: true}
	require.NoError(t, store.db.Create(&first).Error)

	dup := model.DropdownValue{CategoryID: category.ID, Value: "Villa", Slug: "villa", IsActive: true}
	err := store.db.Create(&dup).Error
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	// Inactive rows stay out of the index. GORM substitutes the column
	// default (true) for a zero-value is_active on insert, so seed the
	// inactive row with raw SQL, still behind the store's back.
	require.NoError(t, store.db.Exec(
		"INSERT INTO dropdown_values (category_id, value, slug, is_active, created_at, updated_at) VALUES (?, ?, ?, 0, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)",
		category.ID, "Villa", "villa",
	).Error)
}

func TestCreateValueSlugScopedByCategory(t *testing.T) {
	store := NewStore(testutil.NewTestDB(t))

	cityCategory, err := store.CreateCategory("city", nil, false)
	require.NoError(t, err)
	regionCategory, err := store.CreateCategory("region", nil, false)
	require.NoError(t, err)

	inCity, err := store.CreateValue(cityCategory.ID, nil, nil, "North")
	require.NoError(t, err)
	inRegion, err := store.CreateValue(regionCategory.ID, nil, nil, "North")
	require.NoError(t, err)

	assert.Equal(t, "north", inCity.Slug)
	assert.Equal(t, "north", inRegion.Slug)
}

func TestCreateValueSlugScopedByTenant(t *testing.T) {
	store, category := newStoreWithCategory(t, "amenities", true)

	tenantA := uint(1)
	tenantB := uint(2)

	a, err := store.CreateValue(category.ID, &tenantA, nil, "Rooftop Garden")
	require.NoError(t, err)
	b, err := store.CreateValue(category.ID, &tenantB, nil, "Rooftop Garden")
	require.NoError(t, err)

	assert.Equal(t, "rooftop-garden", a.Slug)
	assert.Equal(t, "rooftop-garden", b.Slug)
}

func TestCreateValueTenantNeedsCustomizableCategory(t *testing.T) {
	store, category := newStoreWithCategory(t, "property_status", false)

	tenantID := uint(1)
	_, err := store.CreateValue(category.ID, &tenantID, nil, "Coming Soon")
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
}

func TestCreateValueCrossCategoryParent(t *testing.T) {
	store := NewStore(testutil.NewTestDB(t))

	cityCategory, err := store.CreateCategory("city", nil, false)
	require.NoError(t, err)
	otherCategory, err := store.CreateCategory("amenities", nil, false)
	require.NoError(t, err)

	city, err := store.CreateValue(cityCategory.ID, nil, nil, "Hyderabad")
	require.NoError(t, err)

	_, err = store.CreateValue(otherCategory.ID, nil, &city.ID, "Gachibowli")
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
}

func TestCreateValueDepthBound(t *testing.T) {
	store, category := newStoreWithCategory(t, "city", false)

	city, err := store.CreateValue(category.ID, nil, nil, "Hyderabad")
	require.NoError(t, err)
	area, err := store.CreateValue(category.ID, nil, &city.ID, "Gachibowli")
	require.NoError(t, err)

	_, err = store.CreateValue(category.ID, nil, &area.ID, "Block A")
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
}

func TestCreateValueEmptySlugSource(t *testing.T) {
	store, category := newStoreWithCategory(t, "amenities", false)

	_, err := store.CreateValue(category.ID, nil, nil, "!!!")
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
}

func TestRenameValueSameTextKeepsSlug(t *testing.T) {
	store, category := newStoreWithCategory(t, "property_types", false)

	value, err := store.CreateValue(category.ID, nil, nil, "Villa")
	require.NoError(t, err)

	renamed, err := store.RenameValue(value.ID, "Villa")
	require.NoError(t, err)
	assert.Equal(t, value.Slug, renamed.Slug)
}

func TestRenameValueRegeneratesSlug(t *testing.T) {
	store, category := newStoreWithCategory(t, "property_types", false)

	value, err := store.CreateValue(category.ID, nil, nil, "Villa")
	require.NoError(t, err)

	renamed, err := store.RenameValue(value.ID, "Luxury Villa")
	require.NoError(t, err)
	assert.Equal(t, "Luxury Villa", renamed.Value)
	assert.Equal(t, "luxury-villa", renamed.Slug)
}

func TestRenameValueExcludesSelf(t *testing.T) {
	store, category := newStoreWithCategory(t, "property_types", false)

	value, err := store.CreateValue(category.ID, nil, nil, "Villa!")
	require.NoError(t, err)
	require.Equal(t, "villa", value.Slug)

	// Renaming to text that slugs back to its own slug must not pick up a
	// -1 suffix.
	renamed, err := store.RenameValue(value.ID, "Villa")
	require.NoError(t, err)
	assert.Equal(t, "villa", renamed.Slug)
}

func TestRenameValueAvoidsCollision(t *testing.T) {
	store, category := newStoreWithCategory(t, "property_types", false)

	_, err := store.CreateValue(category.ID, nil, nil, "Villa")
	require.NoError(t, err)
	other, err := store.CreateValue(category.ID, nil, nil, "Plot")
	require.NoError(t, err)

	renamed, err := store.RenameValue(other.ID, "Villa")
	require.NoError(t, err)
	assert.Equal(t, "villa-1", renamed.Slug)
}

func TestResolvePath(t *testing.T) {
	store, category := newStoreWithCategory(t, "city", false)

	city, err := store.CreateValue(category.ID, nil, nil, "Hyderabad")
	require.NoError(t, err)
	area, err := store.CreateValue(category.ID, nil, &city.ID, "Gachibowli")
	require.NoError(t, err)

	path, err := store.ResolvePath(area.ID)
	require.NoError(t, err)
	require.Len(t, path, 2)
	assert.Equal(t, "Hyderabad", path[0].Value)
	assert.Equal(t, "Gachibowli", path[1].Value)

	rootPath, err := store.ResolvePath(city.ID)
	require.NoError(t, err)
	require.Len(t, rootPath, 1)
	assert.Equal(t, "Hyderabad", rootPath[0].Value)
}

func TestReactivateValueResolvesFreshSlug(t *testing.T) {
	store, category := newStoreWithCategory(t, "property_types", false)

	original, err := store.CreateValue(category.ID, nil, nil, "Villa")
	require.NoError(t, err)
	require.NoError(t, store.DeactivateValue(original.ID))

	// The freed slug gets taken while the value is inactive.
	usurper, err := store.CreateValue(category.ID, nil, nil, "Villa")
	require.NoError(t, err)
	require.Equal(t, "villa", usurper.Slug)

	reactivated, err := store.ReactivateValue(original.ID)
	require.NoError(t, err)
	assert.True(t, reactivated.IsActive)
	assert.Equal(t, "villa-1", reactivated.Slug)
}

func TestListValuesTenantSeesGlobalAndOwn(t *testing.T) {
	store, category := newStoreWithCategory(t, "amenities", true)

	tenantA := uint(1)
	tenantB := uint(2)

	_, err := store.CreateValue(category.ID, nil, nil, "Gym")
	require.NoError(t, err)
	_, err = store.CreateValue(category.ID, &tenantA, nil, "Private Cinema")
	require.NoError(t, err)
	_, err = store.CreateValue(category.ID, &tenantB, nil, "Helipad")
	require.NoError(t, err)

	values, err := store.ListValues(ValueFilter{CategoryID: category.ID, TenantID: &tenantA, ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, values, 2)

	names := []string{values[0].Value, values[1].Value}
	assert.Contains(t, names, "Gym")
	assert.Contains(t, names, "Private Cinema")
}

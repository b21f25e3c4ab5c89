package attachment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"estatehub_backend/internal/model"
	"estatehub_backend/internal/testutil"
	"estatehub_backend/pkg/errs"
)

func strPtr(s string) *string { return &s }

func TestUpsertSeoMergesDisjointFields(t *testing.T) {
	resolver := NewResolver(testutil.NewTestDB(t))

	_, err := resolver.UpsertSeo(1, model.EntityProperty, 42, SeoInput{
		MetaTitle: strPtr("X"),
	})
	require.NoError(t, err)

	_, err = resolver.UpsertSeo(1, model.EntityProperty, 42, SeoInput{
		MetaDescription: strPtr("Y"),
	})
	require.NoError(t, err)

	seo, err := resolver.GetSeo(1, model.EntityProperty, 42)
	require.NoError(t, err)
	assert.Equal(t, "X", seo.MetaTitle)
	assert.Equal(t, "Y", seo.MetaDescription)
}

func TestUpsertSeoOverwritesProvidedField(t *testing.T) {
	resolver := NewResolver(testutil.NewTestDB(t))

	_, err := resolver.UpsertSeo(1, model.EntityPost, 7, SeoInput{MetaTitle: strPtr("old")})
	require.NoError(t, err)
	_, err = resolver.UpsertSeo(1, model.EntityPost, 7, SeoInput{MetaTitle: strPtr("new")})
	require.NoError(t, err)

	seo, err := resolver.GetSeo(1, model.EntityPost, 7)
	require.NoError(t, err)
	assert.Equal(t, "new", seo.MetaTitle)
}

func TestSeoKeyedPerTenant(t *testing.T) {
	resolver := NewResolver(testutil.NewTestDB(t))

	_, err := resolver.UpsertSeo(1, model.EntityProperty, 42, SeoInput{MetaTitle: strPtr("tenant one")})
	require.NoError(t, err)
	_, err = resolver.UpsertSeo(2, model.EntityProperty, 42, SeoInput{MetaTitle: strPtr("tenant two")})
	require.NoError(t, err)

	first, err := resolver.GetSeo(1, model.EntityProperty, 42)
	require.NoError(t, err)
	second, err := resolver.GetSeo(2, model.EntityProperty, 42)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestGetSeoNotFound(t *testing.T) {
	resolver := NewResolver(testutil.NewTestDB(t))

	_, err := resolver.GetSeo(1, model.EntityProperty, 999)
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))
}

func TestEntityTypeClosedSet(t *testing.T) {
	resolver := NewResolver(testutil.NewTestDB(t))

	_, err := resolver.UpsertSeo(1, model.EntityType("widget"), 1, SeoInput{})
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))

	_, err = resolver.GetSeo(1, model.EntityType("widget"), 1)
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))

	err = resolver.DeleteSeo(1, model.EntityType("widget"), 1)
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
}

func TestDeleteSeoIdempotent(t *testing.T) {
	resolver := NewResolver(testutil.NewTestDB(t))

	_, err := resolver.UpsertSeo(1, model.EntityProperty, 42, SeoInput{MetaTitle: strPtr("X")})
	require.NoError(t, err)

	require.NoError(t, resolver.DeleteSeo(1, model.EntityProperty, 42))
	require.NoError(t, resolver.DeleteSeo(1, model.EntityProperty, 42)) // already gone
}

func seedFieldKey(t *testing.T, resolver *Resolver, tenantID uint, key string) model.CustomFieldKey {
	t.Helper()
	record := model.CustomFieldKey{
		TenantID:  tenantID,
		FieldKey:  key,
		Label:     key,
		FieldType: "text",
	}
	require.NoError(t, resolver.db.Create(&record).Error)
	return record
}

func TestSetCustomFieldUpserts(t *testing.T) {
	resolver := NewResolver(testutil.NewTestDB(t))
	key := seedFieldKey(t, resolver, 1, "balcony_count")

	_, err := resolver.SetCustomField(1, model.EntityProperty, 42, key.ID, datatypes.JSON(`"2"`))
	require.NoError(t, err)
	_, err = resolver.SetCustomField(1, model.EntityProperty, 42, key.ID, datatypes.JSON(`"3"`))
	require.NoError(t, err)

	records, err := resolver.ListCustomFields(1, model.EntityProperty, 42)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.JSONEq(t, `"3"`, string(records[0].Value))
}

func TestSetCustomFieldWrongTenant(t *testing.T) {
	resolver := NewResolver(testutil.NewTestDB(t))
	key := seedFieldKey(t, resolver, 2, "balcony_count")

	_, err := resolver.SetCustomField(1, model.EntityProperty, 42, key.ID, datatypes.JSON(`"2"`))
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
}

func TestDeleteForRemovesAllAttachments(t *testing.T) {
	resolver := NewResolver(testutil.NewTestDB(t))
	key := seedFieldKey(t, resolver, 1, "possession_date")

	_, err := resolver.UpsertSeo(1, model.EntityProperty, 42, SeoInput{MetaTitle: strPtr("X")})
	require.NoError(t, err)
	_, err = resolver.SetCustomField(1, model.EntityProperty, 42, key.ID, datatypes.JSON(`"2026-01"`))
	require.NoError(t, err)

	require.NoError(t, resolver.DeleteFor(model.EntityProperty, 42))

	_, err = resolver.GetSeo(1, model.EntityProperty, 42)
	assert.True(t, errs.IsNotFound(err))
	records, err := resolver.ListCustomFields(1, model.EntityProperty, 42)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestPurgeOrphans(t *testing.T) {
	db := testutil.NewTestDB(t)
	resolver := NewDefaultResolver(db)

	live := model.Property{TenantID: 1, Title: "Lakeview", Slug: "lakeview", IsActive: true}
	require.NoError(t, db.Create(&live).Error)

	_, err := resolver.UpsertSeo(1, model.EntityProperty, live.ID, SeoInput{MetaTitle: strPtr("keep")})
	require.NoError(t, err)
	_, err = resolver.UpsertSeo(1, model.EntityProperty, live.ID+1000, SeoInput{MetaTitle: strPtr("orphan")})
	require.NoError(t, err)

	purged, err := resolver.PurgeOrphans()
	require.NoError(t, err)
	assert.Equal(t, 1, purged)

	_, err = resolver.GetSeo(1, model.EntityProperty, live.ID)
	require.NoError(t, err)
	_, err = resolver.GetSeo(1, model.EntityProperty, live.ID+1000)
	assert.True(t, errs.IsNotFound(err))
}

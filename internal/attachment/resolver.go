package attachment

import (
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"estatehub_backend/internal/model"
	"estatehub_backend/pkg/errs"
)

// LiveChecker reports whether an entity id still exists in its own table.
// Attachments carry no declared foreign key, so existence checks are
// registered per entity type at construction.
type LiveChecker func(db *gorm.DB, entityID uint) (bool, error)

// Resolver upserts and resolves records addressed by
// (tenant, entityType, entityId) instead of a typed foreign key.
type Resolver struct {
	db       *gorm.DB
	checkers map[model.EntityType]LiveChecker
}

func NewResolver(db *gorm.DB) *Resolver {
	return &Resolver{db: db, checkers: make(map[model.EntityType]LiveChecker)}
}

// WithTx returns a resolver bound to tx, sharing the registered checkers.
func (r *Resolver) WithTx(tx *gorm.DB) *Resolver {
	return &Resolver{db: tx, checkers: r.checkers}
}

// RegisterLiveChecker wires an entity type's existence probe. Called once at
// construction time by whoever owns the entity table.
func (r *Resolver) RegisterLiveChecker(entityType model.EntityType, fn LiveChecker) {
	r.checkers[entityType] = fn
}

func validateEntityType(entityType model.EntityType) error {
	if !entityType.Valid() {
		return errs.Validationf("unknown entity type %q", entityType)
	}
	return nil
}

func (r *Resolver) GetSeo(tenantID uint, entityType model.EntityType, entityID uint) (*model.SeoMetadata, error) {
	if err := validateEntityType(entityType); err != nil {
		return nil, err
	}

	var seo model.SeoMetadata
	err := r.db.Where("tenant_id = ? AND entity_type = ? AND entity_id = ?",
		tenantID, entityType, entityID).First(&seo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NotFound("seo metadata", entityID)
	}
	if err != nil {
		return nil, err
	}
	return &seo, nil
}

// SeoInput carries a partial update: nil fields are left untouched, so two
// upserts with disjoint fields accumulate into one record.
type SeoInput struct {
	MetaTitle       *string `json:"meta_title"`
	MetaDescription *string `json:"meta_description"`
	MetaKeywords    *string `json:"meta_keywords"`
	OGTitle         *string `json:"og_title"`
	OGDescription   *string `json:"og_description"`
	OGImage         *string `json:"og_image"`
	CanonicalURL    *string `json:"canonical_url"`
}

func (in SeoInput) changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if in.MetaTitle != nil {
		changes["meta_title"] = *in.MetaTitle
	}
	if in.MetaDescription != nil {
		changes["meta_description"] = *in.MetaDescription
	}
	if in.MetaKeywords != nil {
		changes["meta_keywords"] = *in.MetaKeywords
	}
	if in.OGTitle != nil {
		changes["og_title"] = *in.OGTitle
	}
	if in.OGDescription != nil {
		changes["og_description"] = *in.OGDescription
	}
	if in.OGImage != nil {
		changes["og_image"] = *in.OGImage
	}
	if in.CanonicalURL != nil {
		changes["canonical_url"] = *in.CanonicalURL
	}
	return changes
}

// UpsertSeo creates the record on first call and merges only the provided
// fields afterwards.
func (r *Resolver) UpsertSeo(tenantID uint, entityType model.EntityType, entityID uint, in SeoInput) (*model.SeoMetadata, error) {
	if err := validateEntityType(entityType); err != nil {
		return nil, err
	}

	var seo model.SeoMetadata
	err := r.db.Where("tenant_id = ? AND entity_type = ? AND entity_id = ?",
		tenantID, entityType, entityID).First(&seo).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		seo = model.SeoMetadata{
			TenantID:   tenantID,
			EntityType: entityType,
			EntityID:   entityID,
		}
		applySeoInput(&seo, in)
		if err := r.db.Create(&seo).Error; err != nil {
			return nil, err
		}
		return &seo, nil
	}
	if err != nil {
		return nil, err
	}

	changes := in.changes()
	if len(changes) > 0 {
		if err := r.db.Model(&seo).Updates(changes).Error; err != nil {
			return nil, err
		}
	}
	return &seo, nil
}

func applySeoInput(seo *model.SeoMetadata, in SeoInput) {
	if in.MetaTitle != nil {
		seo.MetaTitle = *in.MetaTitle
	}
	if in.MetaDescription != nil {
		seo.MetaDescription = *in.MetaDescription
	}
	if in.MetaKeywords != nil {
		seo.MetaKeywords = *in.MetaKeywords
	}
	if in.OGTitle != nil {
		seo.OGTitle = *in.OGTitle
	}
	if in.OGDescription != nil {
		seo.OGDescription = *in.OGDescription
	}
	if in.OGImage != nil {
		seo.OGImage = *in.OGImage
	}
	if in.CanonicalURL != nil {
		seo.CanonicalURL = *in.CanonicalURL
	}
}

// DeleteSeo is idempotent: deleting an absent record is a no-op.
func (r *Resolver) DeleteSeo(tenantID uint, entityType model.EntityType, entityID uint) error {
	if err := validateEntityType(entityType); err != nil {
		return err
	}
	return r.db.Unscoped().
		Where("tenant_id = ? AND entity_type = ? AND entity_id = ?", tenantID, entityType, entityID).
		Delete(&model.SeoMetadata{}).Error
}

// SetCustomField upserts one field value per (entity_id, field_key_id).
func (r *Resolver) SetCustomField(tenantID uint, entityType model.EntityType, entityID, fieldKeyID uint, value datatypes.JSON) (*model.CustomFieldValue, error) {
	if err := validateEntityType(entityType); err != nil {
		return nil, err
	}

	var key model.CustomFieldKey
	if err := r.db.First(&key, fieldKeyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("custom field key", fieldKeyID)
		}
		return nil, err
	}
	if key.TenantID != tenantID {
		return nil, errs.Validationf("custom field key %d belongs to another tenant", fieldKeyID)
	}

	var record model.CustomFieldValue
	err := r.db.Where("entity_id = ? AND field_key_id = ?", entityID, fieldKeyID).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		record = model.CustomFieldValue{
			TenantID:   tenantID,
			EntityType: entityType,
			EntityID:   entityID,
			FieldKeyID: fieldKeyID,
			Value:      value,
		}
		if err := r.db.Create(&record).Error; err != nil {
			return nil, err
		}
		return &record, nil
	}
	if err != nil {
		return nil, err
	}

	if err := r.db.Model(&record).Update("value", value).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *Resolver) ListCustomFields(tenantID uint, entityType model.EntityType, entityID uint) ([]model.CustomFieldValue, error) {
	if err := validateEntityType(entityType); err != nil {
		return nil, err
	}

	var records []model.CustomFieldValue
	if err := r.db.Where("tenant_id = ? AND entity_type = ? AND entity_id = ?",
		tenantID, entityType, entityID).
		Preload("FieldKey").
		Order("id asc").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *Resolver) DeleteCustomField(entityID, fieldKeyID uint) error {
	return r.db.Unscoped().
		Where("entity_id = ? AND field_key_id = ?", entityID, fieldKeyID).
		Delete(&model.CustomFieldValue{}).Error
}

// DeleteFor removes every attachment addressed to an entity, across tenants.
// Entity delete paths call this inside their transaction, since the database
// cannot cascade across the polymorphic key.
func (r *Resolver) DeleteFor(entityType model.EntityType, entityID uint) error {
	if err := validateEntityType(entityType); err != nil {
		return err
	}
	if err := r.db.Unscoped().
		Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Delete(&model.SeoMetadata{}).Error; err != nil {
		return err
	}
	return r.db.Unscoped().
		Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Delete(&model.CustomFieldValue{}).Error
}

// PurgeOrphans deletes attachments whose entity no longer exists, for every
// entity type with a registered checker. Returns the number of entity keys
// purged. Run nightly by the cleanup cron as a backstop behind DeleteFor.
func (r *Resolver) PurgeOrphans() (int, error) {
	purged := 0
	for entityType, alive := range r.checkers {
		ids, err := r.attachedEntityIDs(entityType)
		if err != nil {
			return purged, err
		}
		for _, id := range ids {
			ok, err := alive(r.db, id)
			if err != nil {
				return purged, err
			}
			if ok {
				continue
			}
			if err := r.DeleteFor(entityType, id); err != nil {
				return purged, err
			}
			purged++
		}
	}
	return purged, nil
}

func (r *Resolver) attachedEntityIDs(entityType model.EntityType) ([]uint, error) {
	seen := map[uint]bool{}
	var ids []uint

	var seoIDs []uint
	if err := r.db.Model(&model.SeoMetadata{}).
		Where("entity_type = ?", entityType).
		Distinct().
		Pluck("entity_id", &seoIDs).Error; err != nil {
		return nil, err
	}
	var fieldIDs []uint
	if err := r.db.Model(&model.CustomFieldValue{}).
		Where("entity_type = ?", entityType).
		Distinct().
		Pluck("entity_id", &fieldIDs).Error; err != nil {
		return nil, err
	}

	for _, id := range append(seoIDs, fieldIDs...) {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids, nil
}

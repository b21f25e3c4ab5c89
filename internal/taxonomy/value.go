package taxonomy

import (
	"errors"

	"gorm.io/gorm"

	"estatehub_backend/internal/model"
	"estatehub_backend/pkg/errs"
	"estatehub_backend/pkg/slugify"
)

// slugAttempts bounds the resolve-insert retry loop when a concurrent writer
// takes the candidate between the pre-check and the insert.
const slugAttempts = 3

// valueScope bounds slug uniqueness to (category, tenant) over active rows.
// A NULL tenant is its own scope: global values never collide with
// tenant-owned ones.
func valueScope(categoryID uint, tenantID *uint) slugify.Scope {
	return func(q *gorm.DB) *gorm.DB {
		q = q.Where("category_id = ? AND is_active = ?", categoryID, true)
		if tenantID != nil {
			return q.Where("tenant_id = ?", *tenantID)
		}
		return q.Where("tenant_id IS NULL")
	}
}

// CreateValue adds a selectable value to a category. Tenant-owned values are
// only allowed under customizable categories; a parent value must belong to
// the same category and be a root (two-level bound, city -> area).
func (s *Store) CreateValue(categoryID uint, tenantID, parentID *uint, text string) (*model.DropdownValue, error) {
	category, err := s.GetCategory(categoryID)
	if err != nil {
		return nil, err
	}
	if !category.IsActive {
		return nil, errs.Validationf("category %d is inactive", categoryID)
	}
	if tenantID != nil && !category.IsCustomizable {
		return nil, errs.Validationf("category %q does not accept tenant values", category.Name)
	}

	if parentID != nil {
		var parent model.DropdownValue
		if err := s.db.First(&parent, *parentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errs.Validationf("parent value %d does not exist", *parentID)
			}
			return nil, err
		}
		if parent.CategoryID != categoryID {
			return nil, errs.Validationf("parent value %d belongs to a different category", *parentID)
		}
		if parent.ParentID != nil {
			return nil, errs.Validationf("value hierarchy is limited to two levels")
		}
	}

	base, err := slugify.Make(text)
	if err != nil {
		return nil, err
	}

	for attempt := 0; attempt < slugAttempts; attempt++ {
		finalSlug, err := slugify.Resolve(s.db, &model.DropdownValue{}, valueScope(categoryID, tenantID), base, 0)
		if err != nil {
			return nil, err
		}

		value := model.DropdownValue{
			CategoryID: categoryID,
			TenantID:   tenantID,
			ParentID:   parentID,
			Value:      text,
			Slug:       finalSlug,
			IsActive:   true,
		}
		err = s.db.Create(&value).Error
		if err == nil {
			return &value, nil
		}
		if !slugify.IsDuplicate(err) {
			return nil, err
		}
		// Lost the race for this candidate; the winner's row is now visible
		// to the next Resolve pass.
	}
	return nil, errs.Conflictf("could not allocate a unique slug for %q", text)
}

// RenameValue changes the value text. The slug is only regenerated when the
// text actually changed, and the recomputation excludes the row itself.
func (s *Store) RenameValue(id uint, newText string) (*model.DropdownValue, error) {
	value, err := s.GetValue(id)
	if err != nil {
		return nil, err
	}
	if value.Value == newText {
		return value, nil
	}

	base, err := slugify.Make(newText)
	if err != nil {
		return nil, err
	}

	for attempt := 0; attempt < slugAttempts; attempt++ {
		finalSlug, err := slugify.Resolve(s.db, &model.DropdownValue{}, valueScope(value.CategoryID, value.TenantID), base, value.ID)
		if err != nil {
			return nil, err
		}

		err = s.db.Model(value).Updates(map[string]interface{}{
			"value": newText,
			"slug":  finalSlug,
		}).Error
		if err == nil {
			value.Value = newText
			value.Slug = finalSlug
			return value, nil
		}
		if !slugify.IsDuplicate(err) {
			return nil, err
		}
	}
	return nil, errs.Conflictf("could not allocate a unique slug for %q", newText)
}

func (s *Store) GetValue(id uint) (*model.DropdownValue, error) {
	var value model.DropdownValue
	if err := s.db.First(&value, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("dropdown value", id)
		}
		return nil, err
	}
	return &value, nil
}

func (s *Store) DeactivateValue(id uint) error {
	value, err := s.GetValue(id)
	if err != nil {
		return err
	}
	if !value.IsActive {
		return nil
	}
	return s.db.Model(value).Update("is_active", false).Error
}

// ReactivateValue is the explicit admin override for the inactive -> active
// transition. The freed slug may have been taken while the value was
// inactive, so the slug is re-resolved from the value text.
func (s *Store) ReactivateValue(id uint) (*model.DropdownValue, error) {
	value, err := s.GetValue(id)
	if err != nil {
		return nil, err
	}
	if value.IsActive {
		return value, nil
	}

	base, err := slugify.Make(value.Value)
	if err != nil {
		return nil, err
	}
	finalSlug, err := slugify.Resolve(s.db, &model.DropdownValue{}, valueScope(value.CategoryID, value.TenantID), base, value.ID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(value).Updates(map[string]interface{}{
		"slug":      finalSlug,
		"is_active": true,
	}).Error; err != nil {
		return nil, err
	}
	value.Slug = finalSlug
	value.IsActive = true
	return value, nil
}

// ResolvePath returns the root-to-leaf chain for a value. With the two-level
// bound the result has at most two entries (city, area).
func (s *Store) ResolvePath(valueID uint) ([]model.DropdownValue, error) {
	value, err := s.GetValue(valueID)
	if err != nil {
		return nil, err
	}
	if value.ParentID == nil {
		return []model.DropdownValue{*value}, nil
	}

	parent, err := s.GetValue(*value.ParentID)
	if err != nil {
		return nil, err
	}
	return []model.DropdownValue{*parent, *value}, nil
}

type ValueFilter struct {
	CategoryID uint
	TenantID   *uint
	ParentID   *uint
	ActiveOnly bool
}

// ListValues returns values in a category. With a tenant filter the result is
// the tenant's own values plus the shared (NULL tenant) ones.
func (s *Store) ListValues(filter ValueFilter) ([]model.DropdownValue, error) {
	q := s.db.Model(&model.DropdownValue{}).Where("category_id = ?", filter.CategoryID)
	if filter.TenantID != nil {
		q = q.Where("tenant_id IS NULL OR tenant_id = ?", *filter.TenantID)
	}
	if filter.ParentID != nil {
		q = q.Where("parent_id = ?", *filter.ParentID)
	}
	if filter.ActiveOnly {
		q = q.Where("is_active = ?", true)
	}

	var values []model.DropdownValue
	if err := q.Order("sort_order asc, value asc").Find(&values).Error; err != nil {
		return nil, err
	}
	return values, nil
}

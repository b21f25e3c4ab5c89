package taxonomy

import (
	"errors"

	"gorm.io/gorm"

	"estatehub_backend/internal/model"
	"estatehub_backend/pkg/errs"
)

// Store manages dropdown categories and their values. All operations run
// against the handle it was built with, so a caller can scope a store to a
// transaction via WithTx.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// WithTx returns a store bound to tx. Used by controllers that combine
// taxonomy writes with entity writes in one transaction.
func (s *Store) WithTx(tx *gorm.DB) *Store {
	return &Store{db: tx}
}

// CreateCategory creates a level-0 group, or a level-1 sub-group when
// parentID is given. The parent must be an active level-0 category.
func (s *Store) CreateCategory(name string, parentID *uint, customizable bool) (*model.Category, error) {
	level := model.CategoryLevelRoot
	if parentID != nil {
		var parent model.Category
		if err := s.db.First(&parent, *parentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errs.Validationf("parent category %d does not exist", *parentID)
			}
			return nil, err
		}
		if !parent.IsActive {
			return nil, errs.Validationf("parent category %d is inactive", *parentID)
		}
		if parent.Level != model.CategoryLevelRoot {
			return nil, errs.Validationf("category depth is limited to %d levels", model.CategoryMaxLevel+1)
		}
		level = model.CategoryLevelSub
	}

	dup := s.db.Model(&model.Category{}).Where("name = ?", name)
	if parentID != nil {
		dup = dup.Where("parent_id = ?", *parentID)
	} else {
		dup = dup.Where("parent_id IS NULL")
	}
	var count int64
	if err := dup.Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errs.Conflictf("category %q already exists under this parent", name)
	}

	category := model.Category{
		Name:           name,
		ParentID:       parentID,
		Level:          level,
		IsActive:       true,
		IsCustomizable: customizable,
	}
	if err := s.db.Create(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Insert lost a race the pre-check could not see.
			return nil, errs.Conflictf("category %q already exists under this parent", name)
		}
		return nil, err
	}
	return &category, nil
}

type CategoryFilter struct {
	Level      *int
	ParentID   *uint
	ActiveOnly bool
}

func (s *Store) ListCategories(filter CategoryFilter) ([]model.Category, error) {
	q := s.db.Model(&model.Category{})
	if filter.Level != nil {
		q = q.Where("level = ?", *filter.Level)
	}
	if filter.ParentID != nil {
		q = q.Where("parent_id = ?", *filter.ParentID)
	}
	if filter.ActiveOnly {
		q = q.Where("is_active = ?", true)
	}

	var categories []model.Category
	if err := q.Order("sort_order asc, name asc").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *Store) GetCategory(id uint) (*model.Category, error) {
	var category model.Category
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("category", id)
		}
		return nil, err
	}
	return &category, nil
}

// DeactivateCategory soft-deletes a category. Active values still referencing
// it block the call unless cascade is set, in which case they are deactivated
// in the same transaction. There is no undelete path; reactivation of values
// goes through the explicit ReactivateValue override.
func (s *Store) DeactivateCategory(id uint, cascade bool) error {
	category, err := s.GetCategory(id)
	if err != nil {
		return err
	}
	if !category.IsActive {
		return nil
	}

	var live int64
	if err := s.db.Model(&model.DropdownValue{}).
		Where("category_id = ? AND is_active = ?", id, true).
		Count(&live).Error; err != nil {
		return err
	}
	if live > 0 && !cascade {
		return errs.Conflictf("category %d has %d active values; deactivate with cascade", id, live)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if live > 0 {
			if err := tx.Model(&model.DropdownValue{}).
				Where("category_id = ? AND is_active = ?", id, true).
				Update("is_active", false).Error; err != nil {
				return err
			}
		}
		return tx.Model(&model.Category{}).
			Where("id = ?", id).
			Update("is_active", false).Error
	})
}

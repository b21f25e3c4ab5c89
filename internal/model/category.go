package model

import (
	"gorm.io/gorm"
)

// Category levels: 0 = root group ("property_types"), 1 = sub-group. Depth is
// capped at 1; the level column is denormalized so depth checks never recurse.
const (
	CategoryLevelRoot = 0
	CategoryLevelSub  = 1
	CategoryMaxLevel  = 1
)

type Category struct {
	gorm.Model
	// Root categories have a NULL parent, which the composite index treats as
	// distinct, so roots get their own partial index on name alone.
	Name     string `json:"name" gorm:"uniqueIndex:idx_category_name_parent;uniqueIndex:idx_category_root_name,where:parent_id IS NULL;not null"`
	ParentID *uint  `json:"parent_id" gorm:"uniqueIndex:idx_category_name_parent"`
	Level    int    `json:"level" gorm:"not null;default:0"`

	SortOrder int  `json:"sort_order" gorm:"default:0"`
	IsActive  bool `json:"is_active" gorm:"default:true"`

	// Tenants may add their own values under customizable categories.
	IsCustomizable bool `json:"is_customizable" gorm:"default:false"`

	Parent   *Category       `json:"-" gorm:"foreignKey:ParentID"`
	Children []Category      `json:"children,omitempty" gorm:"foreignKey:ParentID"`
	Values   []DropdownValue `json:"-" gorm:"foreignKey:CategoryID"`
}

// DropdownValue is a selectable item inside a category. Slug is unique within
// (category_id, tenant_id); a NULL tenant means the value is shared across all
// tenants. ParentID builds two-level value chains (city -> area) and must stay
// inside the same category.
type DropdownValue struct {
	gorm.Model
	CategoryID uint   `json:"category_id" gorm:"uniqueIndex:idx_value_scope_slug;uniqueIndex:idx_value_global_slug;not null"`
	TenantID   *uint  `json:"tenant_id" gorm:"uniqueIndex:idx_value_scope_slug"`
	ParentID   *uint  `json:"parent_id" gorm:"index"`
	Value      string `json:"value" gorm:"not null"`
	// Partial indexes: only active rows contend for a slug, so a deactivated
	// value frees its slug for reuse inside the scope. The shared scope has a
	// NULL tenant, where the composite index enforces nothing, so it gets its
	// own index on (category_id, slug).
	Slug string `json:"slug" gorm:"uniqueIndex:idx_value_scope_slug,where:is_active;uniqueIndex:idx_value_global_slug,where:tenant_id IS NULL AND is_active;not null"`

	SortOrder int  `json:"sort_order" gorm:"default:0"`
	IsActive  bool `json:"is_active" gorm:"default:true"`

	Category Category       `json:"-" gorm:"foreignKey:CategoryID"`
	Parent   *DropdownValue `json:"-" gorm:"foreignKey:ParentID"`
}

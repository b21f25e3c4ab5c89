package model

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// EntityType addresses attachment rows across unrelated entity tables. The set
// is closed: anything outside it is rejected before touching storage, since
// the attachment tables carry no declared foreign key.
type EntityType string

const (
	EntityProperty EntityType = "property"
	EntityContent  EntityType = "content"
	EntityPage     EntityType = "page"
	EntityCategory EntityType = "category"
	EntityTag      EntityType = "tag"
	EntityPost     EntityType = "post"
)

func (t EntityType) Valid() bool {
	switch t {
	case EntityProperty, EntityContent, EntityPage, EntityCategory, EntityTag, EntityPost:
		return true
	}
	return false
}

// SeoMetadata holds at most one row per (tenant, entity_type, entity_id).
type SeoMetadata struct {
	gorm.Model
	TenantID   uint       `json:"tenant_id" gorm:"uniqueIndex:idx_seo_entity;not null"`
	EntityType EntityType `json:"entity_type" gorm:"uniqueIndex:idx_seo_entity;not null"`
	EntityID   uint       `json:"entity_id" gorm:"uniqueIndex:idx_seo_entity;not null"`

	MetaTitle       string `json:"meta_title"`
	MetaDescription string `json:"meta_description" gorm:"type:text"`
	MetaKeywords    string `json:"meta_keywords"`
	OGTitle         string `json:"og_title"`
	OGDescription   string `json:"og_description" gorm:"type:text"`
	OGImage         string `json:"og_image"`
	CanonicalURL    string `json:"canonical_url"`
}

// CustomFieldKey defines a tenant's reusable field ("Balcony Count",
// "Possession Date"). CategoryID optionally ties the key to a taxonomy group.
type CustomFieldKey struct {
	gorm.Model
	TenantID   uint   `json:"tenant_id" gorm:"uniqueIndex:idx_field_key;not null"`
	FieldKey   string `json:"field_key" gorm:"uniqueIndex:idx_field_key;not null"`
	Label      string `json:"label" gorm:"not null"`
	FieldType  string `json:"field_type" gorm:"default:'text'"` // text, number, boolean, list
	CategoryID *uint  `json:"category_id"`

	Category *Category `json:"-" gorm:"foreignKey:CategoryID"`
}

// CustomFieldValue stores one value per (entity_id, field_key_id). Value is
// free-form JSON so a field can hold a scalar or a list.
type CustomFieldValue struct {
	gorm.Model
	TenantID   uint           `json:"tenant_id" gorm:"index;not null"`
	EntityType EntityType     `json:"entity_type" gorm:"index;not null"`
	EntityID   uint           `json:"entity_id" gorm:"uniqueIndex:idx_field_value;not null"`
	FieldKeyID uint           `json:"field_key_id" gorm:"uniqueIndex:idx_field_value;not null"`
	Value      datatypes.JSON `json:"value"`

	FieldKey CustomFieldKey `json:"field_key" gorm:"foreignKey:FieldKeyID"`
}

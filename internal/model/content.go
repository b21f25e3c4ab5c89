package model

import (
	"gorm.io/gorm"
)

// ContentItem is a generic CMS page/block (about page, landing section).
type ContentItem struct {
	gorm.Model
	TenantID uint   `json:"tenant_id" gorm:"uniqueIndex:idx_tenant_content_slug;not null"`
	Title    string `json:"title" gorm:"not null"`
	Slug     string `json:"slug" gorm:"uniqueIndex:idx_tenant_content_slug;not null"`

	Body     string `json:"body" gorm:"type:text"`
	Kind     string `json:"kind" gorm:"default:'page'"` // page, section, block
	IsActive bool   `json:"is_active" gorm:"default:true"`

	Tenant Tenant `json:"-" gorm:"foreignKey:TenantID"`
}

// FaqCategory groups FAQ items; item slugs are unique inside their category.
type FaqCategory struct {
	gorm.Model
	TenantID uint   `json:"tenant_id" gorm:"uniqueIndex:idx_tenant_faq_category_slug;not null"`
	Name     string `json:"name" gorm:"not null"`
	Slug     string `json:"slug" gorm:"uniqueIndex:idx_tenant_faq_category_slug;not null"`

	SortOrder int  `json:"sort_order" gorm:"default:0"`
	IsActive  bool `json:"is_active" gorm:"default:true"`

	Items []FaqItem `json:"items,omitempty" gorm:"foreignKey:FaqCategoryID;constraint:OnDelete:CASCADE"`
}

type FaqItem struct {
	gorm.Model
	TenantID      uint   `json:"tenant_id" gorm:"uniqueIndex:idx_faq_item_slug;not null"`
	FaqCategoryID uint   `json:"faq_category_id" gorm:"uniqueIndex:idx_faq_item_slug;not null"`
	Question      string `json:"question" gorm:"not null"`
	Slug          string `json:"slug" gorm:"uniqueIndex:idx_faq_item_slug;not null"`
	Answer        string `json:"answer" gorm:"type:text"`

	SortOrder int  `json:"sort_order" gorm:"default:0"`
	IsActive  bool `json:"is_active" gorm:"default:true"`

	FaqCategory FaqCategory `json:"-" gorm:"foreignKey:FaqCategoryID;constraint:OnDelete:CASCADE"`
}

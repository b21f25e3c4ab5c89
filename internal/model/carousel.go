package model

import (
	"gorm.io/gorm"
)

// ProjectCarousel is a curated, ordered set of properties for a landing page.
type ProjectCarousel struct {
	gorm.Model
	TenantID uint   `json:"tenant_id" gorm:"uniqueIndex:idx_tenant_carousel_slug;not null"`
	Title    string `json:"title" gorm:"not null"`
	Slug     string `json:"slug" gorm:"uniqueIndex:idx_tenant_carousel_slug;not null"`

	IsActive bool `json:"is_active" gorm:"default:true"`

	Tenant Tenant                `json:"-" gorm:"foreignKey:TenantID"`
	Items  []ProjectCarouselItem `json:"items,omitempty" gorm:"foreignKey:CarouselID;constraint:OnDelete:CASCADE"`
}

type ProjectCarouselItem struct {
	gorm.Model
	CarouselID uint `json:"carousel_id" gorm:"uniqueIndex:idx_carousel_property;not null"`
	PropertyID uint `json:"property_id" gorm:"uniqueIndex:idx_carousel_property;not null"`
	SortOrder  int  `json:"sort_order" gorm:"default:0"`

	Carousel ProjectCarousel `json:"-" gorm:"foreignKey:CarouselID;constraint:OnDelete:CASCADE"`
	Property Property        `json:"property" gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`
}

func (i ProjectCarouselItem) Pair() (uint, uint) { return i.CarouselID, i.PropertyID }

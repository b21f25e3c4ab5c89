package model

import (
	"gorm.io/gorm"
)

type Property struct {
	gorm.Model
	TenantID uint   `json:"tenant_id" gorm:"uniqueIndex:idx_tenant_property_slug;not null"`
	Title    string `json:"title" gorm:"not null"`
	Slug     string `json:"slug" gorm:"uniqueIndex:idx_tenant_property_slug;not null"`

	Description string  `json:"description" gorm:"type:text"`
	Price       float64 `json:"price"`

	// Taxonomy references (dropdown_values rows)
	PropertyTypeID *uint `json:"property_type_id"`
	StatusID       *uint `json:"status_id"`
	CityID         *uint `json:"city_id"`
	AreaID         *uint `json:"area_id"`

	Address   string `json:"address" gorm:"type:text"`
	SortOrder int    `json:"sort_order" gorm:"default:0"`
	IsActive  bool   `json:"is_active" gorm:"default:true"`

	Tenant       Tenant         `json:"-" gorm:"foreignKey:TenantID"`
	PropertyType *DropdownValue `json:"property_type,omitempty" gorm:"foreignKey:PropertyTypeID"`
	Status       *DropdownValue `json:"status,omitempty" gorm:"foreignKey:StatusID"`
	City         *DropdownValue `json:"city,omitempty" gorm:"foreignKey:CityID"`
	Area         *DropdownValue `json:"area,omitempty" gorm:"foreignKey:AreaID"`

	Amenities      []PropertyAmenity       `json:"amenities,omitempty" gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`
	Configurations []PropertyConfiguration `json:"configurations,omitempty" gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`
	PriceRanges    []PropertyPriceRange    `json:"price_ranges,omitempty" gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`
}

// PropertyAmenity links a property to an amenity dropdown value.
type PropertyAmenity struct {
	gorm.Model
	PropertyID uint `json:"property_id" gorm:"uniqueIndex:idx_property_amenity;not null"`
	ValueID    uint `json:"value_id" gorm:"uniqueIndex:idx_property_amenity;not null"`

	Property Property      `json:"-" gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`
	Value    DropdownValue `json:"value" gorm:"foreignKey:ValueID;constraint:OnDelete:CASCADE"`
}

func (PropertyAmenity) TableName() string { return "property_amenities" }

func (a PropertyAmenity) Pair() (uint, uint) { return a.PropertyID, a.ValueID }

// PropertyConfiguration links a property to a configuration value (2BHK, 3BHK).
type PropertyConfiguration struct {
	gorm.Model
	PropertyID uint `json:"property_id" gorm:"uniqueIndex:idx_property_configuration;not null"`
	ValueID    uint `json:"value_id" gorm:"uniqueIndex:idx_property_configuration;not null"`

	Property Property      `json:"-" gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`
	Value    DropdownValue `json:"value" gorm:"foreignKey:ValueID;constraint:OnDelete:CASCADE"`
}

func (c PropertyConfiguration) Pair() (uint, uint) { return c.PropertyID, c.ValueID }

// PropertyPriceRange links a property to a price-range value.
type PropertyPriceRange struct {
	gorm.Model
	PropertyID uint `json:"property_id" gorm:"uniqueIndex:idx_property_price_range;not null"`
	ValueID    uint `json:"value_id" gorm:"uniqueIndex:idx_property_price_range;not null"`

	Property Property      `json:"-" gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`
	Value    DropdownValue `json:"value" gorm:"foreignKey:ValueID;constraint:OnDelete:CASCADE"`
}

func (r PropertyPriceRange) Pair() (uint, uint) { return r.PropertyID, r.ValueID }

package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Tenant struct {
	gorm.Model
	Name   string `json:"name" gorm:"not null"`
	Slug   string `json:"slug" gorm:"uniqueIndex;not null"`
	APIKey string `json:"-" gorm:"uniqueIndex;not null"`

	IsActive bool `json:"is_active" gorm:"default:true"`

	Users []User `json:"-"`
}

// BeforeCreate issues the tenant API key
func (t *Tenant) BeforeCreate(tx *gorm.DB) error {
	if t.APIKey == "" {
		t.APIKey = uuid.NewString()
	}
	return nil
}

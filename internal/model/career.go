package model

import (
	"time"

	"gorm.io/gorm"
)

type CareerJob struct {
	gorm.Model
	TenantID uint   `json:"tenant_id" gorm:"uniqueIndex:idx_tenant_job_slug;not null"`
	Title    string `json:"title" gorm:"not null"`
	Slug     string `json:"slug" gorm:"uniqueIndex:idx_tenant_job_slug;not null"`

	Description string `json:"description" gorm:"type:text"`

	// Taxonomy references (dropdown_values rows)
	DepartmentID *uint `json:"department_id"`
	JobTypeID    *uint `json:"job_type_id"`
	LocationID   *uint `json:"location_id"`

	IsActive bool       `json:"is_active" gorm:"default:true"`
	ClosesAt *time.Time `json:"closes_at"`

	Tenant     Tenant         `json:"-" gorm:"foreignKey:TenantID"`
	Department *DropdownValue `json:"department,omitempty" gorm:"foreignKey:DepartmentID"`
	JobType    *DropdownValue `json:"job_type,omitempty" gorm:"foreignKey:JobTypeID"`
	Location   *DropdownValue `json:"location,omitempty" gorm:"foreignKey:LocationID"`
}

package model

import (
	"time"

	"gorm.io/gorm"
)

type BlogPost struct {
	gorm.Model
	TenantID uint   `json:"tenant_id" gorm:"uniqueIndex:idx_tenant_post_slug;not null"`
	Title    string `json:"title" gorm:"not null"`
	Slug     string `json:"slug" gorm:"uniqueIndex:idx_tenant_post_slug;not null"`

	Excerpt     string     `json:"excerpt" gorm:"type:text"`
	Body        string     `json:"body" gorm:"type:text"`
	CoverImage  string     `json:"cover_image"`
	IsActive    bool       `json:"is_active" gorm:"default:true"`
	PublishedAt *time.Time `json:"published_at"`

	Tenant     Tenant             `json:"-" gorm:"foreignKey:TenantID"`
	Categories []BlogPostCategory `json:"categories,omitempty" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	Tags       []BlogPostTag      `json:"tags,omitempty" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	Videos     []BlogPostVideo    `json:"videos,omitempty" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}

// ContentCategory groups blog posts; slug is unique per tenant.
type ContentCategory struct {
	gorm.Model
	TenantID uint   `json:"tenant_id" gorm:"uniqueIndex:idx_tenant_content_category_slug;not null"`
	Name     string `json:"name" gorm:"not null"`
	Slug     string `json:"slug" gorm:"uniqueIndex:idx_tenant_content_category_slug;not null"`

	SortOrder int  `json:"sort_order" gorm:"default:0"`
	IsActive  bool `json:"is_active" gorm:"default:true"`
}

type ContentTag struct {
	gorm.Model
	TenantID uint   `json:"tenant_id" gorm:"uniqueIndex:idx_tenant_content_tag_slug;not null"`
	Name     string `json:"name" gorm:"not null"`
	Slug     string `json:"slug" gorm:"uniqueIndex:idx_tenant_content_tag_slug;not null"`

	IsActive bool `json:"is_active" gorm:"default:true"`
}

type Video struct {
	gorm.Model
	TenantID uint   `json:"tenant_id" gorm:"index;not null"`
	Title    string `json:"title" gorm:"not null"`
	URL      string `json:"url" gorm:"not null"`
}

type BlogPostCategory struct {
	gorm.Model
	PostID     uint `json:"post_id" gorm:"uniqueIndex:idx_post_category;not null"`
	CategoryID uint `json:"category_id" gorm:"uniqueIndex:idx_post_category;not null"`

	Post     BlogPost        `json:"-" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	Category ContentCategory `json:"category" gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}

func (c BlogPostCategory) Pair() (uint, uint) { return c.PostID, c.CategoryID }

type BlogPostTag struct {
	gorm.Model
	PostID uint `json:"post_id" gorm:"uniqueIndex:idx_post_tag;not null"`
	TagID  uint `json:"tag_id" gorm:"uniqueIndex:idx_post_tag;not null"`

	Post BlogPost   `json:"-" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	Tag  ContentTag `json:"tag" gorm:"foreignKey:TagID;constraint:OnDelete:CASCADE"`
}

func (t BlogPostTag) Pair() (uint, uint) { return t.PostID, t.TagID }

// BlogPostVideo is an ordered link; SortOrder drives playlist rendering.
type BlogPostVideo struct {
	gorm.Model
	PostID    uint `json:"post_id" gorm:"uniqueIndex:idx_post_video;not null"`
	VideoID   uint `json:"video_id" gorm:"uniqueIndex:idx_post_video;not null"`
	SortOrder int  `json:"sort_order" gorm:"default:0"`

	Post  BlogPost `json:"-" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	Video Video    `json:"video" gorm:"foreignKey:VideoID;constraint:OnDelete:CASCADE"`
}

func (v BlogPostVideo) Pair() (uint, uint) { return v.PostID, v.VideoID }

package attachment

import (
	"gorm.io/gorm"

	"estatehub_backend/internal/model"
)

// NewDefaultResolver builds a resolver with a live-checker for every entity
// type in the closed set. Both "content" and "page" resolve against content
// items; pages are content items with kind "page".
func NewDefaultResolver(db *gorm.DB) *Resolver {
	r := NewResolver(db)
	r.RegisterLiveChecker(model.EntityProperty, existsIn(&model.Property{}))
	r.RegisterLiveChecker(model.EntityPost, existsIn(&model.BlogPost{}))
	r.RegisterLiveChecker(model.EntityContent, existsIn(&model.ContentItem{}))
	r.RegisterLiveChecker(model.EntityPage, existsIn(&model.ContentItem{}))
	r.RegisterLiveChecker(model.EntityCategory, existsIn(&model.ContentCategory{}))
	r.RegisterLiveChecker(model.EntityTag, existsIn(&model.ContentTag{}))
	return r
}

func existsIn(table interface{}) LiveChecker {
	return func(db *gorm.DB, entityID uint) (bool, error) {
		var count int64
		err := db.Model(table).Where("id = ?", entityID).Count(&count).Error
		return count > 0, err
	}
}

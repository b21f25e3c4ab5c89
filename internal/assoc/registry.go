package assoc

import (
	"gorm.io/gorm"

	"estatehub_backend/internal/model"
)

// Graph constructors. Each caller builds the graphs it needs; there is no
// shared registration step.

func PropertyAmenities(db *gorm.DB) *Graph[model.PropertyAmenity] {
	return NewGraph(db, "property_id", "value_id", "", func(left, right uint, _ Metadata) model.PropertyAmenity {
		return model.PropertyAmenity{PropertyID: left, ValueID: right}
	})
}

func PropertyConfigurations(db *gorm.DB) *Graph[model.PropertyConfiguration] {
	return NewGraph(db, "property_id", "value_id", "", func(left, right uint, _ Metadata) model.PropertyConfiguration {
		return model.PropertyConfiguration{PropertyID: left, ValueID: right}
	})
}

func PropertyPriceRanges(db *gorm.DB) *Graph[model.PropertyPriceRange] {
	return NewGraph(db, "property_id", "value_id", "", func(left, right uint, _ Metadata) model.PropertyPriceRange {
		return model.PropertyPriceRange{PropertyID: left, ValueID: right}
	})
}

func BlogPostCategories(db *gorm.DB) *Graph[model.BlogPostCategory] {
	return NewGraph(db, "post_id", "category_id", "", func(left, right uint, _ Metadata) model.BlogPostCategory {
		return model.BlogPostCategory{PostID: left, CategoryID: right}
	})
}

func BlogPostTags(db *gorm.DB) *Graph[model.BlogPostTag] {
	return NewGraph(db, "post_id", "tag_id", "", func(left, right uint, _ Metadata) model.BlogPostTag {
		return model.BlogPostTag{PostID: left, TagID: right}
	})
}

func BlogPostVideos(db *gorm.DB) *Graph[model.BlogPostVideo] {
	return NewGraph(db, "post_id", "video_id", "sort_order", func(left, right uint, meta Metadata) model.BlogPostVideo {
		return model.BlogPostVideo{PostID: left, VideoID: right, SortOrder: SortOrder(meta)}
	})
}

func CarouselItems(db *gorm.DB) *Graph[model.ProjectCarouselItem] {
	return NewGraph(db, "carousel_id", "property_id", "sort_order", func(left, right uint, meta Metadata) model.ProjectCarouselItem {
		return model.ProjectCarouselItem{CarouselID: left, PropertyID: right, SortOrder: SortOrder(meta)}
	})
}

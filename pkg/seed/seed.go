package seed

import (
	"log"

	"gorm.io/gorm"

	"estatehub_backend/internal/model"
	"estatehub_backend/internal/taxonomy"
	"estatehub_backend/pkg/errs"
)

var defaultTaxonomies = []struct {
	Category     string
	Customizable bool
	Values       []string
}{
	{"property_types", false, []string{"Apartment", "Villa", "Plot", "Commercial", "Independent House"}},
	{"property_status", false, []string{"Ready To Move", "Under Construction", "New Launch", "Resale"}},
	{"configurations", false, []string{"1 BHK", "2 BHK", "3 BHK", "4 BHK", "4+ BHK"}},
	{"price_ranges", false, []string{"Under 50L", "50L - 1Cr", "1Cr - 2Cr", "2Cr - 5Cr", "Above 5Cr"}},
	{"amenities", true, []string{"Swimming Pool", "Gym", "Club House", "Children's Play Area", "24x7 Security", "Power Backup"}},
	{"departments", true, []string{"Sales", "Marketing", "Engineering", "Human Resources"}},
	{"job_types", false, []string{"Full Time", "Part Time", "Contract", "Internship"}},
}

var defaultCities = map[string][]string{
	"Hyderabad": {"Gachibowli", "Kondapur", "Madhapur", "Kokapet"},
	"Bengaluru": {"Whitefield", "Sarjapur Road", "Hebbal"},
}

// SeedDefaultTaxonomies populates the shared dropdown categories and values.
// Safe to run on every boot: existing records are left alone.
func SeedDefaultTaxonomies(db *gorm.DB) {
	store := taxonomy.NewStore(db)

	for _, entry := range defaultTaxonomies {
		category, err := ensureCategory(db, store, entry.Category, entry.Customizable)
		if err != nil {
			log.Printf("Error seeding category %s: %v", entry.Category, err)
			continue
		}
		for _, text := range entry.Values {
			if err := ensureValue(db, store, category.ID, nil, text); err != nil {
				log.Printf("Error seeding value %s: %v", text, err)
			}
		}
	}

	cityCategory, err := ensureCategory(db, store, "city", false)
	if err != nil {
		log.Printf("Error seeding city category: %v", err)
		return
	}
	for city, areas := range defaultCities {
		var parent model.DropdownValue
		if err := db.Where("category_id = ? AND tenant_id IS NULL AND value = ?", cityCategory.ID, city).
			First(&parent).Error; err != nil {
			created, err := store.CreateValue(cityCategory.ID, nil, nil, city)
			if err != nil {
				log.Printf("Error seeding city %s: %v", city, err)
				continue
			}
			parent = *created
		}
		for _, area := range areas {
			if err := ensureValue(db, store, cityCategory.ID, &parent.ID, area); err != nil {
				log.Printf("Error seeding area %s: %v", area, err)
			}
		}
	}

	log.Println("Default taxonomies seeded successfully!")
}

func ensureCategory(db *gorm.DB, store *taxonomy.Store, name string, customizable bool) (*model.Category, error) {
	var existing model.Category
	if err := db.Where("name = ? AND parent_id IS NULL", name).First(&existing).Error; err == nil {
		return &existing, nil
	}
	category, err := store.CreateCategory(name, nil, customizable)
	if err != nil && errs.IsConflict(err) {
		// Another instance seeded it first.
		if err := db.Where("name = ? AND parent_id IS NULL", name).First(&existing).Error; err == nil {
			return &existing, nil
		}
	}
	return category, err
}

func ensureValue(db *gorm.DB, store *taxonomy.Store, categoryID uint, parentID *uint, text string) error {
	var count int64
	if err := db.Model(&model.DropdownValue{}).
		Where("category_id = ? AND tenant_id IS NULL AND value = ?", categoryID, text).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	_, err := store.CreateValue(categoryID, nil, parentID, text)
	return err
}

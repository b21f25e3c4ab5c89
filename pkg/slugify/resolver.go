package slugify

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Scope narrows the collision query to the columns a slug must be unique
// within (tenant, category, parent). Callers include their own is_active
// filter when only live rows count as collisions.
type Scope func(*gorm.DB) *gorm.DB

// Resolve finds a slug that does not collide with any record of model inside
// scope. It starts from base and appends -1, -2, ... until the candidate is
// free. Counters are monotonic: a skipped suffix is never reused. excludeID
// keeps a record from colliding with itself on rename (0 = no exclusion).
//
// This is a best-effort pre-check. Two concurrent writers can both see a
// candidate as free; the composite unique index on the scope columns is the
// authoritative guard, and callers retry on gorm.ErrDuplicatedKey.
func Resolve(db *gorm.DB, model interface{}, scope Scope, base string, excludeID uint) (string, error) {
	candidate := base
	for counter := 1; ; counter++ {
		q := scope(db.Model(model)).Where("slug = ?", candidate)
		if excludeID != 0 {
			q = q.Where("id <> ?", excludeID)
		}

		var count int64
		if err := q.Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, counter)
	}
}

// IsDuplicate reports whether err is a unique-constraint violation from the
// storage layer.
func IsDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

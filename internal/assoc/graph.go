package assoc

import (
	"errors"

	"gorm.io/gorm"

	"estatehub_backend/pkg/errs"
)

// Junction is implemented by every many-to-many link model.
type Junction interface {
	Pair() (left, right uint)
}

// Metadata carries extra junction columns (sort_order) keyed by column name.
type Metadata map[string]interface{}

// SortOrder reads the sort_order entry, defaulting to 0.
func SortOrder(meta Metadata) int {
	if v, ok := meta["sort_order"].(int); ok {
		return v
	}
	return 0
}

// Graph manages one junction table. Each graph knows its own link columns, so
// no global wiring step is needed; constructors live in registry.go.
type Graph[T Junction] struct {
	db       *gorm.DB
	leftCol  string
	rightCol string
	orderCol string // empty when the junction has no sort metadata
	build    func(left, right uint, meta Metadata) T
}

func NewGraph[T Junction](db *gorm.DB, leftCol, rightCol, orderCol string, build func(uint, uint, Metadata) T) *Graph[T] {
	return &Graph[T]{db: db, leftCol: leftCol, rightCol: rightCol, orderCol: orderCol, build: build}
}

func (g *Graph[T]) WithTx(tx *gorm.DB) *Graph[T] {
	return &Graph[T]{db: tx, leftCol: g.leftCol, rightCol: g.rightCol, orderCol: g.orderCol, build: g.build}
}

func (g *Graph[T]) pairQuery(left, right uint) *gorm.DB {
	var zero T
	return g.db.Model(&zero).
		Where(g.leftCol+" = ? AND "+g.rightCol+" = ?", left, right)
}

// Link creates the pair and fails with a ConflictError when it already
// exists. Idempotent callers use UpsertLink instead.
func (g *Graph[T]) Link(left, right uint, meta Metadata) (*T, error) {
	var count int64
	if err := g.pairQuery(left, right).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errs.Conflictf("link (%d, %d) already exists", left, right)
	}

	record := g.build(left, right, meta)
	if err := g.db.Create(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Concurrent writer created the pair between check and insert.
			return nil, errs.Conflictf("link (%d, %d) already exists", left, right)
		}
		return nil, err
	}
	return &record, nil
}

// UpsertLink creates the pair, or updates its metadata when it already
// exists. Never conflicts. Only the graph's configured order column is
// applied on update; junctions without one ignore metadata here, since any
// other key would name a column the table does not have.
func (g *Graph[T]) UpsertLink(left, right uint, meta Metadata) (*T, error) {
	var existing T
	err := g.pairQuery(left, right).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return g.Link(left, right, meta)
	}
	if err != nil {
		return nil, err
	}

	if g.orderCol != "" {
		if v, ok := meta[g.orderCol]; ok {
			if err := g.pairQuery(left, right).Update(g.orderCol, v).Error; err != nil {
				return nil, err
			}
			if err := g.pairQuery(left, right).First(&existing).Error; err != nil {
				return nil, err
			}
		}
	}
	return &existing, nil
}

// Unlink removes the pair. Absence is not an error; two Unlinks in a row are
// both no-ops. Rows are hard-deleted so the pair index frees immediately.
func (g *Graph[T]) Unlink(left, right uint) error {
	var zero T
	return g.db.Unscoped().
		Where(g.leftCol+" = ? AND "+g.rightCol+" = ?", left, right).
		Delete(&zero).Error
}

// UnlinkAll removes every link on the left side; used by entity delete paths
// whose storage cannot cascade (and by tests).
func (g *Graph[T]) UnlinkAll(left uint) error {
	var zero T
	return g.db.Unscoped().
		Where(g.leftCol+" = ?", left).
		Delete(&zero).Error
}

// UnlinkAllRight is the mirror of UnlinkAll for right-side deletions.
func (g *Graph[T]) UnlinkAllRight(right uint) error {
	var zero T
	return g.db.Unscoped().
		Where(g.rightCol+" = ?", right).
		Delete(&zero).Error
}

// ListRight returns the junction rows for a left id, ordered by the sort
// column when the junction has one, else by creation order.
func (g *Graph[T]) ListRight(left uint) ([]T, error) {
	var zero T
	q := g.db.Model(&zero).Where(g.leftCol+" = ?", left)
	if g.orderCol != "" {
		q = q.Order(g.orderCol + " asc, id asc")
	} else {
		q = q.Order("id asc")
	}

	var records []T
	if err := q.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// ListLeft is the reverse lookup (posts for a tag, carousels for a property).
func (g *Graph[T]) ListLeft(right uint) ([]T, error) {
	var zero T
	var records []T
	if err := g.db.Model(&zero).
		Where(g.rightCol+" = ?", right).
		Order("id asc").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (g *Graph[T]) Linked(left, right uint) (bool, error) {
	var count int64
	if err := g.pairQuery(left, right).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

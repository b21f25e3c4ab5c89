package assoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estatehub_backend/internal/testutil"
	"estatehub_backend/pkg/errs"
)

func TestLinkConflictsOnDuplicate(t *testing.T) {
	graph := PropertyAmenities(testutil.NewTestDB(t))

	_, err := graph.Link(1, 10, nil)
	require.NoError(t, err)

	_, err = graph.Link(1, 10, nil)
	require.Error(t, err)
	assert.True(t, errs.IsConflict(err))
}

func TestUpsertLinkUpdatesMetadataOnly(t *testing.T) {
	graph := CarouselItems(testutil.NewTestDB(t))

	first, err := graph.UpsertLink(1, 10, Metadata{"sort_order": 3})
	require.NoError(t, err)
	assert.Equal(t, 3, first.SortOrder)

	// Second upsert on the same pair succeeds and moves the item.
	second, err := graph.UpsertLink(1, 10, Metadata{"sort_order": 7})
	require.NoError(t, err)
	assert.Equal(t, 7, second.SortOrder)
	assert.Equal(t, first.ID, second.ID)

	rows, err := graph.ListRight(1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
}

func TestUpsertLinkIgnoresMetadataWithoutOrderColumn(t *testing.T) {
	graph := PropertyAmenities(testutil.NewTestDB(t))

	_, err := graph.Link(1, 10, nil)
	require.NoError(t, err)

	// The amenity junction has no sort column; stray metadata must not turn
	// into an UPDATE on a column the table does not have.
	row, err := graph.UpsertLink(1, 10, Metadata{"sort_order": 5})
	require.NoError(t, err)
	assert.Equal(t, uint(10), row.ValueID)
}

func TestUpsertLinkFiltersUnknownMetadataKeys(t *testing.T) {
	graph := CarouselItems(testutil.NewTestDB(t))

	first, err := graph.UpsertLink(1, 10, Metadata{"sort_order": 2})
	require.NoError(t, err)

	second, err := graph.UpsertLink(1, 10, Metadata{"position": 9})
	require.NoError(t, err)
	assert.Equal(t, first.SortOrder, second.SortOrder)
}

func TestUnlinkIdempotent(t *testing.T) {
	graph := PropertyAmenities(testutil.NewTestDB(t))

	_, err := graph.Link(1, 10, nil)
	require.NoError(t, err)

	require.NoError(t, graph.Unlink(1, 10))
	require.NoError(t, graph.Unlink(1, 10)) // absent pair, still no error

	linked, err := graph.Linked(1, 10)
	require.NoError(t, err)
	assert.False(t, linked)
}

func TestRelinkAfterUnlink(t *testing.T) {
	graph := PropertyAmenities(testutil.NewTestDB(t))

	_, err := graph.Link(1, 10, nil)
	require.NoError(t, err)
	require.NoError(t, graph.Unlink(1, 10))

	// The pair index must be free again.
	_, err = graph.Link(1, 10, nil)
	require.NoError(t, err)
}

func TestListRightOrdersBySortOrder(t *testing.T) {
	graph := CarouselItems(testutil.NewTestDB(t))

	_, err := graph.Link(1, 101, Metadata{"sort_order": 2})
	require.NoError(t, err)
	_, err = graph.Link(1, 102, Metadata{"sort_order": 0})
	require.NoError(t, err)
	_, err = graph.Link(1, 103, Metadata{"sort_order": 1})
	require.NoError(t, err)

	rows, err := graph.ListRight(1)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, uint(102), rows[0].PropertyID)
	assert.Equal(t, uint(103), rows[1].PropertyID)
	assert.Equal(t, uint(101), rows[2].PropertyID)
}

func TestListRightCreationOrderFallback(t *testing.T) {
	graph := BlogPostTags(testutil.NewTestDB(t))

	for _, tagID := range []uint{30, 10, 20} {
		_, err := graph.Link(1, tagID, nil)
		require.NoError(t, err)
	}

	rows, err := graph.ListRight(1)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, uint(30), rows[0].TagID)
	assert.Equal(t, uint(10), rows[1].TagID)
	assert.Equal(t, uint(20), rows[2].TagID)
}

func TestListLeft(t *testing.T) {
	graph := BlogPostTags(testutil.NewTestDB(t))

	_, err := graph.Link(1, 10, nil)
	require.NoError(t, err)
	_, err = graph.Link(2, 10, nil)
	require.NoError(t, err)
	_, err = graph.Link(3, 99, nil)
	require.NoError(t, err)

	rows, err := graph.ListLeft(10)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, uint(1), rows[0].PostID)
	assert.Equal(t, uint(2), rows[1].PostID)
}

func TestUnlinkAllBothSides(t *testing.T) {
	graph := CarouselItems(testutil.NewTestDB(t))

	_, err := graph.Link(1, 101, nil)
	require.NoError(t, err)
	_, err = graph.Link(1, 102, nil)
	require.NoError(t, err)
	_, err = graph.Link(2, 101, nil)
	require.NoError(t, err)

	require.NoError(t, graph.UnlinkAll(1))
	rows, err := graph.ListRight(1)
	require.NoError(t, err)
	assert.Empty(t, rows)

	// Right-side cleanup for property deletion.
	require.NoError(t, graph.UnlinkAllRight(101))
	rows, err = graph.ListRight(2)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

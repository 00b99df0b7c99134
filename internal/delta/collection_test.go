package delta

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waylight/waylight/models"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func loc(id, name string) models.Location {
	return models.Location{ID: id, Name: name}
}

func locWithNotes(id, name, notes string) models.Location {
	return models.Location{ID: id, Name: name, Notes: notes}
}

func timePtr(t time.Time) *time.Time { return &t }

func ids(locations []models.Location) []string {
	out := make([]string, 0, len(locations))
	for _, l := range locations {
		out = append(out, l.ID)
	}
	return out
}

// ---------------------------------------------------------------------------
// TestCreateCollectionDelta
// ---------------------------------------------------------------------------

func TestCreateCollectionDelta(t *testing.T) {
	t.Run("identical states produce nil", func(t *testing.T) {
		prev := []models.Location{loc("l1", "Paris"), loc("l2", "Lyon")}
		curr := []models.Location{loc("l1", "Paris"), loc("l2", "Lyon")}

		d, err := CreateCollectionDelta(prev, curr)
		require.NoError(t, err)
		assert.Nil(t, d)
		assert.True(t, d.IsEmpty())
	})

	t.Run("new record lands in Added as a full record", func(t *testing.T) {
		prev := []models.Location{loc("l1", "Paris")}
		curr := []models.Location{loc("l1", "Paris"), loc("l2", "Lyon")}

		d, err := CreateCollectionDelta(prev, curr)
		require.NoError(t, err)
		require.NotNil(t, d)
		require.Len(t, d.Added, 1)
		assert.Equal(t, loc("l2", "Lyon"), d.Added[0])
		assert.Empty(t, d.Updated)
		assert.Empty(t, d.RemovedIDs)
	})

	t.Run("changed record lands in Updated with only changed fields", func(t *testing.T) {
		prev := []models.Location{locWithNotes("l1", "Paris", "book museum"), loc("l2", "Lyon")}
		curr := []models.Location{locWithNotes("l1", "Paris", "museum booked"), loc("l2", "Lyon")}

		d, err := CreateCollectionDelta(prev, curr)
		require.NoError(t, err)
		require.NotNil(t, d)
		require.Len(t, d.Updated, 1)
		assert.Equal(t, "l1", d.Updated[0].RecordID())

		raw, err := json.Marshal(d.Updated[0])
		require.NoError(t, err)
		var fields map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(raw, &fields))
		assert.Len(t, fields, 2)
		assert.Contains(t, fields, "id")
		assert.Contains(t, fields, "notes")
	})

	t.Run("cleared optional field is carried as explicit null", func(t *testing.T) {
		prev := []models.Location{locWithNotes("l1", "Paris", "temp note")}
		curr := []models.Location{loc("l1", "Paris")}

		d, err := CreateCollectionDelta(prev, curr)
		require.NoError(t, err)
		require.NotNil(t, d)
		require.Len(t, d.Updated, 1)

		raw, err := json.Marshal(d.Updated[0])
		require.NoError(t, err)
		var fields map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(raw, &fields))
		require.Contains(t, fields, "notes")
		assert.JSONEq(t, "null", string(fields["notes"]))
	})

	t.Run("dropped record lands in RemovedIDs", func(t *testing.T) {
		prev := []models.Location{loc("l1", "Paris"), loc("l2", "Lyon")}
		curr := []models.Location{loc("l1", "Paris")}

		d, err := CreateCollectionDelta(prev, curr)
		require.NoError(t, err)
		require.NotNil(t, d)
		assert.Equal(t, []string{"l2"}, d.RemovedIDs)
		assert.Empty(t, d.Added)
		assert.Empty(t, d.Updated)
	})

	t.Run("pure reorder produces Order only", func(t *testing.T) {
		prev := []models.Location{loc("l1", "Paris"), loc("l2", "Lyon"), loc("l3", "Nice")}
		curr := []models.Location{loc("l3", "Nice"), loc("l1", "Paris"), loc("l2", "Lyon")}

		d, err := CreateCollectionDelta(prev, curr)
		require.NoError(t, err)
		require.NotNil(t, d)
		assert.Empty(t, d.Added)
		assert.Empty(t, d.Updated)
		assert.Empty(t, d.RemovedIDs)
		assert.Equal(t, []string{"l3", "l1", "l2"}, d.Order)
	})

	t.Run("unchanged order omits Order", func(t *testing.T) {
		prev := []models.Location{loc("l1", "Paris"), loc("l2", "Lyon")}
		curr := []models.Location{loc("l1", "Paris"), locWithNotes("l2", "Lyon", "new")}

		d, err := CreateCollectionDelta(prev, curr)
		require.NoError(t, err)
		require.NotNil(t, d)
		assert.Empty(t, d.Order)
	})
}

// ---------------------------------------------------------------------------
// TestApplyCollectionDelta
// ---------------------------------------------------------------------------

func TestApplyCollectionDelta(t *testing.T) {
	t.Run("nil delta returns an isolated clone", func(t *testing.T) {
		existing := []models.Location{loc("l1", "Paris")}

		got, err := ApplyCollectionDelta(existing, nil)
		require.NoError(t, err)
		require.Equal(t, existing, got)

		got[0].Name = "Mutated"
		assert.Equal(t, "Paris", existing[0].Name)
	})

	t.Run("added records are appended", func(t *testing.T) {
		existing := []models.Location{loc("l1", "Paris")}
		d := &CollectionDelta[models.Location]{Added: []models.Location{loc("l2", "Lyon")}}

		got, err := ApplyCollectionDelta(existing, d)
		require.NoError(t, err)
		assert.Equal(t, []string{"l1", "l2"}, ids(got))
	})

	t.Run("duplicate add merges into the existing record", func(t *testing.T) {
		existing := []models.Location{locWithNotes("l1", "Paris", "keep me")}
		d := &CollectionDelta[models.Location]{
			Added: []models.Location{{ID: "l1", Name: "Paris", Country: "France"}},
		}

		got, err := ApplyCollectionDelta(existing, d)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "France", got[0].Country)
	})

	t.Run("update for unknown id is dropped", func(t *testing.T) {
		existing := []models.Location{loc("l1", "Paris")}
		var part Partial[models.Location]
		require.NoError(t, json.Unmarshal([]byte(`{"id":"ghost","name":"Nowhere"}`), &part))
		d := &CollectionDelta[models.Location]{Updated: []Partial[models.Location]{part}}

		got, err := ApplyCollectionDelta(existing, d)
		require.NoError(t, err)
		assert.Equal(t, existing, got)
	})

	t.Run("update overlays only the carried fields", func(t *testing.T) {
		existing := []models.Location{locWithNotes("l1", "Paris", "keep me")}
		var part Partial[models.Location]
		require.NoError(t, json.Unmarshal([]byte(`{"id":"l1","name":"Paris Centre"}`), &part))
		d := &CollectionDelta[models.Location]{Updated: []Partial[models.Location]{part}}

		got, err := ApplyCollectionDelta(existing, d)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Paris Centre", got[0].Name)
		assert.Equal(t, "keep me", got[0].Notes)
	})

	t.Run("null field in update clears the value", func(t *testing.T) {
		existing := []models.Location{locWithNotes("l1", "Paris", "stale")}
		var part Partial[models.Location]
		require.NoError(t, json.Unmarshal([]byte(`{"id":"l1","notes":null}`), &part))
		d := &CollectionDelta[models.Location]{Updated: []Partial[models.Location]{part}}

		got, err := ApplyCollectionDelta(existing, d)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Empty(t, got[0].Notes)
	})

	t.Run("records are removed only through RemovedIDs", func(t *testing.T) {
		existing := []models.Location{loc("l1", "Paris"), loc("l2", "Lyon"), loc("l3", "Nice")}
		d := &CollectionDelta[models.Location]{
			// Order omits l3 on purpose; that must not delete it.
			Order:      []string{"l2", "l1"},
			RemovedIDs: nil,
		}

		got, err := ApplyCollectionDelta(existing, d)
		require.NoError(t, err)
		assert.Equal(t, []string{"l2", "l1", "l3"}, ids(got))
	})

	t.Run("RemovedIDs drops the named records", func(t *testing.T) {
		existing := []models.Location{loc("l1", "Paris"), loc("l2", "Lyon")}
		d := &CollectionDelta[models.Location]{RemovedIDs: []string{"l1"}}

		got, err := ApplyCollectionDelta(existing, d)
		require.NoError(t, err)
		assert.Equal(t, []string{"l2"}, ids(got))
	})

	t.Run("survivors omitted from Order keep their prior relative order", func(t *testing.T) {
		existing := []models.Location{loc("l1", "Paris"), loc("l2", "Lyon"), loc("l3", "Nice"), loc("l4", "Lille")}
		d := &CollectionDelta[models.Location]{Order: []string{"l3", "l1"}}

		got, err := ApplyCollectionDelta(existing, d)
		require.NoError(t, err)
		assert.Equal(t, []string{"l3", "l1", "l2", "l4"}, ids(got))
	})
}

// ---------------------------------------------------------------------------
// TestCollectionDelta_RoundTrip
// ---------------------------------------------------------------------------

func TestCollectionDelta_RoundTrip(t *testing.T) {
	arrival := time.Date(2026, 9, 14, 10, 30, 0, 0, time.UTC)

	prev := []models.Location{
		locWithNotes("l1", "Paris", "book museum"),
		loc("l2", "Lyon"),
		loc("l3", "Nice"),
	}
	curr := []models.Location{
		{ID: "l4", Name: "Marseille", Arrival: timePtr(arrival)},
		locWithNotes("l1", "Paris", "museum booked"),
		loc("l3", "Nice"),
	}

	d, err := CreateCollectionDelta(prev, curr)
	require.NoError(t, err)
	require.NotNil(t, d)

	got, err := ApplyCollectionDelta(prev, d)
	require.NoError(t, err)
	assert.Equal(t, curr, got)

	// A second application of the same delta must be a no-op.
	again, err := ApplyCollectionDelta(got, d)
	require.NoError(t, err)
	assert.Equal(t, curr, again)
}

// ---------------------------------------------------------------------------
// TestCollectionDelta_WireShape
// ---------------------------------------------------------------------------

func TestCollectionDelta_WireShape(t *testing.T) {
	prev := []models.Location{loc("l1", "Paris"), loc("l2", "Lyon")}
	curr := []models.Location{loc("l1", "Paris")}

	d, err := CreateCollectionDelta(prev, curr)
	require.NoError(t, err)

	raw, err := json.Marshal(d)
	require.NoError(t, err)

	var wire map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &wire))
	assert.NotContains(t, wire, "added")
	assert.NotContains(t, wire, "updated")
	assert.Contains(t, wire, "removedIds")

	var decoded CollectionDelta[models.Location]
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, d.RemovedIDs, decoded.RemovedIDs)
}

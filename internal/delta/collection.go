// Package delta computes and merges minimal deltas between versions of the
// trip aggregates. The collection engine in this file is generic over any
// record type; the per-aggregate adapters (travel_plan.go, cost_data.go) wrap
// it together with scalar-field diffing.
//
// The merge side is deliberately conservative: nothing is ever removed unless
// the delta names it in RemovedIDs, and an update for an identifier the
// receiver has never seen is dropped instead of fabricating an entry. A stale
// or partially delivered delta can therefore never destroy data it does not
// mention.
package delta

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Record is the constraint for collection element types: a stable,
// caller-assigned unique identifier plus an explicit deep clone. The
// identifier must serialize under the "id" JSON key.
type Record[T any] interface {
	RecordID() string
	Clone() T
}

// CollectionDelta describes the transformation of one ordered collection
// state into another. A delta with all four fields empty means "no change"
// and is represented as nil throughout this package.
type CollectionDelta[T Record[T]] struct {
	// Added holds full records absent (by id) from the previous state.
	Added []T `json:"added,omitempty"`
	// Updated holds partial records: the id plus only the fields whose
	// serialized form changed.
	Updated []Partial[T] `json:"updated,omitempty"`
	// RemovedIDs names the records to drop. Absence never means "remove
	// everything not mentioned".
	RemovedIDs []string `json:"removedIds,omitempty"`
	// Order is the full new identifier sequence, present only when it
	// differs position-by-position from the previous one.
	Order []string `json:"order,omitempty"`
}

// IsEmpty reports whether the delta carries no change. A nil delta is empty.
func (d *CollectionDelta[T]) IsEmpty() bool {
	if d == nil {
		return true
	}
	return len(d.Added) == 0 && len(d.Updated) == 0 && len(d.RemovedIDs) == 0 && len(d.Order) == 0
}

// CreateCollectionDelta compares two collection states and returns the
// minimal delta transforming previous into current, or nil if the states are
// identical. Neither input is mutated; added records are cloned into the
// result.
func CreateCollectionDelta[T Record[T]](previous, current []T) (*CollectionDelta[T], error) {
	prevByID := make(map[string]T, len(previous))
	for _, rec := range previous {
		prevByID[rec.RecordID()] = rec
	}

	d := &CollectionDelta[T]{}

	currIDs := make(map[string]struct{}, len(current))
	for _, rec := range current {
		id := rec.RecordID()
		currIDs[id] = struct{}{}

		prev, exists := prevByID[id]
		if !exists {
			d.Added = append(d.Added, rec.Clone())
			continue
		}
		part, changed, err := diffRecord(prev, rec)
		if err != nil {
			return nil, fmt.Errorf("diff record %s: %w", id, err)
		}
		if changed {
			d.Updated = append(d.Updated, part)
		}
	}

	for _, rec := range previous {
		if _, survives := currIDs[rec.RecordID()]; !survives {
			d.RemovedIDs = append(d.RemovedIDs, rec.RecordID())
		}
	}

	if !sameOrder(previous, current) {
		d.Order = recordIDs(current)
	}

	if d.IsEmpty() {
		return nil, nil
	}
	return d, nil
}

// ApplyCollectionDelta merges delta into a deep clone of existing and returns
// the result. The caller's slice is never mutated. A nil delta yields a plain
// clone.
//
// Added entries are idempotent upserts: a duplicate add merges its fields
// into the entry already present instead of duplicating it. Updates for
// unknown ids are silently dropped. RemovedIDs is the only path that removes
// entries. When Order is present, ids it names are arranged in that sequence
// and any surviving id it omits is appended afterward in its prior relative
// order.
func ApplyCollectionDelta[T Record[T]](existing []T, d *CollectionDelta[T]) ([]T, error) {
	result := make([]T, 0, len(existing))
	for _, rec := range existing {
		result = append(result, rec.Clone())
	}
	if d.IsEmpty() {
		if len(result) == 0 {
			return nil, nil
		}
		return result, nil
	}

	position := make(map[string]int, len(result))
	for i, rec := range result {
		position[rec.RecordID()] = i
	}

	for _, added := range d.Added {
		id := added.RecordID()
		if pos, present := position[id]; present {
			merged, err := mergeRecord(result[pos], added)
			if err != nil {
				return nil, fmt.Errorf("merge duplicate add %s: %w", id, err)
			}
			result[pos] = merged
			continue
		}
		position[id] = len(result)
		result = append(result, added.Clone())
	}

	for _, part := range d.Updated {
		pos, present := position[part.RecordID()]
		if !present {
			// Stale update for an id this side has never seen.
			continue
		}
		merged, err := part.ApplyTo(result[pos])
		if err != nil {
			return nil, fmt.Errorf("apply update %s: %w", part.RecordID(), err)
		}
		result[pos] = merged
	}

	if len(d.RemovedIDs) > 0 {
		removed := make(map[string]struct{}, len(d.RemovedIDs))
		for _, id := range d.RemovedIDs {
			removed[id] = struct{}{}
		}
		kept := result[:0]
		for _, rec := range result {
			if _, drop := removed[rec.RecordID()]; !drop {
				kept = append(kept, rec)
			}
		}
		result = kept
	}

	if len(d.Order) > 0 {
		result = reorder(result, d.Order)
	}

	// The diff side cannot tell nil from empty, so the merge side keeps the
	// canonical form of the two: nil. Otherwise applying a delta to a
	// collection that was never populated would change the aggregate's
	// serialized form without changing its content.
	if len(result) == 0 {
		return nil, nil
	}
	return result, nil
}

// mergeRecord overlays the serialized fields of update onto base. Fields the
// update omits keep their base value.
func mergeRecord[T Record[T]](base, update T) (T, error) {
	part, err := partialOf(update)
	if err != nil {
		var zero T
		return zero, err
	}
	return part.ApplyTo(base)
}

func reorder[T Record[T]](records []T, order []string) []T {
	rank := make(map[string]int, len(order))
	for i, id := range order {
		rank[id] = i
	}

	ordered := make([]T, 0, len(records))
	var trailing []T
	for _, rec := range records {
		if _, mentioned := rank[rec.RecordID()]; !mentioned {
			trailing = append(trailing, rec)
		}
	}
	for _, id := range order {
		for _, rec := range records {
			if rec.RecordID() == id {
				ordered = append(ordered, rec)
				break
			}
		}
	}
	return append(ordered, trailing...)
}

func sameOrder[T Record[T]](previous, current []T) bool {
	if len(previous) != len(current) {
		return false
	}
	for i := range previous {
		if previous[i].RecordID() != current[i].RecordID() {
			return false
		}
	}
	return true
}

func recordIDs[T Record[T]](records []T) []string {
	ids := make([]string, 0, len(records))
	for _, rec := range records {
		ids = append(ids, rec.RecordID())
	}
	return ids
}

// CanonicalJSON returns the canonical serialized form of v used for all
// equality decisions in this package (and by the sync service's
// optimistic-concurrency check).
func CanonicalJSON(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Equal reports whether a and b have identical canonical serialized forms.
func Equal(a, b any) (bool, error) {
	ab, err := CanonicalJSON(a)
	if err != nil {
		return false, err
	}
	bb, err := CanonicalJSON(b)
	if err != nil {
		return false, err
	}
	return bytes.Equal(ab, bb), nil
}

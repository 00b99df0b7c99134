package delta

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/waylight/waylight/models"
)

// TravelPlanDelta is the minimal difference between two travel-plan
// snapshots: explicit-presence scalar fields plus one collection delta per
// nested collection. Scalar keys absent from the serialized form leave the
// target field untouched; a key present as null clears it.
type TravelPlanDelta struct {
	Title       Opt[string]
	Description Opt[string]
	StartDate   Opt[time.Time]
	EndDate     Opt[time.Time]
	Locations   *CollectionDelta[models.Location]
	Legs        *CollectionDelta[models.TransportLeg]
}

// CreateTravelPlanDelta compares two travel-plan snapshots and returns the
// minimal delta transforming previous into current, or nil when the
// snapshots are canonically identical.
func CreateTravelPlanDelta(previous, current models.TravelPlan) (*TravelPlanDelta, error) {
	d := &TravelPlanDelta{
		Title:       diffValue(previous.Title, current.Title),
		Description: diffValue(previous.Description, current.Description),
	}

	var err error
	if d.StartDate, err = diffPointer(previous.StartDate, current.StartDate); err != nil {
		return nil, fmt.Errorf("diff start date: %w", err)
	}
	if d.EndDate, err = diffPointer(previous.EndDate, current.EndDate); err != nil {
		return nil, fmt.Errorf("diff end date: %w", err)
	}
	if d.Locations, err = CreateCollectionDelta(previous.Locations, current.Locations); err != nil {
		return nil, fmt.Errorf("diff locations: %w", err)
	}
	if d.Legs, err = CreateCollectionDelta(previous.Legs, current.Legs); err != nil {
		return nil, fmt.Errorf("diff legs: %w", err)
	}

	if d.IsEmpty() {
		return nil, nil
	}
	return d, nil
}

// ApplyTravelPlanDelta merges d into a deep clone of base. A nil delta
// returns the clone unchanged. Date fields survive as real time values, not
// their wire-form strings.
func ApplyTravelPlanDelta(base models.TravelPlan, d *TravelPlanDelta) (models.TravelPlan, error) {
	out := base.Clone()
	if d == nil {
		return out, nil
	}

	applyValue(&out.Title, d.Title)
	applyValue(&out.Description, d.Description)
	applyPointer(&out.StartDate, d.StartDate)
	applyPointer(&out.EndDate, d.EndDate)

	var err error
	if out.Locations, err = ApplyCollectionDelta(out.Locations, d.Locations); err != nil {
		return models.TravelPlan{}, fmt.Errorf("apply locations: %w", err)
	}
	if out.Legs, err = ApplyCollectionDelta(out.Legs, d.Legs); err != nil {
		return models.TravelPlan{}, fmt.Errorf("apply legs: %w", err)
	}
	return out, nil
}

// IsEmpty reports whether the delta carries no change at all. A nil delta is
// empty.
func (d *TravelPlanDelta) IsEmpty() bool {
	if d == nil {
		return true
	}
	return !d.Title.Defined() && !d.Description.Defined() &&
		!d.StartDate.Defined() && !d.EndDate.Defined() &&
		d.Locations.IsEmpty() && d.Legs.IsEmpty()
}

// MarshalJSON emits only the defined scalar keys and non-empty collection
// deltas, so a wire delta never carries no-op fields.
func (d TravelPlanDelta) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, 6)
	if d.Title.Defined() {
		out["title"] = d.Title
	}
	if d.Description.Defined() {
		out["description"] = d.Description
	}
	if d.StartDate.Defined() {
		out["startDate"] = d.StartDate
	}
	if d.EndDate.Defined() {
		out["endDate"] = d.EndDate
	}
	if !d.Locations.IsEmpty() {
		out["locations"] = d.Locations
	}
	if !d.Legs.IsEmpty() {
		out["legs"] = d.Legs
	}
	return json.Marshal(out)
}

// UnmarshalJSON restores explicit key presence from the wire form.
func (d *TravelPlanDelta) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*d = TravelPlanDelta{}
	if v, present := raw["title"]; present {
		if err := d.Title.UnmarshalJSON(v); err != nil {
			return fmt.Errorf("title: %w", err)
		}
	}
	if v, present := raw["description"]; present {
		if err := d.Description.UnmarshalJSON(v); err != nil {
			return fmt.Errorf("description: %w", err)
		}
	}
	if v, present := raw["startDate"]; present {
		if err := d.StartDate.UnmarshalJSON(v); err != nil {
			return fmt.Errorf("startDate: %w", err)
		}
	}
	if v, present := raw["endDate"]; present {
		if err := d.EndDate.UnmarshalJSON(v); err != nil {
			return fmt.Errorf("endDate: %w", err)
		}
	}
	if v, present := raw["locations"]; present {
		d.Locations = &CollectionDelta[models.Location]{}
		if err := json.Unmarshal(v, d.Locations); err != nil {
			return fmt.Errorf("locations: %w", err)
		}
	}
	if v, present := raw["legs"]; present {
		d.Legs = &CollectionDelta[models.TransportLeg]{}
		if err := json.Unmarshal(v, d.Legs); err != nil {
			return fmt.Errorf("legs: %w", err)
		}
	}
	return nil
}

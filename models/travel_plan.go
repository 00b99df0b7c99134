package models

import "time"

// TravelPlan is the trip's route aggregate: top-level scalar fields plus the
// ordered collections edited by the planner UI. Collection order drives
// display order, so it is part of the aggregate state.
type TravelPlan struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	StartDate   *time.Time     `json:"startDate,omitempty"`
	EndDate     *time.Time     `json:"endDate,omitempty"`
	Locations   []Location     `json:"locations"`
	Legs        []TransportLeg `json:"legs"`
}

// Location is one stop of the trip. ID is assigned by the client when the
// stop is created and never changes afterwards.
type Location struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Country   string     `json:"country,omitempty"`
	Arrival   *time.Time `json:"arrival,omitempty"`
	Departure *time.Time `json:"departure,omitempty"`
	Notes     string     `json:"notes,omitempty"`
}

// TransportLeg connects two locations of the plan.
type TransportLeg struct {
	ID             string     `json:"id"`
	FromLocationID string     `json:"fromLocationId"`
	ToLocationID   string     `json:"toLocationId"`
	Mode           string     `json:"mode"`
	Departure      *time.Time `json:"departure,omitempty"`
	Notes          string     `json:"notes,omitempty"`
}

// RecordID implements delta.Record.
func (l Location) RecordID() string { return l.ID }

// RecordID implements delta.Record.
func (t TransportLeg) RecordID() string { return t.ID }

// Clone returns a deep copy of the location.
func (l Location) Clone() Location {
	l.Arrival = cloneTime(l.Arrival)
	l.Departure = cloneTime(l.Departure)
	return l
}

// Clone returns a deep copy of the leg.
func (t TransportLeg) Clone() TransportLeg {
	t.Departure = cloneTime(t.Departure)
	return t
}

// Clone returns a deep copy of the whole plan, including its collections.
func (p TravelPlan) Clone() TravelPlan {
	out := p
	out.StartDate = cloneTime(p.StartDate)
	out.EndDate = cloneTime(p.EndDate)
	if p.Locations != nil {
		out.Locations = make([]Location, len(p.Locations))
		for i, loc := range p.Locations {
			out.Locations[i] = loc.Clone()
		}
	}
	if p.Legs != nil {
		out.Legs = make([]TransportLeg, len(p.Legs))
		for i, leg := range p.Legs {
			out.Legs[i] = leg.Clone()
		}
	}
	return out
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

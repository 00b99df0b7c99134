package delta

import (
	"bytes"
	"encoding/json"
	"fmt"
)

var nullValue = json.RawMessage("null")

// Partial is a partial record: the "id" field plus only the fields that
// changed, kept in raw serialized form so that an absent field and a field
// explicitly set to null stay distinguishable. A null field value means the
// field was cleared.
type Partial[T Record[T]] struct {
	fields map[string]json.RawMessage
}

// RecordID returns the partial's "id" field, or "" when it is missing or not
// a string.
func (p Partial[T]) RecordID() string {
	raw, present := p.fields["id"]
	if !present {
		return ""
	}
	var id string
	if err := json.Unmarshal(raw, &id); err != nil {
		return ""
	}
	return id
}

// MarshalJSON serializes the partial as a plain field map.
func (p Partial[T]) MarshalJSON() ([]byte, error) {
	if p.fields == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(p.fields)
}

// UnmarshalJSON decodes a field map into the partial.
func (p *Partial[T]) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &p.fields)
}

// ApplyTo overlays the partial's fields onto rec and returns the merged
// record. Fields the partial omits keep their value from rec; fields the
// partial carries as null are cleared to the record type's zero form.
func (p Partial[T]) ApplyTo(rec T) (T, error) {
	var zero T

	merged, err := fieldMap(rec)
	if err != nil {
		return zero, fmt.Errorf("serialize merge base: %w", err)
	}
	for key, value := range p.fields {
		if bytes.Equal(value, nullValue) {
			delete(merged, key)
			continue
		}
		merged[key] = value
	}

	return recordFromFields[T](merged)
}

// diffRecord builds the partial holding curr's fields whose canonical form
// differs from prev's, always including "id". Fields present on prev but
// dropped from curr's serialization (cleared optionals) are carried as
// explicit nulls so the receiver clears them too.
func diffRecord[T Record[T]](prev, curr T) (Partial[T], bool, error) {
	prevFields, err := fieldMap(prev)
	if err != nil {
		return Partial[T]{}, false, fmt.Errorf("serialize previous record: %w", err)
	}
	currFields, err := fieldMap(curr)
	if err != nil {
		return Partial[T]{}, false, fmt.Errorf("serialize current record: %w", err)
	}

	changed := map[string]json.RawMessage{}
	for key, value := range currFields {
		if key == "id" {
			continue
		}
		if prevValue, present := prevFields[key]; present && bytes.Equal(prevValue, value) {
			continue
		}
		changed[key] = value
	}
	for key := range prevFields {
		if key == "id" {
			continue
		}
		if _, survives := currFields[key]; !survives {
			changed[key] = nullValue
		}
	}

	if len(changed) == 0 {
		return Partial[T]{}, false, nil
	}
	changed["id"] = currFields["id"]
	return Partial[T]{fields: changed}, true, nil
}

// partialOf converts a full record into a partial carrying every serialized
// field. Used when a duplicate add has to be merged instead of inserted.
func partialOf[T Record[T]](rec T) (Partial[T], error) {
	fields, err := fieldMap(rec)
	if err != nil {
		return Partial[T]{}, fmt.Errorf("serialize record: %w", err)
	}
	return Partial[T]{fields: fields}, nil
}

func fieldMap(v any) (map[string]json.RawMessage, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	fields := map[string]json.RawMessage{}
	if err = json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

func recordFromFields[T Record[T]](fields map[string]json.RawMessage) (T, error) {
	var rec T
	raw, err := json.Marshal(fields)
	if err != nil {
		return rec, fmt.Errorf("serialize merged fields: %w", err)
	}
	if err = json.Unmarshal(raw, &rec); err != nil {
		return rec, fmt.Errorf("decode merged record: %w", err)
	}
	return rec, nil
}

// Package validators provides structural validation of incoming delta
// payloads at the synchronization boundary.
//
// The checks here run on the raw serialized form, before a payload is
// decoded into typed deltas and merged. They are shape tests only: wrong
// field types, a collection delta encoded as an array instead of an object,
// a removedIds list carrying non-strings. Semantic rules (unknown record
// ids, no-op deltas) are the delta engine's concern and are handled there
// without errors.
//
// Validation never panics and never returns errors; a malformed payload
// yields false and the caller rejects it before any merge happens.
package validators

import (
	"bytes"
	"encoding/json"
)

type fieldKind int

const (
	kindString fieldKind = iota
	kindNumber
	kindDate
	kindCollection
)

// scalar keys may always be null: explicit-presence deltas use null to clear
// a field.
var travelPlanDeltaFields = map[string]fieldKind{
	"title":       kindString,
	"description": kindString,
	"startDate":   kindDate,
	"endDate":     kindDate,
	"locations":   kindCollection,
	"legs":        kindCollection,
}

var costDataDeltaFields = map[string]fieldKind{
	"currency":         kindString,
	"homeCurrency":     kindString,
	"totalBudget":      kindNumber,
	"expenses":         kindCollection,
	"countryBudgets":   kindCollection,
	"customCategories": kindCollection,
}

// IsTravelPlanDelta reports whether raw is a structurally valid travel-plan
// delta payload.
func IsTravelPlanDelta(raw json.RawMessage) bool {
	return isAggregateDelta(raw, travelPlanDeltaFields)
}

// IsCostDataDelta reports whether raw is a structurally valid cost-ledger
// delta payload.
func IsCostDataDelta(raw json.RawMessage) bool {
	return isAggregateDelta(raw, costDataDeltaFields)
}

func isAggregateDelta(raw json.RawMessage, fields map[string]fieldKind) bool {
	obj, ok := asObject(raw)
	if !ok {
		return false
	}
	for key, value := range obj {
		kind, known := fields[key]
		if !known {
			return false
		}
		switch kind {
		case kindString, kindDate:
			// dates travel as RFC 3339 strings
			if !isString(value) && !isNull(value) {
				return false
			}
		case kindNumber:
			if !isNumber(value) && !isNull(value) {
				return false
			}
		case kindCollection:
			if !isCollectionDelta(value) {
				return false
			}
		}
	}
	return true
}

// isCollectionDelta checks the {added, updated, removedIds, order} object
// shape. A collection delta is never null and never an array.
func isCollectionDelta(raw json.RawMessage) bool {
	obj, ok := asObject(raw)
	if !ok {
		return false
	}
	for key, value := range obj {
		switch key {
		case "added", "updated":
			items, isArr := asArray(value)
			if !isArr {
				return false
			}
			for _, item := range items {
				if _, isObj := asObject(item); !isObj {
					return false
				}
			}
		case "removedIds", "order":
			items, isArr := asArray(value)
			if !isArr {
				return false
			}
			for _, item := range items {
				if !isString(item) {
					return false
				}
			}
		default:
			return false
		}
	}
	return true
}

func asObject(raw json.RawMessage) (map[string]json.RawMessage, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, false
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return nil, false
	}
	return obj, true
}

func asArray(raw json.RawMessage) ([]json.RawMessage, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, false
	}
	var arr []json.RawMessage
	if err := json.Unmarshal(trimmed, &arr); err != nil {
		return nil, false
	}
	return arr, true
}

func isString(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '"' && json.Valid(trimmed)
}

func isNumber(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return false
	}
	c := trimmed[0]
	return (c == '-' || (c >= '0' && c <= '9')) && json.Valid(trimmed)
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

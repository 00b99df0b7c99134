package delta

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// TestOpt_States
// ---------------------------------------------------------------------------

func TestOpt_States(t *testing.T) {
	t.Run("zero value is undefined", func(t *testing.T) {
		var o Opt[string]
		assert.False(t, o.Defined())
		_, carried := o.Get()
		assert.False(t, carried)
	})

	t.Run("Value carries the value", func(t *testing.T) {
		o := Value("Kyoto")
		assert.True(t, o.Defined())
		v, carried := o.Get()
		assert.True(t, carried)
		assert.Equal(t, "Kyoto", v)
	})

	t.Run("Null is defined but carries nothing", func(t *testing.T) {
		o := Null[string]()
		assert.True(t, o.Defined())
		_, carried := o.Get()
		assert.False(t, carried)
	})

	t.Run("empty string value is distinct from null", func(t *testing.T) {
		o := Value("")
		v, carried := o.Get()
		assert.True(t, carried)
		assert.Empty(t, v)
	})
}

// ---------------------------------------------------------------------------
// TestOpt_JSON
// ---------------------------------------------------------------------------

func TestOpt_JSON(t *testing.T) {
	t.Run("value marshals as the value itself", func(t *testing.T) {
		raw, err := json.Marshal(Value(42))
		require.NoError(t, err)
		assert.JSONEq(t, "42", string(raw))
	})

	t.Run("null marshals as null", func(t *testing.T) {
		raw, err := json.Marshal(Null[int]())
		require.NoError(t, err)
		assert.JSONEq(t, "null", string(raw))
	})

	t.Run("unmarshal marks the field defined", func(t *testing.T) {
		var o Opt[string]
		require.NoError(t, o.UnmarshalJSON([]byte(`"Lisbon"`)))
		assert.True(t, o.Defined())
		v, carried := o.Get()
		assert.True(t, carried)
		assert.Equal(t, "Lisbon", v)
	})

	t.Run("unmarshal null yields a null Opt", func(t *testing.T) {
		var o Opt[string]
		require.NoError(t, o.UnmarshalJSON([]byte("null")))
		assert.True(t, o.Defined())
		_, carried := o.Get()
		assert.False(t, carried)
	})

	t.Run("unmarshal rejects the wrong type", func(t *testing.T) {
		var o Opt[int]
		assert.Error(t, o.UnmarshalJSON([]byte(`"not a number"`)))
	})
}

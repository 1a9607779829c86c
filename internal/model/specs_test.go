package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpecsKeepInsertionOrder(t *testing.T) {
	var s Specs
	s.Set("voltage", 48)
	s.Set("amperage", 100)
	s.Set("phase", "3-phase")
	s.Set("voltage", 36)

	b, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{"voltage":36,"amperage":100,"phase":"3-phase"}`, string(b))
	assert.Equal(t, `{"voltage":36,"amperage":100,"phase":"3-phase"}`, string(b))

	v, ok := s.Get("phase")
	assert.True(t, ok)
	assert.Equal(t, "3-phase", v)
}

func TestSpecsUnmarshal(t *testing.T) {
	var s Specs
	require.NoError(t, json.Unmarshal([]byte(`{"b":"x","a":24,"c":1.5}`), &s))

	require.Len(t, s, 3)
	assert.Equal(t, SpecEntry{Key: "b", Value: "x"}, s[0])
	assert.Equal(t, SpecEntry{Key: "a", Value: int64(24)}, s[1])
	assert.Equal(t, SpecEntry{Key: "c", Value: 1.5}, s[2])
}

func TestEmptySpecsEncodeAsObject(t *testing.T) {
	b, err := json.Marshal(Specs(nil))
	require.NoError(t, err)
	assert.Equal(t, "{}", string(b))
}

func TestOrderedSet(t *testing.T) {
	set := NewOrderedSet()
	assert.True(t, set.Add("Toyota 8FGU25"))
	assert.True(t, set.Add("Hyster H50FT"))
	assert.False(t, set.Add("Toyota 8FGU25"))

	assert.Equal(t, []string{"Toyota 8FGU25", "Hyster H50FT"}, set.Items())
	assert.Equal(t, 2, set.Len())
	assert.NotNil(t, NewOrderedSet().Items())
}

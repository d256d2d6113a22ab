package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountersAbsentKeyReadsAsZero(t *testing.T) {
	var c Counters
	assert.Equal(t, 0, c.Get("active"))

	c = Counters{"won": 2}
	assert.Equal(t, 0, c.Get("lost"))
	assert.Equal(t, 2, c.Get("won"))
}

func TestCountersIncrDecrOnNilMap(t *testing.T) {
	var c Counters
	c = c.Incr("active")
	c = c.Incr("active")
	c = c.Decr("active")
	assert.Equal(t, 1, c.Get("active"))

	var d Counters
	d = d.Decr("won")
	assert.Equal(t, -1, d.Get("won"))
}

func TestCountersTotal(t *testing.T) {
	c := Counters{"active": 2, "won": 3, "lost": 1}
	assert.Equal(t, 6, c.Total())
	assert.Equal(t, 0, Counters(nil).Total())
}

func TestCountersRoundTripAsJSONObject(t *testing.T) {
	c := Counters{"active": 1, "won": 4}
	data, err := json.Marshal(c)
	require.NoError(t, err)

	var got Counters
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, c, got)
}

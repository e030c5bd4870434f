package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(1999, time.March, 31)

	encoded, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"1999-03-31"`, string(encoded))

	var decoded Date
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.True(t, d.Equal(decoded))
}

func TestDateUnmarshalNullAndEmpty(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`null`), &d))
	assert.True(t, d.IsZero())

	require.NoError(t, json.Unmarshal([]byte(`""`), &d))
	assert.True(t, d.IsZero())
}

func TestDateUnmarshalInvalid(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"31.03.1999"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`"1999-13-01"`), &d))
}

func TestDateOrdering(t *testing.T) {
	early := NewDate(1895, time.December, 28)
	late := NewDate(1999, time.March, 31)

	assert.True(t, early.Before(late))
	assert.True(t, late.After(early))
	assert.False(t, early.Before(early))
	assert.True(t, early.Equal(early))
}

func TestDateScan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(1999, time.March, 31, 15, 4, 5, 0, time.Local)))
	// время суток и зона отбрасываются
	assert.Equal(t, "1999-03-31", d.String())

	require.NoError(t, d.Scan([]byte("2001-01-01")))
	assert.Equal(t, "2001-01-01", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan(42))
}

func TestDateValue(t *testing.T) {
	v, err := NewDate(1999, time.March, 31).Value()
	require.NoError(t, err)
	assert.Equal(t, time.Date(1999, time.March, 31, 0, 0, 0, 0, time.UTC), v)

	v, err = Date{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}

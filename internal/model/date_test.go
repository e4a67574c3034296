package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-02-01")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-01", d.String())
	assert.Equal(t, "2024-02", d.Month())
}

func TestParseDate_Invalid(t *testing.T) {
	_, err := ParseDate("01/02/2024")
	require.Error(t, err)
}

func TestDateOrdering(t *testing.T) {
	a := NewDate(2024, time.January, 5)
	b := NewDate(2024, time.February, 1)
	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.False(t, a.Equal(b))
}

func TestAddDays(t *testing.T) {
	d := NewDate(2024, time.March, 1)
	assert.Equal(t, "2024-02-29", d.AddDays(-1).String(), "leap year")
	assert.Equal(t, "2024-03-31", d.AddDays(30).String())
}

func TestDateJSON(t *testing.T) {
	d := NewDate(2024, time.January, 5)
	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-01-05"`, string(data))

	var back Date
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, back.Equal(d))
}

func TestDateJSON_RejectsNonString(t *testing.T) {
	var d Date
	require.Error(t, json.Unmarshal([]byte(`20240105`), &d))
}

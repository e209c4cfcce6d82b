package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	cases := map[string]Date{
		"2024-01-04":                NewDate(2024, time.January, 4),
		" 2024-02-29 ":              NewDate(2024, time.February, 29),
		"2024-03-10T15:04:05Z":      NewDate(2024, time.March, 10),
		"2024-03-10T00:00:00+06:00": NewDate(2024, time.March, 10),
		"2024-03-10 08:00":          NewDate(2024, time.March, 10),
	}
	for in, want := range cases {
		got, err := ParseDate(in)
		require.NoError(t, err, in)
		assert.True(t, want.Equal(got.Time), "%s: got %s", in, got)
	}

	_, err := ParseDate("04/01/2024")
	assert.Error(t, err)
}

func TestDaysUntil(t *testing.T) {
	start := NewDate(2024, time.January, 1)

	assert.Equal(t, 3, start.DaysUntil(NewDate(2024, time.January, 4)))
	assert.Equal(t, 1, start.DaysUntil(start.AddDays(1)))
	assert.Equal(t, 0, start.DaysUntil(start))
	assert.Equal(t, -2, start.DaysUntil(start.AddDays(-2)))
	// leap year February
	assert.Equal(t, 29, NewDate(2024, time.February, 1).DaysUntil(NewDate(2024, time.March, 1)))
}

func TestDate_JSON(t *testing.T) {
	type payload struct {
		Start Date  `json:"start"`
		Until *Date `json:"until,omitempty"`
	}

	b, err := json.Marshal(payload{Start: NewDate(2024, time.January, 1)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"start":"2024-01-01"}`, string(b))

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"start":"2024-05-06","until":"2024-05-09"}`), &p))
	assert.Equal(t, "2024-05-06", p.Start.String())
	require.NotNil(t, p.Until)
	assert.Equal(t, 3, p.Start.DaysUntil(*p.Until))

	assert.Error(t, json.Unmarshal([]byte(`{"start":"tomorrow"}`), &p))
}

func TestDate_Scan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan("2024-01-02"))
	assert.Equal(t, "2024-01-02", d.String())

	require.NoError(t, d.Scan([]byte("2024-01-03")))
	assert.Equal(t, "2024-01-03", d.String())

	require.NoError(t, d.Scan(time.Date(2024, 1, 4, 13, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-01-04", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan(42))

	v, err := NewDate(2024, time.January, 5).Value()
	require.NoError(t, err)
	assert.Equal(t, "2024-01-05", v)
}

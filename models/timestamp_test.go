package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestamp_Unmarshal(t *testing.T) {
	cases := map[string]time.Time{
		`"2024-03-04T10:15:00Z"`:        time.Date(2024, 3, 4, 10, 15, 0, 0, time.UTC),
		`"2024-03-04T10:15:00"`:         time.Date(2024, 3, 4, 10, 15, 0, 0, time.UTC),
		`"2024-03-04T10:15:00.250000"`:  time.Date(2024, 3, 4, 10, 15, 0, 250000000, time.UTC),
		`"2024-03-04 10:15:00"`:         time.Date(2024, 3, 4, 10, 15, 0, 0, time.UTC),
		`"2024-03-04T11:15:00+01:00"`:   time.Date(2024, 3, 4, 10, 15, 0, 0, time.UTC),
	}
	for raw, want := range cases {
		var ts Timestamp
		require.NoError(t, json.Unmarshal([]byte(raw), &ts), raw)
		assert.True(t, want.Equal(ts.Time), "%s: got %s", raw, ts.Time)
	}
}

func TestTimestamp_Null(t *testing.T) {
	var ts Timestamp
	require.NoError(t, json.Unmarshal([]byte(`null`), &ts))
	assert.True(t, ts.IsZero())

	out, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
}

func TestTimestamp_Invalid(t *testing.T) {
	var ts Timestamp
	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &ts))
}

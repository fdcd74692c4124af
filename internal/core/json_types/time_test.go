package json_types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	short, err := ParseTimeOfDay("09:05")
	require.NoError(t, err)
	assert.Equal(t, "09:05", short.String())

	long, err := ParseTimeOfDay("09:05:59")
	require.NoError(t, err)
	assert.Equal(t, "09:05", long.String())

	_, err = ParseTimeOfDay("9 o'clock")
	assert.Error(t, err)
}

func TestTimeOfDayJSONRoundTrip(t *testing.T) {
	var parsed struct {
		From TimeOfDay `json:"from"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"from":"13:30"}`), &parsed))
	assert.Equal(t, "13:30", parsed.From.String())

	encoded, err := json.Marshal(parsed)
	require.NoError(t, err)
	assert.JSONEq(t, `{"from":"13:30"}`, string(encoded))
}

func TestTimeOfDayRejectsMalformed(t *testing.T) {
	var tod TimeOfDay
	assert.Error(t, json.Unmarshal([]byte(`"25:99"`), &tod))
	assert.Error(t, json.Unmarshal([]byte(`42`), &tod))
}

func TestParseDateForms(t *testing.T) {
	dateOnly, err := ParseDate("2020-01-06")
	require.NoError(t, err)
	assert.Equal(t, "2020-01-06", dateOnly.String())

	withTime, err := ParseDateTime("2020-01-06T09:15:42")
	require.NoError(t, err)
	assert.Equal(t, 9, withTime.Date.Hour())

	rfc, err := ParseDateTime("2020-01-06T09:15:42+03:00")
	require.NoError(t, err)
	assert.Equal(t, 15, rfc.Date.Minute())

	_, err = ParseDate("06/01/2020")
	assert.Error(t, err)
}

func TestDateJSONRendersDateOnly(t *testing.T) {
	d, err := ParseDate("2020-01-06")
	require.NoError(t, err)

	encoded, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2020-01-06"`, string(encoded))
}

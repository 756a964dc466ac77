package types_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/parishledger/parishledger/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthString(t *testing.T) {
	assert.Equal(t, "2024-01", types.NewMonth(2024, time.January).String())
	assert.Equal(t, "1997-11", types.NewMonth(1997, time.November).String())
}

func TestParseMonth(t *testing.T) {
	m, err := types.ParseMonth("2024-03")
	require.NoError(t, err)
	assert.Equal(t, "2024-03", m.String())

	_, err = types.ParseMonth("March 2024")
	assert.Error(t, err)
}

func TestParseDateToMonth(t *testing.T) {
	m, err := types.ParseDateToMonth("2024-03-17")
	require.NoError(t, err)
	assert.Equal(t, "2024-03", m.String())
}

func TestMonthOf(t *testing.T) {
	m := types.MonthOf(time.Date(2023, 12, 31, 23, 59, 0, 0, time.UTC))
	assert.Equal(t, "2023-12", m.String())
}

func TestMonthJSONRoundTrip(t *testing.T) {
	in := types.NewMonth(2024, time.February)

	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.Equal(t, `"2024-02"`, string(data))

	var out types.Month
	require.NoError(t, json.Unmarshal(data, &out))
	assert.True(t, in.Equal(out))
}

func TestMonthUnmarshalFullDate(t *testing.T) {
	var m types.Month
	require.NoError(t, json.Unmarshal([]byte(`"2024-02-29"`), &m))
	assert.Equal(t, "2024-02", m.String())
}

func TestMonthOrdering(t *testing.T) {
	jan := types.NewMonth(2024, time.January)
	feb := types.NewMonth(2024, time.February)

	assert.True(t, jan.Before(feb))
	assert.True(t, feb.After(jan))
	assert.False(t, jan.Equal(feb))
	assert.True(t, jan.Equal(types.NewMonth(2024, time.January)))
}

func TestMonthContains(t *testing.T) {
	m := types.NewMonth(2024, time.January)

	assert.True(t, m.Contains(time.Date(2024, 1, 31, 12, 0, 0, 0, time.UTC)))
	assert.False(t, m.Contains(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)))
}

func TestMonthAddDate(t *testing.T) {
	m := types.NewMonth(2023, time.November)
	assert.Equal(t, "2024-01", m.AddDate(0, 2).String())
}

func TestMonthIsZero(t *testing.T) {
	assert.True(t, types.Month{}.IsZero())
	assert.False(t, types.NewMonth(2024, time.January).IsZero())
}

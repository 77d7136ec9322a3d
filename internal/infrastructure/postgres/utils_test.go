package postgres

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatParseDate_IdaYVuelta(t *testing.T) {
	in := time.Date(2025, 6, 1, 8, 30, 15, 123000000, time.FixedZone("COT", -5*3600))

	s := formatDate(in)
	assert.Equal(t, "2025-06-01T13:30:15.123000000Z", s, "se guarda en UTC ISO-8601")

	out, err := parseDate(s)
	require.NoError(t, err)
	assert.True(t, in.Equal(out))
}

func TestParseNullableDate(t *testing.T) {
	got, err := parseNullableDate(nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	empty := ""
	got, err = parseNullableDate(&empty)
	require.NoError(t, err)
	assert.Nil(t, got)

	bad := "ayer"
	_, err = parseNullableDate(&bad)
	assert.Error(t, err)

	assert.Nil(t, formatNullableDate(nil))
}

func TestFormatDate_OrdenDeTextoIgualAlTemporal(t *testing.T) {
	base := time.Date(2025, 6, 1, 13, 30, 15, 0, time.UTC)
	times := []time.Time{
		base,
		base.Add(100 * time.Millisecond),
		base.Add(120 * time.Millisecond),
		base.Add(123456789 * time.Nanosecond),
		base.Add(time.Second),
	}
	texts := make([]string, len(times))
	for i, tm := range times {
		texts[i] = formatDate(tm)
	}
	assert.True(t, sort.StringsAreSorted(texts), "el texto debe ordenar como las fechas: %v", texts)
	for _, s := range texts {
		assert.Len(t, s, len(texts[0]))
	}
}

func TestParseDate_AceptaFormatoSinRelleno(t *testing.T) {
	got, err := parseDate("2025-06-01T13:30:15.1Z")
	require.NoError(t, err)
	assert.Equal(t, 100*time.Millisecond, time.Duration(got.Nanosecond()))

	got, err = parseDate("2025-06-01T13:30:15Z")
	require.NoError(t, err)
	assert.Zero(t, got.Nanosecond())
}

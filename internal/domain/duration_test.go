package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDurationSeconds(t *testing.T) {
	t.Run("fractional seconds", func(t *testing.T) {
		seconds, err := ParseDurationSeconds("123.4s")
		require.NoError(t, err)
		assert.InDelta(t, 123.4, seconds, 1e-9)
	})

	t.Run("whole seconds", func(t *testing.T) {
		seconds, err := ParseDurationSeconds("60s")
		require.NoError(t, err)
		assert.Equal(t, 60.0, seconds)
	})

	t.Run("non-numeric content", func(t *testing.T) {
		_, err := ParseDurationSeconds("abc")
		assert.ErrorIs(t, err, ErrMalformedDuration)
	})

	t.Run("garbage before suffix", func(t *testing.T) {
		_, err := ParseDurationSeconds("12x4s")
		assert.ErrorIs(t, err, ErrMalformedDuration)
	})

	t.Run("empty string", func(t *testing.T) {
		_, err := ParseDurationSeconds("")
		assert.ErrorIs(t, err, ErrMalformedDuration)
	})
}

func TestFormatDurationSeconds(t *testing.T) {
	assert.Equal(t, "60.5s", FormatDurationSeconds(60.5))
	assert.Equal(t, "60s", FormatDurationSeconds(60))
	assert.Equal(t, "0s", FormatDurationSeconds(0))
}

func TestSumDurations(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		sum, err := SumDurations("10s", "20s", "30.5s")
		require.NoError(t, err)
		assert.Equal(t, "60.5s", sum)
	})

	t.Run("malformed element", func(t *testing.T) {
		_, err := SumDurations("10s", "oops")
		assert.ErrorIs(t, err, ErrMalformedDuration)
	})
}

func TestAdvance(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("adds elapsed plus lead buffer", func(t *testing.T) {
		next := Advance(base, 100)
		assert.Equal(t, base.Add(100*time.Second).Add(DepartureLeadTime), next)
	})

	t.Run("fractional elapsed", func(t *testing.T) {
		next := Advance(base, 0.5)
		assert.Equal(t, base.Add(500*time.Millisecond).Add(DepartureLeadTime), next)
	})
}

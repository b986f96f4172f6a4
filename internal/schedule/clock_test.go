package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClockMinutes(t *testing.T) {
	t.Run("valid times", func(t *testing.T) {
		minutes, err := ParseClockMinutes("09:00")
		require.NoError(t, err)
		assert.Equal(t, 9*60, minutes)

		minutes, err = ParseClockMinutes("23:59")
		require.NoError(t, err)
		assert.Equal(t, 23*60+59, minutes)

		minutes, err = ParseClockMinutes("00:00")
		require.NoError(t, err)
		assert.Equal(t, 0, minutes)
	})

	t.Run("invalid times", func(t *testing.T) {
		for _, input := range []string{"", "9", "24:00", "12:60", "ab:cd", "-1:30"} {
			_, err := ParseClockMinutes(input)
			assert.Error(t, err, "input %q", input)
		}
	})
}

func TestDurationHours(t *testing.T) {
	t.Run("same day shift", func(t *testing.T) {
		assert.Equal(t, 8.0, DurationHours("09:00", "17:00"))
		assert.Equal(t, 4.5, DurationHours("13:30", "18:00"))
	})

	t.Run("overnight shift spans midnight", func(t *testing.T) {
		// 22:00 到次日 06:00 应当是 8 小时
		assert.Equal(t, 8.0, DurationHours("22:00", "06:00"))
	})

	t.Run("equal start and end means full day", func(t *testing.T) {
		assert.Equal(t, 24.0, DurationHours("09:00", "09:00"))
	})

	t.Run("unparsable input counts as zero", func(t *testing.T) {
		assert.Equal(t, 0.0, DurationHours("bad", "17:00"))
		assert.Equal(t, 0.0, DurationHours("09:00", "bad"))
	})
}

func TestIsOvernight(t *testing.T) {
	assert.False(t, IsOvernight("09:00", "17:00"))
	assert.True(t, IsOvernight("22:00", "06:00"))
	assert.True(t, IsOvernight("09:00", "09:00"))
	assert.False(t, IsOvernight("bad", "06:00"))
}

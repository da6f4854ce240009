package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDate(t *testing.T) {
	t.Run("Should map a bare year to January 1st", func(t *testing.T) {
		got := NormalizeDate("2020")
		require.NotNil(t, got)
		assert.Equal(t, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), *got)
	})

	t.Run("Should map year-month to the first of the month", func(t *testing.T) {
		got := NormalizeDate("2020-06")
		require.NotNil(t, got)
		assert.Equal(t, time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC), *got)
	})

	t.Run("Should accept a full date", func(t *testing.T) {
		got := NormalizeDate("2021-03-15")
		require.NotNil(t, got)
		assert.Equal(t, time.Date(2021, 3, 15, 0, 0, 0, 0, time.UTC), *got)
	})

	t.Run("Should treat Present as open-ended", func(t *testing.T) {
		assert.Nil(t, NormalizeDate("Present"))
	})

	t.Run("Should treat empty input as open-ended", func(t *testing.T) {
		assert.Nil(t, NormalizeDate(""))
		assert.Nil(t, NormalizeDate("   "))
	})

	t.Run("Should reject garbage without erroring", func(t *testing.T) {
		assert.Nil(t, NormalizeDate("ongoing"))
		assert.Nil(t, NormalizeDate("June of last year"))
		assert.Nil(t, NormalizeDate("20-20"))
	})

	t.Run("Should reject an out-of-range month", func(t *testing.T) {
		assert.Nil(t, NormalizeDate("2020-13"))
	})
}

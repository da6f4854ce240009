package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-ats-backend/internal/domain"
)

func TestNullable(t *testing.T) {
	t.Run("Should map empty and whitespace strings to nil", func(t *testing.T) {
		assert.Nil(t, nullable(""))
		assert.Nil(t, nullable("   "))
	})

	t.Run("Should keep non-empty values", func(t *testing.T) {
		got := nullable("Bangalore")
		if assert.NotNil(t, got) {
			assert.Equal(t, "Bangalore", *got)
		}
	})
}

func TestTrimmed(t *testing.T) {
	assert.Equal(t, "Priya Sharma", trimmed("  Priya Sharma "))
	assert.Equal(t, "", trimmed("   "))
}

func TestJoinLines(t *testing.T) {
	t.Run("Should return nil for an empty list", func(t *testing.T) {
		assert.Nil(t, joinLines(nil))
		assert.Nil(t, joinLines([]string{}))
	})

	t.Run("Should join items with newlines", func(t *testing.T) {
		got := joinLines([]string{"Led a team of 4", "Shipped payments v2"})
		if assert.NotNil(t, got) {
			assert.Equal(t, "Led a team of 4\nShipped payments v2", *got)
		}
	})
}

func TestSkillEntrySkipPredicate(t *testing.T) {
	assert.True(t, domain.SkillEntry{}.Blank())
	assert.True(t, domain.SkillEntry{Name: "   "}.Blank())
	assert.False(t, domain.SkillEntry{Name: "Go"}.Blank())
}

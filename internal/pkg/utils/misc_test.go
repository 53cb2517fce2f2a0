package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchesSearch(t *testing.T) {
	assert.True(t, MatchesSearch("", "anything"))
	assert.True(t, MatchesSearch("para", "Paracetamol", "PCM-500"))
	assert.True(t, MatchesSearch("PCM", "Paracetamol", "pcm-500"))
	assert.False(t, MatchesSearch("ibuprofen", "Paracetamol", "PCM-500"))
	assert.True(t, MatchesSearch("  para  ", "paracetamol"))
}

func TestMatchesFilter(t *testing.T) {
	assert.True(t, MatchesFilter("", "analgesic"))
	assert.True(t, MatchesFilter("analgesic", "analgesic"))
	assert.False(t, MatchesFilter("antibiotic", "analgesic"))
}

func TestPageSlice(t *testing.T) {
	t.Run("first page", func(t *testing.T) {
		start, end := PageSlice(25, 1, 10)
		assert.Equal(t, 0, start)
		assert.Equal(t, 10, end)
	})

	t.Run("last partial page", func(t *testing.T) {
		start, end := PageSlice(25, 3, 10)
		assert.Equal(t, 20, start)
		assert.Equal(t, 25, end)
	})

	t.Run("page past the end is empty", func(t *testing.T) {
		start, end := PageSlice(25, 9, 10)
		assert.Equal(t, 25, start)
		assert.Equal(t, 25, end)
	})

	t.Run("zero page and size fall back to defaults", func(t *testing.T) {
		start, end := PageSlice(5, 0, 0)
		assert.Equal(t, 0, start)
		assert.Equal(t, 5, end)
	})
}

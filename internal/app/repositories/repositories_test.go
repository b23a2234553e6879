package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLikePattern(t *testing.T) {
	assert.Equal(t, "%alice%", likePattern("alice"))

	// LIKE metacharacters match literally.
	assert.Equal(t, `%STU\_001%`, likePattern("STU_001"))
	assert.Equal(t, `%50\%%`, likePattern("50%"))
	assert.Equal(t, `%a\\b%`, likePattern(`a\b`))

	assert.Equal(t, "%%", likePattern(""))
}

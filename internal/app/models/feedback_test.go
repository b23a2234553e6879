package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidFeedbackStatus(t *testing.T) {
	for _, status := range []string{
		FeedbackStatusPending,
		FeedbackStatusReviewed,
		FeedbackStatusResolved,
		FeedbackStatusArchived,
	} {
		assert.True(t, ValidFeedbackStatus(status), status)
	}

	assert.False(t, ValidFeedbackStatus(""))
	assert.False(t, ValidFeedbackStatus("open"))
	assert.False(t, ValidFeedbackStatus("Pending"))
}

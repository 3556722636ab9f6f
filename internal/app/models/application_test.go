package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidApplicationStatus(t *testing.T) {
	for _, status := range []ApplicationStatus{
		StatusApplied, StatusMentorPending, StatusMentorApproved, StatusMentorRejected,
		StatusShortlisted, StatusInterviewScheduled, StatusSelected, StatusRejected,
		StatusCompleted,
	} {
		assert.True(t, ValidApplicationStatus(status), "status %s should be valid", status)
	}

	assert.False(t, ValidApplicationStatus("withdrawn"))
	assert.False(t, ValidApplicationStatus(""))
}

func TestTerminalStatuses(t *testing.T) {
	assert.True(t, StatusMentorRejected.IsTerminal())
	assert.True(t, StatusRejected.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())

	assert.False(t, StatusMentorPending.IsTerminal())
	assert.False(t, StatusSelected.IsTerminal())
	assert.False(t, StatusInterviewScheduled.IsTerminal())
}

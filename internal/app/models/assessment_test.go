package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAssessmentStatus(t *testing.T) {
	testCases := []struct {
		raw      string
		expected AssessmentStatus
		ok       bool
	}{
		{"scheduled", AssessmentStatusScheduled, true},
		{"IN_PROGRESS", AssessmentStatusInProgress, true},
		{" completed ", AssessmentStatusCompleted, true},
		{"agendada", AssessmentStatusScheduled, true},
		{"em_andamento", AssessmentStatusInProgress, true},
		{"concluída", AssessmentStatusCompleted, true},
		{"concluida", AssessmentStatusCompleted, true},
		{"cancelada", AssessmentStatusCancelled, true},
		{"done", "", false},
		{"", "", false},
	}

	for _, tc := range testCases {
		parsed, ok := ParseAssessmentStatus(tc.raw)
		assert.Equal(t, tc.ok, ok, "raw=%q", tc.raw)
		assert.Equal(t, tc.expected, parsed, "raw=%q", tc.raw)
	}
}

func TestStatusTransitions(t *testing.T) {
	assert.True(t, AssessmentStatusScheduled.CanTransitionTo(AssessmentStatusInProgress))
	assert.True(t, AssessmentStatusScheduled.CanTransitionTo(AssessmentStatusCancelled))
	assert.True(t, AssessmentStatusInProgress.CanTransitionTo(AssessmentStatusCompleted))
	assert.True(t, AssessmentStatusInProgress.CanTransitionTo(AssessmentStatusCancelled))

	assert.False(t, AssessmentStatusScheduled.CanTransitionTo(AssessmentStatusCompleted), "completion requires going through in_progress")
	assert.False(t, AssessmentStatusCompleted.CanTransitionTo(AssessmentStatusInProgress))
	assert.False(t, AssessmentStatusCompleted.CanTransitionTo(AssessmentStatusCancelled))
	assert.False(t, AssessmentStatusCancelled.CanTransitionTo(AssessmentStatusScheduled))
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, AssessmentStatusScheduled.IsTerminal())
	assert.False(t, AssessmentStatusInProgress.IsTerminal())
	assert.True(t, AssessmentStatusCompleted.IsTerminal())
	assert.True(t, AssessmentStatusCancelled.IsTerminal())
}

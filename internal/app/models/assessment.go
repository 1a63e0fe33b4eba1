package models

import (
	"avalia-service/internal/pkg/constvars"
	"strings"
)

type AssessmentStatus string

const (
	AssessmentStatusScheduled  AssessmentStatus = "scheduled"
	AssessmentStatusInProgress AssessmentStatus = "in_progress"
	AssessmentStatusCompleted  AssessmentStatus = "completed"
	AssessmentStatusCancelled  AssessmentStatus = "cancelled"
)

// assessmentTransitions is the legal status graph: scheduled -> in_progress
// -> completed, cancelled reachable from the two non-terminal states.
var assessmentTransitions = map[AssessmentStatus][]AssessmentStatus{
	AssessmentStatusScheduled:  {AssessmentStatusInProgress, AssessmentStatusCancelled},
	AssessmentStatusInProgress: {AssessmentStatusCompleted, AssessmentStatusCancelled},
	AssessmentStatusCompleted:  {},
	AssessmentStatusCancelled:  {},
}

// ParseAssessmentStatus normalizes a status string from the request boundary,
// accepting the legacy Portuguese spellings and lowering case. The boolean is
// false for anything outside the vocabulary.
func ParseAssessmentStatus(raw string) (AssessmentStatus, bool) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if english, ok := constvars.LegacyPortugueseStatuses[normalized]; ok {
		normalized = english
	}
	switch AssessmentStatus(normalized) {
	case AssessmentStatusScheduled, AssessmentStatusInProgress, AssessmentStatusCompleted, AssessmentStatusCancelled:
		return AssessmentStatus(normalized), true
	}
	return "", false
}

// CanTransitionTo reports whether the status change is legal under the graph.
func (s AssessmentStatus) CanTransitionTo(next AssessmentStatus) bool {
	for _, allowed := range assessmentTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s AssessmentStatus) IsTerminal() bool {
	return len(assessmentTransitions[s]) == 0
}

// Assessment is one filled-out occurrence of a model for one patient. The
// model binding is immutable after creation.
type Assessment struct {
	ID        string           `bson:"_id,omitempty"`
	ModelID   string           `bson:"modelId"`
	PatientID string           `bson:"patientId"`
	Title     string           `bson:"title"`
	Date      string           `bson:"date"`
	Status    AssessmentStatus `bson:"status"`
	Notes     string           `bson:"notes,omitempty"`
	TimeModel `bson:",inline"`
}

// AssessmentResult stores the answer for one field within one assessment.
// At most one row exists per (assessmentId, fieldId); saves upsert.
type AssessmentResult struct {
	ID           string `bson:"_id,omitempty"`
	AssessmentID string `bson:"assessmentId"`
	FieldID      string `bson:"fieldId"`
	Value        string `bson:"value"`
	TimeModel    `bson:",inline"`
}

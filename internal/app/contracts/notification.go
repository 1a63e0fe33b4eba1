package contracts

import (
	"context"
	"time"
)

const (
	AssessmentEventCreated   = "assessment.created"
	AssessmentEventCompleted = "assessment.completed"
	AssessmentEventCancelled = "assessment.cancelled"
)

// AssessmentEvent is the payload published to the notification queue when an
// assessment changes in a way the front desk cares about.
type AssessmentEvent struct {
	Type         string    `json:"type"`
	AssessmentID string    `json:"assessment_id"`
	ModelID      string    `json:"model_id"`
	PatientID    string    `json:"patient_id"`
	Status       string    `json:"status"`
	OccurredAt   time.Time `json:"occurred_at"`
}

type NotificationQueueService interface {
	PublishAssessmentEvent(ctx context.Context, event *AssessmentEvent) error
}

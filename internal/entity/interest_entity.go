package entity

import (
	"time"

	"github.com/google/uuid"
)

type InterestStatus string

const (
	InterestStatusPending  InterestStatus = "pending"
	InterestStatusAccepted InterestStatus = "accepted"
	InterestStatusDeclined InterestStatus = "declined"
)

// Interest is a collaboration application: one per user per project.
type Interest struct {
	Id        uuid.UUID
	ProjectId uuid.UUID
	UserId    uuid.UUID
	Message   string
	Status    InterestStatus
	CreatedAt time.Time

	Applicant *User
	Project   *Project
}

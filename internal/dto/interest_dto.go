package dto

import (
	"time"

	"github.com/google/uuid"
)

type ExpressInterestRequest struct {
	Message string `json:"message" validate:"required,min=10"`
}

type UpdateInterestStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=accepted declined"`
}

type InterestResponse struct {
	Id        uuid.UUID        `json:"id"`
	ProjectId uuid.UUID        `json:"projectId"`
	UserId    uuid.UUID        `json:"userId"`
	Message   string           `json:"message"`
	Status    string           `json:"status"`
	CreatedAt time.Time        `json:"createdAt"`
	Applicant *UserResponse    `json:"applicant,omitempty"`
	Project   *ProjectResponse `json:"project,omitempty"`
}

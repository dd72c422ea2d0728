package model

import (
	"time"

	"github.com/google/uuid"
)

type Interest struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProjectId uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_interests_project_user"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_interests_project_user"`
	Message   string    `gorm:"type:text;not null"`
	Status    string    `gorm:"type:varchar(50);not null;default:'pending'"`
	CreatedAt time.Time `gorm:"autoCreateTime"`

	Applicant *User    `gorm:"foreignKey:UserId"`
	Project   *Project `gorm:"foreignKey:ProjectId"`
}

func (Interest) TableName() string {
	return "interests"
}

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Project struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OwnerId     uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text;not null"`
	TechStack   datatypes.JSON
	LookingFor  string `gorm:"type:text"`
	Images      datatypes.JSON
	DemoURL     *string   `gorm:"type:text"`
	RepoURL     *string   `gorm:"type:text"`
	Difficulty  string    `gorm:"type:varchar(50);not null"`
	Category    string    `gorm:"type:varchar(100);not null;index"`
	Status      string    `gorm:"type:varchar(50);not null;default:'open';index"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`

	Owner *User `gorm:"foreignKey:OwnerId"`
}

func (Project) TableName() string {
	return "projects"
}

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type CodeReview struct {
	Id          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId      *uuid.UUID `gorm:"type:uuid;index"`
	Code        string     `gorm:"type:text;not null"`
	Language    string     `gorm:"type:varchar(50);not null"`
	Score       int        `gorm:"not null"`
	Issues      datatypes.JSON
	Suggestions datatypes.JSON
	Resources   datatypes.JSON
	CreatedAt   time.Time `gorm:"autoCreateTime;index"`
}

func (CodeReview) TableName() string {
	return "code_reviews"
}

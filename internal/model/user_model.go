package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type User struct {
	Id                  uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email               string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name                string    `gorm:"type:varchar(255);not null"`
	Image               *string   `gorm:"type:text"`
	Bio                 *string   `gorm:"type:text"`
	GithubUsername      *string   `gorm:"type:varchar(255)"`
	GithubURL           *string   `gorm:"type:text"`
	Skills              datatypes.JSON
	EmailVerified       bool    `gorm:"default:false"`
	Plan                string  `gorm:"type:varchar(50);not null;default:'FREE'"`
	SubscriptionStatus  *string `gorm:"type:varchar(50)"`
	SubscriptionEndDate *time.Time
	CreatedAt           time.Time `gorm:"autoCreateTime"`
	UpdatedAt           time.Time `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}

type Otp struct {
	Email     string    `gorm:"type:varchar(255);primaryKey"`
	Code      string    `gorm:"type:varchar(6);not null"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Otp) TableName() string {
	return "otps"
}

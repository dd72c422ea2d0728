package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id                  uuid.UUID
	Email               string
	Name                string
	Image               *string
	Bio                 *string
	Skills              []string
	GithubUsername      *string
	GithubURL           *string
	EmailVerified       bool
	Plan                string
	SubscriptionStatus  *string
	SubscriptionEndDate *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Otp is the single outstanding verification code for an email address.
// A new request overwrites the previous one; the record is deleted only
// after a successful verification.
type Otp struct {
	Email     string
	Code      string
	ExpiresAt time.Time
	CreatedAt time.Time
}

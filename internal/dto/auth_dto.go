package dto

import (
	"time"

	"github.com/google/uuid"
)

const (
	OtpTypeSignup = "signup"
	OtpTypeLogin  = "login"
)

type SendOtpRequest struct {
	Email string `json:"email" validate:"required,email"`
	Type  string `json:"type" validate:"required,oneof=signup login"`
}

type VerifyOtpRequest struct {
	Email string `json:"email" validate:"required,email"`
	Otp   string `json:"otp" validate:"required,len=6,numeric"`
	Type  string `json:"type" validate:"required,oneof=signup login"`
	Name  string `json:"name"` // required for signup, checked in the service
}

type UserResponse struct {
	Id                  uuid.UUID  `json:"id"`
	Email               string     `json:"email"`
	Name                string     `json:"name"`
	Image               *string    `json:"image,omitempty"`
	Bio                 *string    `json:"bio,omitempty"`
	GithubUsername      *string    `json:"githubUsername,omitempty"`
	GithubURL           *string    `json:"githubUrl,omitempty"`
	Skills              []string   `json:"skills"`
	EmailVerified       bool       `json:"emailVerified"`
	Plan                string     `json:"plan"`
	SubscriptionStatus  *string    `json:"subscriptionStatus,omitempty"`
	SubscriptionEndDate *time.Time `json:"subscriptionEndDate,omitempty"`
	CreatedAt           time.Time  `json:"createdAt"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

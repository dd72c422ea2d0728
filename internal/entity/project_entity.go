package entity

import (
	"time"

	"github.com/google/uuid"
)

type ProjectStatus string

const (
	ProjectStatusOpen      ProjectStatus = "open"
	ProjectStatusClosed    ProjectStatus = "closed"
	ProjectStatusLaunching ProjectStatus = "launching"
)

type Project struct {
	Id          uuid.UUID
	OwnerId     uuid.UUID
	Title       string
	Description string
	TechStack   []string
	LookingFor  string
	Images      []string
	DemoURL     *string
	RepoURL     *string
	Difficulty  string
	Category    string
	Status      ProjectStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Owner is populated on listings and detail views.
	Owner *User
}

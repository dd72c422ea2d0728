package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateProjectRequest struct {
	Title       string   `json:"title" validate:"required,min=3,max=255"`
	Description string   `json:"description" validate:"required"`
	TechStack   []string `json:"techStack"`
	LookingFor  string   `json:"lookingFor"`
	Images      []string `json:"images"`
	DemoURL     *string  `json:"demoUrl" validate:"omitempty,url"`
	RepoURL     *string  `json:"repoUrl" validate:"omitempty,url"`
	Difficulty  string   `json:"difficulty" validate:"required,oneof=beginner intermediate advanced"`
	Category    string   `json:"category" validate:"required"`
}

type UpdateProjectRequest struct {
	Title       string   `json:"title" validate:"required,min=3,max=255"`
	Description string   `json:"description" validate:"required"`
	TechStack   []string `json:"techStack"`
	LookingFor  string   `json:"lookingFor"`
	Images      []string `json:"images"`
	DemoURL     *string  `json:"demoUrl" validate:"omitempty,url"`
	RepoURL     *string  `json:"repoUrl" validate:"omitempty,url"`
	Difficulty  string   `json:"difficulty" validate:"required,oneof=beginner intermediate advanced"`
	Category    string   `json:"category" validate:"required"`
	Status      string   `json:"status" validate:"omitempty,oneof=open closed launching"`
}

type ProjectResponse struct {
	Id          uuid.UUID     `json:"id"`
	OwnerId     uuid.UUID     `json:"ownerId"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	TechStack   []string      `json:"techStack"`
	LookingFor  string        `json:"lookingFor,omitempty"`
	Images      []string      `json:"images"`
	DemoURL     *string       `json:"demoUrl,omitempty"`
	RepoURL     *string       `json:"repoUrl,omitempty"`
	Difficulty  string        `json:"difficulty"`
	Category    string        `json:"category"`
	Status      string        `json:"status"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
	Owner       *UserResponse `json:"owner,omitempty"`
}

type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	Limit    int               `json:"limit"`
}

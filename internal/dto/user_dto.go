package dto

// PublicProfileResponse is what anyone can see of a member, including
// their open projects.
type PublicProfileResponse struct {
	User     UserResponse      `json:"user"`
	Projects []ProjectResponse `json:"projects"`
}

type UpdateProfileRequest struct {
	Name           string   `json:"name" validate:"required,min=2,max=255"`
	Bio            *string  `json:"bio"`
	GithubUsername *string  `json:"githubUsername"`
	Skills         []string `json:"skills"`
}

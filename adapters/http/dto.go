package http

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/muftipurwa/portfolio-api/internal/domain/portfolio"
	"github.com/muftipurwa/portfolio-api/internal/domain/profile"
	"github.com/muftipurwa/portfolio-api/internal/domain/project"
	"github.com/muftipurwa/portfolio-api/internal/domain/skill"
	"github.com/muftipurwa/portfolio-api/pkg/apperror"
	"github.com/muftipurwa/portfolio-api/pkg/optional"
)

var validate = validator.New()

// Profile DTOs

type ProfileDTO struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	Greeting         string    `json:"greeting"`
	Email            string    `json:"email"`
	LinkedinURL      *string   `json:"linkedin_url"`
	WhatsappNumber   *string   `json:"whatsapp_number"`
	AboutDescription string    `json:"about_description"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func ToProfileDTO(p *profile.Profile) ProfileDTO {
	return ProfileDTO{
		ID:               p.ID,
		Name:             p.Name,
		Greeting:         p.Greeting,
		Email:            p.Email,
		LinkedinURL:      p.LinkedinURL,
		WhatsappNumber:   p.WhatsappNumber,
		AboutDescription: p.AboutDescription,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

// UpdateProfileRequest is a partial update: every field may be absent,
// null, or set. Omitted and null are NOT the same thing here.
type UpdateProfileRequest struct {
	Name             optional.Field[string] `json:"name"`
	Greeting         optional.Field[string] `json:"greeting"`
	Email            optional.Field[string] `json:"email"`
	LinkedinURL      optional.Field[string] `json:"linkedin_url"`
	WhatsappNumber   optional.Field[string] `json:"whatsapp_number"`
	AboutDescription optional.Field[string] `json:"about_description"`
}

func (r *UpdateProfileRequest) Validate() error {
	if r.Name.IsNull() || r.Greeting.IsNull() || r.Email.IsNull() || r.AboutDescription.IsNull() {
		return apperror.NewInvalidInput("name, greeting, email and about_description cannot be null", nil)
	}
	if v, ok := r.Email.Get(); ok {
		if err := validate.Var(v, "email"); err != nil {
			return apperror.NewInvalidInput("email must be a valid email address", err)
		}
	}
	if v, ok := r.LinkedinURL.Get(); ok {
		if err := validate.Var(v, "url"); err != nil {
			return apperror.NewInvalidInput("linkedin_url must be a valid URL", err)
		}
	}
	return nil
}

func (r *UpdateProfileRequest) ToChanges() profile.Changes {
	return profile.Changes{
		Name:             r.Name,
		Greeting:         r.Greeting,
		Email:            r.Email,
		LinkedinURL:      r.LinkedinURL,
		WhatsappNumber:   r.WhatsappNumber,
		AboutDescription: r.AboutDescription,
	}
}

// Skill DTOs

type SkillDTO struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Category  *string   `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

func ToSkillDTO(s *skill.Skill) SkillDTO {
	return SkillDTO{
		ID:        s.ID,
		Name:      s.Name,
		Category:  s.Category,
		CreatedAt: s.CreatedAt,
	}
}

type CreateSkillRequest struct {
	Name     string  `json:"name" binding:"required"`
	Category *string `json:"category"`
}

// Project DTOs

type ProjectDTO struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ImageURL     *string   `json:"image_url"`
	GithubURL    *string   `json:"github_url"`
	DemoURL      *string   `json:"demo_url"`
	Technologies []string  `json:"technologies"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func ToProjectDTO(p *project.Project) ProjectDTO {
	techs := p.Technologies
	if techs == nil {
		techs = []string{}
	}
	return ProjectDTO{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		ImageURL:     p.ImageURL,
		GithubURL:    p.GithubURL,
		DemoURL:      p.DemoURL,
		Technologies: techs,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

type CreateProjectRequest struct {
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description" binding:"required"`
	ImageURL     *string  `json:"image_url"`
	GithubURL    *string  `json:"github_url"`
	DemoURL      *string  `json:"demo_url"`
	Technologies []string `json:"technologies"`
}

func (r *CreateProjectRequest) Validate() error {
	if r.GithubURL != nil {
		if err := validate.Var(*r.GithubURL, "url"); err != nil {
			return apperror.NewInvalidInput("github_url must be a valid URL", err)
		}
	}
	if r.DemoURL != nil {
		if err := validate.Var(*r.DemoURL, "url"); err != nil {
			return apperror.NewInvalidInput("demo_url must be a valid URL", err)
		}
	}
	return nil
}

// UpdateProjectRequest carries only the fields the caller wants changed.
// Explicit null clears image_url, github_url or demo_url; title and
// description are non-nullable.
type UpdateProjectRequest struct {
	Title        optional.Field[string]   `json:"title"`
	Description  optional.Field[string]   `json:"description"`
	ImageURL     optional.Field[string]   `json:"image_url"`
	GithubURL    optional.Field[string]   `json:"github_url"`
	DemoURL      optional.Field[string]   `json:"demo_url"`
	Technologies optional.Field[[]string] `json:"technologies"`
}

func (r *UpdateProjectRequest) Validate() error {
	if r.Title.IsNull() || r.Description.IsNull() {
		return apperror.NewInvalidInput("title and description cannot be null", nil)
	}
	if r.Technologies.IsNull() {
		return apperror.NewInvalidInput("technologies cannot be null, send an empty array instead", nil)
	}
	if v, ok := r.GithubURL.Get(); ok {
		if err := validate.Var(v, "url"); err != nil {
			return apperror.NewInvalidInput("github_url must be a valid URL", err)
		}
	}
	if v, ok := r.DemoURL.Get(); ok {
		if err := validate.Var(v, "url"); err != nil {
			return apperror.NewInvalidInput("demo_url must be a valid URL", err)
		}
	}
	return nil
}

func (r *UpdateProjectRequest) ToChanges() project.Changes {
	return project.Changes{
		Title:        r.Title,
		Description:  r.Description,
		ImageURL:     r.ImageURL,
		GithubURL:    r.GithubURL,
		DemoURL:      r.DemoURL,
		Technologies: r.Technologies,
	}
}

type DeleteProjectResponse struct {
	Success bool `json:"success"`
}

// Portfolio DTOs

type PortfolioDTO struct {
	Profile     *ProfileDTO  `json:"profile"`
	Skills      []SkillDTO   `json:"skills"`
	Projects    []ProjectDTO `json:"projects"`
	GeneratedAt time.Time    `json:"generated_at"`
}

func ToPortfolioDTO(s *portfolio.Snapshot) PortfolioDTO {
	dto := PortfolioDTO{
		Skills:      make([]SkillDTO, len(s.Skills)),
		Projects:    make([]ProjectDTO, len(s.Projects)),
		GeneratedAt: s.GeneratedAt,
	}
	if s.Profile != nil {
		p := ToProfileDTO(s.Profile)
		dto.Profile = &p
	}
	for i, sk := range s.Skills {
		dto.Skills[i] = ToSkillDTO(sk)
	}
	for i, p := range s.Projects {
		dto.Projects[i] = ToProjectDTO(p)
	}
	return dto
}

package project

import (
	"context"
	"time"

	"github.com/muftipurwa/portfolio-api/pkg/optional"
)

type Project struct {
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

// Changes is a partial update for an existing project. Technologies, when
// set, fully replaces the stored sequence. CreatedAt is immutable and
// UpdatedAt is refreshed by the store on every update.
type Changes struct {
	Title        optional.Field[string]
	Description  optional.Field[string]
	ImageURL     optional.Field[string]
	GithubURL    optional.Field[string]
	DemoURL      optional.Field[string]
	Technologies optional.Field[[]string]
}

type Repository interface {
	// Save inserts the project and fills ID, CreatedAt and UpdatedAt.
	Save(ctx context.Context, p *Project) error
	// UpdateFields applies only the provided fields and returns the merged
	// row. A missing id is a not-found error, never an implicit create.
	UpdateFields(ctx context.Context, id int64, changes Changes) (*Project, error)
	FindByID(ctx context.Context, id int64) (*Project, error)
	// Delete reports whether a row was found and removed. Deleting an
	// unassigned id is not an error.
	Delete(ctx context.Context, id int64) (bool, error)
	// List returns all projects newest first.
	List(ctx context.Context) ([]*Project, error)
}

package portfolio

import (
	"context"
	"time"

	"github.com/muftipurwa/portfolio-api/internal/domain/profile"
	"github.com/muftipurwa/portfolio-api/internal/domain/project"
	"github.com/muftipurwa/portfolio-api/internal/domain/skill"
)

// Snapshot is the denormalized read model the public site renders: the
// whole portfolio in one document.
type Snapshot struct {
	Profile     *profile.Profile   `json:"profile"`
	Skills      []*skill.Skill     `json:"skills"`
	Projects    []*project.Project `json:"projects"`
	GeneratedAt time.Time          `json:"generated_at"`
}

type Cache interface {
	// Get returns the cached snapshot, or nil on a miss.
	Get(ctx context.Context) (*Snapshot, error)
	Set(ctx context.Context, s *Snapshot) error
}

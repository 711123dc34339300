package portfolio

import (
	"context"
	"fmt"

	"github.com/muftipurwa/portfolio-api/internal/domain/portfolio"
	"github.com/muftipurwa/portfolio-api/internal/domain/profile"
	"github.com/muftipurwa/portfolio-api/internal/domain/project"
	"github.com/muftipurwa/portfolio-api/internal/domain/skill"
)

// RebuildSnapshotUseCase regenerates the cached portfolio snapshot from
// the store. The worker runs it for every content event it consumes.
type RebuildSnapshotUseCase struct {
	cache       portfolio.Cache
	profileRepo profile.Repository
	skillRepo   skill.Repository
	projectRepo project.Repository
}

func NewRebuildSnapshotUseCase(
	cache portfolio.Cache,
	profileRepo profile.Repository,
	skillRepo skill.Repository,
	projectRepo project.Repository,
) *RebuildSnapshotUseCase {
	return &RebuildSnapshotUseCase{
		cache:       cache,
		profileRepo: profileRepo,
		skillRepo:   skillRepo,
		projectRepo: projectRepo,
	}
}

func (uc *RebuildSnapshotUseCase) Execute(ctx context.Context) error {
	s, err := buildSnapshot(ctx, uc.profileRepo, uc.skillRepo, uc.projectRepo)
	if err != nil {
		return fmt.Errorf("build portfolio snapshot failed: %w", err)
	}
	if err := uc.cache.Set(ctx, s); err != nil {
		return fmt.Errorf("store portfolio snapshot failed: %w", err)
	}
	return nil
}

package portfolio

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/muftipurwa/portfolio-api/internal/domain/portfolio"
	"github.com/muftipurwa/portfolio-api/internal/domain/profile"
	"github.com/muftipurwa/portfolio-api/internal/domain/project"
	"github.com/muftipurwa/portfolio-api/internal/domain/skill"
	"github.com/muftipurwa/portfolio-api/pkg/logger"
)

type GetPortfolioUseCase struct {
	cache       portfolio.Cache
	profileRepo profile.Repository
	skillRepo   skill.Repository
	projectRepo project.Repository
	logger      logger.Logger
}

func NewGetPortfolioUseCase(
	cache portfolio.Cache,
	profileRepo profile.Repository,
	skillRepo skill.Repository,
	projectRepo project.Repository,
	log logger.Logger,
) *GetPortfolioUseCase {
	return &GetPortfolioUseCase{
		cache:       cache,
		profileRepo: profileRepo,
		skillRepo:   skillRepo,
		projectRepo: projectRepo,
		logger:      log,
	}
}

type GetPortfolioOutput struct {
	Snapshot *portfolio.Snapshot
}

// Execute serves the snapshot from the cache when it can, otherwise builds
// it from the store and fills the cache on the way out. A cache fault is
// never fatal for a read.
func (uc *GetPortfolioUseCase) Execute(ctx context.Context) (*GetPortfolioOutput, error) {
	s, err := uc.cache.Get(ctx)
	if err != nil {
		uc.logger.Warn("Portfolio snapshot cache read failed, falling back to store", zap.Error(err))
	}
	if s != nil {
		return &GetPortfolioOutput{Snapshot: s}, nil
	}

	s, err = buildSnapshot(ctx, uc.profileRepo, uc.skillRepo, uc.projectRepo)
	if err != nil {
		return nil, fmt.Errorf("build portfolio snapshot failed: %w", err)
	}

	if err := uc.cache.Set(ctx, s); err != nil {
		uc.logger.Warn("Portfolio snapshot cache fill failed", zap.Error(err))
	}

	return &GetPortfolioOutput{Snapshot: s}, nil
}

func buildSnapshot(
	ctx context.Context,
	profileRepo profile.Repository,
	skillRepo skill.Repository,
	projectRepo project.Repository,
) (*portfolio.Snapshot, error) {
	p, err := profileRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	skills, err := skillRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	projects, err := projectRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	return &portfolio.Snapshot{
		Profile:     p,
		Skills:      skills,
		Projects:    projects,
		GeneratedAt: time.Now().UTC(),
	}, nil
}

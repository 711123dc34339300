package profile

import (
	"context"
	"fmt"

	"github.com/muftipurwa/portfolio-api/internal/domain/profile"
)

type GetProfileUseCase struct {
	profileRepo profile.Repository
}

func NewGetProfileUseCase(repo profile.Repository) *GetProfileUseCase {
	return &GetProfileUseCase{profileRepo: repo}
}

type GetProfileOutput struct {
	// Profile is nil when no profile has been created yet.
	Profile *profile.Profile
}

func (uc *GetProfileUseCase) Execute(ctx context.Context) (*GetProfileOutput, error) {
	p, err := uc.profileRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get profile failed: %w", err)
	}
	return &GetProfileOutput{Profile: p}, nil
}

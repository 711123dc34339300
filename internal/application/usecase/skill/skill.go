package skill

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/muftipurwa/portfolio-api/adapters/event"
	"github.com/muftipurwa/portfolio-api/internal/domain/skill"
	"github.com/muftipurwa/portfolio-api/pkg/logger"
)

type CreateSkillUseCase struct {
	skillRepo skill.Repository
	publisher event.Publisher
	logger    logger.Logger
}

func NewCreateSkillUseCase(repo skill.Repository, publisher event.Publisher, log logger.Logger) *CreateSkillUseCase {
	return &CreateSkillUseCase{skillRepo: repo, publisher: publisher, logger: log}
}

type CreateSkillInput struct {
	Name     string
	Category *string
}

type CreateSkillOutput struct {
	Skill *skill.Skill
}

func (uc *CreateSkillUseCase) Execute(ctx context.Context, input CreateSkillInput) (*CreateSkillOutput, error) {
	s := &skill.Skill{
		Name:     input.Name,
		Category: input.Category,
	}

	if err := uc.skillRepo.Save(ctx, s); err != nil {
		return nil, fmt.Errorf("save skill failed: %w", err)
	}

	go func() {
		err := uc.publisher.PublishContentEvent(context.Background(), event.ContentEventPayload{
			EventType:  event.ContentEventSkillCreated,
			ResourceID: s.ID,
		})
		if err != nil {
			uc.logger.Warn("Sent skill event to Kafka failed", zap.Int64("skill_id", s.ID), zap.Error(err))
		}
	}()

	return &CreateSkillOutput{Skill: s}, nil
}

type ListSkillsUseCase struct {
	skillRepo skill.Repository
}

func NewListSkillsUseCase(repo skill.Repository) *ListSkillsUseCase {
	return &ListSkillsUseCase{skillRepo: repo}
}

type ListSkillsOutput struct {
	Skills []*skill.Skill
}

func (uc *ListSkillsUseCase) Execute(ctx context.Context) (*ListSkillsOutput, error) {
	skills, err := uc.skillRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list skills failed: %w", err)
	}
	return &ListSkillsOutput{Skills: skills}, nil
}

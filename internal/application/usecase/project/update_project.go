package project

import (
	"context"

	"go.uber.org/zap"

	"github.com/muftipurwa/portfolio-api/adapters/event"
	"github.com/muftipurwa/portfolio-api/internal/domain/project"
	"github.com/muftipurwa/portfolio-api/pkg/logger"
)

type UpdateProjectUseCase struct {
	projectRepo project.Repository
	publisher   event.Publisher
	logger      logger.Logger
}

func NewUpdateProjectUseCase(pRepo project.Repository, publisher event.Publisher, log logger.Logger) *UpdateProjectUseCase {
	return &UpdateProjectUseCase{projectRepo: pRepo, publisher: publisher, logger: log}
}

type UpdateProjectInput struct {
	ProjectID int64
	Changes   project.Changes
}

type UpdateProjectOutput struct {
	Project *project.Project
}

func (uc *UpdateProjectUseCase) Execute(ctx context.Context, input UpdateProjectInput) (*UpdateProjectOutput, error) {
	// The store rejects unknown ids; an update never creates a record.
	p, err := uc.projectRepo.UpdateFields(ctx, input.ProjectID, input.Changes)
	if err != nil {
		return nil, err
	}

	go func() {
		err := uc.publisher.PublishContentEvent(context.Background(), event.ContentEventPayload{
			EventType:  event.ContentEventProjectUpdated,
			ResourceID: p.ID,
		})
		if err != nil {
			uc.logger.Warn("Sent project event to Kafka failed", zap.Int64("project_id", p.ID), zap.Error(err))
		}
	}()

	return &UpdateProjectOutput{Project: p}, nil
}

package project

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/muftipurwa/portfolio-api/adapters/event"
	"github.com/muftipurwa/portfolio-api/internal/domain/project"
	"github.com/muftipurwa/portfolio-api/pkg/logger"
)

type DeleteProjectUseCase struct {
	projectRepo project.Repository
	publisher   event.Publisher
	logger      logger.Logger
}

func NewDeleteProjectUseCase(pRepo project.Repository, publisher event.Publisher, log logger.Logger) *DeleteProjectUseCase {
	return &DeleteProjectUseCase{projectRepo: pRepo, publisher: publisher, logger: log}
}

type DeleteProjectInput struct {
	ProjectID int64
}

type DeleteProjectOutput struct {
	// Success is false when the id was not found; that is not an error.
	Success bool
}

func (uc *DeleteProjectUseCase) Execute(ctx context.Context, input DeleteProjectInput) (*DeleteProjectOutput, error) {
	found, err := uc.projectRepo.Delete(ctx, input.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("delete project failed: %w", err)
	}

	if found {
		go func() {
			err := uc.publisher.PublishContentEvent(context.Background(), event.ContentEventPayload{
				EventType:  event.ContentEventProjectDeleted,
				ResourceID: input.ProjectID,
			})
			if err != nil {
				uc.logger.Warn("Sent project event to Kafka failed", zap.Int64("project_id", input.ProjectID), zap.Error(err))
			}
		}()
	}

	return &DeleteProjectOutput{Success: found}, nil
}

package project

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/muftipurwa/portfolio-api/adapters/event"
	"github.com/muftipurwa/portfolio-api/internal/domain/project"
	"github.com/muftipurwa/portfolio-api/pkg/logger"
)

type CreateProjectUseCase struct {
	projectRepo project.Repository
	publisher   event.Publisher
	logger      logger.Logger
}

func NewCreateProjectUseCase(pRepo project.Repository, publisher event.Publisher, log logger.Logger) *CreateProjectUseCase {
	return &CreateProjectUseCase{
		projectRepo: pRepo,
		publisher:   publisher,
		logger:      log,
	}
}

type CreateProjectInput struct {
	Title        string
	Description  string
	ImageURL     *string
	GithubURL    *string
	DemoURL      *string
	Technologies []string
}

type CreateProjectOutput struct {
	Project *project.Project
}

func (uc *CreateProjectUseCase) Execute(ctx context.Context, input CreateProjectInput) (*CreateProjectOutput, error) {
	now := time.Now().UTC()

	if input.Technologies == nil {
		input.Technologies = []string{}
	}

	newProject := &project.Project{
		Title:        input.Title,
		Description:  input.Description,
		ImageURL:     input.ImageURL,
		GithubURL:    input.GithubURL,
		DemoURL:      input.DemoURL,
		Technologies: input.Technologies,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.projectRepo.Save(ctx, newProject); err != nil {
		return nil, fmt.Errorf("save project failed: %w", err)
	}

	go func() {
		err := uc.publisher.PublishContentEvent(context.Background(), event.ContentEventPayload{
			EventType:  event.ContentEventProjectCreated,
			ResourceID: newProject.ID,
		})
		if err != nil {
			uc.logger.Warn("Sent project event to Kafka failed", zap.Int64("project_id", newProject.ID), zap.Error(err))
		}
	}()

	return &CreateProjectOutput{Project: newProject}, nil
}

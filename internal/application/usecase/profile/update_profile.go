package profile

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/muftipurwa/portfolio-api/adapters/event"
	"github.com/muftipurwa/portfolio-api/internal/domain/profile"
	"github.com/muftipurwa/portfolio-api/pkg/logger"
)

// FallbackDefaults is the identity a first-ever update is merged over when
// the store holds no profile yet. Injected from configuration.
type FallbackDefaults struct {
	Name             string
	Greeting         string
	Email            string
	LinkedinURL      string
	WhatsappNumber   string
	AboutDescription string
}

type UpdateProfileUseCase struct {
	profileRepo profile.Repository
	defaults    FallbackDefaults
	publisher   event.Publisher
	logger      logger.Logger
}

func NewUpdateProfileUseCase(repo profile.Repository, defaults FallbackDefaults, publisher event.Publisher, log logger.Logger) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		profileRepo: repo,
		defaults:    defaults,
		publisher:   publisher,
		logger:      log,
	}
}

type UpdateProfileInput struct {
	Changes profile.Changes
}

type UpdateProfileOutput struct {
	Profile *profile.Profile
}

func (uc *UpdateProfileUseCase) Execute(ctx context.Context, input UpdateProfileInput) (*UpdateProfileOutput, error) {
	bootstrap := uc.buildBootstrap(input.Changes, time.Now().UTC())

	p, err := uc.profileRepo.Upsert(ctx, input.Changes, bootstrap)
	if err != nil {
		return nil, fmt.Errorf("update profile failed: %w", err)
	}

	go func() {
		err := uc.publisher.PublishContentEvent(context.Background(), event.ContentEventPayload{
			EventType:  event.ContentEventProfileUpdated,
			ResourceID: p.ID,
		})
		if err != nil {
			uc.logger.Warn("Sent profile event to Kafka failed", zap.Int64("profile_id", p.ID), zap.Error(err))
		}
	}()

	return &UpdateProfileOutput{Profile: p}, nil
}

// buildBootstrap takes the input value for every provided field and the
// configured default for every absent one. An entirely empty input still
// yields a complete profile.
func (uc *UpdateProfileUseCase) buildBootstrap(c profile.Changes, now time.Time) *profile.Profile {
	p := &profile.Profile{
		Name:             uc.defaults.Name,
		Greeting:         uc.defaults.Greeting,
		Email:            uc.defaults.Email,
		LinkedinURL:      nonEmptyPtr(uc.defaults.LinkedinURL),
		WhatsappNumber:   nonEmptyPtr(uc.defaults.WhatsappNumber),
		AboutDescription: uc.defaults.AboutDescription,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if v, ok := c.Name.Get(); ok {
		p.Name = v
	}
	if v, ok := c.Greeting.Get(); ok {
		p.Greeting = v
	}
	if v, ok := c.Email.Get(); ok {
		p.Email = v
	}
	if c.LinkedinURL.IsSet() {
		p.LinkedinURL = c.LinkedinURL.Ptr()
	}
	if c.WhatsappNumber.IsSet() {
		p.WhatsappNumber = c.WhatsappNumber.Ptr()
	}
	if v, ok := c.AboutDescription.Get(); ok {
		p.AboutDescription = v
	}
	return p
}

func nonEmptyPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

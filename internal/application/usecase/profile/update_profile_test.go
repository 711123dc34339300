package profile

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/muftipurwa/portfolio-api/adapters/event"
	"github.com/muftipurwa/portfolio-api/internal/domain/profile"
	"github.com/muftipurwa/portfolio-api/pkg/logger"
	"github.com/muftipurwa/portfolio-api/pkg/optional"
)

// memProfileRepo implements the repository contract in memory: at most one
// row, merge-on-update, insert-on-absence.
type memProfileRepo struct {
	mu  sync.Mutex
	row *profile.Profile
}

func copyProfile(p *profile.Profile) *profile.Profile {
	cp := *p
	if p.LinkedinURL != nil {
		v := *p.LinkedinURL
		cp.LinkedinURL = &v
	}
	if p.WhatsappNumber != nil {
		v := *p.WhatsappNumber
		cp.WhatsappNumber = &v
	}
	return &cp
}

func (r *memProfileRepo) Get(ctx context.Context) (*profile.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.row == nil {
		return nil, nil
	}
	return copyProfile(r.row), nil
}

func (r *memProfileRepo) Upsert(ctx context.Context, changes profile.Changes, bootstrap *profile.Profile) (*profile.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.row == nil {
		p := copyProfile(bootstrap)
		p.ID = 1
		r.row = p
		return copyProfile(p), nil
	}

	p := r.row
	if v, ok := changes.Name.Get(); ok {
		p.Name = v
	}
	if v, ok := changes.Greeting.Get(); ok {
		p.Greeting = v
	}
	if v, ok := changes.Email.Get(); ok {
		p.Email = v
	}
	if changes.LinkedinURL.IsSet() {
		p.LinkedinURL = changes.LinkedinURL.Ptr()
	}
	if changes.WhatsappNumber.IsSet() {
		p.WhatsappNumber = changes.WhatsappNumber.Ptr()
	}
	if v, ok := changes.AboutDescription.Get(); ok {
		p.AboutDescription = v
	}
	p.UpdatedAt = time.Now().UTC()
	return copyProfile(p), nil
}

type capturingPublisher struct {
	mu     sync.Mutex
	events []event.ContentEventPayload
}

func (p *capturingPublisher) PublishContentEvent(ctx context.Context, payload event.ContentEventPayload) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, payload)
	return nil
}

var testDefaults = FallbackDefaults{
	Name:             "mufti",
	Greeting:         "Hello! I'm mufti.",
	Email:            "muftipurwa4@gmail.com",
	LinkedinURL:      "https://linkedin.com/in/mufti",
	WhatsappNumber:   "+1234567890",
	AboutDescription: "Fine arts background, now building for the web.",
}

type UpdateProfileTestSuite struct {
	suite.Suite
	repo *memProfileRepo
	uc   *UpdateProfileUseCase
}

func (s *UpdateProfileTestSuite) SetupTest() {
	s.repo = &memProfileRepo{}
	s.uc = NewUpdateProfileUseCase(s.repo, testDefaults, &capturingPublisher{}, logger.NewNop())
}

func TestUpdateProfile(t *testing.T) {
	suite.Run(t, new(UpdateProfileTestSuite))
}

func (s *UpdateProfileTestSuite) Test_Bootstrap_EmptyInput() {
	output, err := s.uc.Execute(context.Background(), UpdateProfileInput{})

	s.NoError(err)
	p := output.Profile
	s.Equal("mufti", p.Name)
	s.Equal("Hello! I'm mufti.", p.Greeting)
	s.Equal("muftipurwa4@gmail.com", p.Email)
	s.Require().NotNil(p.LinkedinURL)
	s.Equal("https://linkedin.com/in/mufti", *p.LinkedinURL)
	s.Require().NotNil(p.WhatsappNumber)
	s.Equal("+1234567890", *p.WhatsappNumber)
	s.True(p.CreatedAt.Equal(p.UpdatedAt))
}

func (s *UpdateProfileTestSuite) Test_Bootstrap_InputOverridesDefaults() {
	changes := profile.Changes{
		Name:        optional.Of("Alice"),
		LinkedinURL: optional.Null[string](),
	}
	output, err := s.uc.Execute(context.Background(), UpdateProfileInput{Changes: changes})

	s.NoError(err)
	s.Equal("Alice", output.Profile.Name)
	s.Equal(testDefaults.Greeting, output.Profile.Greeting)
	s.Nil(output.Profile.LinkedinURL)
}

func (s *UpdateProfileTestSuite) Test_PartialMerge_PreservesUntouchedFields() {
	_, err := s.uc.Execute(context.Background(), UpdateProfileInput{Changes: profile.Changes{
		Name:        optional.Of("A"),
		Email:       optional.Of("a@x.com"),
		LinkedinURL: optional.Of("https://l"),
	}})
	s.Require().NoError(err)

	output, err := s.uc.Execute(context.Background(), UpdateProfileInput{Changes: profile.Changes{
		Name: optional.Of("B"),
	}})

	s.NoError(err)
	s.Equal("B", output.Profile.Name)
	s.Equal("a@x.com", output.Profile.Email)
	s.Require().NotNil(output.Profile.LinkedinURL)
	s.Equal("https://l", *output.Profile.LinkedinURL)
}

func (s *UpdateProfileTestSuite) Test_ExplicitNullOverwrite() {
	_, err := s.uc.Execute(context.Background(), UpdateProfileInput{Changes: profile.Changes{
		Name:        optional.Of("A"),
		Email:       optional.Of("a@x.com"),
		LinkedinURL: optional.Of("https://l"),
	}})
	s.Require().NoError(err)

	output, err := s.uc.Execute(context.Background(), UpdateProfileInput{Changes: profile.Changes{
		LinkedinURL: optional.Null[string](),
	}})

	s.NoError(err)
	s.Nil(output.Profile.LinkedinURL)
	s.Equal("A", output.Profile.Name)
	s.Equal("a@x.com", output.Profile.Email)
}

func (s *UpdateProfileTestSuite) Test_Singleton_ManyUpdatesOneRow() {
	for i := 0; i < 5; i++ {
		_, err := s.uc.Execute(context.Background(), UpdateProfileInput{Changes: profile.Changes{
			Greeting: optional.Of("hi"),
		}})
		s.Require().NoError(err)
	}

	p, err := s.repo.Get(context.Background())
	s.NoError(err)
	s.Require().NotNil(p)
	s.Equal(int64(1), p.ID)
	s.Equal("hi", p.Greeting)
}

func (s *UpdateProfileTestSuite) Test_UpdatedAtRefreshed_EvenWithoutChanges() {
	old := time.Now().UTC().Add(-time.Hour)
	s.repo.row = &profile.Profile{
		ID:        1,
		Name:      "A",
		Greeting:  "g",
		Email:     "a@x.com",
		CreatedAt: old,
		UpdatedAt: old,
	}

	output, err := s.uc.Execute(context.Background(), UpdateProfileInput{})

	s.NoError(err)
	s.True(output.Profile.UpdatedAt.After(old))
	s.True(output.Profile.CreatedAt.Equal(old))
	s.Equal("A", output.Profile.Name)
}

package portfolio

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/muftipurwa/portfolio-api/internal/domain/portfolio"
	"github.com/muftipurwa/portfolio-api/internal/domain/profile"
	"github.com/muftipurwa/portfolio-api/internal/domain/project"
	"github.com/muftipurwa/portfolio-api/internal/domain/skill"
	"github.com/muftipurwa/portfolio-api/pkg/logger"
)

type fakeCache struct {
	snapshot *portfolio.Snapshot
	getErr   error
	setErr   error
	sets     int
}

func (c *fakeCache) Get(ctx context.Context) (*portfolio.Snapshot, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.snapshot, nil
}

func (c *fakeCache) Set(ctx context.Context, s *portfolio.Snapshot) error {
	c.sets++
	if c.setErr != nil {
		return c.setErr
	}
	c.snapshot = s
	return nil
}

type stubProfileRepo struct {
	row *profile.Profile
	err error
}

func (r *stubProfileRepo) Get(ctx context.Context) (*profile.Profile, error) {
	return r.row, r.err
}

func (r *stubProfileRepo) Upsert(ctx context.Context, changes profile.Changes, bootstrap *profile.Profile) (*profile.Profile, error) {
	return nil, errors.New("not used")
}

type stubSkillRepo struct{ rows []*skill.Skill }

func (r *stubSkillRepo) Save(ctx context.Context, s *skill.Skill) error { return errors.New("not used") }
func (r *stubSkillRepo) List(ctx context.Context) ([]*skill.Skill, error) {
	return r.rows, nil
}

type stubProjectRepo struct{ rows []*project.Project }

func (r *stubProjectRepo) Save(ctx context.Context, p *project.Project) error {
	return errors.New("not used")
}

func (r *stubProjectRepo) UpdateFields(ctx context.Context, id int64, changes project.Changes) (*project.Project, error) {
	return nil, errors.New("not used")
}

func (r *stubProjectRepo) FindByID(ctx context.Context, id int64) (*project.Project, error) {
	return nil, errors.New("not used")
}

func (r *stubProjectRepo) Delete(ctx context.Context, id int64) (bool, error) {
	return false, errors.New("not used")
}

func (r *stubProjectRepo) List(ctx context.Context) ([]*project.Project, error) {
	return r.rows, nil
}

type GetPortfolioTestSuite struct {
	suite.Suite
	cache       *fakeCache
	profileRepo *stubProfileRepo
	skillRepo   *stubSkillRepo
	projectRepo *stubProjectRepo
	uc          *GetPortfolioUseCase
}

func (s *GetPortfolioTestSuite) SetupTest() {
	s.cache = &fakeCache{}
	s.profileRepo = &stubProfileRepo{row: &profile.Profile{ID: 1, Name: "mufti"}}
	s.skillRepo = &stubSkillRepo{rows: []*skill.Skill{{ID: 1, Name: "Go"}}}
	s.projectRepo = &stubProjectRepo{rows: []*project.Project{{ID: 1, Title: "Site"}}}
	s.uc = NewGetPortfolioUseCase(s.cache, s.profileRepo, s.skillRepo, s.projectRepo, logger.NewNop())
}

func TestGetPortfolio(t *testing.T) {
	suite.Run(t, new(GetPortfolioTestSuite))
}

func (s *GetPortfolioTestSuite) Test_CacheHit_SkipsStore() {
	cached := &portfolio.Snapshot{GeneratedAt: time.Now().UTC().Add(-time.Minute)}
	s.cache.snapshot = cached

	output, err := s.uc.Execute(context.Background())

	s.NoError(err)
	s.Same(cached, output.Snapshot)
	s.Zero(s.cache.sets)
}

func (s *GetPortfolioTestSuite) Test_CacheMiss_BuildsAndFills() {
	output, err := s.uc.Execute(context.Background())

	s.NoError(err)
	s.Require().NotNil(output.Snapshot)
	s.Require().NotNil(output.Snapshot.Profile)
	s.Equal("mufti", output.Snapshot.Profile.Name)
	s.Len(output.Snapshot.Skills, 1)
	s.Len(output.Snapshot.Projects, 1)
	s.False(output.Snapshot.GeneratedAt.IsZero())
	s.Equal(1, s.cache.sets)
	s.Same(output.Snapshot, s.cache.snapshot)
}

func (s *GetPortfolioTestSuite) Test_CacheReadError_FallsBackToStore() {
	s.cache.getErr = errors.New("redis down")

	output, err := s.uc.Execute(context.Background())

	s.NoError(err)
	s.Require().NotNil(output.Snapshot)
	s.Equal("mufti", output.Snapshot.Profile.Name)
}

func (s *GetPortfolioTestSuite) Test_CacheFillError_NotFatal() {
	s.cache.setErr = errors.New("redis down")

	output, err := s.uc.Execute(context.Background())

	s.NoError(err)
	s.NotNil(output.Snapshot)
}

func (s *GetPortfolioTestSuite) Test_AbsentProfile_SnapshotStillBuilt() {
	s.profileRepo.row = nil

	output, err := s.uc.Execute(context.Background())

	s.NoError(err)
	s.Require().NotNil(output.Snapshot)
	s.Nil(output.Snapshot.Profile)
	s.Len(output.Snapshot.Skills, 1)
}

func (s *GetPortfolioTestSuite) Test_StoreError_Propagates() {
	s.profileRepo.row = nil
	s.profileRepo.err = errors.New("db down")

	_, err := s.uc.Execute(context.Background())

	s.Error(err)
	s.Zero(s.cache.sets)
}

func TestRebuildSnapshot(t *testing.T) {
	cache := &fakeCache{}
	uc := NewRebuildSnapshotUseCase(
		cache,
		&stubProfileRepo{row: &profile.Profile{ID: 1, Name: "mufti"}},
		&stubSkillRepo{},
		&stubProjectRepo{},
	)

	err := uc.Execute(context.Background())

	if err != nil {
		t.Fatalf("rebuild failed: %v", err)
	}
	if cache.snapshot == nil {
		t.Fatal("expected snapshot to be stored")
	}
	if cache.snapshot.Profile == nil || cache.snapshot.Profile.Name != "mufti" {
		t.Fatalf("unexpected snapshot profile: %+v", cache.snapshot.Profile)
	}
}

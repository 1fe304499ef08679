package rosters_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/godex/internal/errors"
	"github.com/KirkDiggler/godex/internal/pkg/clock"
	"github.com/KirkDiggler/godex/internal/repositories/rosters"
)

type InMemoryTestSuite struct {
	suite.Suite
	ctx   context.Context
	clock *clock.Fixed
	repo  *rosters.InMemoryRepository
	start time.Time
}

func TestInMemorySuite(t *testing.T) {
	suite.Run(t, new(InMemoryTestSuite))
}

func (s *InMemoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.start = time.Date(2024, 7, 6, 12, 0, 0, 0, time.UTC)
	s.clock = clock.NewFixed(s.start)
	s.repo = rosters.NewInMemory(s.clock)
}

func (s *InMemoryTestSuite) create(id string, expiresAt time.Time) {
	_, err := s.repo.Create(s.ctx, &rosters.CreateInput{
		Data: &rosters.RosterData{
			ID:        id,
			Name:      "Team " + id,
			Members:   map[string]int{"bulbasaur": 2},
			CreatedAt: s.start,
			UpdatedAt: s.start,
			ExpiresAt: expiresAt,
		},
	})
	s.Require().NoError(err)
}

func (s *InMemoryTestSuite) TestCreateAndGet() {
	s.create("roster_1", time.Time{})

	out, err := s.repo.Get(s.ctx, &rosters.GetInput{ID: "roster_1"})
	s.Require().NoError(err)
	s.Assert().Equal("Team roster_1", out.Data.Name)
	s.Assert().Equal(map[string]int{"bulbasaur": 2}, out.Data.Members)
	s.Assert().Equal(s.start, out.Data.CreatedAt)
}

func (s *InMemoryTestSuite) TestCreateDuplicate() {
	s.create("roster_1", time.Time{})

	_, err := s.repo.Create(s.ctx, &rosters.CreateInput{Data: &rosters.RosterData{ID: "roster_1"}})
	s.Require().Error(err)
	s.Assert().True(errors.IsAlreadyExists(err))
}

func (s *InMemoryTestSuite) TestGetReturnsCopy() {
	s.create("roster_1", time.Time{})

	out, err := s.repo.Get(s.ctx, &rosters.GetInput{ID: "roster_1"})
	s.Require().NoError(err)
	out.Data.Members["charmander"] = 1

	again, err := s.repo.Get(s.ctx, &rosters.GetInput{ID: "roster_1"})
	s.Require().NoError(err)
	s.Assert().NotContains(again.Data.Members, "charmander")
}

func (s *InMemoryTestSuite) TestUpdate() {
	s.create("roster_1", time.Time{})
	later := s.start.Add(time.Minute)

	out, err := s.repo.Update(s.ctx, &rosters.UpdateInput{
		ID:        "roster_1",
		Members:   map[string]int{"bulbasaur": 1, "charmander": 3},
		UpdatedAt: later,
	})
	s.Require().NoError(err)
	s.Assert().Equal(map[string]int{"bulbasaur": 1, "charmander": 3}, out.Data.Members)
	s.Assert().Equal(later, out.Data.UpdatedAt)
	s.Assert().Equal(s.start, out.Data.CreatedAt)
}

func (s *InMemoryTestSuite) TestUpdateRejectsNonPositiveCounts() {
	s.create("roster_1", time.Time{})

	_, err := s.repo.Update(s.ctx, &rosters.UpdateInput{
		ID:      "roster_1",
		Members: map[string]int{"bulbasaur": 0},
	})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *InMemoryTestSuite) TestDelete() {
	s.create("roster_1", time.Time{})

	out, err := s.repo.Delete(s.ctx, &rosters.DeleteInput{ID: "roster_1"})
	s.Require().NoError(err)
	s.Assert().True(out.Success)

	_, err = s.repo.Get(s.ctx, &rosters.GetInput{ID: "roster_1"})
	s.Assert().True(errors.IsNotFound(err))

	_, err = s.repo.Delete(s.ctx, &rosters.DeleteInput{ID: "roster_1"})
	s.Assert().True(errors.IsNotFound(err))
}

func (s *InMemoryTestSuite) TestExpiredSessionsAreGone() {
	s.create("roster_1", s.start.Add(15*time.Minute))

	s.clock.Advance(14 * time.Minute)
	_, err := s.repo.Get(s.ctx, &rosters.GetInput{ID: "roster_1"})
	s.Require().NoError(err)

	s.clock.Advance(time.Minute)
	_, err = s.repo.Get(s.ctx, &rosters.GetInput{ID: "roster_1"})
	s.Assert().True(errors.IsNotFound(err))

	_, err = s.repo.Update(s.ctx, &rosters.UpdateInput{ID: "roster_1"})
	s.Assert().True(errors.IsNotFound(err))
}

func (s *InMemoryTestSuite) TestInputValidation() {
	testCases := []struct {
		name string
		call func() error
	}{
		{"nil create", func() error { _, err := s.repo.Create(s.ctx, nil); return err }},
		{"create without id", func() error {
			_, err := s.repo.Create(s.ctx, &rosters.CreateInput{Data: &rosters.RosterData{}})
			return err
		}},
		{"nil get", func() error { _, err := s.repo.Get(s.ctx, nil); return err }},
		{"get without id", func() error { _, err := s.repo.Get(s.ctx, &rosters.GetInput{}); return err }},
		{"update without id", func() error { _, err := s.repo.Update(s.ctx, &rosters.UpdateInput{}); return err }},
		{"delete without id", func() error { _, err := s.repo.Delete(s.ctx, &rosters.DeleteInput{}); return err }},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := tc.call()
			s.Require().Error(err)
			s.Assert().True(errors.IsInvalidArgument(err))
		})
	}
}

package gym_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/godex/internal/engine"
	"github.com/KirkDiggler/godex/internal/errors"
	"github.com/KirkDiggler/godex/internal/orchestrators/gym"
	"github.com/KirkDiggler/godex/internal/pkg/clock"
	"github.com/KirkDiggler/godex/internal/pkg/idgen"
	"github.com/KirkDiggler/godex/internal/repositories/rosters"
	rostersmock "github.com/KirkDiggler/godex/internal/repositories/rosters/mock"
	"github.com/KirkDiggler/godex/internal/testutils"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctx          context.Context
	engine       engine.Engine
	clock        *clock.Fixed
	start        time.Time
	orchestrator gym.Service
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupSuite() {
	var err error
	s.engine, err = engine.New(&engine.Config{Catalog: testutils.EmbeddedCatalog(s.T())})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.start = time.Date(2024, 7, 6, 12, 0, 0, 0, time.UTC)
	s.clock = clock.NewFixed(s.start)

	var err error
	s.orchestrator, err = gym.NewOrchestrator(&gym.Config{
		Engine:      s.engine,
		RosterRepo:  rosters.NewInMemory(s.clock),
		IDGenerator: idgen.NewSequential("roster"),
		Clock:       s.clock,
	})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) createRoster(members ...string) *gym.Report {
	out, err := s.orchestrator.CreateRoster(s.ctx, &gym.CreateRosterInput{Name: "Pallet", Members: members})
	s.Require().NoError(err)
	return out.Report
}

func scoreOf(scores []engine.TypeScore, typeKey string) float64 {
	for _, sc := range scores {
		if sc.Type == typeKey {
			return sc.Score
		}
	}
	return 0
}

func (s *OrchestratorTestSuite) TestNewOrchestratorValidatesConfig() {
	_, err := gym.NewOrchestrator(&gym.Config{Engine: s.engine})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Contains(err.Error(), "RosterRepo")
	s.Assert().Contains(err.Error(), "IDGenerator")
	s.Assert().Contains(err.Error(), "Clock")
}

func (s *OrchestratorTestSuite) TestCreateRoster() {
	out, err := s.orchestrator.CreateRoster(s.ctx, &gym.CreateRosterInput{
		Name:    "  Pallet  ",
		Members: []string{"Bulbasaur", "bulbasaur", "missingno"},
	})
	s.Require().NoError(err)

	report := out.Report
	s.Assert().Equal("roster_1", report.ID)
	s.Assert().Equal("Pallet", report.Name)
	s.Assert().Equal(2, report.Total)
	s.Assert().Equal([]string{"missingno"}, out.Skipped)
	s.Assert().Equal(s.start, report.CreatedAt)
	s.Assert().Equal(s.start.Add(gym.DefaultSessionTTL), report.ExpiresAt)

	s.Require().Len(report.Members, 1)
	s.Assert().Equal(gym.MemberSummary{
		Key:   "bulbasaur",
		Name:  "Bulbasaur",
		Types: []string{"grass", "poison"},
		Count: 2,
		CP:    501,
		MaxCP: 1115,
	}, report.Members[0])

	s.Assert().Equal([]engine.TypeCount{{Type: "grass", Count: 2}, {Type: "poison", Count: 2}}, report.TypesPresent)
	s.Assert().Equal(1.25, scoreOf(report.Offense, "water"))
}

func (s *OrchestratorTestSuite) TestCreateRosterRejectsLongName() {
	long := make([]byte, gym.MaxRosterNameLength+1)
	for i := range long {
		long[i] = 'a'
	}

	_, err := s.orchestrator.CreateRoster(s.ctx, &gym.CreateRosterInput{Name: string(long)})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestAddAndRemoveMembers() {
	report := s.createRoster("bulbasaur", "bulbasaur")

	s.clock.Advance(time.Minute)
	added, err := s.orchestrator.AddMember(s.ctx, &gym.AddMemberInput{RosterID: report.ID, Search: "Charmander"})
	s.Require().NoError(err)
	s.Assert().True(added.Added)
	s.Assert().Equal(3, added.Report.Total)
	s.Assert().Equal(1.1, scoreOf(added.Report.Offense, "water"))
	s.Assert().Equal(s.start.Add(time.Minute), added.Report.UpdatedAt)

	removed, err := s.orchestrator.RemoveMember(s.ctx, &gym.RemoveMemberInput{RosterID: report.ID, Search: "charmander"})
	s.Require().NoError(err)
	s.Assert().True(removed.Removed)
	s.Assert().Equal(2, removed.Report.Total)
	s.Assert().Equal(1.25, scoreOf(removed.Report.Offense, "water"))
}

func (s *OrchestratorTestSuite) TestUnknownMembersAreNoOps() {
	report := s.createRoster("pikachu")

	added, err := s.orchestrator.AddMember(s.ctx, &gym.AddMemberInput{RosterID: report.ID, Search: "missingno"})
	s.Require().NoError(err)
	s.Assert().False(added.Added)
	s.Assert().Equal(1, added.Report.Total)

	removed, err := s.orchestrator.RemoveMember(s.ctx, &gym.RemoveMemberInput{RosterID: report.ID, Search: "eevee"})
	s.Require().NoError(err)
	s.Assert().False(removed.Removed)
	s.Assert().Equal(1, removed.Report.Total)
}

func (s *OrchestratorTestSuite) TestGetReportInvertsOrdering() {
	report := s.createRoster("bulbasaur")

	out, err := s.orchestrator.GetReport(s.ctx, &gym.GetReportInput{RosterID: report.ID})
	s.Require().NoError(err)
	s.Assert().Equal("fairy", out.Report.Offense[0].Type)
	s.Assert().Equal("grass", out.Report.Defense[0].Type)
	s.Assert().Equal([]string{"dark", "ground", "normal", "rock"}, out.Report.UncoveredTypes)

	inverted, err := s.orchestrator.GetReport(s.ctx, &gym.GetReportInput{
		RosterID:      report.ID,
		InvertOffense: true,
		InvertDefense: true,
	})
	s.Require().NoError(err)
	s.Assert().Equal("poison", inverted.Report.Offense[0].Type)
	s.Assert().Equal("fire", inverted.Report.Defense[0].Type)
}

func (s *OrchestratorTestSuite) TestEmptyRosterReport() {
	report := s.createRoster()

	s.Assert().Zero(report.Total)
	s.Assert().Empty(report.Members)
	s.Assert().Empty(report.Offense)
	s.Assert().Len(report.UncoveredTypes, 18)
}

func (s *OrchestratorTestSuite) TestUnknownRoster() {
	_, err := s.orchestrator.GetReport(s.ctx, &gym.GetReportInput{RosterID: "roster_404"})
	s.Assert().True(errors.IsNotFound(err))

	_, err = s.orchestrator.AddMember(s.ctx, &gym.AddMemberInput{RosterID: "roster_404", Search: "pikachu"})
	s.Assert().True(errors.IsNotFound(err))

	_, err = s.orchestrator.DeleteRoster(s.ctx, &gym.DeleteRosterInput{RosterID: "roster_404"})
	s.Assert().True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestSessionsExpire() {
	report := s.createRoster("pikachu")

	s.clock.Advance(gym.DefaultSessionTTL - time.Second)
	_, err := s.orchestrator.AddMember(s.ctx, &gym.AddMemberInput{RosterID: report.ID, Search: "eevee"})
	s.Require().NoError(err)

	// the add refreshed the expiry
	s.clock.Advance(gym.DefaultSessionTTL - time.Second)
	_, err = s.orchestrator.GetReport(s.ctx, &gym.GetReportInput{RosterID: report.ID})
	s.Require().NoError(err)

	s.clock.Advance(time.Second)
	_, err = s.orchestrator.GetReport(s.ctx, &gym.GetReportInput{RosterID: report.ID})
	s.Assert().True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestDeleteRoster() {
	report := s.createRoster("pikachu")

	out, err := s.orchestrator.DeleteRoster(s.ctx, &gym.DeleteRosterInput{RosterID: report.ID})
	s.Require().NoError(err)
	s.Assert().True(out.Success)

	_, err = s.orchestrator.GetReport(s.ctx, &gym.GetReportInput{RosterID: report.ID})
	s.Assert().True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestMemberInputValidation() {
	_, err := s.orchestrator.AddMember(s.ctx, &gym.AddMemberInput{})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Contains(err.Error(), "roster_id")
	s.Assert().Contains(err.Error(), "search")

	_, err = s.orchestrator.RemoveMember(s.ctx, nil)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestUnchangedRosterIsNotWritten() {
	ctrl := gomock.NewController(s.T())
	defer ctrl.Finish()

	mockRepo := rostersmock.NewMockRepository(ctrl)
	orchestrator, err := gym.NewOrchestrator(&gym.Config{
		Engine:      s.engine,
		RosterRepo:  mockRepo,
		IDGenerator: idgen.NewSequential("roster"),
		Clock:       s.clock,
	})
	s.Require().NoError(err)

	mockRepo.EXPECT().
		Get(s.ctx, &rosters.GetInput{ID: "roster_1"}).
		Return(&rosters.GetOutput{Data: &rosters.RosterData{
			ID:      "roster_1",
			Members: map[string]int{"pikachu": 1},
		}}, nil)
	// no Update expected

	out, err := orchestrator.RemoveMember(s.ctx, &gym.RemoveMemberInput{RosterID: "roster_1", Search: "onix"})
	s.Require().NoError(err)
	s.Assert().False(out.Removed)
	s.Assert().Equal(1, out.Report.Total)
}

func (s *OrchestratorTestSuite) TestRepositoryFailureIsWrapped() {
	ctrl := gomock.NewController(s.T())
	defer ctrl.Finish()

	mockRepo := rostersmock.NewMockRepository(ctrl)
	orchestrator, err := gym.NewOrchestrator(&gym.Config{
		Engine:      s.engine,
		RosterRepo:  mockRepo,
		IDGenerator: idgen.NewSequential("roster"),
		Clock:       s.clock,
		SessionTTL:  -1,
	})
	s.Require().NoError(err)

	mockRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *rosters.CreateInput) (*rosters.CreateOutput, error) {
			s.Assert().True(input.Data.ExpiresAt.IsZero())
			s.Assert().Equal(map[string]int{"eevee": 1}, input.Data.Members)
			return nil, errors.Internal("store offline")
		})

	_, err = orchestrator.CreateRoster(s.ctx, &gym.CreateRosterInput{Members: []string{"eevee"}})
	s.Require().Error(err)
	s.Assert().True(errors.IsInternal(err))
	s.Assert().Contains(err.Error(), "failed to create roster")
}

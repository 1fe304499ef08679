package engine_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/godex/internal/engine"
	"github.com/KirkDiggler/godex/internal/testutils"
)

type RosterTestSuite struct {
	suite.Suite
	engine engine.Engine
	roster *engine.Roster
}

func TestRosterSuite(t *testing.T) {
	suite.Run(t, new(RosterTestSuite))
}

func (s *RosterTestSuite) SetupSuite() {
	var err error
	s.engine, err = engine.New(&engine.Config{Catalog: testutils.EmbeddedCatalog(s.T())})
	s.Require().NoError(err)
}

func (s *RosterTestSuite) SetupTest() {
	s.roster = s.engine.NewRoster()
}

func (s *RosterTestSuite) requireConsistent() {
	sum := 0
	for _, member := range s.roster.Members() {
		s.Require().Positive(member.Count, member.Creature.GetID())
		sum += member.Count
	}
	s.Require().Equal(sum, s.roster.Total())
}

func scoreMap(scores []engine.TypeScore) map[string]float64 {
	out := make(map[string]float64, len(scores))
	for _, sc := range scores {
		out[sc.Type] = sc.Score
	}
	return out
}

func (s *RosterTestSuite) TestEmptyRoster() {
	s.Assert().Zero(s.roster.Total())
	s.Assert().Empty(s.roster.Members())
	s.Assert().Empty(s.roster.TypesPresent())
	s.Assert().Empty(s.roster.OffenseScore(false))
	s.Assert().Empty(s.roster.DefenseScore(false))
	s.Assert().Equal(s.engine.Catalog().TypeKeys(), s.roster.UncoveredTypes())
}

func (s *RosterTestSuite) TestAddVariantsShareEntry() {
	s.Require().True(s.roster.Add("Bulbasaur"))
	s.Require().True(s.roster.Add("bulbasaur"))

	members := s.roster.Members()
	s.Require().Len(members, 1)
	s.Assert().Equal("bulbasaur", members[0].Creature.GetID())
	s.Assert().Equal(2, members[0].Count)
	s.Assert().Equal(2, s.roster.Total())

	s.Assert().Equal([]engine.TypeCount{
		{Type: "grass", Count: 2},
		{Type: "poison", Count: 2},
	}, s.roster.TypesPresent())
}

func (s *RosterTestSuite) TestAddNameVariants() {
	for _, search := range []string{"Mr. Mime", "mr mime", "MR. MIME", "mr-mime"} {
		s.Require().True(s.roster.Add(search), search)
	}

	members := s.roster.Members()
	s.Require().Len(members, 1)
	s.Assert().Equal("mr-mime", members[0].Creature.GetID())
	s.Assert().Equal(4, members[0].Count)
	s.requireConsistent()
}

func (s *RosterTestSuite) TestUnknownKeysAreNoOps() {
	s.Require().True(s.roster.Add("pikachu"))

	s.Assert().False(s.roster.Add("missingno"))
	s.Assert().False(s.roster.Remove("missingno"))
	s.Assert().False(s.roster.Remove("bulbasaur"))

	s.Assert().Equal(1, s.roster.Total())
	s.Assert().Len(s.roster.Members(), 1)
}

func (s *RosterTestSuite) TestAddThenRemoveRestoresState() {
	s.Require().True(s.roster.Add("charmander"))
	before := s.roster.Members()

	s.Require().True(s.roster.Add("squirtle"))
	s.Require().True(s.roster.Remove("Squirtle"))

	s.Assert().Equal(1, s.roster.Total())
	s.Assert().Equal(before, s.roster.Members())
}

func (s *RosterTestSuite) TestRemoveDecrementsThenDeletes() {
	s.roster.Add("eevee")
	s.roster.Add("eevee")

	s.Require().True(s.roster.Remove("eevee"))
	s.Require().Len(s.roster.Members(), 1)
	s.Assert().Equal(1, s.roster.Members()[0].Count)

	s.Require().True(s.roster.Remove("eevee"))
	s.Assert().Empty(s.roster.Members())
	s.Assert().Zero(s.roster.Total())
}

func (s *RosterTestSuite) TestCountsStayConsistent() {
	ops := []struct {
		add    bool
		search string
	}{
		{true, "bulbasaur"}, {true, "pidgey"}, {true, "Pidgey"}, {false, "bulbasaur"},
		{false, "bulbasaur"}, {true, "onix"}, {false, "missingno"}, {true, "pidgey"},
		{false, "pidgey"}, {true, "snorlax"}, {true, "missingno"}, {false, "onix"},
	}

	for _, op := range ops {
		if op.add {
			s.roster.Add(op.search)
		} else {
			s.roster.Remove(op.search)
		}
		s.requireConsistent()
	}
	s.Assert().Equal(3, s.roster.Total())
}

func (s *RosterTestSuite) TestOffenseScore() {
	s.roster.Add("bulbasaur")
	s.roster.Add("bulbasaur")

	scores := s.roster.OffenseScore(false)
	byType := scoreMap(scores)
	s.Assert().Equal(1.25, byType["water"])
	s.Assert().Equal(0.64, byType["poison"])

	// highest first, equal scores in catalog order
	s.Assert().Equal(engine.TypeScore{Type: "fairy", Score: 1.25}, scores[0])
	s.Assert().Equal(engine.TypeScore{Type: "water", Score: 1.25}, scores[1])
	s.Assert().Equal(engine.TypeScore{Type: "poison", Score: 0.64}, scores[len(scores)-1])

	inverted := s.roster.OffenseScore(true)
	s.Assert().Equal("poison", inverted[0].Type)
}

func (s *RosterTestSuite) TestScoresWeightMemberCounts() {
	s.roster.Add("bulbasaur")
	s.roster.Add("bulbasaur")
	s.roster.Add("charmander")

	offense := scoreMap(s.roster.OffenseScore(false))
	s.Assert().Equal(1.1, offense["water"])
	s.Assert().Equal(1.17, offense["fairy"])
	s.Assert().Equal(0.76, offense["poison"])
	s.Assert().Equal(1.08, offense["grass"])

	defense := s.roster.DefenseScore(false)
	s.Assert().Equal(engine.TypeScore{Type: "grass", Score: 0.69}, defense[0])
	s.Assert().Equal(1.1, scoreMap(defense)["fire"])

	inverted := s.roster.DefenseScore(true)
	s.Assert().Equal(engine.TypeScore{Type: "flying", Score: 1.17}, inverted[0])
	s.Assert().Equal(engine.TypeScore{Type: "psychic", Score: 1.17}, inverted[1])
}

func (s *RosterTestSuite) TestUncoveredTypes() {
	s.roster.Add("bulbasaur")
	s.Assert().Equal([]string{"dark", "ground", "normal", "rock"}, s.roster.UncoveredTypes())
}

func (s *RosterTestSuite) TestOneOfEveryTypeCoversEverything() {
	for _, t := range s.engine.Catalog().TypeKeys() {
		creatures := s.engine.Catalog().CreaturesByType(t)
		s.Require().NotEmpty(creatures, "no creature of type %s", t)
		s.roster.Add(creatures[0].Key)
	}

	s.Assert().Empty(s.roster.UncoveredTypes())
}

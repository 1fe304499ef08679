package engine_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/godex/internal/engine"
	"github.com/KirkDiggler/godex/internal/entities/godex"
	"github.com/KirkDiggler/godex/internal/testutils"
	"github.com/KirkDiggler/godex/internal/testutils/builders"
)

type FamilyTestSuite struct {
	suite.Suite
	engine engine.Engine
}

func TestFamilySuite(t *testing.T) {
	suite.Run(t, new(FamilyTestSuite))
}

func (s *FamilyTestSuite) SetupSuite() {
	var err error
	s.engine, err = engine.New(&engine.Config{Catalog: testutils.EmbeddedCatalog(s.T())})
	s.Require().NoError(err)
}

func (s *FamilyTestSuite) creature(key string) *godex.CreatureDef {
	def, ok := s.engine.Catalog().GetCreature(key)
	s.Require().True(ok, key)
	return def
}

func branchKeys(branches []godex.Branch) []string {
	keys := make([]string, 0, len(branches))
	for _, b := range branches {
		keys = append(keys, b.Key)
	}
	return keys
}

func (s *FamilyTestSuite) TestResolveFamilyTree() {
	testCases := []struct {
		key      string
		current  int
		total    int
		previous string
		first    string
		next     []string
		final    []string
	}{
		{key: "bulbasaur", current: 1, total: 3, next: []string{"ivysaur"}, final: []string{"venusaur"}},
		{key: "ivysaur", current: 2, total: 3, previous: "bulbasaur", next: []string{"venusaur"}},
		{key: "venusaur", current: 3, total: 3, previous: "ivysaur", first: "bulbasaur"},
		{key: "eevee", current: 1, total: 2, next: []string{"vaporeon", "jolteon", "flareon", "umbreon"}},
		{key: "umbreon", current: 2, total: 2, previous: "eevee"},
		{key: "snorlax", current: 1, total: 1},
	}

	for _, tc := range testCases {
		s.Run(tc.key, func() {
			tree := s.engine.ResolveFamilyTree(s.creature(tc.key))

			s.Assert().Equal(tc.current, tree.CurrentStage)
			s.Assert().Equal(tc.total, tree.StagesTotal)

			if tc.previous == "" {
				s.Assert().Nil(tree.PreviousStage)
			} else {
				s.Require().NotNil(tree.PreviousStage)
				s.Assert().Equal(tc.previous, tree.PreviousStage.Key)
			}
			if tc.first == "" {
				s.Assert().Nil(tree.FirstStage)
			} else {
				s.Require().NotNil(tree.FirstStage)
				s.Assert().Equal(tc.first, tree.FirstStage.Key)
			}

			s.Assert().ElementsMatch(tc.next, branchKeys(tree.NextStages))
			s.Assert().ElementsMatch(tc.final, branchKeys(tree.FinalStages))
		})
	}
}

func (s *FamilyTestSuite) TestBranchRecords() {
	tree := s.engine.ResolveFamilyTree(s.creature("bulbasaur"))
	s.Require().Len(tree.NextStages, 1)

	ivysaur := tree.NextStages[0]
	s.Assert().Equal(2, ivysaur.ID)
	s.Assert().Equal("Ivysaur", ivysaur.Name)
	s.Assert().Equal(godex.BaseStats{Attack: 151, Defense: 143, Stamina: 155}, ivysaur.Stats)
	s.Assert().Equal(100, ivysaur.CandyCost)
	s.Require().NotNil(ivysaur.CPM)
	s.Assert().Equal(1.67, ivysaur.CPM.Min)
	s.Assert().False(tree.IsBranching())

	eevee := s.engine.ResolveFamilyTree(s.creature("eevee"))
	s.Assert().True(eevee.IsBranching())
}

func (s *FamilyTestSuite) TestCanEvolveLinear() {
	projection := s.engine.CanEvolve(s.creature("bulbasaur"), 501, 100)

	s.Require().Len(projection.NextStages, 1)
	next := projection.NextStages[0]
	s.Assert().Equal("ivysaur", next.Key)
	s.Require().NotNil(next.CP)
	s.Assert().Equal(godex.CPRange{Min: 801, Max: 801}, *next.CP)
	s.Assert().Equal(25, next.CandyCost)
	s.Assert().Equal(4, next.Evolutions)

	s.Require().Len(projection.FinalStages, 1)
	final := projection.FinalStages[0]
	s.Assert().Equal("venusaur", final.Key)
	s.Require().NotNil(final.CP)
	s.Assert().Equal(godex.CPRange{Min: 1338, Max: 1338}, *final.CP)
	s.Assert().Equal(125, final.CandyCost)
	s.Assert().Equal(0, final.Evolutions)
}

func (s *FamilyTestSuite) TestCanEvolveBranching() {
	projection := s.engine.CanEvolve(s.creature("eevee"), 478, 50)

	expected := map[string]godex.CPRange{
		"vaporeon": {Min: 1496, Max: 1586},
		"jolteon":  {Min: 1381, Max: 1467},
		"flareon":  {Min: 1453, Max: 1543},
		"umbreon":  {Min: 989, Max: 1051},
	}

	s.Require().Len(projection.NextStages, len(expected))
	for _, option := range projection.NextStages {
		s.Require().NotNil(option.CP, option.Key)
		s.Assert().Equal(expected[option.Key], *option.CP, option.Key)
		s.Assert().Equal(25, option.CandyCost)
		s.Assert().Equal(2, option.Evolutions)
	}
	s.Assert().Empty(projection.FinalStages)
}

func (s *FamilyTestSuite) TestCanEvolveWithoutCP() {
	projection := s.engine.CanEvolve(s.creature("bulbasaur"), 0, 100)

	s.Require().Len(projection.NextStages, 1)
	s.Assert().Nil(projection.NextStages[0].CP)
	s.Assert().Equal(4, projection.NextStages[0].Evolutions)
	s.Require().Len(projection.FinalStages, 1)
	s.Assert().Nil(projection.FinalStages[0].CP)
}

func (s *FamilyTestSuite) TestCanEvolveFinalStage() {
	projection := s.engine.CanEvolve(s.creature("venusaur"), 2000, 500)

	s.Assert().Empty(projection.NextStages)
	s.Assert().Empty(projection.FinalStages)
}

func (s *FamilyTestSuite) TestCanEvolveWithoutMultiplier() {
	e, err := engine.New(&engine.Config{
		Catalog: testutils.LoadCatalog(s.T(), testutils.DefaultMoves(),
			builders.NewCreatureBuilder("egg").EvolvesTo(10, "hatchling").Build(),
			builders.NewCreatureBuilder("hatchling").WithID(2).EvolvesFrom("egg").Build(),
		),
	})
	s.Require().NoError(err)

	def, ok := e.Catalog().GetCreature("egg")
	s.Require().True(ok)

	projection := e.CanEvolve(def, 300, 25)
	s.Require().Len(projection.NextStages, 1)
	s.Assert().Nil(projection.NextStages[0].CP)
	s.Assert().Equal(10, projection.NextStages[0].CandyCost)
	s.Assert().Equal(2, projection.NextStages[0].Evolutions)
}

func (s *FamilyTestSuite) TestLegacyEvolutionsAffordable() {
	testCases := []struct {
		name     string
		candy    int
		cost     int
		expected int
	}{
		{name: "exact multiple", candy: 100, cost: 25, expected: 4},
		{name: "one short of a single evolution", candy: 24, cost: 25, expected: 0},
		{name: "exactly one evolution", candy: 25, cost: 25, expected: 1},
		{name: "overcounts leftover candy", candy: 47, cost: 12, expected: 4},
		{name: "no candy", candy: 0, cost: 25, expected: 0},
		{name: "zero cost", candy: 10, cost: 0, expected: 0},
		{name: "negative cost", candy: 10, cost: -1, expected: 0},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Assert().Equal(tc.expected, engine.LegacyEvolutionsAffordable(tc.candy, tc.cost))
		})
	}
}

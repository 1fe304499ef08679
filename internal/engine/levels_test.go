package engine_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/godex/internal/engine"
	"github.com/KirkDiggler/godex/internal/entities/godex"
	"github.com/KirkDiggler/godex/internal/errors"
	"github.com/KirkDiggler/godex/internal/repositories/catalog"
	"github.com/KirkDiggler/godex/internal/testutils"
)

type LevelsTestSuite struct {
	suite.Suite
	catalog   *catalog.Catalog
	engine    engine.Engine
	bulbasaur *godex.CreatureDef
}

func TestLevelsSuite(t *testing.T) {
	suite.Run(t, new(LevelsTestSuite))
}

func (s *LevelsTestSuite) SetupSuite() {
	s.catalog = testutils.EmbeddedCatalog(s.T())

	var err error
	s.engine, err = engine.New(&engine.Config{Catalog: s.catalog})
	s.Require().NoError(err)

	var ok bool
	s.bulbasaur, ok = s.catalog.GetCreature("bulbasaur")
	s.Require().True(ok)
}

func (s *LevelsTestSuite) TestCP() {
	testCases := []struct {
		name     string
		level    float64
		ivs      godex.IVs
		expected int
	}{
		{name: "reference level", level: 20, expected: 501},
		{name: "reference level perfect ivs", level: 20, ivs: godex.PerfectIVs, expected: 637},
		{name: "max level perfect ivs", level: 40, ivs: godex.PerfectIVs, expected: 1115},
		{name: "first level", level: 1, expected: 12},
		{name: "half level mixed ivs", level: 30.5, ivs: godex.IVs{Attack: 10, Defense: 5, Stamina: 3}, expected: 851},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			cp, err := s.engine.CP(s.bulbasaur, tc.level, tc.ivs)
			s.Require().NoError(err)
			s.Assert().Equal(tc.expected, cp)
		})
	}
}

func (s *LevelsTestSuite) TestHP() {
	hp, err := s.engine.HP(s.bulbasaur, 20, 0)
	s.Require().NoError(err)
	s.Assert().Equal(76, hp)

	hp, err = s.engine.HP(s.bulbasaur, 20, 15)
	s.Require().NoError(err)
	s.Assert().Equal(85, hp)

	hp, err = s.engine.HP(s.bulbasaur, 1, 0)
	s.Require().NoError(err)
	s.Assert().Equal(12, hp)
}

func (s *LevelsTestSuite) TestMaxCPMatchesCatalog() {
	for _, def := range s.catalog.ListCreatures() {
		s.Run(def.Key, func() {
			cp, err := s.engine.CP(def, godex.MaxLevel, godex.PerfectIVs)
			s.Require().NoError(err)
			s.Assert().Equal(def.MaxCP, cp)
		})
	}
}

func (s *LevelsTestSuite) TestInvalidLevel() {
	for _, level := range []float64{0, 0.5, 20.25, 40.5, 41, -1} {
		_, err := s.engine.CP(s.bulbasaur, level, godex.IVs{})
		s.Require().Error(err, "level %g", level)
		s.Assert().True(errors.IsInvalidLevel(err))
		s.Assert().True(errors.IsOutOfRange(err))

		_, err = s.engine.HP(s.bulbasaur, level, 0)
		s.Assert().True(errors.IsInvalidLevel(err))

		_, err = s.engine.PowerUpCost(level)
		s.Assert().True(errors.IsInvalidLevel(err))
	}
}

func (s *LevelsTestSuite) TestInvalidIV() {
	testCases := []struct {
		name string
		ivs  godex.IVs
		stat string
	}{
		{name: "attack above range", ivs: godex.IVs{Attack: 16}, stat: "attack"},
		{name: "defense below range", ivs: godex.IVs{Defense: -1}, stat: "defense"},
		{name: "stamina above range", ivs: godex.IVs{Stamina: 99}, stat: "stamina"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.engine.CP(s.bulbasaur, 20, tc.ivs)
			s.Require().Error(err)
			s.Assert().True(errors.IsInvalidIV(err))
			s.Assert().True(errors.IsInvalidArgument(err))
			s.Assert().Equal(tc.stat, errors.GetMeta(err)["stat"])
		})
	}

	_, err := s.engine.HP(s.bulbasaur, 20, 16)
	s.Assert().True(errors.IsInvalidIV(err))
}

func (s *LevelsTestSuite) TestPowerUpCost() {
	testCases := []struct {
		level    float64
		expected int
	}{
		{level: 1, expected: 200},
		{level: 20, expected: 2500},
		{level: 30.5, expected: 5000},
		{level: 40, expected: 10000},
	}

	for _, tc := range testCases {
		cost, err := s.engine.PowerUpCost(tc.level)
		s.Require().NoError(err)
		s.Assert().Equal(tc.expected, cost, "level %g", tc.level)
	}
}

// Package testutils provides catalog fixtures shared by package tests
package testutils

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/godex/internal/entities/godex"
	"github.com/KirkDiggler/godex/internal/repositories/catalog"
	"github.com/KirkDiggler/godex/internal/testutils/builders"
)

// FixtureTypes is a four-type matchup chart closed over its own keys
const FixtureTypes = `
types:
  - key: normal
    name: Normal
  - key: fire
    name: Fire
    doubleDamageTo: [grass]
    halfDamageTo: [fire, water]
    doubleDamageFrom: [water]
    halfDamageFrom: [fire, grass]
  - key: water
    name: Water
    doubleDamageTo: [fire]
    halfDamageTo: [water, grass]
    doubleDamageFrom: [grass]
    halfDamageFrom: [fire, water]
  - key: grass
    name: Grass
    doubleDamageTo: [water]
    halfDamageTo: [fire, grass]
    doubleDamageFrom: [fire]
    halfDamageFrom: [water, grass]
`

// FixtureLevels holds levels 1, 20 and 40 with their real multipliers
const FixtureLevels = `
levels:
  - level: 1
    cpMultiplier: 0.094
    powerUpCost: 200
  - level: 20
    cpMultiplier: 0.59740001
    powerUpCost: 2500
  - level: 40
    cpMultiplier: 0.79030001
    powerUpCost: 10000
`

// DefaultMoves are the moves every builders.NewCreatureBuilder creature knows
func DefaultMoves() []*godex.MoveDef {
	return []*godex.MoveDef{
		builders.NewQuickMoveBuilder("tackle", "normal", 12, 1.1).Build(),
		builders.NewChargeMoveBuilder("body-slam", "normal", 40, 1.56).WithCharges(2).Build(),
	}
}

// CatalogFS renders moves and creatures next to the fixture types and
// levels. Quick and charge moves are split by ChargesPerUse.
func CatalogFS(t testing.TB, moves []*godex.MoveDef, creatures []*godex.CreatureDef) fstest.MapFS {
	t.Helper()

	movesDoc := struct {
		Quick  []*godex.MoveDef `yaml:"quick"`
		Charge []*godex.MoveDef `yaml:"charge"`
	}{}
	for _, m := range moves {
		if m.IsQuick() {
			movesDoc.Quick = append(movesDoc.Quick, m)
		} else {
			movesDoc.Charge = append(movesDoc.Charge, m)
		}
	}
	movesData, err := yaml.Marshal(movesDoc)
	require.NoError(t, err)

	creaturesData, err := yaml.Marshal(map[string][]*godex.CreatureDef{"creatures": creatures})
	require.NoError(t, err)

	return fstest.MapFS{
		catalog.TypesFile:     {Data: []byte(FixtureTypes)},
		catalog.LevelsFile:    {Data: []byte(FixtureLevels)},
		catalog.MovesFile:     {Data: movesData},
		catalog.CreaturesFile: {Data: creaturesData},
	}
}

// LoadCatalog builds a fixture catalog from moves and creatures
func LoadCatalog(t testing.TB, moves []*godex.MoveDef, creatures ...*godex.CreatureDef) *catalog.Catalog {
	t.Helper()

	c, err := catalog.Load(CatalogFS(t, moves, creatures))
	require.NoError(t, err)
	return c
}

// EmbeddedCatalog loads the catalog shipped with the binary
func EmbeddedCatalog(t testing.TB) *catalog.Catalog {
	t.Helper()

	c, err := catalog.NewEmbedded()
	require.NoError(t, err)
	return c
}

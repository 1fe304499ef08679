package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/godex/internal/config"
	"github.com/KirkDiggler/godex/internal/entities/godex"
	"github.com/KirkDiggler/godex/internal/errors"
)

func runDex(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv(config.EnvPath, "")

	cmd := newDexCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestDexCreature(t *testing.T) {
	out, err := runDex(t, "creature", "Bulbasaur")
	require.NoError(t, err)
	assert.Contains(t, out, "Bulbasaur (#1) grass/poison")
	assert.Contains(t, out, "Level 20: CP 501, HP 76, power-up cost 2500")
	assert.Contains(t, out, "Max CP: 1115")
	assert.Contains(t, out, "*best")
}

func TestDexCreatureNotFound(t *testing.T) {
	_, err := runDex(t, "creature", "missingno")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestDexStats(t *testing.T) {
	out, err := runDex(t, "stats", "bulbasaur", "--level", "30.5", "--ivs", "10/5/3")
	require.NoError(t, err)
	assert.Contains(t, out, "Bulbasaur at level 30.5 with IVs 10/5/3")
	assert.Contains(t, out, "CP 851")
	assert.Contains(t, out, "power-up cost 5000")
}

func TestDexStatsRejectsBadInput(t *testing.T) {
	_, err := runDex(t, "stats", "bulbasaur", "--ivs", "16/0/0")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidIV(err))

	_, err = runDex(t, "stats", "bulbasaur", "--level", "41")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidLevel(err))

	_, err = runDex(t, "stats", "bulbasaur", "--ivs", "15/15")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestDexEvolveBranching(t *testing.T) {
	out, err := runDex(t, "evolve", "eevee", "--cp", "478", "--candy", "50")
	require.NoError(t, err)
	assert.Contains(t, out, "Eevee evolutions")
	assert.Contains(t, out, "vaporeon")
	assert.Contains(t, out, "CP 1496-1586")
	assert.Contains(t, out, "CP 989-1051")
}

func TestDexFamily(t *testing.T) {
	out, err := runDex(t, "family", "ivysaur")
	require.NoError(t, err)
	assert.Contains(t, out, "Ivysaur is stage 2 of 3")
	assert.Contains(t, out, "Evolves from: Bulbasaur")
	assert.Contains(t, out, "Evolves into: Venusaur (100 candy)")
}

func TestDexGym(t *testing.T) {
	out, err := runDex(t, "gym", "bulbasaur", "Bulbasaur", "missingno")
	require.NoError(t, err)
	assert.Contains(t, out, "Roster of 2")
	assert.Contains(t, out, "Skipped: missingno")
	assert.Contains(t, out, "Uncovered types: dark, ground, normal, rock")
}

func TestDexList(t *testing.T) {
	out, err := runDex(t, "list", "--type", "dark")
	require.NoError(t, err)
	assert.Contains(t, out, "umbreon")
	assert.Contains(t, out, "1 creatures")
}

func TestParseIVs(t *testing.T) {
	ivs, err := parseIVs("10/5/3")
	require.NoError(t, err)
	assert.Equal(t, godex.IVs{Attack: 10, Defense: 5, Stamina: 3}, ivs)

	_, err = parseIVs("a/b/c")
	assert.Error(t, err)
}

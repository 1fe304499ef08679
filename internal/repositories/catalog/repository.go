// Package catalog provides the read-only reference tables: types, moves,
// creatures and levels.
package catalog

//go:generate mockgen -destination=mock/mock_repository.go -package=catalogmock github.com/KirkDiggler/godex/internal/repositories/catalog Repository

import (
	"strings"

	"github.com/KirkDiggler/godex/internal/entities/godex"
)

// Repository is read access to the loaded catalogs. Lookups report a miss
// with ok == false; nothing returned may be modified by callers.
type Repository interface {
	// TypeKeys returns every type key in catalog order
	TypeKeys() []string
	GetType(search string) (*godex.TypeMatchup, bool)

	// GetMove searches quick and charge moves; keys are unique across both
	GetMove(search string) (*godex.MoveDef, bool)
	GetQuickMove(key string) (*godex.MoveDef, bool)
	GetChargeMove(key string) (*godex.MoveDef, bool)
	ListMoves() []*godex.MoveDef

	// GetCreature matches the normalized key first, then the display name
	GetCreature(search string) (*godex.CreatureDef, bool)
	ListCreatures() []*godex.CreatureDef
	CreaturesByType(typeKey string) []*godex.CreatureDef

	GetLevel(level float64) (*godex.LevelEntry, bool)
	Levels() []*godex.LevelEntry
}

var keyReplacer = strings.NewReplacer(".", "", " ", "-", "'", "")

// NormalizeKey turns a search string such as "Mr. Mime" or "Farfetch'd"
// into a catalog key.
func NormalizeKey(search string) string {
	return keyReplacer.Replace(strings.ToLower(strings.TrimSpace(search)))
}

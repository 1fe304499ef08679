// Package godex holds the catalog definitions and the derived value objects
// of the creature statistics engine.
//
// Catalog definitions (TypeMatchup, MoveDef, LevelEntry, CreatureDef) are
// loaded once and never mutated. Derived values (BuiltCreature, FamilyTree,
// EvolutionProjection) are created per query.
package godex

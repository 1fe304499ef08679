package catalog

import (
	"github.com/KirkDiggler/godex/internal/entities/godex"
	"github.com/KirkDiggler/godex/internal/errors"
)

// validate checks the cross references the engine relies on: every type,
// move and evolution key a record mentions must exist.
func (c *Catalog) validate() error {
	if len(c.typeOrder) == 0 {
		return errors.DataLossf("%s defines no types", TypesFile)
	}
	for _, t := range c.types {
		for _, set := range [][]string{t.DoubleDamageTo, t.HalfDamageTo, t.DoubleDamageFrom, t.HalfDamageFrom} {
			for _, target := range set {
				if _, ok := c.types[target]; !ok {
					return errors.DataLossf("type %q references unknown type %q", t.Key, target)
				}
			}
		}
	}

	for _, m := range c.moveOrder {
		if err := c.validateMove(m); err != nil {
			return err
		}
	}

	for _, cr := range c.creatureOrder {
		if err := c.validateCreature(cr); err != nil {
			return err
		}
	}

	if len(c.levelOrder) == 0 {
		return errors.DataLossf("%s defines no levels", LevelsFile)
	}
	for i := 1; i < len(c.levelOrder); i++ {
		prev, cur := c.levelOrder[i-1], c.levelOrder[i]
		if cur.Level <= prev.Level || cur.CPMultiplier <= prev.CPMultiplier {
			return errors.DataLossf("level %g must follow level %g with a higher cp multiplier", cur.Level, prev.Level)
		}
	}

	return nil
}

func (c *Catalog) validateMove(m *godex.MoveDef) error {
	if _, ok := c.types[m.Type]; !ok {
		return errors.DataLossf("move %q has unknown type %q", m.Key, m.Type)
	}
	if m.BaseAttack < 0 {
		return errors.DataLossf("move %q has negative base attack", m.Key)
	}
	if m.CooldownSeconds <= 0 {
		return errors.DataLossf("move %q must have a positive cooldown", m.Key)
	}

	_, isQuick := c.quick[m.Key]
	switch {
	case isQuick && m.ChargesPerUse != nil:
		return errors.DataLossf("quick move %q must not have charges", m.Key)
	case !isQuick && (m.ChargesPerUse == nil || *m.ChargesPerUse <= 0):
		return errors.DataLossf("charge move %q must have a positive charge count", m.Key)
	}
	return nil
}

func (c *Catalog) validateCreature(cr *godex.CreatureDef) error {
	if len(cr.Types) < 1 || len(cr.Types) > 2 {
		return errors.DataLossf("creature %q must have one or two types", cr.Key)
	}
	for _, t := range cr.Types {
		if _, ok := c.types[t]; !ok {
			return errors.DataLossf("creature %q has unknown type %q", cr.Key, t)
		}
	}

	stats := cr.BaseStats
	if stats.Attack <= 0 || stats.Defense <= 0 || stats.Stamina <= 0 {
		return errors.DataLossf("creature %q must have positive base stats", cr.Key)
	}

	if len(cr.QuickMoves) == 0 || len(cr.ChargeMoves) == 0 {
		return errors.DataLossf("creature %q needs at least one quick and one charge move", cr.Key)
	}
	for _, key := range cr.QuickMoves {
		if _, ok := c.quick[key]; !ok {
			return errors.DataLossf("creature %q references unknown quick move %q", cr.Key, key)
		}
	}
	for _, key := range cr.ChargeMoves {
		if _, ok := c.charge[key]; !ok {
			return errors.DataLossf("creature %q references unknown charge move %q", cr.Key, key)
		}
	}

	if cr.EvolvesFrom != "" {
		parent, ok := c.creatures[cr.EvolvesFrom]
		if !ok {
			return errors.DataLossf("creature %q evolves from unknown creature %q", cr.Key, cr.EvolvesFrom)
		}
		if !containsKey(parent.EvolvesTo, cr.Key) {
			return errors.DataLossf("creature %q evolves from %q which does not list it", cr.Key, parent.Key)
		}
	}
	for _, to := range cr.EvolvesTo {
		child, ok := c.creatures[to]
		if !ok {
			return errors.DataLossf("creature %q evolves to unknown creature %q", cr.Key, to)
		}
		if child.EvolvesFrom != cr.Key {
			return errors.DataLossf("creature %q evolves to %q which evolves from %q", cr.Key, to, child.EvolvesFrom)
		}
	}
	return nil
}

func containsKey(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}

package engine

import (
	"slices"
	"sort"

	"github.com/KirkDiggler/godex/internal/entities/godex"
)

// RosterMember is one creature in a roster and how many copies it holds
type RosterMember struct {
	Creature *godex.BuiltCreature
	Count    int
}

// TypeCount is a count-weighted type membership
type TypeCount struct {
	Type  string
	Count int
}

// TypeScore is the average multiplier of a roster against one type
type TypeScore struct {
	Type  string
	Score float64
}

// Roster is a weighted multiset of built creatures keyed by creature key.
// It is not safe for concurrent use.
type Roster struct {
	engine   *engine
	typeKeys []string
	members  map[string]*RosterMember
	total    int
}

// NewRoster starts an empty roster backed by this engine
func (e *engine) NewRoster() *Roster {
	return &Roster{
		engine:   e,
		typeKeys: e.catalog.TypeKeys(),
		members:  make(map[string]*RosterMember),
	}
}

// Add puts one copy of the creature matching search into the roster.
// It reports false, leaving the roster untouched, when nothing matches.
func (r *Roster) Add(search string) bool {
	def, ok := r.engine.catalog.GetCreature(search)
	if !ok {
		return false
	}

	if member, ok := r.members[def.Key]; ok {
		member.Count++
		r.total++
		return true
	}

	built, ok := r.engine.BuildCreature(def.Key)
	if !ok {
		return false
	}
	r.members[built.GetID()] = &RosterMember{Creature: built, Count: 1}
	r.total++
	return true
}

// Remove takes one copy of the creature matching search out of the roster.
// It reports false when the creature is not a member.
func (r *Roster) Remove(search string) bool {
	def, ok := r.engine.catalog.GetCreature(search)
	if !ok {
		return false
	}
	member, ok := r.members[def.Key]
	if !ok {
		return false
	}

	member.Count--
	if member.Count == 0 {
		delete(r.members, def.Key)
	}
	r.total--
	return true
}

// Total returns the number of creatures counting copies
func (r *Roster) Total() int {
	return r.total
}

// Members returns the members ordered by creature key
func (r *Roster) Members() []RosterMember {
	members := make([]RosterMember, 0, len(r.members))
	for _, key := range r.memberKeys() {
		members = append(members, *r.members[key])
	}
	return members
}

// TypesPresent counts each type carried by a member, weighted by copies,
// in catalog type order.
func (r *Roster) TypesPresent() []TypeCount {
	counts := make(map[string]int)
	for _, member := range r.members {
		for _, t := range member.Creature.Def.Types {
			counts[t] += member.Count
		}
	}

	var present []TypeCount
	for _, t := range r.typeKeys {
		if count, ok := counts[t]; ok {
			present = append(present, TypeCount{Type: t, Count: count})
		}
	}
	return present
}

// UncoveredTypes returns the catalog types that no member has an offense
// or defense multiplier against.
func (r *Roster) UncoveredTypes() []string {
	covered := make(map[string]bool)
	for _, member := range r.members {
		for t := range member.Creature.Offense {
			covered[t] = true
		}
		for t := range member.Creature.Defense {
			covered[t] = true
		}
	}

	var uncovered []string
	for _, t := range r.typeKeys {
		if !covered[t] {
			uncovered = append(uncovered, t)
		}
	}
	return uncovered
}

// OffenseScore averages the members' offense multipliers per type. Scores
// are highest first unless invert is set.
func (r *Roster) OffenseScore(invert bool) []TypeScore {
	scores := r.score(func(c *godex.BuiltCreature) map[string]float64 { return c.Offense })
	sortScores(scores, !invert)
	return scores
}

// DefenseScore averages the members' defense multipliers per type. Scores
// are lowest first, the best resisted types, unless invert is set.
func (r *Roster) DefenseScore(invert bool) []TypeScore {
	scores := r.score(func(c *godex.BuiltCreature) map[string]float64 { return c.Defense })
	sortScores(scores, invert)
	return scores
}

// score computes (total + sum(count * (multiplier - 1))) / total for every
// type that appears in any member's multipliers. Members are visited in
// key order so the float sums are reproducible.
func (r *Roster) score(multipliers func(*godex.BuiltCreature) map[string]float64) []TypeScore {
	if r.total == 0 {
		return nil
	}

	total := float64(r.total)
	sums := make(map[string]float64)
	for _, key := range r.memberKeys() {
		member := r.members[key]
		for t, m := range multipliers(member.Creature) {
			sum, ok := sums[t]
			if !ok {
				sum = total
			}
			sums[t] = sum + float64(member.Count)*(m-1)
		}
	}

	scores := make([]TypeScore, 0, len(sums))
	for _, t := range r.typeKeys {
		if sum, ok := sums[t]; ok {
			scores = append(scores, TypeScore{Type: t, Score: round2(sum / total)})
		}
	}
	return scores
}

func (r *Roster) memberKeys() []string {
	keys := make([]string, 0, len(r.members))
	for key := range r.members {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

// sortScores orders by score and keeps catalog order between equal scores
func sortScores(scores []TypeScore, descending bool) {
	sort.SliceStable(scores, func(i, j int) bool {
		if descending {
			return scores[i].Score > scores[j].Score
		}
		return scores[i].Score < scores[j].Score
	})
}

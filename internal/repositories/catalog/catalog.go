package catalog

import (
	"embed"
	"io/fs"
	"log/slog"
	"os"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/cases"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/godex/internal/entities/godex"
	"github.com/KirkDiggler/godex/internal/errors"
)

// Catalog file names, relative to the catalog root
const (
	TypesFile     = "types.yaml"
	MovesFile     = "moves.yaml"
	CreaturesFile = "creatures.yaml"
	LevelsFile    = "levels.yaml"
)

//go:embed data/*.yaml
var embedded embed.FS

type typesFile struct {
	Types []*godex.TypeMatchup `yaml:"types"`
}

type movesFile struct {
	Quick  []*godex.MoveDef `yaml:"quick"`
	Charge []*godex.MoveDef `yaml:"charge"`
}

type creaturesFile struct {
	Creatures []*godex.CreatureDef `yaml:"creatures"`
}

type levelsFile struct {
	Levels []*godex.LevelEntry `yaml:"levels"`
}

// Catalog is the in-memory Repository. It is immutable after Load returns
// and safe for concurrent readers.
type Catalog struct {
	typeOrder []string
	types     map[string]*godex.TypeMatchup

	moveOrder []*godex.MoveDef
	quick     map[string]*godex.MoveDef
	charge    map[string]*godex.MoveDef

	creatureOrder []*godex.CreatureDef
	creatures     map[string]*godex.CreatureDef

	levelOrder []*godex.LevelEntry
	levels     map[float64]*godex.LevelEntry
}

var _ Repository = (*Catalog)(nil)

// NewEmbedded loads the catalog shipped with the binary
func NewEmbedded() (*Catalog, error) {
	root, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, errors.Wrap(err, "failed to open embedded catalog")
	}
	return Load(root)
}

// LoadDir loads a catalog from the four YAML files in dir
func LoadDir(dir string) (*Catalog, error) {
	return Load(os.DirFS(dir))
}

// Load decodes the catalog files from fsys and checks that every cross
// reference resolves.
func Load(fsys fs.FS) (*Catalog, error) {
	var (
		tf typesFile
		mf movesFile
		cf creaturesFile
		lf levelsFile
	)

	var g errgroup.Group
	g.Go(func() error { return decodeFile(fsys, TypesFile, &tf) })
	g.Go(func() error { return decodeFile(fsys, MovesFile, &mf) })
	g.Go(func() error { return decodeFile(fsys, CreaturesFile, &cf) })
	g.Go(func() error { return decodeFile(fsys, LevelsFile, &lf) })
	if err := g.Wait(); err != nil {
		return nil, err
	}

	c := &Catalog{
		types:     make(map[string]*godex.TypeMatchup, len(tf.Types)),
		quick:     make(map[string]*godex.MoveDef, len(mf.Quick)),
		charge:    make(map[string]*godex.MoveDef, len(mf.Charge)),
		creatures: make(map[string]*godex.CreatureDef, len(cf.Creatures)),
		levels:    make(map[float64]*godex.LevelEntry, len(lf.Levels)),
	}

	for _, t := range tf.Types {
		if _, dup := c.types[t.Key]; dup {
			return nil, errors.DataLossf("duplicate type %q", t.Key)
		}
		c.types[t.Key] = t
		c.typeOrder = append(c.typeOrder, t.Key)
	}

	for _, m := range mf.Quick {
		if err := c.addMove(c.quick, m); err != nil {
			return nil, err
		}
	}
	for _, m := range mf.Charge {
		if err := c.addMove(c.charge, m); err != nil {
			return nil, err
		}
	}

	for _, cr := range cf.Creatures {
		if _, dup := c.creatures[cr.Key]; dup {
			return nil, errors.DataLossf("duplicate creature %q", cr.Key)
		}
		c.creatures[cr.Key] = cr
		c.creatureOrder = append(c.creatureOrder, cr)
	}

	for _, l := range lf.Levels {
		if _, dup := c.levels[l.Level]; dup {
			return nil, errors.DataLossf("duplicate level %g", l.Level)
		}
		c.levels[l.Level] = l
		c.levelOrder = append(c.levelOrder, l)
	}

	if err := c.validate(); err != nil {
		return nil, err
	}

	slog.Debug("catalog loaded",
		"types", len(c.typeOrder),
		"moves", len(c.moveOrder),
		"creatures", len(c.creatureOrder),
		"levels", len(c.levelOrder))

	return c, nil
}

func decodeFile(fsys fs.FS, name string, out any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return errors.Wrapf(err, "failed to read %s", name)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return errors.Wrapf(err, "failed to decode %s", name)
	}
	return nil
}

func (c *Catalog) addMove(into map[string]*godex.MoveDef, m *godex.MoveDef) error {
	_, inQuick := c.quick[m.Key]
	_, inCharge := c.charge[m.Key]
	if inQuick || inCharge {
		return errors.DataLossf("duplicate move %q", m.Key)
	}
	into[m.Key] = m
	c.moveOrder = append(c.moveOrder, m)
	return nil
}

// TypeKeys returns every type key in catalog order
func (c *Catalog) TypeKeys() []string {
	keys := make([]string, len(c.typeOrder))
	copy(keys, c.typeOrder)
	return keys
}

// GetType looks up a type by key
func (c *Catalog) GetType(search string) (*godex.TypeMatchup, bool) {
	t, ok := c.types[NormalizeKey(search)]
	return t, ok
}

// GetMove looks up a quick or charge move by key
func (c *Catalog) GetMove(search string) (*godex.MoveDef, bool) {
	key := NormalizeKey(search)
	if m, ok := c.quick[key]; ok {
		return m, true
	}
	m, ok := c.charge[key]
	return m, ok
}

// GetQuickMove looks up a quick move by exact key
func (c *Catalog) GetQuickMove(key string) (*godex.MoveDef, bool) {
	m, ok := c.quick[key]
	return m, ok
}

// GetChargeMove looks up a charge move by exact key
func (c *Catalog) GetChargeMove(key string) (*godex.MoveDef, bool) {
	m, ok := c.charge[key]
	return m, ok
}

// ListMoves returns quick moves then charge moves, each in catalog order
func (c *Catalog) ListMoves() []*godex.MoveDef {
	moves := make([]*godex.MoveDef, len(c.moveOrder))
	copy(moves, c.moveOrder)
	return moves
}

// GetCreature looks up a creature by normalized key, falling back to a
// case-folded display name match.
func (c *Catalog) GetCreature(search string) (*godex.CreatureDef, bool) {
	if cr, ok := c.creatures[NormalizeKey(search)]; ok {
		return cr, true
	}

	// Caser values are stateful, so one per call
	fold := cases.Fold()
	want := fold.String(search)
	for _, cr := range c.creatureOrder {
		if fold.String(cr.Name) == want {
			return cr, true
		}
	}
	return nil, false
}

// ListCreatures returns every creature in catalog order
func (c *Catalog) ListCreatures() []*godex.CreatureDef {
	list := make([]*godex.CreatureDef, len(c.creatureOrder))
	copy(list, c.creatureOrder)
	return list
}

// CreaturesByType returns the creatures carrying typeKey, in catalog order
func (c *Catalog) CreaturesByType(typeKey string) []*godex.CreatureDef {
	key := NormalizeKey(typeKey)
	var list []*godex.CreatureDef
	for _, cr := range c.creatureOrder {
		if cr.HasType(key) {
			list = append(list, cr)
		}
	}
	return list
}

// GetLevel returns the level table row for level
func (c *Catalog) GetLevel(level float64) (*godex.LevelEntry, bool) {
	l, ok := c.levels[level]
	return l, ok
}

// Levels returns the level table in ascending order
func (c *Catalog) Levels() []*godex.LevelEntry {
	list := make([]*godex.LevelEntry, len(c.levelOrder))
	copy(list, c.levelOrder)
	return list
}

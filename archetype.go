package coherence

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ArchetypeID identifies one of the archetypes in a catalog.
type ArchetypeID string

// Category groups archetypes by system function.
type Category string

const (
	// Static archetypes are containers: Clarity, stability, safety.
	Static Category = "STATIC"
	// Dynamic archetypes are engines: Agency, movement, growth.
	Dynamic Category = "DYNAMIC"
	// Updater archetypes are pivots: Trust, transformation, resilience.
	Updater Category = "UPDATER"
)

// Categories lists the archetype categories in canonical order.
var Categories = []Category{Static, Dynamic, Updater}

// CategoryFocus maps each category to its display focus.
var CategoryFocus = map[Category]string{
	Static:  "Stability & Safety",
	Dynamic: "Movement & Growth",
	Updater: "Transformation & Resilience",
}

// StateContent is editorial content for one coherence state of an archetype.
// The core passes it through untouched; rendering is an external concern.
type StateContent struct {
	Label       string                `yaml:"label"`
	Description string                `yaml:"description"`
	Guidance    string                `yaml:"guidance"`
	Nudges      []NudgeRecommendation `yaml:"nudges,omitempty"`
}

// ArchetypeDefinition is an immutable catalog entry.
//
// PrimaryAffects is ordered: the first entry is the archetype's primary
// affect for refinement purposes. Correlates carries detection weights in
// [-1, 1] for the traits the archetype correlates with; traits absent from
// the map contribute nothing.
type ArchetypeDefinition struct {
	ID             ArchetypeID                     `yaml:"id"`
	Name           string                          `yaml:"name"`
	Category       Category                        `yaml:"category"`
	Function       string                          `yaml:"function"`
	PrimaryAffects []Affect                        `yaml:"primaryAffects"`
	States         map[CoherenceState]StateContent `yaml:"states"`
	Correlates     map[Trait]float64               `yaml:"correlates"`

	// Cross-references carried as opaque payload, not used in scoring.
	TarotMapping     string `yaml:"tarotMapping,omitempty"`
	EnneagramMapping string `yaml:"enneagramMapping,omitempty"`
}

// Catalog is an ordered, immutable set of archetype definitions. Insertion
// order is significant: it is the documented tie-break for score ranking.
// A catalog is loaded once and treated as read-only thereafter, so it may
// be shared across goroutines freely.
type Catalog struct {
	defs  []ArchetypeDefinition
	index map[ArchetypeID]int
}

// NewCatalog builds a catalog from definitions in the given order. A
// duplicate ID replaces the earlier definition in place, keeping the
// original position.
func NewCatalog(defs ...ArchetypeDefinition) *Catalog {
	c := &Catalog{
		defs:  make([]ArchetypeDefinition, 0, len(defs)),
		index: make(map[ArchetypeID]int, len(defs)),
	}
	for _, def := range defs {
		if i, ok := c.index[def.ID]; ok {
			c.defs[i] = def
			continue
		}
		c.index[def.ID] = len(c.defs)
		c.defs = append(c.defs, def)
	}
	return c
}

// Len returns the number of definitions.
func (c *Catalog) Len() int {
	return len(c.defs)
}

// Get returns the definition for an ID.
func (c *Catalog) Get(id ArchetypeID) (ArchetypeDefinition, bool) {
	i, ok := c.index[id]
	if !ok {
		return ArchetypeDefinition{}, false
	}
	return c.defs[i], true
}

// MustGet returns the definition for an ID or an ErrUnknownArchetype error.
func (c *Catalog) MustGet(id ArchetypeID) (ArchetypeDefinition, error) {
	def, ok := c.Get(id)
	if !ok {
		return ArchetypeDefinition{}, fmt.Errorf("catalog: %w: %s", ErrUnknownArchetype, id)
	}
	return def, nil
}

// All returns the definitions in catalog order. The slice is a copy; the
// definitions themselves are shared and must not be mutated.
func (c *Catalog) All() []ArchetypeDefinition {
	out := make([]ArchetypeDefinition, len(c.defs))
	copy(out, c.defs)
	return out
}

// IDs returns the archetype IDs in catalog order.
func (c *Catalog) IDs() []ArchetypeID {
	ids := make([]ArchetypeID, len(c.defs))
	for i, def := range c.defs {
		ids[i] = def.ID
	}
	return ids
}

// ByCategory returns the IDs of every archetype in a category, in catalog
// order.
func (c *Catalog) ByCategory(cat Category) []ArchetypeID {
	var ids []ArchetypeID
	for _, def := range c.defs {
		if def.Category == cat {
			ids = append(ids, def.ID)
		}
	}
	return ids
}

// LoadCatalog parses a YAML document containing a list of archetype
// definitions. Order in the document becomes catalog order.
func LoadCatalog(data []byte) (*Catalog, error) {
	var defs []ArchetypeDefinition
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("catalog: failed to parse definitions: %w", err)
	}
	if len(defs) == 0 {
		return nil, fmt.Errorf("catalog: %w", ErrEmptyCatalog)
	}
	return NewCatalog(defs...), nil
}

// EncodeCatalog renders a catalog back to its YAML document form.
func EncodeCatalog(c *Catalog) ([]byte, error) {
	data, err := yaml.Marshal(c.defs)
	if err != nil {
		return nil, fmt.Errorf("catalog: failed to encode definitions: %w", err)
	}
	return data, nil
}

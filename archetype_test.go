package coherence

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewCatalogOrderAndLookup(t *testing.T) {
	catalog := NewCatalog(
		ArchetypeDefinition{ID: "a", Category: Static},
		ArchetypeDefinition{ID: "b", Category: Dynamic},
		ArchetypeDefinition{ID: "c", Category: Static},
	)

	if catalog.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", catalog.Len())
	}
	if diff := cmp.Diff([]ArchetypeID{"a", "b", "c"}, catalog.IDs()); diff != "" {
		t.Errorf("IDs mismatch (-want +got):\n%s", diff)
	}

	def, ok := catalog.Get("b")
	if !ok || def.Category != Dynamic {
		t.Errorf("Get(b) = %+v, %v", def, ok)
	}
	if _, ok := catalog.Get("z"); ok {
		t.Error("Get(z) should miss")
	}

	if diff := cmp.Diff([]ArchetypeID{"a", "c"}, catalog.ByCategory(Static)); diff != "" {
		t.Errorf("ByCategory mismatch (-want +got):\n%s", diff)
	}
}

func TestNewCatalogDuplicateReplacesInPlace(t *testing.T) {
	catalog := NewCatalog(
		ArchetypeDefinition{ID: "a", Name: "First"},
		ArchetypeDefinition{ID: "b", Name: "Middle"},
		ArchetypeDefinition{ID: "a", Name: "Replacement"},
	)

	if catalog.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", catalog.Len())
	}
	if diff := cmp.Diff([]ArchetypeID{"a", "b"}, catalog.IDs()); diff != "" {
		t.Errorf("duplicate changed order (-want +got):\n%s", diff)
	}
	def, _ := catalog.Get("a")
	if def.Name != "Replacement" {
		t.Errorf("Get(a).Name = %q, want Replacement", def.Name)
	}
}

func TestMustGet(t *testing.T) {
	catalog := NewCatalog(ArchetypeDefinition{ID: "a"})

	if _, err := catalog.MustGet("a"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	_, err := catalog.MustGet("missing")
	if !errors.Is(err, ErrUnknownArchetype) {
		t.Errorf("expected ErrUnknownArchetype, got %v", err)
	}
}

func TestAllReturnsCopy(t *testing.T) {
	catalog := NewCatalog(ArchetypeDefinition{ID: "a", Name: "Original"})

	all := catalog.All()
	all[0].Name = "Tampered"

	def, _ := catalog.Get("a")
	if def.Name != "Original" {
		t.Error("mutating All() result leaked into the catalog")
	}
}

func TestLoadCatalog(t *testing.T) {
	doc := []byte(`
- id: watcher
  name: The Watcher
  category: STATIC
  function: Watches things
  primaryAffects: [FEAR, CARE]
  states:
    HIGH:
      label: Sentinel
      description: Watches wisely.
    BASE:
      label: Watcher
      description: Watches.
    LOW:
      label: Paranoid
      description: Watches everything.
      guidance: Check your blindspots.
  correlates:
    emotionality: 0.8
    agreeableness: -0.6
- id: runner
  name: The Runner
  category: DYNAMIC
  function: Runs things
  primaryAffects: [SEEKING]
  states: {}
  correlates:
    extraversion: 0.5
`)

	catalog, err := LoadCatalog(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if catalog.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", catalog.Len())
	}

	watcher, _ := catalog.Get("watcher")
	if watcher.Category != Static {
		t.Errorf("category = %s, want STATIC", watcher.Category)
	}
	if len(watcher.PrimaryAffects) != 2 || watcher.PrimaryAffects[0] != Fear {
		t.Errorf("primaryAffects = %v", watcher.PrimaryAffects)
	}
	if watcher.Correlates[Agreeableness] != -0.6 {
		t.Errorf("correlates = %v", watcher.Correlates)
	}
	if watcher.States[StateLow].Guidance != "Check your blindspots." {
		t.Errorf("LOW guidance = %q", watcher.States[StateLow].Guidance)
	}

	// Document order becomes catalog order.
	if diff := cmp.Diff([]ArchetypeID{"watcher", "runner"}, catalog.IDs()); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadCatalogEmpty(t *testing.T) {
	_, err := LoadCatalog([]byte("[]"))
	if !errors.Is(err, ErrEmptyCatalog) {
		t.Errorf("expected ErrEmptyCatalog, got %v", err)
	}
}

func TestLoadCatalogMalformed(t *testing.T) {
	_, err := LoadCatalog([]byte("{not: [valid"))
	if err == nil {
		t.Fatal("expected parse error")
	}
}

func TestEncodeCatalogRoundTrip(t *testing.T) {
	original := NewCatalog(
		ArchetypeDefinition{
			ID:             "watcher",
			Name:           "The Watcher",
			Category:       Static,
			Function:       "Watches things",
			PrimaryAffects: []Affect{Fear},
			States: map[CoherenceState]StateContent{
				StateBase: {Label: "Watcher", Description: "Watches."},
			},
			Correlates: map[Trait]float64{Emotionality: 0.8},
		},
	)

	data, err := EncodeCatalog(original)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := LoadCatalog(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if diff := cmp.Diff(original.All(), decoded.All()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

package coherence

import "testing"

func TestBuiltinCatalogShape(t *testing.T) {
	catalog := BuiltinCatalog()

	if catalog.Len() != 18 {
		t.Fatalf("Len() = %d, want 18", catalog.Len())
	}

	for _, cat := range Categories {
		if got := len(catalog.ByCategory(cat)); got != 6 {
			t.Errorf("category %s has %d archetypes, want 6", cat, got)
		}
	}
}

func TestBuiltinCatalogDefinitions(t *testing.T) {
	catalog := BuiltinCatalog()

	for _, def := range catalog.All() {
		if def.Name == "" || def.Function == "" {
			t.Errorf("%s: missing name or function", def.ID)
		}

		// Every archetype carries content for all three states.
		for _, state := range CoherenceStates {
			content, ok := def.States[state]
			if !ok {
				t.Errorf("%s: missing %s state content", def.ID, state)
				continue
			}
			if content.Label == "" || content.Description == "" {
				t.Errorf("%s/%s: empty label or description", def.ID, state)
			}
		}

		// Correlate weights stay in the documented range.
		if len(def.Correlates) == 0 {
			t.Errorf("%s: no correlates; would always score neutral", def.ID)
		}
		for trait, weight := range def.Correlates {
			if weight < -1 || weight > 1 {
				t.Errorf("%s: correlate %s weight %v outside [-1, 1]", def.ID, trait, weight)
			}
		}

		// Declared affects must be real affects.
		for _, affect := range def.PrimaryAffects {
			if _, ok := AffectValences[affect]; !ok {
				t.Errorf("%s: unknown affect %s", def.ID, affect)
			}
		}
	}
}

func TestBuiltinCatalogSageHasNoAffects(t *testing.T) {
	sage, err := BuiltinCatalog().MustGet("sage")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sage.PrimaryAffects) != 0 {
		t.Errorf("sage affects = %v, want none", sage.PrimaryAffects)
	}
}

func TestBuiltinCatalogCategoryOrder(t *testing.T) {
	// The catalog groups categories in canonical order: the six STATIC
	// archetypes first, then DYNAMIC, then UPDATER.
	var seen []Category
	for _, def := range BuiltinCatalog().All() {
		if len(seen) == 0 || seen[len(seen)-1] != def.Category {
			seen = append(seen, def.Category)
		}
	}

	if len(seen) != 3 {
		t.Fatalf("categories interleaved: %v", seen)
	}
	for i, cat := range Categories {
		if seen[i] != cat {
			t.Errorf("category block %d = %s, want %s", i, seen[i], cat)
		}
	}
}

func TestBuiltinCatalogYAMLRoundTrip(t *testing.T) {
	original := BuiltinCatalog()

	data, err := EncodeCatalog(original)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := LoadCatalog(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if decoded.Len() != original.Len() {
		t.Fatalf("round trip changed size: %d -> %d", original.Len(), decoded.Len())
	}
	for _, id := range original.IDs() {
		want, _ := original.Get(id)
		got, ok := decoded.Get(id)
		if !ok {
			t.Errorf("%s lost in round trip", id)
			continue
		}
		if got.Category != want.Category || got.Name != want.Name {
			t.Errorf("%s changed in round trip", id)
		}
	}
}

package insighting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedFromText(t *testing.T) {
	t.Run("same text always yields the same seed", func(t *testing.T) {
		assert.Equal(t, SeedFromText("Diwali Push"), SeedFromText("Diwali Push"))
	})

	t.Run("different texts yield different seeds", func(t *testing.T) {
		assert.NotEqual(t, SeedFromText("Diwali Push"), SeedFromText("Summer Sale"))
	})

	t.Run("empty text is a valid input", func(t *testing.T) {
		assert.Equal(t, SeedFromText(""), SeedFromText(""))
	})
}

func TestSelectSuggestions(t *testing.T) {
	catalog := SuggestionCatalog()

	t.Run("selection is deterministic for a seed", func(t *testing.T) {
		seed := SeedFromText("Diwali Push")

		first := SelectSuggestions(seed, SuggestionCatalog(), DefaultSuggestionCount)
		second := SelectSuggestions(seed, SuggestionCatalog(), DefaultSuggestionCount)

		assert.Equal(t, first, second)
	})

	t.Run("returns exactly k distinct catalog entries", func(t *testing.T) {
		selected := SelectSuggestions(42, SuggestionCatalog(), DefaultSuggestionCount)
		require.Len(t, selected, DefaultSuggestionCount)

		seen := map[string]bool{}
		for _, s := range selected {
			assert.Contains(t, catalog, s)
			assert.False(t, seen[s], "suggestion selected twice: %s", s)
			seen[s] = true
		}
	})

	t.Run("different ad names yield different orderings", func(t *testing.T) {
		adA := SelectSuggestions(SeedFromText("Ad A"), SuggestionCatalog(), len(catalog))
		adB := SelectSuggestions(SeedFromText("Ad B"), SuggestionCatalog(), len(catalog))

		assert.ElementsMatch(t, adA, adB)
		assert.NotEqual(t, adA, adB)
	})

	t.Run("k larger than the catalog returns the whole permutation", func(t *testing.T) {
		selected := SelectSuggestions(7, SuggestionCatalog(), len(catalog)+5)
		assert.Len(t, selected, len(catalog))
		assert.ElementsMatch(t, catalog, selected)
	})

	t.Run("does not mutate the input catalog", func(t *testing.T) {
		input := SuggestionCatalog()
		SelectSuggestions(99, input, DefaultSuggestionCount)
		assert.Equal(t, SuggestionCatalog(), input)
	})
}

func TestAnnotateContext(t *testing.T) {
	tests := []struct {
		name      string
		product   string
		platform  string
		wantFirst string
	}{
		{
			name:      "both product and platform",
			product:   "Oud Royale EDP",
			platform:  "Instagram",
			wantFirst: "first suggestion [Context: Product: Oud Royale EDP, Platform: Instagram]",
		},
		{
			name:      "product only",
			product:   "Oud Royale EDP",
			wantFirst: "first suggestion [Context: Product: Oud Royale EDP]",
		},
		{
			name:      "platform only",
			platform:  "Instagram",
			wantFirst: "first suggestion [Context: Platform: Instagram]",
		},
		{
			name:      "no context leaves suggestions untouched",
			wantFirst: "first suggestion",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			suggestions := []string{"first suggestion", "second suggestion"}
			annotated := annotateContext(suggestions, tt.product, tt.platform)

			assert.Equal(t, tt.wantFirst, annotated[0])
			assert.Equal(t, "second suggestion", annotated[1])
		})
	}

	t.Run("empty slice is returned as is", func(t *testing.T) {
		assert.Empty(t, annotateContext(nil, "Product", "Platform"))
	})
}

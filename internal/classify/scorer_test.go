package classify

import (
	"testing"

	"github.com/atlasfreight/exportdesk/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEntry() model.TariffEntry {
	return model.TariffEntry{
		HSCode:           "1515.30",
		ShortDescription: "Argan oil",
		Keywords:         []string{"argan", "oil", "cosmetic"},
		Category:         "Food & Agriculture",
		Subcategory:      "Edible Oils",
		RiskTag:          model.RiskLow,
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name  string
		query model.ClassificationQuery
		want  int
	}{
		{
			name: "category match only",
			query: model.ClassificationQuery{
				Category:            "Food & Agriculture",
				FreeTextDescription: "unrelated product",
			},
			want: 40,
		},
		{
			name: "subcategory match only",
			query: model.ClassificationQuery{
				Subcategory:         "Edible Oils",
				FreeTextDescription: "unrelated product",
			},
			want: 30,
		},
		{
			name: "single keyword match",
			query: model.ClassificationQuery{
				FreeTextDescription: "pure argan extract",
			},
			want: 8,
		},
		{
			name: "keyword match is case-insensitive substring",
			query: model.ClassificationQuery{
				FreeTextDescription: "PREMIUM ARGAN OIL",
			},
			want: 16,
		},
		{
			name: "category plus subcategory plus keywords",
			query: model.ClassificationQuery{
				Category:            "Food & Agriculture",
				Subcategory:         "Edible Oils",
				FreeTextDescription: "cosmetic argan oil",
			},
			want: 94,
		},
		{
			name: "no match scores zero",
			query: model.ClassificationQuery{
				Category:            "Industrial",
				Subcategory:         "Bags",
				FreeTextDescription: "steel pipes",
			},
			want: 0,
		},
		{
			name: "empty description still scores hints",
			query: model.ClassificationQuery{
				Category:            "Food & Agriculture",
				Subcategory:         "Edible Oils",
				FreeTextDescription: "   ",
			},
			want: 70,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(testEntry(), tt.query)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, 99)
		})
	}
}

func TestScore_ClampsAt99(t *testing.T) {
	entry := model.TariffEntry{
		HSCode:      "9999.99",
		Category:    "Food & Agriculture",
		Subcategory: "Edible Oils",
		Keywords:    []string{"a", "b", "c", "d", "e", "f"},
	}
	query := model.ClassificationQuery{
		Category:            "Food & Agriculture",
		Subcategory:         "Edible Oils",
		FreeTextDescription: "abcdef",
	}

	// 40 + 30 + 6*8 = 118 before the clamp.
	assert.Equal(t, 99, Score(entry, query))
}

func TestRank(t *testing.T) {
	entries := []model.TariffEntry{
		{HSCode: "1111.11", Category: "A", Keywords: []string{"widget"}},
		{HSCode: "2222.22", Category: "B", Keywords: []string{"widget"}},
		{HSCode: "3333.33", Category: "A", Subcategory: "X", Keywords: []string{"widget"}},
		{HSCode: "4444.44", Category: "C", Keywords: []string{"gadget"}},
	}

	query := model.ClassificationQuery{
		Category:            "A",
		Subcategory:         "X",
		FreeTextDescription: "a fine widget",
	}

	matches := Rank(query, entries, 10)
	require.Len(t, matches, 3)

	// 3333.33: 40+30+8=78, 1111.11: 40+8=48, 2222.22: 8.
	assert.Equal(t, "3333.33", matches[0].Entry.HSCode)
	assert.Equal(t, 78, matches[0].Confidence)
	assert.Equal(t, "1111.11", matches[1].Entry.HSCode)
	assert.Equal(t, 48, matches[1].Confidence)
	assert.Equal(t, "2222.22", matches[2].Entry.HSCode)
	assert.Equal(t, 8, matches[2].Confidence)

	// 4444.44 scored zero and must be excluded.
	assert.NotContains(t, matches.HSCodes(), "4444.44")

	require.NoError(t, matches.Validate())
}

func TestRank_TiesKeepCatalogOrder(t *testing.T) {
	entries := []model.TariffEntry{
		{HSCode: "1111.11", Keywords: []string{"widget"}},
		{HSCode: "2222.22", Keywords: []string{"widget"}},
		{HSCode: "3333.33", Keywords: []string{"widget"}},
	}

	query := model.ClassificationQuery{FreeTextDescription: "widget"}

	matches := Rank(query, entries, 10)
	require.Len(t, matches, 3)
	assert.Equal(t, []string{"1111.11", "2222.22", "3333.33"}, matches.HSCodes())
}

func TestRank_DefaultLimit(t *testing.T) {
	entries := make([]model.TariffEntry, 8)
	for i := range entries {
		entries[i] = model.TariffEntry{
			HSCode:   "0000.00",
			Keywords: []string{"widget"},
		}
	}

	query := model.ClassificationQuery{FreeTextDescription: "widget"}

	matches := Rank(query, entries, 0)
	assert.Len(t, matches, DefaultLimit)
}

func TestRank_Deterministic(t *testing.T) {
	entries := []model.TariffEntry{
		{HSCode: "1111.11", Category: "A", Keywords: []string{"olive", "oil"}},
		{HSCode: "2222.22", Category: "A", Keywords: []string{"oil"}},
	}

	query := model.ClassificationQuery{
		Category:            "A",
		FreeTextDescription: "olive oil",
	}

	first := Rank(query, entries, 10)
	second := Rank(query, entries, 10)
	assert.Equal(t, first, second)
}

func TestRank_EmptyQueryReturnsEmpty(t *testing.T) {
	entries := []model.TariffEntry{
		{HSCode: "1111.11", Category: "A", Keywords: []string{"widget"}},
	}

	matches := Rank(model.ClassificationQuery{}, entries, 10)
	assert.Empty(t, matches)
}

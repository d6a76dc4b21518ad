package fragrances

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildDocument(t *testing.T) {
	doc := BuildDocument(
		"Dior", "Sauvage", "men",
		[]string{"fresh spicy", "amber"},
		[]string{"bergamot", "pepper"},
		[]string{"lavender"},
		[]string{"ambroxan"},
	)

	assert.Contains(t, doc, "Sauvage by Dior, a men fragrance.")
	assert.Contains(t, doc, "Main accords: fresh spicy, amber.")
	assert.Contains(t, doc, "Top notes: bergamot, pepper.")
	assert.Contains(t, doc, "Base notes: ambroxan.")
}

func TestBuildDocument_OmitsEmptySections(t *testing.T) {
	doc := BuildDocument("Chanel", "No 5", "women", nil, nil, nil, nil)

	assert.Equal(t, "No 5 by Chanel, a women fragrance.", doc)
}

func TestBuildFilter(t *testing.T) {
	tests := []struct {
		name      string
		filter    ListFilter
		wantWhere string
		wantArgs  int
	}{
		{
			name:      "no filters",
			filter:    ListFilter{},
			wantWhere: "",
			wantArgs:  0,
		},
		{
			name:      "gender only",
			filter:    ListFilter{Gender: "unisex"},
			wantWhere: " WHERE f.gender = $1",
			wantArgs:  1,
		},
		{
			name:      "gender and brand",
			filter:    ListFilter{Gender: "men", BrandID: "dior"},
			wantWhere: " WHERE f.gender = $1 AND f.brand_id = $2",
			wantArgs:  2,
		},
		{
			name:      "accords and rating",
			filter:    ListFilter{Accords: []string{"woody", "citrus"}, MinRating: 4.0},
			wantWhere: " WHERE f.accords && $1 AND f.rating_value >= $2",
			wantArgs:  2,
		},
		{
			name:      "sample only adds no arg",
			filter:    ListFilter{SampleOnly: true},
			wantWhere: " WHERE f.sample_available = true",
			wantArgs:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := buildFilter(tt.filter)

			assert.Equal(t, tt.wantWhere, where)
			assert.Len(t, args, tt.wantArgs)
		})
	}
}

func TestOrderClause(t *testing.T) {
	assert.Contains(t, orderClause("rating"), "rating_value DESC")
	assert.Contains(t, orderClause("newest"), "release_year DESC")
	assert.Contains(t, orderClause(""), "popularity_score DESC")
	assert.Contains(t, orderClause("garbage"), "popularity_score DESC")
}

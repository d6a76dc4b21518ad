package recommendations

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scentmatch/server/scentmatch/fragrances"
	"github.com/scentmatch/server/scentmatch/users"
)

func TestBuildCollectionProfile(t *testing.T) {
	user := &users.User{
		GenderAffinity:  "men",
		FavoriteAccords: []string{"woody", "fresh"},
	}

	seeds := []fragrances.Fragrance{
		{
			Name:      "Bleu de Chanel",
			BrandName: "Chanel",
			Accords:   []string{"citrus", "woody"},
		},
	}

	profile := buildCollectionProfile(user, seeds)

	assert.True(t, strings.HasPrefix(profile, "A men fragrance"), profile)
	assert.Contains(t, profile, "woody, fresh, citrus accords")
	assert.Contains(t, profile, "similar to Bleu de Chanel by Chanel")
	assert.True(t, strings.HasSuffix(profile, "."))
}

func TestBuildCollectionProfileDefaultsToUnisex(t *testing.T) {
	user := &users.User{FavoriteAccords: []string{"amber"}}

	profile := buildCollectionProfile(user, nil)

	assert.True(t, strings.HasPrefix(profile, "A unisex fragrance"), profile)
	assert.Contains(t, profile, "amber accords")
}

func TestBuildCollectionProfileWithoutAccords(t *testing.T) {
	user := &users.User{GenderAffinity: "women"}

	seeds := []fragrances.Fragrance{
		{Name: "No. 5", BrandName: "Chanel"},
	}

	profile := buildCollectionProfile(user, seeds)

	// no accord clause when nothing is known
	assert.NotContains(t, profile, "accords")
	assert.Contains(t, profile, "similar to No. 5 by Chanel")
}

func TestCollectAccordsFavoritesFirst(t *testing.T) {
	user := &users.User{FavoriteAccords: []string{"amber", "spicy"}}

	seeds := []fragrances.Fragrance{
		{Accords: []string{"spicy", "woody", "amber"}},
	}

	accords := collectAccords(user, seeds)

	assert.Equal(t, []string{"amber", "spicy", "woody"}, accords)
}

func TestCollectAccordsCapped(t *testing.T) {
	seeds := []fragrances.Fragrance{
		{Accords: []string{"a", "b", "c", "d"}},
		{Accords: []string{"e", "f", "g", "h"}},
	}

	accords := collectAccords(&users.User{}, seeds)

	assert.Len(t, accords, profileAccordCount)
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f"}, accords)
}

func TestCollectAccordsEmpty(t *testing.T) {
	accords := collectAccords(&users.User{}, nil)

	assert.Empty(t, accords)
}

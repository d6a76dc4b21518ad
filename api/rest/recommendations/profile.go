package recommendations

import (
	"strings"

	"github.com/scentmatch/server/scentmatch/fragrances"
	"github.com/scentmatch/server/scentmatch/users"
)

const profileAccordCount = 6

// buildCollectionProfile renders a taste profile sentence from the user's
// highest-rated fragrances and saved preferences, in the same register as
// catalog documents
func buildCollectionProfile(user *users.User, seeds []fragrances.Fragrance) string {
	accords := collectAccords(user, seeds)

	var sb strings.Builder

	sb.WriteString("A ")

	if user.GenderAffinity != "" {
		sb.WriteString(user.GenderAffinity)
	} else {
		sb.WriteString("unisex")
	}

	sb.WriteString(" fragrance")

	if len(accords) > 0 {
		sb.WriteString(" with ")
		sb.WriteString(strings.Join(accords, ", "))
		sb.WriteString(" accords")
	}

	if len(seeds) > 0 {
		names := make([]string, 0, len(seeds))
		for _, f := range seeds {
			names = append(names, f.Name+" by "+f.BrandName)
		}

		sb.WriteString(", similar to ")
		sb.WriteString(strings.Join(names, ", "))
	}

	sb.WriteString(".")

	return sb.String()
}

// collectAccords merges favorite accords with those of the seed fragrances,
// favorites first, preserving first-seen order
func collectAccords(user *users.User, seeds []fragrances.Fragrance) []string {
	seen := make(map[string]bool)
	accords := make([]string, 0, profileAccordCount)

	add := func(accord string) {
		if len(accords) >= profileAccordCount || seen[accord] {
			return
		}

		seen[accord] = true
		accords = append(accords, accord)
	}

	for _, accord := range user.FavoriteAccords {
		add(accord)
	}

	for _, seed := range seeds {
		for _, accord := range seed.Accords {
			add(accord)
		}
	}

	return accords
}

package main

import (
	"testing"
	"time"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Chanel", "chanel"},
		{"Yves Saint Laurent", "yves-saint-laurent"},
		{"  Jo Malone London  ", "jo-malone-london"},
		{"L'Artisan Parfumeur", "l-artisan-parfumeur"},
		{"No. 5", "no-5"},
		{"---", ""},
		{"", ""},
	}

	for _, tc := range cases {
		if got := slugify(tc.in); got != tc.want {
			t.Errorf("slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFragranceID(t *testing.T) {
	if got := fragranceID("chanel", "bleu-de-chanel"); got != "chanel__bleu-de-chanel" {
		t.Errorf("unexpected id %q", got)
	}
}

func TestNormalizeGender(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"for women", "women"},
		{"Women", "women"},
		{"female", "women"},
		{"for men", "men"},
		{"Men", "men"},
		{"male", "men"},
		{"for women and men", "women"}, // women wins when both appear
		{"unisex", "unisex"},
		{"", "unisex"},
		{"shared", "unisex"},
	}

	for _, tc := range cases {
		if got := normalizeGender(tc.in); got != tc.want {
			t.Errorf("normalizeGender(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestPopularityScoreZeroWithoutRatings(t *testing.T) {
	if got := popularityScore(0, 100, 2020, tierDesigner); got != 0 {
		t.Errorf("expected 0 for unrated fragrance, got %f", got)
	}

	if got := popularityScore(4.5, 0, 2020, tierDesigner); got != 0 {
		t.Errorf("expected 0 with no reviews, got %f", got)
	}
}

func TestPopularityScoreRewardsVolume(t *testing.T) {
	niche := popularityScore(4.8, 50, 2010, tierDesigner)
	popular := popularityScore(4.2, 50000, 2010, tierDesigner)

	if popular <= niche {
		t.Errorf("high-volume score %f should beat low-volume %f", popular, niche)
	}
}

func TestPopularityScoreTierBoost(t *testing.T) {
	designer := popularityScore(4.0, 1000, 2010, tierDesigner)
	luxury := popularityScore(4.0, 1000, 2010, tierLuxury)

	if luxury <= designer {
		t.Errorf("luxury score %f should beat designer %f", luxury, designer)
	}
}

func TestPopularityScoreRecencyBoost(t *testing.T) {
	thisYear := time.Now().Year()

	recent := popularityScore(4.0, 1000, thisYear-1, tierDesigner)
	old := popularityScore(4.0, 1000, thisYear-20, tierDesigner)

	if recent <= old {
		t.Errorf("recent release score %f should beat old release %f", recent, old)
	}
}

func TestSamplePriceUSD(t *testing.T) {
	cases := map[string]int{
		tierLuxury:   20,
		tierPremium:  18,
		tierNiche:    16,
		tierDesigner: 15,
		"":           15,
	}

	for tier, want := range cases {
		if got := samplePriceUSD(tier); got != want {
			t.Errorf("samplePriceUSD(%q) = %d, want %d", tier, got, want)
		}
	}
}

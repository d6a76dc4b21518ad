package main

import (
	"math"
	"regexp"
	"strings"
	"time"
)

// brand tiers, highest first
const (
	tierLuxury   = "luxury"
	tierPremium  = "premium"
	tierDesigner = "designer"
	tierNiche    = "niche"
)

var slugCleaner = regexp.MustCompile(`[^a-z0-9]+`)

// slugify lowercases and collapses non-alphanumerics to single hyphens
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = slugCleaner.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// fragranceID builds the canonical "brand__fragrance" slug id
func fragranceID(brandSlug, fragranceSlug string) string {
	return brandSlug + "__" + fragranceSlug
}

// normalizeGender maps scraped gender labels onto men/women/unisex
func normalizeGender(raw string) string {
	g := strings.ToLower(strings.TrimSpace(raw))

	switch {
	case strings.Contains(g, "women") || strings.Contains(g, "female") || g == "for her":
		return "women"
	case strings.Contains(g, "men") || strings.Contains(g, "male") || g == "for him":
		return "men"
	default:
		return "unisex"
	}
}

// popularityScore ranks fragrances for default browse order. Rating alone
// overvalues obscure five-star entries, so review volume enters on a log
// scale and brand tier and recency nudge the result.
func popularityScore(rating float32, ratingCount, releaseYear int, tier string) float32 {
	if rating <= 0 || ratingCount <= 0 {
		return 0
	}

	score := float64(rating) * math.Log(float64(ratingCount)+1)

	switch tier {
	case tierLuxury:
		score *= 1.3
	case tierPremium:
		score *= 1.2
	case tierNiche:
		score *= 1.1
	}

	// releases from the last five years get a small boost
	if releaseYear > 0 && time.Now().Year()-releaseYear <= 5 {
		score *= 1.15
	}

	return float32(score)
}

// samplePriceUSD prices decants by brand tier
func samplePriceUSD(tier string) int {
	switch tier {
	case tierLuxury:
		return 20
	case tierPremium:
		return 18
	case tierNiche:
		return 16
	default:
		return 15
	}
}

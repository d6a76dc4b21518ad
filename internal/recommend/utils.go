package recommend

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/jackc/pgx/v5"

	"github.com/scentmatch/server/scentmatch/fragrances"
)

const (
	defaultTopK    = 10
	mergeOverfetch = 4

	// keyword hits rank below a perfect semantic match but above weak ones
	keywordWeight = 0.9

	// final score blends retrieval score with catalog popularity
	retrievalWeight  = 0.85
	popularityWeight = 0.15
)

// mergeAndRank combines vector and keyword legs into a single ranked list.
// Duplicates keep their best retrieval score, keyword ranks are normalized
// against the best rank in the batch, and popularity breaks near-ties.
func mergeAndRank(vector []Result, keyword []fragrances.SearchHit, topK int) []Result {
	byID := make(map[string]Result, len(vector)+len(keyword))

	for _, result := range vector {
		result.Score = result.Similarity
		byID[result.Fragrance.ID] = result
	}

	var maxRank float32
	for _, hit := range keyword {
		maxRank = max(maxRank, hit.Rank)
	}

	for _, hit := range keyword {
		score := keywordWeight
		if maxRank > 0 {
			score = keywordWeight * float64(hit.Rank/maxRank)
		}

		existing, ok := byID[hit.Fragrance.ID]
		if !ok || float32(score) > existing.Score {
			byID[hit.Fragrance.ID] = Result{
				Fragrance:  hit.Fragrance,
				Similarity: existing.Similarity,
				Score:      float32(score),
			}
		}
	}

	merged := make([]Result, 0, len(byID))

	var maxPopularity float32
	for _, result := range byID {
		maxPopularity = max(maxPopularity, result.Fragrance.PopularityScore)
	}

	for _, result := range byID {
		popularity := float32(0)
		if maxPopularity > 0 {
			popularity = result.Fragrance.PopularityScore / maxPopularity
		}

		result.Score = retrievalWeight*result.Score + popularityWeight*popularity
		merged = append(merged, result)
	}

	slices.SortFunc(merged, func(a, b Result) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}

		// stable order for equal scores
		return cmp.Compare(a.Fragrance.ID, b.Fragrance.ID)
	})

	if len(merged) > topK {
		merged = merged[:topK]
	}

	return merged
}

func filterGender(results []Result, gender string) []Result {
	filtered := results[:0]

	for _, result := range results {
		g := result.Fragrance.Gender
		if g == gender || g == "unisex" {
			filtered = append(filtered, result)
		}
	}

	return filtered
}

func scanResults(rows pgx.Rows) ([]Result, error) {
	var results []Result

	for rows.Next() {
		var result Result
		f := &result.Fragrance

		err := rows.Scan(
			&f.ID,
			&f.BrandID,
			&f.BrandName,
			&f.Name,
			&f.Slug,
			&f.Gender,
			&f.RatingValue,
			&f.RatingCount,
			&f.ReleaseYear,
			&f.Accords,
			&f.TopNotes,
			&f.MiddleNotes,
			&f.BaseNotes,
			&f.PopularityScore,
			&f.SampleAvailable,
			&f.SamplePriceUSD,
			&result.Similarity,
		)

		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		results = append(results, result)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return results, nil
}

package fragrances

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/scentmatch/server/api/rest/pagination"
	"github.com/scentmatch/server/internal/errors"
	"github.com/scentmatch/server/scentmatch/fragrances"
)

// ListHandler browses the catalog with optional filters:
// gender, brand, accords (comma-separated), min_rating, samples, sort
func ListHandler(fragranceRepo *fragrances.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := pagination.FromQuery(c, defaultLimit, maxLimit)

		filter := fragrances.ListFilter{
			Gender:  c.Query("gender"),
			BrandID: c.Query("brand"),
			Sort:    c.Query("sort"),
		}

		if accords := c.Query("accords"); accords != "" {
			filter.Accords = strings.Split(accords, ",")
		}

		if minRating := c.Query("min_rating"); minRating != "" {
			value, err := strconv.ParseFloat(minRating, 32)
			if err != nil {
				errors.BadRequest(c, "min_rating must be a number", err)
				return
			}

			filter.MinRating = float32(value)
		}

		if samples := c.Query("samples"); samples == "true" {
			filter.SampleOnly = true
		}

		list, total, err := fragranceRepo.List(c.Request.Context(), filter, params.Limit, params.Offset)
		if err != nil {
			errors.InternalError(c, "failed to list fragrances", err)
			return
		}

		c.JSON(http.StatusOK, ListResponse{
			Fragrances: list,
			Pagination: pagination.NewMeta(params, total),
		})
	}
}

// GetHandler returns a single fragrance by its slug id
func GetHandler(fragranceRepo *fragrances.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		fragrance, err := fragranceRepo.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			errors.NotFound(c, "fragrance")
			return
		}

		c.JSON(http.StatusOK, fragrance)
	}
}

// SimilarHandler returns the nearest catalog neighbors of a fragrance
func SimilarHandler(fragranceRepo *fragrances.Repository, recommender Recommender) gin.HandlerFunc {
	return func(c *gin.Context) {
		fragranceID := c.Param("id")

		// confirm the anchor exists before searching
		if _, err := fragranceRepo.Get(c.Request.Context(), fragranceID); err != nil {
			errors.NotFound(c, "fragrance")
			return
		}

		count := defaultSimilarCount
		if countStr := c.Query("count"); countStr != "" {
			if parsed, err := strconv.Atoi(countStr); err == nil && parsed > 0 && parsed <= maxSimilarCount {
				count = parsed
			}
		}

		similar, err := recommender.SimilarToFragrance(c.Request.Context(), fragranceID, count)
		if err != nil {
			errors.InternalError(c, "failed to find similar fragrances", err)
			return
		}

		c.JSON(http.StatusOK, SimilarResponse{
			FragranceID: fragranceID,
			Similar:     similar,
		})
	}
}

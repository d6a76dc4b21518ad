package search

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/scentmatch/server/internal/errors"
)

// SearchHandler runs a natural-language hybrid search over the catalog.
// Accepts POST with a JSON body or GET with q/gender/count query params.
func SearchHandler(searcher Searcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req Request

		if c.Request.Method == http.MethodGet {
			req.Query = strings.TrimSpace(c.Query("q"))
			req.Gender = c.Query("gender")

			if countStr := c.Query("count"); countStr != "" {
				if count, err := strconv.Atoi(countStr); err == nil {
					req.Count = count
				}
			}

			if req.Query == "" {
				errors.BadRequest(c, "query parameter q is required", nil)
				return
			}

			if len(req.Query) > maxQueryLen {
				errors.BadRequest(c, "query too long", nil)
				return
			}
		} else {
			if err := c.ShouldBindJSON(&req); err != nil {
				errors.ValidationError(c, err)
				return
			}

			// binding:"required" accepts whitespace, reject it here
			req.Query = strings.TrimSpace(req.Query)

			if req.Query == "" {
				errors.BadRequest(c, "query is required", nil)
				return
			}

			if len(req.Query) > maxQueryLen {
				errors.BadRequest(c, "query too long", nil)
				return
			}
		}

		count := req.Count
		if count <= 0 || count > maxCount {
			count = defaultCount
		}

		results, err := searcher.HybridSearch(c.Request.Context(), req.Query, req.Gender, count)
		if err != nil {
			errors.InternalError(c, "search failed", err)
			return
		}

		c.JSON(http.StatusOK, Response{
			Query:   req.Query,
			Results: results,
		})
	}
}

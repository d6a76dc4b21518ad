package brands

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/scentmatch/server/api/rest/pagination"
	"github.com/scentmatch/server/internal/errors"
	"github.com/scentmatch/server/scentmatch/brands"
)

// ListHandler lists brands with their fragrance counts
func ListHandler(brandRepo *brands.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := pagination.FromQuery(c, defaultLimit, maxLimit)

		list, total, err := brandRepo.List(c.Request.Context(), params.Limit, params.Offset)
		if err != nil {
			errors.InternalError(c, "failed to list brands", err)
			return
		}

		c.JSON(http.StatusOK, ListResponse{
			Brands:     list,
			Pagination: pagination.NewMeta(params, total),
		})
	}
}

// GetHandler returns a single brand by its slug id
func GetHandler(brandRepo *brands.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		brand, err := brandRepo.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			errors.NotFound(c, "brand")
			return
		}

		c.JSON(http.StatusOK, brand)
	}
}

package fragrances

import (
	"github.com/gin-gonic/gin"

	"github.com/scentmatch/server/scentmatch/fragrances"
)

// registers catalog browse routes (no auth required)
func RegisterRoutes(router *gin.RouterGroup, fragranceRepo *fragrances.Repository, recommender Recommender) {
	group := router.Group("/fragrances")
	{
		group.GET("", ListHandler(fragranceRepo))
		group.GET("/:id", GetHandler(fragranceRepo))
		group.GET("/:id/similar", SimilarHandler(fragranceRepo, recommender))
	}
}

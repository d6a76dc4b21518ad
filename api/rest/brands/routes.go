package brands

import (
	"github.com/gin-gonic/gin"

	"github.com/scentmatch/server/scentmatch/brands"
)

// registers brand routes (no auth required)
func RegisterRoutes(router *gin.RouterGroup, brandRepo *brands.Repository) {
	group := router.Group("/brands")
	{
		group.GET("", ListHandler(brandRepo))
		group.GET("/:id", GetHandler(brandRepo))
	}
}

package collections

import (
	"github.com/gin-gonic/gin"

	"github.com/scentmatch/server/internal/auth"
	"github.com/scentmatch/server/scentmatch/collections"
)

// registers collection routes; all require authentication
func RegisterRoutes(router *gin.RouterGroup, collectionRepo *collections.Repository) {
	group := router.Group("/collections")
	group.Use(auth.AuthMiddleware())
	{
		group.GET("", ListHandler(collectionRepo))
		group.POST("", AddHandler(collectionRepo))
		group.GET("/stats", StatsHandler(collectionRepo))
		group.PUT("/:id", UpdateHandler(collectionRepo))
		group.DELETE("/:id", RemoveHandler(collectionRepo))
	}
}

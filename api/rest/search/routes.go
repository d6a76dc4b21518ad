package search

import "github.com/gin-gonic/gin"

// registers search routes (no auth required)
func RegisterRoutes(router *gin.RouterGroup, searcher Searcher) {
	router.GET("/search", SearchHandler(searcher))
	router.POST("/search", SearchHandler(searcher))
}

package websocket

import "github.com/gin-gonic/gin"

// registers the insight streaming route
func RegisterRoutes(router *gin.RouterGroup, deps Deps) {
	router.GET("/ws/insights", InsightStreamHandler(deps))
}

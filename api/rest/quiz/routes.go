package quiz

import (
	"github.com/gin-gonic/gin"

	"github.com/scentmatch/server/internal/auth"
)

// registers quiz routes; sessions are anonymous until claimed
func RegisterRoutes(router *gin.RouterGroup, deps Deps) {
	group := router.Group("/quiz")
	{
		group.GET("/questions", QuestionsHandler())
		group.POST("/start", StartHandler(deps))
		group.POST("/claim", auth.AuthMiddleware(), ClaimHandler(deps))
		group.GET("/:token", GetSessionHandler(deps))
		group.POST("/:token/answers", AnswerHandler(deps))
		group.POST("/:token/analyze", AnalyzeHandler(deps))
	}
}

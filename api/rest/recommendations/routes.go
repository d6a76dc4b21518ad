package recommendations

import (
	"github.com/gin-gonic/gin"

	"github.com/scentmatch/server/internal/auth"
)

// registers recommendation routes; optional auth so quiz tokens work
// without an account
func RegisterRoutes(router *gin.RouterGroup, deps Deps) {
	router.GET("/recommendations", auth.OptionalAuthMiddleware(), GetHandler(deps))
}

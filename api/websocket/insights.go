package websocket

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/scentmatch/server/internal/insights"
	"github.com/scentmatch/server/internal/logger"
	engine "github.com/scentmatch/server/internal/quiz"
	"github.com/scentmatch/server/internal/recommend"
	"github.com/scentmatch/server/scentmatch/quiz"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     checkOrigin,
}

// checkOrigin allows configured origins in production, everything in dev
func checkOrigin(r *http.Request) bool {
	if os.Getenv("ENVIRONMENT") != "production" {
		return true
	}

	origin := r.Header.Get("Origin")
	if origin == "" {
		return false
	}

	for _, allowed := range strings.Split(os.Getenv("ALLOWED_ORIGINS"), ",") {
		if strings.TrimSpace(allowed) == origin {
			return true
		}
	}

	return false
}

// InsightStreamHandler streams a freshly generated insight for an analyzed
// quiz session over a websocket, one text chunk per frame
func InsightStreamHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Query("token")
		if token == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "token query parameter is required"})
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			logger.ErrorErr(err, "failed to upgrade websocket connection")
			return
		}

		defer conn.Close() //nolint:errcheck // defer cleanup

		stream(c, deps, conn, token)
	}
}

func stream(c *gin.Context, deps Deps, conn *websocket.Conn, token string) {
	ctx := c.Request.Context()

	session, err := deps.Sessions.GetByToken(ctx, token)
	if err != nil {
		writeMessage(conn, &Message{Type: TypeError, Error: "quiz session not found"})
		return
	}

	if session.Status != quiz.StatusAnalyzed {
		writeMessage(conn, &Message{Type: TypeError, Error: "quiz session has not been analyzed"})
		return
	}

	archetype, ok := engine.ArchetypeByID(session.Results.Archetype)
	if !ok {
		writeMessage(conn, &Message{Type: TypeError, Error: "unknown archetype"})
		return
	}

	recommendations, err := deps.Recommender.RecommendForProfile(ctx, recommend.Profile{
		Text:   session.Results.ProfileText,
		Gender: session.Results.Gender,
		Limit:  streamRecommendationCount,
	})

	if err != nil {
		logger.Warn("failed to rebuild recommendations for stream", "error", err)
	}

	insight, err := deps.Insights.GenerateStream(ctx, insights.Request{
		ArchetypeName:    archetype.Name,
		ArchetypeTagline: archetype.Tagline,
		ProfileText:      session.Results.ProfileText,
		Recommendations:  recommendations,
	}, func(chunk string) error {
		return writeMessage(conn, &Message{Type: TypeChunk, Text: chunk})
	})

	if err != nil {
		writeMessage(conn, &Message{Type: TypeError, Error: "insight generation failed"})
		return
	}

	writeMessage(conn, &Message{ //nolint:errcheck // final frame, connection closes next
		Type:   TypeDone,
		Source: insight.Source,
		Model:  insight.Model,
	})
}

func writeMessage(conn *websocket.Conn, msg *Message) error {
	conn.SetWriteDeadline(time.Now().Add(writeWait)) //nolint:errcheck,gosec // websocket timing
	return conn.WriteJSON(msg)
}

package quiz

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/scentmatch/server/internal/auth"
	"github.com/scentmatch/server/internal/cache"
	apierrors "github.com/scentmatch/server/internal/errors"
	"github.com/scentmatch/server/internal/insights"
	"github.com/scentmatch/server/internal/logger"
	engine "github.com/scentmatch/server/internal/quiz"
	"github.com/scentmatch/server/internal/recommend"
	"github.com/scentmatch/server/scentmatch/quiz"
)

// StartHandler creates an anonymous quiz session and returns the questions
func StartHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := deps.Sessions.CreateSession(c.Request.Context())
		if err != nil {
			apierrors.InternalError(c, "failed to start quiz", err)
			return
		}

		c.JSON(http.StatusCreated, StartResponse{
			Token:     session.Token,
			Session:   session,
			Questions: engine.Questions(),
		})
	}
}

// QuestionsHandler returns the question set without creating a session
func QuestionsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"questions": engine.Questions()})
	}
}

// AnswerHandler records an answer for a session. Answers land in the Redis
// buffer when available and reach Postgres on the next flush.
func AnswerHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Param("token")

		var req AnswerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.ValidationError(c, err)
			return
		}

		if err := engine.ValidateAnswer(req.QuestionID, req.Values); err != nil {
			apierrors.BadRequest(c, err.Error(), nil)
			return
		}

		session, err := deps.Sessions.GetByToken(c.Request.Context(), token)
		if errors.Is(err, quiz.ErrSessionNotFound) {
			apierrors.QuizSessionNotFound(c)
			return
		}

		if err != nil {
			apierrors.InternalError(c, "failed to load quiz session", err)
			return
		}

		if session.Status == quiz.StatusAnalyzed {
			apierrors.InvalidOperation(c, "quiz already analyzed")
			return
		}

		if deps.Buffer != nil {
			err = deps.Buffer.SaveAnswer(c.Request.Context(), &cache.BufferedAnswer{
				SessionID:  session.ID,
				QuestionID: req.QuestionID,
				Values:     req.Values,
				AnsweredAt: time.Now(),
			})
		} else {
			err = deps.Sessions.SaveResponse(c.Request.Context(), session.ID, req.QuestionID, req.Values)
		}

		if err != nil {
			apierrors.InternalError(c, "failed to save answer", err)
			return
		}

		if err := deps.Sessions.TouchSession(c.Request.Context(), token); err != nil {
			logger.Warn("failed to touch quiz session", "error", err)
		}

		answers, err := collectAnswers(c, deps, session.ID)
		if err != nil {
			logger.Warn("failed to count answers", "error", err)
		}

		c.JSON(http.StatusOK, AnswerResponse{
			QuestionID: req.QuestionID,
			Answered:   len(answers),
			Remaining:  len(engine.Questions()) - len(answers),
		})
	}
}

// AnalyzeHandler scores the session, fetches recommendations, writes the
// insight, and stores everything on the session. Idempotent: re-analyzing
// an analyzed session returns the stored results.
func AnalyzeHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Param("token")

		session, err := deps.Sessions.GetByToken(c.Request.Context(), token)
		if errors.Is(err, quiz.ErrSessionNotFound) {
			apierrors.QuizSessionNotFound(c)
			return
		}

		if err != nil {
			apierrors.InternalError(c, "failed to load quiz session", err)
			return
		}

		if session.Status == quiz.StatusAnalyzed {
			respondWithStoredResults(c, deps, session)
			return
		}

		// make sure scoring sees buffered answers
		if deps.Flusher != nil {
			if err := deps.Flusher.FlushSession(c.Request.Context(), session.ID); err != nil {
				logger.Warn("failed to flush session before analysis", "error", err)
			}
		}

		answers, err := collectAnswers(c, deps, session.ID)
		if err != nil {
			apierrors.InternalError(c, "failed to load answers", err)
			return
		}

		analysis, err := engine.Analyze(answers)
		if err != nil {
			apierrors.BadRequest(c, err.Error(), nil)
			return
		}

		profile := recommend.Profile{
			Text:   analysis.ProfileText,
			Gender: analysis.Gender,
			Limit:  recommendationCount,
		}

		if session.UserID != nil && deps.Collections != nil {
			owned, err := deps.Collections.ListFragranceIDs(c.Request.Context(), *session.UserID)
			if err != nil {
				logger.Warn("failed to load collection for exclusion", "error", err)
			} else {
				profile.ExcludeIDs = owned
			}
		}

		recommendations, err := deps.Recommender.RecommendForProfile(c.Request.Context(), profile)
		if err != nil {
			apierrors.InternalError(c, "failed to build recommendations", err)
			return
		}

		insight := deps.Insights.Generate(c.Request.Context(), insights.Request{
			ArchetypeName:    analysis.Archetype.Name,
			ArchetypeTagline: analysis.Archetype.Tagline,
			ProfileText:      analysis.ProfileText,
			Recommendations:  recommendations,
		})

		results := quiz.Results{
			Archetype:        analysis.Archetype.ID,
			ArchetypeTagline: analysis.Archetype.Tagline,
			Gender:           analysis.Gender,
			ProfileText:      analysis.ProfileText,
			FragranceIDs:     fragranceIDs(recommendations),
			Insight:          insight.Text,
			InsightSource:    insight.Source,
		}

		session, err = deps.Sessions.MarkAnalyzed(c.Request.Context(), token, results)
		if err != nil {
			apierrors.InternalError(c, "failed to store quiz results", err)
			return
		}

		c.JSON(http.StatusOK, AnalyzeResponse{
			Session:         session,
			Archetype:       analysis.Archetype,
			Recommendations: recommendations,
			Insight:         insight,
		})
	}
}

// GetSessionHandler returns a session with its recorded responses
func GetSessionHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Param("token")

		session, err := deps.Sessions.GetByToken(c.Request.Context(), token)
		if errors.Is(err, quiz.ErrSessionNotFound) {
			apierrors.QuizSessionNotFound(c)
			return
		}

		if err != nil {
			apierrors.InternalError(c, "failed to load quiz session", err)
			return
		}

		responses, err := deps.Sessions.ListResponses(c.Request.Context(), session.ID)
		if err != nil {
			apierrors.InternalError(c, "failed to load responses", err)
			return
		}

		c.JSON(http.StatusOK, SessionResponse{
			Session:   session,
			Responses: responses,
		})
	}
}

// ClaimHandler attaches an anonymous session to the authenticated user
func ClaimHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			return
		}

		var req ClaimRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.ValidationError(c, err)
			return
		}

		session, err := deps.Sessions.Claim(c.Request.Context(), req.Token, userID)
		if errors.Is(err, quiz.ErrSessionNotFound) {
			apierrors.QuizSessionNotFound(c)
			return
		}

		if errors.Is(err, quiz.ErrAlreadyClaimed) {
			apierrors.Conflict(c, "quiz session already claimed")
			return
		}

		if err != nil {
			apierrors.InternalError(c, "failed to claim quiz session", err)
			return
		}

		c.JSON(http.StatusOK, SessionResponse{Session: session})
	}
}

// respondWithStoredResults rebuilds the analyze response from stored results
func respondWithStoredResults(c *gin.Context, deps Deps, session *quiz.Session) {
	archetype, _ := engine.ArchetypeByID(session.Results.Archetype)

	var recommendations []recommend.Result

	if session.Results.ProfileText != "" {
		recs, err := deps.Recommender.RecommendForProfile(c.Request.Context(), recommend.Profile{
			Text:   session.Results.ProfileText,
			Gender: session.Results.Gender,
			Limit:  recommendationCount,
		})
		if err != nil {
			logger.Warn("failed to rebuild recommendations", "error", err)
		} else {
			recommendations = recs
		}
	}

	c.JSON(http.StatusOK, AnalyzeResponse{
		Session:         session,
		Archetype:       archetype,
		Recommendations: recommendations,
		Insight: &insights.Insight{
			Text:   session.Results.Insight,
			Source: session.Results.InsightSource,
		},
	})
}

// collectAnswers merges persisted responses with any buffered ones
func collectAnswers(c *gin.Context, deps Deps, sessionID string) (map[string][]string, error) {
	answers := make(map[string][]string)

	responses, err := deps.Sessions.ListResponses(c.Request.Context(), sessionID)
	if err != nil {
		return nil, err
	}

	for _, resp := range responses {
		answers[resp.QuestionID] = resp.Values
	}

	if deps.Buffer != nil {
		buffered, err := deps.Buffer.GetAnswers(c.Request.Context(), sessionID)
		if err != nil {
			logger.Warn("failed to read buffered answers", "error", err)
		} else {
			// buffered answers are newer than persisted ones
			for questionID, values := range buffered {
				answers[questionID] = values
			}
		}
	}

	return answers, nil
}

func fragranceIDs(results []recommend.Result) []string {
	ids := make([]string, 0, len(results))
	for _, result := range results {
		ids = append(ids, result.Fragrance.ID)
	}

	return ids
}

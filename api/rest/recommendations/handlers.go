package recommendations

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/scentmatch/server/internal/auth"
	apierrors "github.com/scentmatch/server/internal/errors"
	"github.com/scentmatch/server/internal/logger"
	"github.com/scentmatch/server/internal/recommend"
	"github.com/scentmatch/server/scentmatch/quiz"
	"github.com/scentmatch/server/scentmatch/users"
)

// Deps bundles recommendation handler dependencies; Cache may be nil
type Deps struct {
	Sessions    *quiz.Repository
	Users       *users.Repository
	Collections CollectionReader
	Recommender Recommender
	Cache       Cache
}

// GetHandler returns personalized recommendations. With a token query param
// it reuses an analyzed quiz session; otherwise it requires authentication
// and seeds the profile from the user's collection.
func GetHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		count := defaultCount
		if countStr := c.Query("count"); countStr != "" {
			if parsed, err := strconv.Atoi(countStr); err == nil && parsed > 0 && parsed <= maxCount {
				count = parsed
			}
		}

		if token := c.Query("token"); token != "" {
			fromQuizSession(c, deps, token, count)
			return
		}

		fromCollection(c, deps, count)
	}
}

func fromQuizSession(c *gin.Context, deps Deps, token string, count int) {
	// serve from cache when the same session asked recently
	if deps.Cache != nil {
		var cached Response
		if found, err := deps.Cache.GetRecommendations(c.Request.Context(), token, &cached); err == nil && found {
			c.JSON(http.StatusOK, cached)
			return
		}
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

	if session.Status != quiz.StatusAnalyzed || session.Results.ProfileText == "" {
		apierrors.InvalidOperation(c, "quiz session has not been analyzed")
		return
	}

	profile := recommend.Profile{
		Text:   session.Results.ProfileText,
		Gender: session.Results.Gender,
		Limit:  count,
	}

	if session.UserID != nil {
		if owned, err := deps.Collections.ListFragranceIDs(c.Request.Context(), *session.UserID); err == nil {
			profile.ExcludeIDs = owned
		}
	}

	results, err := deps.Recommender.RecommendForProfile(c.Request.Context(), profile)
	if err != nil {
		apierrors.InternalError(c, "failed to build recommendations", err)
		return
	}

	resp := Response{Source: "quiz", Recommendations: results}

	if deps.Cache != nil {
		if err := deps.Cache.SetRecommendations(c.Request.Context(), token, resp); err != nil {
			logger.Warn("failed to cache recommendations", "error", err)
		}
	}

	c.JSON(http.StatusOK, resp)
}

func fromCollection(c *gin.Context, deps Deps, count int) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "provide a quiz token or sign in")
		return
	}

	user, err := deps.Users.FindByID(c.Request.Context(), userID)
	if err != nil {
		apierrors.NotFound(c, "user")
		return
	}

	seeds, err := deps.Collections.TopRated(c.Request.Context(), userID, profileSeedCount)
	if err != nil {
		apierrors.InternalError(c, "failed to load collection", err)
		return
	}

	if len(seeds) == 0 && len(user.FavoriteAccords) == 0 {
		apierrors.InvalidOperation(c, "add fragrances to your collection or take the quiz first")
		return
	}

	owned, err := deps.Collections.ListFragranceIDs(c.Request.Context(), userID)
	if err != nil {
		logger.Warn("failed to load collection for exclusion", "error", err)
	}

	profile := recommend.Profile{
		Text:       buildCollectionProfile(user, seeds),
		Gender:     user.GenderAffinity,
		ExcludeIDs: owned,
		Limit:      count,
	}

	results, err := deps.Recommender.RecommendForProfile(c.Request.Context(), profile)
	if err != nil {
		apierrors.InternalError(c, "failed to build recommendations", err)
		return
	}

	c.JSON(http.StatusOK, Response{Source: "collection", Recommendations: results})
}

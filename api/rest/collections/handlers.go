package collections

import (
	"errors"
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"

	"github.com/scentmatch/server/api/rest/pagination"
	"github.com/scentmatch/server/internal/auth"
	apierrors "github.com/scentmatch/server/internal/errors"
	"github.com/scentmatch/server/scentmatch/collections"
)

var validStatuses = []string{
	collections.StatusOwned,
	collections.StatusWishlist,
	collections.StatusTried,
}

// ListHandler lists the user's collection, optionally filtered by status
func ListHandler(collectionRepo *collections.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			return
		}

		status := c.Query("status")
		if status != "" && !slices.Contains(validStatuses, status) {
			apierrors.BadRequest(c, "invalid status filter", nil)
			return
		}

		params := pagination.FromQuery(c, defaultLimit, maxLimit)

		entries, total, err := collectionRepo.List(c.Request.Context(), userID, status, params.Limit, params.Offset)
		if err != nil {
			apierrors.InternalError(c, "failed to list collection", err)
			return
		}

		c.JSON(http.StatusOK, ListResponse{
			Entries:    entries,
			Pagination: pagination.NewMeta(params, total),
		})
	}
}

// AddHandler adds a fragrance to the user's collection
func AddHandler(collectionRepo *collections.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			return
		}

		var req collections.AddEntryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.ValidationError(c, err)
			return
		}

		entry, err := collectionRepo.Add(c.Request.Context(), userID, req)
		if err != nil {
			apierrors.InternalError(c, "failed to add to collection", err)
			return
		}

		c.JSON(http.StatusCreated, entry)
	}
}

// UpdateHandler updates status, rating, or notes on a collection entry
func UpdateHandler(collectionRepo *collections.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			return
		}

		var req collections.UpdateEntryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.ValidationError(c, err)
			return
		}

		entry, err := collectionRepo.Update(c.Request.Context(), userID, c.Param("id"), req)
		if errors.Is(err, collections.ErrEntryNotFound) {
			apierrors.NotFound(c, "collection entry")
			return
		}

		if err != nil {
			apierrors.InternalError(c, "failed to update collection entry", err)
			return
		}

		c.JSON(http.StatusOK, entry)
	}
}

// RemoveHandler removes a fragrance from the user's collection
func RemoveHandler(collectionRepo *collections.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			return
		}

		err := collectionRepo.Remove(c.Request.Context(), userID, c.Param("id"))
		if errors.Is(err, collections.ErrEntryNotFound) {
			apierrors.NotFound(c, "collection entry")
			return
		}

		if err != nil {
			apierrors.InternalError(c, "failed to remove collection entry", err)
			return
		}

		c.JSON(http.StatusOK, MessageResponse{Message: "removed from collection"})
	}
}

// StatsHandler returns counts and average rating for the user's collection
func StatsHandler(collectionRepo *collections.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			return
		}

		stats, err := collectionRepo.Stats(c.Request.Context(), userID)
		if err != nil {
			apierrors.InternalError(c, "failed to load collection stats", err)
			return
		}

		c.JSON(http.StatusOK, stats)
	}
}

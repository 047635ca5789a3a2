package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linkloom/linkloom/db"
	"github.com/linkloom/linkloom/internal/models"
	"github.com/linkloom/linkloom/internal/repository"
	"github.com/linkloom/linkloom/internal/utils"
	"github.com/sirupsen/logrus"
)

type CreateCollectionRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	IsPublic    *bool  `json:"is_public" binding:"required"`
	Theme       string `json:"theme"`
}

type CollectionIDRequest struct {
	ID uint `json:"id" binding:"required"`
}

type UpdateCollectionRequest struct {
	ID          uint    `json:"id" binding:"required"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsPublic    *bool   `json:"is_public"`
	Image       *string `json:"image"`
	Theme       *string `json:"theme"`
}

func CreateCollection(ctx *gin.Context) {
	var body CreateCollectionRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid request"})
		return
	}

	if body.Theme != "" && !models.ValidTheme(body.Theme) {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid theme"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	theme := body.Theme

	if theme == "" {
		theme = models.ThemeLight
	}

	collection, err := repository.NewCollectionRepository(db.DB).Create(models.Collection{
		UserID:      userID,
		Name:        body.Name,
		Description: body.Description,
		IsPublic:    *body.IsPublic,
		Theme:       theme,
	})

	if err != nil {
		logrus.WithError(err).Error("Failed to create collection")
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, toCollectionResponse(collection))
}

func ListCollections(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	collections, err := repository.NewCollectionRepository(db.DB).GetAllForUser(userID)

	if err != nil {
		logrus.WithError(err).Error("Failed to retrieve collections")
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, toCollectionResponses(collections))
}

// GetCollectionByID serves the owner-editing path: it returns the collection
// regardless of visibility, as a singleton array, after verifying ownership.
func GetCollectionByID(ctx *gin.Context) {
	var body CollectionIDRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid request"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	collection, err := repository.NewCollectionRepository(db.DB).GetByID(body.ID)

	if err != nil {
		logrus.WithError(err).Error("Failed to retrieve collection")
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	if collection == nil {
		ctx.JSON(http.StatusOK, []CollectionResponse{})
		return
	}

	if collection.UserID != userID {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Collection not found"})
		return
	}

	ctx.JSON(http.StatusOK, []CollectionResponse{toCollectionResponse(*collection)})
}

func UpdateCollection(ctx *gin.Context) {
	var body UpdateCollectionRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid request"})
		return
	}

	if body.Theme != nil && !models.ValidTheme(*body.Theme) {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid theme"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	repo := repository.NewCollectionRepository(db.DB)

	collection, err := repo.GetByID(body.ID)

	if err != nil {
		logrus.WithError(err).Error("Failed to retrieve collection")
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	if collection == nil || collection.UserID != userID {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Collection not found"})
		return
	}

	// Only the supplied fields are applied.
	fields := map[string]interface{}{}

	if body.Name != nil {
		fields["name"] = *body.Name
	}

	if body.Description != nil {
		fields["description"] = *body.Description
	}

	if body.IsPublic != nil {
		fields["is_public"] = *body.IsPublic
	}

	if body.Image != nil {
		fields["image"] = *body.Image
	}

	if body.Theme != nil {
		fields["theme"] = *body.Theme
	}

	updated, err := repo.Update(body.ID, fields)

	if err != nil {
		logrus.WithError(err).Error("Failed to update collection")
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, toCollectionResponses(updated))
}

func DeleteCollection(ctx *gin.Context) {
	var body CollectionIDRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid request"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	repo := repository.NewCollectionRepository(db.DB)

	collection, err := repo.GetByID(body.ID)

	if err != nil {
		logrus.WithError(err).Error("Failed to retrieve collection")
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	if collection == nil || collection.UserID != userID {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Collection not found"})
		return
	}

	deleted, err := repo.Delete(body.ID)

	if err != nil {
		logrus.WithError(err).Error("Failed to delete collection")
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"details": toCollectionResponses(deleted),
		"message": "Collection deleted successfully",
	})
}

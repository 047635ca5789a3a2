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

type CreateLinkRequest struct {
	URL          string `json:"url" binding:"required"`
	Description  string `json:"description"`
	Image        string `json:"image"`
	CollectionID uint   `json:"collection_id" binding:"required"`
	Position     int    `json:"position"`
}

type UpdateLinkRequest struct {
	ID          uint   `json:"id" binding:"required"`
	URL         string `json:"url" binding:"required"`
	Description string `json:"description"`
	Image       string `json:"image" binding:"required"`
	Position    int    `json:"position"`
}

type LinkIDRequest struct {
	ID uint `json:"id" binding:"required"`
}

func CreateLink(ctx *gin.Context) {
	var body CreateLinkRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid request"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	// Every link must hang off an existing collection owned by the same user.
	collection, err := repository.NewCollectionRepository(db.DB).GetByID(body.CollectionID)

	if err != nil {
		logrus.WithError(err).Error("Failed to retrieve collection")
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	if collection == nil || collection.UserID != userID {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Collection not found"})
		return
	}

	image := body.Image

	if image == "" {
		image = utils.PlaceholderImageURL()
	}

	link, err := repository.NewLinkRepository(db.DB).Create(models.Link{
		CollectionID: body.CollectionID,
		UserID:       userID,
		URL:          body.URL,
		Image:        image,
		Description:  body.Description,
		Position:     body.Position,
	})

	if err != nil {
		logrus.WithError(err).Error("Failed to create link")
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, toLinkResponse(link))
}

func UpdateLink(ctx *gin.Context) {
	var body UpdateLinkRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid request"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var existing models.Link

	if err := db.DB.Where("id = ? AND user_id = ?", body.ID, userID).First(&existing).Error; err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Link not found"})
		return
	}

	link, err := repository.NewLinkRepository(db.DB).Update(body.ID, body.URL, body.Description, body.Image, body.Position)

	if err != nil {
		logrus.WithError(err).Error("Failed to update link")
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, toLinkResponse(link))
}

func DeleteLink(ctx *gin.Context) {
	var body LinkIDRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid request"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var existing models.Link

	if err := db.DB.Where("id = ? AND user_id = ?", body.ID, userID).First(&existing).Error; err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Link not found"})
		return
	}

	deleted, err := repository.NewLinkRepository(db.DB).Delete(body.ID)

	if err != nil {
		logrus.WithError(err).Error("Failed to delete link")
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"details": toLinkResponses(deleted),
		"message": "Link deleted successfully",
	})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linkloom/linkloom/db"
	"github.com/linkloom/linkloom/internal/repository"
	"github.com/sirupsen/logrus"
)

// GetPublicCollectionByID is the unauthenticated share view. It returns an
// empty array for private and nonexistent ids alike, so callers cannot tell
// the two apart.
func GetPublicCollectionByID(ctx *gin.Context) {
	var body CollectionIDRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid request"})
		return
	}

	collections, err := repository.NewCollectionRepository(db.DB).GetPublicByID(body.ID)

	if err != nil {
		logrus.WithError(err).Error("Failed to retrieve public collection")
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, toCollectionResponses(collections))
}

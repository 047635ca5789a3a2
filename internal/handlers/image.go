package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linkloom/linkloom/db"
	"github.com/linkloom/linkloom/internal/models"
	"github.com/linkloom/linkloom/internal/services"
	"github.com/linkloom/linkloom/internal/utils"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
)

type UploadImageRequest struct {
	File string `json:"file" binding:"required"`
}

type DeleteImageRequest struct {
	PublicID string `json:"publicId" binding:"required"`
}

type ImageHandler struct {
	cloudinary *services.CloudinaryClient
}

func NewImageHandler(cloudinary *services.CloudinaryClient) *ImageHandler {
	return &ImageHandler{cloudinary: cloudinary}
}

func (h *ImageHandler) Upload(ctx *gin.Context) {
	var body UploadImageRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid request"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if services.DecodedDataURISize(body.File) > services.MaxUploadBytes {
		ctx.JSON(http.StatusUnauthorized, gin.H{
			"error": "File too large. Please use an image smaller than 1MB.",
		})
		return
	}

	result, err := h.cloudinary.Upload(body.File)

	if err != nil {
		logrus.WithError(err).Error("Failed to upload image")
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	uploaded := models.UploadedImage{
		UserID:   userID,
		PublicID: result.PublicID,
		URL:      result.URL,
		Details:  datatypes.JSON(result.Raw),
	}

	if err := db.DB.Create(&uploaded).Error; err != nil {
		logrus.WithError(err).Error("Failed to record uploaded image")
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Image uploaded!",
		"url":     result.URL,
		"details": result.Raw,
	})
}

func (h *ImageHandler) Delete(ctx *gin.Context) {
	var body DeleteImageRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid request"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if err := h.cloudinary.Delete(body.PublicID); err != nil {
		logrus.WithError(err).Error("Failed to delete image")
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	if err := db.DB.Where("public_id = ? AND user_id = ?", body.PublicID, userID).
		Delete(&models.UploadedImage{}).Error; err != nil {
		logrus.WithError(err).Error("Failed to remove uploaded image record")
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Image deleted!"})
}

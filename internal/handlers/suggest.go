package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linkloom/linkloom/internal/models"
	"github.com/linkloom/linkloom/internal/services"
)

type SuggestTitleRequest struct {
	URL string `json:"url" binding:"required"`
}

type GenerateDescriptionRequest struct {
	Name  string `json:"name" binding:"required"`
	Links []struct {
		URL         string `json:"url"`
		Description string `json:"description"`
	} `json:"links"`
}

type SuggestHandler struct {
	gemini *services.GeminiClient
}

func NewSuggestHandler(gemini *services.GeminiClient) *SuggestHandler {
	return &SuggestHandler{gemini: gemini}
}

// SuggestLinkTitle always answers with a usable title, falling back to the
// capitalized domain when the provider is unavailable.
func (h *SuggestHandler) SuggestLinkTitle(ctx *gin.Context) {
	var body SuggestTitleRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid request"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"title": h.gemini.SuggestLinkTitle(body.URL)})
}

func (h *SuggestHandler) GenerateCollectionDescription(ctx *gin.Context) {
	var body GenerateDescriptionRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid request"})
		return
	}

	links := make([]models.Link, 0, len(body.Links))

	for _, link := range body.Links {
		links = append(links, models.Link{URL: link.URL, Description: link.Description})
	}

	description := h.gemini.GenerateCollectionDescription(body.Name, links)

	ctx.JSON(http.StatusOK, gin.H{"description": description})
}

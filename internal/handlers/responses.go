package handlers

import (
	"time"

	"github.com/linkloom/linkloom/internal/models"
)

type LinkResponse struct {
	ID           uint      `json:"id"`
	CollectionID uint      `json:"collection_id"`
	UserID       uint      `json:"user_id"`
	URL          string    `json:"url"`
	Image        string    `json:"image"`
	Description  string    `json:"description"`
	Position     int       `json:"position"`
	CreatedAt    time.Time `json:"created_at"`
}

type CollectionResponse struct {
	ID          uint           `json:"id"`
	UserID      uint           `json:"user_id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	IsPublic    bool           `json:"is_public"`
	Image       string         `json:"image"`
	Theme       string         `json:"theme"`
	CreatedAt   time.Time      `json:"created_at"`
	Items       []LinkResponse `json:"items"`
}

func toLinkResponse(link models.Link) LinkResponse {
	return LinkResponse{
		ID:           link.ID,
		CollectionID: link.CollectionID,
		UserID:       link.UserID,
		URL:          link.URL,
		Image:        link.Image,
		Description:  link.Description,
		Position:     link.Position,
		CreatedAt:    link.CreatedAt,
	}
}

func toLinkResponses(links []models.Link) []LinkResponse {
	responses := make([]LinkResponse, 0, len(links))

	for _, link := range links {
		responses = append(responses, toLinkResponse(link))
	}

	return responses
}

func toCollectionResponse(collection models.Collection) CollectionResponse {
	return CollectionResponse{
		ID:          collection.ID,
		UserID:      collection.UserID,
		Name:        collection.Name,
		Description: collection.Description,
		IsPublic:    collection.IsPublic,
		Image:       collection.Image,
		Theme:       collection.Theme,
		CreatedAt:   collection.CreatedAt,
		Items:       toLinkResponses(collection.Links),
	}
}

func toCollectionResponses(collections []models.Collection) []CollectionResponse {
	responses := make([]CollectionResponse, 0, len(collections))

	for _, collection := range collections {
		responses = append(responses, toCollectionResponse(collection))
	}

	return responses
}

package repository

import (
	"github.com/linkloom/linkloom/internal/models"
	"gorm.io/gorm"
)

type LinkRepository struct {
	db *gorm.DB
}

func NewLinkRepository(db *gorm.DB) *LinkRepository {
	return &LinkRepository{db: db}
}

func (r *LinkRepository) Create(link models.Link) (models.Link, error) {
	if err := r.db.Create(&link).Error; err != nil {
		return models.Link{}, err
	}

	return link, nil
}

// Update replaces url, description, image and position of the link with the
// given id and returns the updated row.
func (r *LinkRepository) Update(id uint, url, description, image string, position int) (models.Link, error) {
	updates := map[string]interface{}{
		"url":         url,
		"description": description,
		"image":       image,
		"position":    position,
	}

	if err := r.db.Model(&models.Link{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return models.Link{}, err
	}

	var link models.Link

	if err := r.db.First(&link, id).Error; err != nil {
		return models.Link{}, err
	}

	return link, nil
}

// Delete removes the link row by id, returning the deleted rows so callers
// can echo them back as deletion details.
func (r *LinkRepository) Delete(id uint) ([]models.Link, error) {
	var links []models.Link

	if err := r.db.Where("id = ?", id).Find(&links).Error; err != nil {
		return nil, err
	}

	if err := r.db.Where("id = ?", id).Delete(&models.Link{}).Error; err != nil {
		return nil, err
	}

	return links, nil
}

// ListByCollectionIDs batch-fetches the links of every collection in ids.
func (r *LinkRepository) ListByCollectionIDs(ids []uint) ([]models.Link, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var links []models.Link

	if err := r.db.Where("collection_id IN ?", ids).Order("position ASC").Find(&links).Error; err != nil {
		return nil, err
	}

	return links, nil
}

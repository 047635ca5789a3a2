package repository

import (
	"errors"

	"github.com/linkloom/linkloom/internal/models"
	"gorm.io/gorm"
)

type CollectionRepository struct {
	db    *gorm.DB
	links *LinkRepository
}

func NewCollectionRepository(db *gorm.DB) *CollectionRepository {
	return &CollectionRepository{db: db, links: NewLinkRepository(db)}
}

func (r *CollectionRepository) Create(collection models.Collection) (models.Collection, error) {
	if err := r.db.Create(&collection).Error; err != nil {
		return models.Collection{}, err
	}

	return collection, nil
}

// GetAllForUser returns the user's collections, newest first, each populated
// with its links. The backend has no nested fetch, so links are fetched in one
// batch and joined in memory.
func (r *CollectionRepository) GetAllForUser(userID uint) ([]models.Collection, error) {
	var collections []models.Collection

	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&collections).Error; err != nil {
		return nil, err
	}

	return r.attachLinks(collections)
}

// GetByID returns the collection with its links regardless of visibility, or
// nil when no row matches. Callers owning the editing path must verify
// ownership before exposing the result.
func (r *CollectionRepository) GetByID(id uint) (*models.Collection, error) {
	var collection models.Collection

	if err := r.db.First(&collection, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	joined, err := r.attachLinks([]models.Collection{collection})

	if err != nil {
		return nil, err
	}

	return &joined[0], nil
}

// GetPublicByID returns a singleton slice holding the collection when it
// exists and is public, and an empty slice otherwise. Private and nonexistent
// ids are indistinguishable to the caller.
func (r *CollectionRepository) GetPublicByID(id uint) ([]models.Collection, error) {
	var collections []models.Collection

	if err := r.db.Where("id = ? AND is_public = ?", id, true).Find(&collections).Error; err != nil {
		return nil, err
	}

	return r.attachLinks(collections)
}

// Update applies only the supplied fields to the collection with the given id
// and returns the updated rows. Ownership is not checked here.
func (r *CollectionRepository) Update(id uint, fields map[string]interface{}) ([]models.Collection, error) {
	if len(fields) > 0 {
		if err := r.db.Model(&models.Collection{}).Where("id = ?", id).Updates(fields).Error; err != nil {
			return nil, err
		}
	}

	var collections []models.Collection

	if err := r.db.Where("id = ?", id).Find(&collections).Error; err != nil {
		return nil, err
	}

	return collections, nil
}

// Delete removes the collection and sweeps its child links first, so no
// orphaned link stays queryable even without a database-level cascade rule.
func (r *CollectionRepository) Delete(id uint) ([]models.Collection, error) {
	var collections []models.Collection

	if err := r.db.Where("id = ?", id).Find(&collections).Error; err != nil {
		return nil, err
	}

	if len(collections) == 0 {
		return collections, nil
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("collection_id = ?", id).Delete(&models.Link{}).Error; err != nil {
			return err
		}

		return tx.Where("id = ?", id).Delete(&models.Collection{}).Error
	})

	if err != nil {
		return nil, err
	}

	return collections, nil
}

// attachLinks joins each collection with its links by collection id, using a
// lookup map so the join stays O(collections + links).
func (r *CollectionRepository) attachLinks(collections []models.Collection) ([]models.Collection, error) {
	if len(collections) == 0 {
		return []models.Collection{}, nil
	}

	ids := make([]uint, 0, len(collections))

	for _, collection := range collections {
		ids = append(ids, collection.ID)
	}

	links, err := r.links.ListByCollectionIDs(ids)

	if err != nil {
		return nil, err
	}

	return joinLinks(collections, links), nil
}

func joinLinks(collections []models.Collection, links []models.Link) []models.Collection {
	byCollection := make(map[uint][]models.Link, len(collections))

	for _, link := range links {
		byCollection[link.CollectionID] = append(byCollection[link.CollectionID], link)
	}

	joined := make([]models.Collection, len(collections))

	for i, collection := range collections {
		collection.Links = byCollection[collection.ID]

		if collection.Links == nil {
			collection.Links = []models.Link{}
		}

		joined[i] = collection
	}

	return joined
}

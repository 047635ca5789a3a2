package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UploadedImage records every asset pushed to the media host so that
// delete-image requests can be reconciled against what we actually uploaded.
type UploadedImage struct {
	gorm.Model

	UserID   uint           `gorm:"not null;index"`
	PublicID string         `gorm:"uniqueIndex;not null"`
	URL      string         `gorm:"not null"`
	Details  datatypes.JSON `gorm:"type:jsonb"`

	// Relationships
	User User `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
